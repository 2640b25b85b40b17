// Organization-note commands. These manage curated notes in the
// organization store; the imported corpus is under "satchel corpus".
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage curated notes",
}

var (
	noteAddContent string
	noteAddGroup   string
	noteAddSource  string
)

var noteAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a curated note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := stores.Org.CreateOrgNote(&types.OrgNote{
			Title:        args[0],
			Content:      noteAddContent,
			GroupID:      noteAddGroup,
			SourceNoteID: noteAddSource,
		})
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(note)
		}
		fmt.Println("Created note", note.OrgNoteID)
		return nil
	},
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all curated notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := stores.Org.ListOrgNotes()
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(notes)
		}
		if len(notes) == 0 {
			fmt.Println("No notes found.")
			return nil
		}
		rows := make([]string, 0, len(notes))
		for _, n := range notes {
			rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%s",
				shortID(n.OrgNoteID), truncate(n.Title, 40), n.Status, displayTime(n.CreatedAt)))
		}
		printTable("ID\tTITLE\tSTATUS\tCREATED", rows)
		return nil
	},
}

var noteGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one curated note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := stores.Org.GetOrgNote(args[0])
		if err != nil {
			return err
		}
		if note == nil {
			return fmt.Errorf("note %s: %w", args[0], types.ErrNotFound)
		}
		if flagJSON {
			return printJSON(note)
		}
		fmt.Println("ID:     ", note.OrgNoteID)
		fmt.Println("Title:  ", note.Title)
		fmt.Println("Status: ", note.Status)
		fmt.Println("Created:", displayTime(note.CreatedAt))
		fmt.Println()
		fmt.Println(note.Content)
		return nil
	},
}

var (
	noteUpdateTitle   string
	noteUpdateContent string
	noteUpdateStatus  string
	noteUpdateGroup   string
	noteUpdateSource  string
)

var noteUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update curated note fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u := types.OrgNoteUpdate{
			Title:        optionalFlag(cmd.Flags().Changed("title"), noteUpdateTitle),
			Content:      optionalFlag(cmd.Flags().Changed("content"), noteUpdateContent),
			Status:       optionalFlag(cmd.Flags().Changed("status"), noteUpdateStatus),
			GroupID:      optionalFlag(cmd.Flags().Changed("group"), noteUpdateGroup),
			SourceNoteID: optionalFlag(cmd.Flags().Changed("source-note"), noteUpdateSource),
		}
		note, err := stores.Org.UpdateOrgNote(args[0], u)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(note)
		}
		fmt.Println("Updated note", note.OrgNoteID)
		return nil
	},
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a curated note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := stores.Org.DeleteOrgNote(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted note", args[0])
		return nil
	},
}

func init() {
	noteAddCmd.Flags().StringVar(&noteAddContent, "content", "", "note body (markdown)")
	noteAddCmd.Flags().StringVar(&noteAddGroup, "group", "", "group ID")
	noteAddCmd.Flags().StringVar(&noteAddSource, "source-note", "", "source corpus note ID")

	noteUpdateCmd.Flags().StringVar(&noteUpdateTitle, "title", "", "new title")
	noteUpdateCmd.Flags().StringVar(&noteUpdateContent, "content", "", "new body")
	noteUpdateCmd.Flags().StringVar(&noteUpdateStatus, "status", "", "new status (active, archived)")
	noteUpdateCmd.Flags().StringVar(&noteUpdateGroup, "group", "", "new group ID")
	noteUpdateCmd.Flags().StringVar(&noteUpdateSource, "source-note", "", "new source note ID")

	noteCmd.AddCommand(noteAddCmd, noteListCmd, noteGetCmd, noteUpdateCmd, noteDeleteCmd)
}
