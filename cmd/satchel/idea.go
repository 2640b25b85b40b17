// Idea commands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

var ideaCmd = &cobra.Command{
	Use:   "idea",
	Short: "Manage ideas",
}

var (
	ideaAddDescription string
	ideaAddStatus      string
	ideaAddGroup       string
	ideaAddSource      string
	ideaAddTags        []string
)

var ideaAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Capture an idea",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idea, err := stores.Org.CreateIdea(&types.Idea{
			Title:        args[0],
			Description:  ideaAddDescription,
			Status:       ideaAddStatus,
			GroupID:      ideaAddGroup,
			SourceNoteID: ideaAddSource,
			Tags:         ideaAddTags,
		})
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(idea)
		}
		fmt.Println("Created idea", idea.IdeaID)
		return nil
	},
}

var ideaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all ideas",
	RunE: func(cmd *cobra.Command, args []string) error {
		ideas, err := stores.Org.ListIdeas()
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(ideas)
		}
		if len(ideas) == 0 {
			fmt.Println("No ideas found.")
			return nil
		}
		rows := make([]string, 0, len(ideas))
		for _, i := range ideas {
			rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%s\t%s",
				shortID(i.IdeaID), truncate(i.Title, 40), i.Status, joinTags(i.Tags), displayTime(i.CreatedAt)))
		}
		printTable("ID\tTITLE\tSTATUS\tTAGS\tCREATED", rows)
		return nil
	},
}

var ideaGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one idea",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idea, err := stores.Org.GetIdea(args[0])
		if err != nil {
			return err
		}
		if idea == nil {
			return fmt.Errorf("idea %s: %w", args[0], types.ErrNotFound)
		}
		if flagJSON {
			return printJSON(idea)
		}
		fmt.Println("ID:         ", idea.IdeaID)
		fmt.Println("Title:      ", idea.Title)
		fmt.Println("Status:     ", idea.Status)
		fmt.Println("Description:", idea.Description)
		fmt.Println("Tags:       ", joinTags(idea.Tags))
		fmt.Println("Created:    ", displayTime(idea.CreatedAt))
		return nil
	},
}

var (
	ideaUpdateTitle       string
	ideaUpdateDescription string
	ideaUpdateStatus      string
	ideaUpdateGroup       string
	ideaUpdateSource      string
)

var ideaUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update idea fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u := types.IdeaUpdate{
			Title:        optionalFlag(cmd.Flags().Changed("title"), ideaUpdateTitle),
			Description:  optionalFlag(cmd.Flags().Changed("description"), ideaUpdateDescription),
			Status:       optionalFlag(cmd.Flags().Changed("status"), ideaUpdateStatus),
			GroupID:      optionalFlag(cmd.Flags().Changed("group"), ideaUpdateGroup),
			SourceNoteID: optionalFlag(cmd.Flags().Changed("source-note"), ideaUpdateSource),
		}
		idea, err := stores.Org.UpdateIdea(args[0], u)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(idea)
		}
		fmt.Println("Updated idea", idea.IdeaID)
		return nil
	},
}

var ideaDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an idea and its associations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := stores.Org.DeleteIdea(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted idea", args[0])
		return nil
	},
}

func init() {
	ideaAddCmd.Flags().StringVar(&ideaAddDescription, "description", "", "idea description")
	ideaAddCmd.Flags().StringVar(&ideaAddStatus, "status", "", "initial status (default: new)")
	ideaAddCmd.Flags().StringVar(&ideaAddGroup, "group", "", "group ID")
	ideaAddCmd.Flags().StringVar(&ideaAddSource, "source-note", "", "source corpus note ID")
	ideaAddCmd.Flags().StringSliceVar(&ideaAddTags, "tags", nil, "comma-separated tags")

	ideaUpdateCmd.Flags().StringVar(&ideaUpdateTitle, "title", "", "new title")
	ideaUpdateCmd.Flags().StringVar(&ideaUpdateDescription, "description", "", "new description")
	ideaUpdateCmd.Flags().StringVar(&ideaUpdateStatus, "status", "", "new status")
	ideaUpdateCmd.Flags().StringVar(&ideaUpdateGroup, "group", "", "new group ID")
	ideaUpdateCmd.Flags().StringVar(&ideaUpdateSource, "source-note", "", "new source note ID")

	ideaCmd.AddCommand(ideaAddCmd, ideaListCmd, ideaGetCmd, ideaUpdateCmd, ideaDeleteCmd)
}
