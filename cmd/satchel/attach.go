// Attachment commands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

var attachCmd = &cobra.Command{
	Use:   "attach",
	Short: "Manage file attachments on entities",
}

var attachAddSize int64

var attachAddCmd = &cobra.Command{
	Use:   "add <task|chore|idea|project> <itemID> <filename> <path>",
	Short: "Record a file attachment on an entity",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := stores.Org.AddAttachment(types.FileAttachment{
			ItemType:  types.ItemType(args[0]),
			ItemID:    args[1],
			Filename:  args[2],
			Path:      args[3],
			SizeBytes: attachAddSize,
		})
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(a)
		}
		fmt.Println("Added attachment", a.AttachmentID)
		return nil
	},
}

var attachListCmd = &cobra.Command{
	Use:   "list <task|chore|idea|project> <itemID>",
	Short: "List an entity's attachments",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		attachments, err := stores.Org.ListAttachments(types.ItemType(args[0]), args[1])
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(attachments)
		}
		if len(attachments) == 0 {
			fmt.Println("No attachments found.")
			return nil
		}
		rows := make([]string, 0, len(attachments))
		for _, a := range attachments {
			rows = append(rows, fmt.Sprintf("%s\t%s\t%d\t%s",
				shortID(a.AttachmentID), a.Filename, a.SizeBytes, displayTime(a.CreatedAt)))
		}
		printTable("ID\tFILENAME\tSIZE\tCREATED", rows)
		return nil
	},
}

var attachDeleteCmd = &cobra.Command{
	Use:   "delete <attachmentID>",
	Short: "Remove an attachment record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := stores.Org.DeleteAttachment(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted attachment", args[0])
		return nil
	},
}

func init() {
	attachAddCmd.Flags().Int64Var(&attachAddSize, "size", 0, "file size in bytes")
	attachCmd.AddCommand(attachAddCmd, attachListCmd, attachDeleteCmd)
}
