// Link and unlink commands for note-to-entity references.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

var linkCmd = &cobra.Command{
	Use:   "link <noteID> <task|chore|idea|project> <itemID>",
	Short: "Link a corpus note to an organization entity",
	Long: `Link records a reference from a corpus note to an entity. Linking
the same triple twice is a no-op.

Example:
  satchel link note-42 task 0195f3a2`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := stores.Org.LinkNote(args[0], types.ItemType(args[1]), args[2]); err != nil {
			return err
		}
		fmt.Printf("Linked note %s to %s %s\n", args[0], args[1], args[2])
		return nil
	},
}

var unlinkCmd = &cobra.Command{
	Use:   "unlink <noteID> <task|chore|idea|project> <itemID>",
	Short: "Remove a note-to-entity link",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := stores.Org.UnlinkNote(args[0], types.ItemType(args[1]), args[2]); err != nil {
			return err
		}
		fmt.Printf("Unlinked note %s from %s %s\n", args[0], args[1], args[2])
		return nil
	},
}
