// Tag command: wholesale tag replacement on taggable entities.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

var tagCmd = &cobra.Command{
	Use:   "tag <entity> <id> [tag...]",
	Short: "Replace an entity's tag set",
	Long: `Tag replaces the whole tag set of a task, idea, or project. With no
tags, the set is cleared.

Example:
  satchel tag task 0195f3a2 finance urgent
  satchel tag idea 0195f3b7
  satchel tag project 0195f3c1 home`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		entity, id, tags := args[0], args[1], args[2:]
		var err error
		switch entity {
		case string(types.ItemTask):
			err = stores.Org.SetTaskTags(id, tags)
		case string(types.ItemIdea):
			err = stores.Org.SetIdeaTags(id, tags)
		case string(types.ItemProject):
			err = stores.Org.SetProjectTags(id, tags)
		default:
			return fmt.Errorf("%w: %q is not taggable (task, idea, project)", types.ErrInvalidItemType, entity)
		}
		if err != nil {
			return err
		}
		fmt.Printf("Set %d tag(s) on %s %s\n", len(tags), entity, id)
		return nil
	},
}
