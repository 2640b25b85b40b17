// Chore commands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

var choreCmd = &cobra.Command{
	Use:   "chore",
	Short: "Manage chores",
}

var (
	choreAddDescription string
	choreAddStatus      string
	choreAddGroup       string
	choreAddRecurring   bool
	choreAddFrequency   string
)

var choreAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a chore",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chore, err := stores.Org.CreateChore(&types.Chore{
			Title:       args[0],
			Description: choreAddDescription,
			Status:      choreAddStatus,
			GroupID:     choreAddGroup,
			IsRecurring: choreAddRecurring,
			Frequency:   choreAddFrequency,
		})
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(chore)
		}
		fmt.Println("Created chore", chore.ChoreID)
		return nil
	},
}

var choreListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all chores",
	RunE: func(cmd *cobra.Command, args []string) error {
		chores, err := stores.Org.ListChores()
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(chores)
		}
		if len(chores) == 0 {
			fmt.Println("No chores found.")
			return nil
		}
		rows := make([]string, 0, len(chores))
		for _, c := range chores {
			freq := "-"
			if c.IsRecurring {
				freq = c.Frequency
			}
			rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%s\t%s",
				shortID(c.ChoreID), truncate(c.Title, 40), c.Status, freq, displayTime(c.CreatedAt)))
		}
		printTable("ID\tTITLE\tSTATUS\tFREQUENCY\tCREATED", rows)
		return nil
	},
}

var choreGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one chore",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chore, err := stores.Org.GetChore(args[0])
		if err != nil {
			return err
		}
		if chore == nil {
			return fmt.Errorf("chore %s: %w", args[0], types.ErrNotFound)
		}
		if flagJSON {
			return printJSON(chore)
		}
		fmt.Println("ID:       ", chore.ChoreID)
		fmt.Println("Title:    ", chore.Title)
		fmt.Println("Status:   ", chore.Status)
		fmt.Println("Recurring:", chore.IsRecurring)
		fmt.Println("Frequency:", chore.Frequency)
		fmt.Println("Created:  ", displayTime(chore.CreatedAt))
		return nil
	},
}

var (
	choreUpdateTitle       string
	choreUpdateDescription string
	choreUpdateStatus      string
	choreUpdateGroup       string
	choreUpdateRecurring   bool
	choreUpdateFrequency   string
)

var choreUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update chore fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u := types.ChoreUpdate{
			Title:       optionalFlag(cmd.Flags().Changed("title"), choreUpdateTitle),
			Description: optionalFlag(cmd.Flags().Changed("description"), choreUpdateDescription),
			Status:      optionalFlag(cmd.Flags().Changed("status"), choreUpdateStatus),
			GroupID:     optionalFlag(cmd.Flags().Changed("group"), choreUpdateGroup),
			Frequency:   optionalFlag(cmd.Flags().Changed("frequency"), choreUpdateFrequency),
		}
		if cmd.Flags().Changed("recurring") {
			u.IsRecurring = &choreUpdateRecurring
		}
		chore, err := stores.Org.UpdateChore(args[0], u)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(chore)
		}
		fmt.Println("Updated chore", chore.ChoreID)
		return nil
	},
}

var choreDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a chore and its associations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := stores.Org.DeleteChore(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted chore", args[0])
		return nil
	},
}

func init() {
	choreAddCmd.Flags().StringVar(&choreAddDescription, "description", "", "chore description")
	choreAddCmd.Flags().StringVar(&choreAddStatus, "status", "", "initial status (default: active)")
	choreAddCmd.Flags().StringVar(&choreAddGroup, "group", "", "group ID")
	choreAddCmd.Flags().BoolVar(&choreAddRecurring, "recurring", false, "mark as recurring")
	choreAddCmd.Flags().StringVar(&choreAddFrequency, "frequency", "", "recurrence frequency, e.g. weekly")

	choreUpdateCmd.Flags().StringVar(&choreUpdateTitle, "title", "", "new title")
	choreUpdateCmd.Flags().StringVar(&choreUpdateDescription, "description", "", "new description")
	choreUpdateCmd.Flags().StringVar(&choreUpdateStatus, "status", "", "new status")
	choreUpdateCmd.Flags().StringVar(&choreUpdateGroup, "group", "", "new group ID")
	choreUpdateCmd.Flags().BoolVar(&choreUpdateRecurring, "recurring", false, "set the recurring flag")
	choreUpdateCmd.Flags().StringVar(&choreUpdateFrequency, "frequency", "", "new frequency")

	choreCmd.AddCommand(choreAddCmd, choreListCmd, choreGetCmd, choreUpdateCmd, choreDeleteCmd)
}
