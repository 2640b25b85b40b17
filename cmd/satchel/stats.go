// Organization statistics command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show organization statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := stores.Org.OrganizationStats(stores.Corpus)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(stats)
		}

		fmt.Println("Tasks:      ", stats.TotalTasks)
		fmt.Println("Chores:     ", stats.TotalChores)
		fmt.Println("Ideas:      ", stats.TotalIdeas)
		fmt.Println("Projects:   ", stats.TotalProjects)
		fmt.Println("Notes:      ", stats.TotalOrgNotes)
		fmt.Println("Attachments:", stats.TotalAttachments)
		fmt.Println("Reviewed:   ", stats.ReviewedNotes)

		printBreakdown := func(name string, counts map[string]int) {
			if len(counts) == 0 {
				return
			}
			fmt.Printf("\n%s by status:\n", name)
			for status, n := range counts {
				fmt.Printf("  %-12s %d\n", status, n)
			}
		}
		printBreakdown("Tasks", stats.TaskStatus)
		printBreakdown("Chores", stats.ChoreStatus)
		printBreakdown("Ideas", stats.IdeaStatus)
		printBreakdown("Projects", stats.ProjectStatus)

		if len(stats.ProjectTypeUsage) > 0 {
			fmt.Println("\nProject types in use:")
			for name, n := range stats.ProjectTypeUsage {
				fmt.Printf("  %-12s %d\n", name, n)
			}
		}
		return nil
	},
}
