// Task commands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var (
	taskAddDescription string
	taskAddStatus      string
	taskAddGroup       string
	taskAddSource      string
	taskAddTags        []string
)

var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task, err := stores.Org.CreateTask(&types.Task{
			Title:        args[0],
			Description:  taskAddDescription,
			Status:       taskAddStatus,
			GroupID:      taskAddGroup,
			SourceNoteID: taskAddSource,
			Tags:         taskAddTags,
		})
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(task)
		}
		fmt.Println("Created task", task.TaskID)
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, err := stores.Org.ListTasks()
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(tasks)
		}
		if len(tasks) == 0 {
			fmt.Println("No tasks found.")
			return nil
		}
		rows := make([]string, 0, len(tasks))
		for _, t := range tasks {
			rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%s\t%s",
				shortID(t.TaskID), truncate(t.Title, 40), t.Status, joinTags(t.Tags), displayTime(t.CreatedAt)))
		}
		printTable("ID\tTITLE\tSTATUS\tTAGS\tCREATED", rows)
		return nil
	},
}

var taskGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task, err := stores.Org.GetTask(args[0])
		if err != nil {
			return err
		}
		if task == nil {
			return fmt.Errorf("task %s: %w", args[0], types.ErrNotFound)
		}
		if flagJSON {
			return printJSON(task)
		}
		fmt.Println("ID:         ", task.TaskID)
		fmt.Println("Title:      ", task.Title)
		fmt.Println("Status:     ", task.Status)
		fmt.Println("Description:", task.Description)
		fmt.Println("Tags:       ", joinTags(task.Tags))
		fmt.Println("Created:    ", displayTime(task.CreatedAt))
		fmt.Println("Updated:    ", displayTime(task.UpdatedAt))
		return nil
	},
}

var (
	taskUpdateTitle       string
	taskUpdateDescription string
	taskUpdateStatus      string
	taskUpdateGroup       string
	taskUpdateSource      string
)

var taskUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update task fields",
	Long: `Update applies only the flags you supply; everything else is left
untouched. Supplying a flag with an empty value clears that field.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u := types.TaskUpdate{
			Title:        optionalFlag(cmd.Flags().Changed("title"), taskUpdateTitle),
			Description:  optionalFlag(cmd.Flags().Changed("description"), taskUpdateDescription),
			Status:       optionalFlag(cmd.Flags().Changed("status"), taskUpdateStatus),
			GroupID:      optionalFlag(cmd.Flags().Changed("group"), taskUpdateGroup),
			SourceNoteID: optionalFlag(cmd.Flags().Changed("source-note"), taskUpdateSource),
		}
		task, err := stores.Org.UpdateTask(args[0], u)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(task)
		}
		fmt.Println("Updated task", task.TaskID)
		return nil
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task and its associations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := stores.Org.DeleteTask(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted task", args[0])
		return nil
	},
}

func init() {
	taskAddCmd.Flags().StringVar(&taskAddDescription, "description", "", "task description")
	taskAddCmd.Flags().StringVar(&taskAddStatus, "status", "", "initial status (default: not_started)")
	taskAddCmd.Flags().StringVar(&taskAddGroup, "group", "", "group ID")
	taskAddCmd.Flags().StringVar(&taskAddSource, "source-note", "", "source corpus note ID")
	taskAddCmd.Flags().StringSliceVar(&taskAddTags, "tags", nil, "comma-separated tags")

	taskUpdateCmd.Flags().StringVar(&taskUpdateTitle, "title", "", "new title")
	taskUpdateCmd.Flags().StringVar(&taskUpdateDescription, "description", "", "new description")
	taskUpdateCmd.Flags().StringVar(&taskUpdateStatus, "status", "", "new status")
	taskUpdateCmd.Flags().StringVar(&taskUpdateGroup, "group", "", "new group ID")
	taskUpdateCmd.Flags().StringVar(&taskUpdateSource, "source-note", "", "new source note ID")

	taskCmd.AddCommand(taskAddCmd, taskListCmd, taskGetCmd, taskUpdateCmd, taskDeleteCmd)
}
