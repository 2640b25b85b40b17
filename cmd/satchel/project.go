// Project commands, including project-type assignment.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var (
	projectAddDescription string
	projectAddStatus      string
	projectAddGroup       string
	projectAddSource      string
	projectAddTags        []string
)

var projectAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := stores.Org.CreateProject(&types.Project{
			Title:        args[0],
			Description:  projectAddDescription,
			Status:       projectAddStatus,
			GroupID:      projectAddGroup,
			SourceNoteID: projectAddSource,
			Tags:         projectAddTags,
		})
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(project)
		}
		fmt.Println("Created project", project.ProjectID)
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := stores.Org.ListProjects()
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(projects)
		}
		if len(projects) == 0 {
			fmt.Println("No projects found.")
			return nil
		}
		rows := make([]string, 0, len(projects))
		for _, p := range projects {
			rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%s\t%s",
				shortID(p.ProjectID), truncate(p.Title, 40), p.Status, joinTypeNames(p.Types), displayTime(p.CreatedAt)))
		}
		printTable("ID\tTITLE\tSTATUS\tTYPES\tCREATED", rows)
		return nil
	},
}

var projectGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := stores.Org.GetProject(args[0])
		if err != nil {
			return err
		}
		if project == nil {
			return fmt.Errorf("project %s: %w", args[0], types.ErrNotFound)
		}
		if flagJSON {
			return printJSON(project)
		}
		fmt.Println("ID:         ", project.ProjectID)
		fmt.Println("Title:      ", project.Title)
		fmt.Println("Status:     ", project.Status)
		fmt.Println("Description:", project.Description)
		fmt.Println("Types:      ", joinTypeNames(project.Types))
		fmt.Println("Tags:       ", joinTags(project.Tags))
		fmt.Println("Created:    ", displayTime(project.CreatedAt))
		return nil
	},
}

var (
	projectUpdateTitle       string
	projectUpdateDescription string
	projectUpdateStatus      string
	projectUpdateGroup       string
	projectUpdateSource      string
)

var projectUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update project fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u := types.ProjectUpdate{
			Title:        optionalFlag(cmd.Flags().Changed("title"), projectUpdateTitle),
			Description:  optionalFlag(cmd.Flags().Changed("description"), projectUpdateDescription),
			Status:       optionalFlag(cmd.Flags().Changed("status"), projectUpdateStatus),
			GroupID:      optionalFlag(cmd.Flags().Changed("group"), projectUpdateGroup),
			SourceNoteID: optionalFlag(cmd.Flags().Changed("source-note"), projectUpdateSource),
		}
		project, err := stores.Org.UpdateProject(args[0], u)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(project)
		}
		fmt.Println("Updated project", project.ProjectID)
		return nil
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project and its associations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := stores.Org.DeleteProject(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted project", args[0])
		return nil
	},
}

var projectTypesCmd = &cobra.Command{
	Use:   "types <id> [typeID...]",
	Short: "Replace a project's type assignments",
	Long: `Types replaces the project's type set wholesale with the given type
IDs. With no type IDs, all assignments are removed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := stores.Org.SetProjectTypes(args[0], args[1:]); err != nil {
			return err
		}
		fmt.Printf("Set %d type(s) on project %s\n", len(args)-1, args[0])
		return nil
	},
}

func joinTypeNames(ptypes []types.ProjectType) string {
	if len(ptypes) == 0 {
		return "-"
	}
	names := make([]string, len(ptypes))
	for i, pt := range ptypes {
		names[i] = pt.Name
	}
	return strings.Join(names, ",")
}

func init() {
	projectAddCmd.Flags().StringVar(&projectAddDescription, "description", "", "project description")
	projectAddCmd.Flags().StringVar(&projectAddStatus, "status", "", "initial status (default: planning)")
	projectAddCmd.Flags().StringVar(&projectAddGroup, "group", "", "group ID")
	projectAddCmd.Flags().StringVar(&projectAddSource, "source-note", "", "source corpus note ID")
	projectAddCmd.Flags().StringSliceVar(&projectAddTags, "tags", nil, "comma-separated tags")

	projectUpdateCmd.Flags().StringVar(&projectUpdateTitle, "title", "", "new title")
	projectUpdateCmd.Flags().StringVar(&projectUpdateDescription, "description", "", "new description")
	projectUpdateCmd.Flags().StringVar(&projectUpdateStatus, "status", "", "new status")
	projectUpdateCmd.Flags().StringVar(&projectUpdateGroup, "group", "", "new group ID")
	projectUpdateCmd.Flags().StringVar(&projectUpdateSource, "source-note", "", "new source note ID")

	projectCmd.AddCommand(projectAddCmd, projectListCmd, projectGetCmd,
		projectUpdateCmd, projectDeleteCmd, projectTypesCmd)
}
