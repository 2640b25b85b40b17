// Project-type and group taxonomy commands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

var typeCmd = &cobra.Command{
	Use:   "type",
	Short: "Manage project types",
}

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Manage groups",
}

var (
	typeAddColor string
	typeAddIcon  string
)

var typeAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a project type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pt, err := stores.Org.CreateProjectType(&types.ProjectType{
			Name:  args[0],
			Color: typeAddColor,
			Icon:  typeAddIcon,
		})
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(pt)
		}
		fmt.Println("Created project type", pt.TypeID)
		return nil
	},
}

var typeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List project types",
	RunE: func(cmd *cobra.Command, args []string) error {
		ptypes, err := stores.Org.ListProjectTypes()
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(ptypes)
		}
		rows := make([]string, 0, len(ptypes))
		for _, pt := range ptypes {
			builtin := ""
			if pt.IsDefault {
				builtin = "builtin"
			}
			rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%s\t%s",
				shortID(pt.TypeID), pt.Name, pt.Color, pt.Icon, builtin))
		}
		printTable("ID\tNAME\tCOLOR\tICON\t", rows)
		return nil
	},
}

var (
	typeUpdateName  string
	typeUpdateColor string
	typeUpdateIcon  string
)

var typeUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a project type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pt, err := stores.Org.UpdateProjectType(args[0], types.TaxonomyUpdate{
			Name:  optionalFlag(cmd.Flags().Changed("name"), typeUpdateName),
			Color: optionalFlag(cmd.Flags().Changed("color"), typeUpdateColor),
			Icon:  optionalFlag(cmd.Flags().Changed("icon"), typeUpdateIcon),
		})
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(pt)
		}
		fmt.Println("Updated project type", pt.TypeID)
		return nil
	},
}

var typeDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project type (built-in types are protected)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := stores.Org.DeleteProjectType(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted project type", args[0])
		return nil
	},
}

var (
	groupAddColor string
	groupAddIcon  string
)

var groupAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := stores.Org.CreateGroup(&types.Group{
			Name:  args[0],
			Color: groupAddColor,
			Icon:  groupAddIcon,
		})
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(g)
		}
		fmt.Println("Created group", g.GroupID)
		return nil
	},
}

var groupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List groups",
	RunE: func(cmd *cobra.Command, args []string) error {
		groups, err := stores.Org.ListGroups()
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(groups)
		}
		rows := make([]string, 0, len(groups))
		for _, g := range groups {
			builtin := ""
			if g.IsDefault {
				builtin = "builtin"
			}
			rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%s\t%s",
				shortID(g.GroupID), g.Name, g.Color, g.Icon, builtin))
		}
		printTable("ID\tNAME\tCOLOR\tICON\t", rows)
		return nil
	},
}

var (
	groupUpdateName  string
	groupUpdateColor string
	groupUpdateIcon  string
)

var groupUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := stores.Org.UpdateGroup(args[0], types.TaxonomyUpdate{
			Name:  optionalFlag(cmd.Flags().Changed("name"), groupUpdateName),
			Color: optionalFlag(cmd.Flags().Changed("color"), groupUpdateColor),
			Icon:  optionalFlag(cmd.Flags().Changed("icon"), groupUpdateIcon),
		})
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(g)
		}
		fmt.Println("Updated group", g.GroupID)
		return nil
	},
}

var groupDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a group (entities referencing it are unassigned)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := stores.Org.DeleteGroup(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted group", args[0])
		return nil
	},
}

func init() {
	typeAddCmd.Flags().StringVar(&typeAddColor, "color", "", "display color, e.g. #ff9500")
	typeAddCmd.Flags().StringVar(&typeAddIcon, "icon", "", "display icon name")
	typeUpdateCmd.Flags().StringVar(&typeUpdateName, "name", "", "new name")
	typeUpdateCmd.Flags().StringVar(&typeUpdateColor, "color", "", "new color")
	typeUpdateCmd.Flags().StringVar(&typeUpdateIcon, "icon", "", "new icon")

	groupAddCmd.Flags().StringVar(&groupAddColor, "color", "", "display color")
	groupAddCmd.Flags().StringVar(&groupAddIcon, "icon", "", "display icon name")
	groupUpdateCmd.Flags().StringVar(&groupUpdateName, "name", "", "new name")
	groupUpdateCmd.Flags().StringVar(&groupUpdateColor, "color", "", "new color")
	groupUpdateCmd.Flags().StringVar(&groupUpdateIcon, "icon", "", "new icon")

	typeCmd.AddCommand(typeAddCmd, typeListCmd, typeUpdateCmd, typeDeleteCmd)
	groupCmd.AddCommand(groupAddCmd, groupListCmd, groupUpdateCmd, groupDeleteCmd)
}
