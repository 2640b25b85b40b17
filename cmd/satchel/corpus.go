// Corpus commands: browsing and reviewing the imported notes database.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Browse and review the imported notes corpus",
}

var (
	corpusListStatuses   []string
	corpusListFolders    []string
	corpusListAccounts   []string
	corpusListCategories []string
	corpusListSearch     string
	corpusListFrom       string
	corpusListTo         string
	corpusListHasLinks   bool
	corpusListHasImages  bool
	corpusListHasTasks   bool
	corpusListSortBy     string
	corpusListSortOrder  string
	corpusListLimit      int
	corpusListOffset     int
)

var corpusListCmd = &cobra.Command{
	Use:   "list",
	Short: "List corpus notes matching a filter",
	Long: `List applies the given filter and shows matching notes together with
the total match count, ignoring pagination.

Example:
  satchel corpus list --status pending --limit 20
  satchel corpus list --search groceries --has-images
  satchel corpus list --from 2025-01-01 --to 2025-06-30 --sort title --order asc`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := types.NoteFilter{
			Statuses:   corpusListStatuses,
			Folders:    corpusListFolders,
			Accounts:   corpusListAccounts,
			Categories: corpusListCategories,
			Search:     corpusListSearch,
			DateFrom:   corpusListFrom,
			DateTo:     corpusListTo,
			HasLinks:   corpusListHasLinks,
			HasImages:  corpusListHasImages,
			HasTasks:   corpusListHasTasks,
			SortBy:     corpusListSortBy,
			SortOrder:  corpusListSortOrder,
			Limit:      corpusListLimit,
			Offset:     corpusListOffset,
		}

		notes, err := stores.Corpus.ListNotes(filter)
		if err != nil {
			return err
		}
		total, err := stores.Corpus.CountNotes(filter)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(struct {
				Notes []*types.Note `json:"notes"`
				Total int           `json:"total"`
				Page  int           `json:"page"`
			}{notes, total, filter.Page()})
		}

		if len(notes) == 0 {
			fmt.Println("No notes match.")
			return nil
		}
		rows := make([]string, 0, len(notes))
		for _, n := range notes {
			created := "-"
			if n.CreatedAt != nil {
				created = displayTime(*n.CreatedAt)
			}
			rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%s\t%s",
				shortID(n.NoteID), truncate(n.Title, 40), n.Status, n.Folder, created))
		}
		printTable("ID\tTITLE\tSTATUS\tFOLDER\tCREATED", rows)
		fmt.Printf("\n%d of %d note(s), page %d\n", len(notes), total, filter.Page())
		return nil
	},
}

var corpusShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one corpus note with its extracted data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := stores.Corpus.GetNote(args[0])
		if err != nil {
			return err
		}
		if note == nil {
			return fmt.Errorf("note %s: %w", args[0], types.ErrNotFound)
		}

		categories, err := stores.Corpus.NoteCategories(note.NoteID)
		if err != nil {
			return err
		}
		links, err := stores.Corpus.NoteLinksExtracted(note.NoteID)
		if err != nil {
			return err
		}
		images, err := stores.Corpus.NoteImages(note.NoteID)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(struct {
				Note       *types.Note            `json:"note"`
				Categories []string               `json:"categories"`
				Links      []types.ExtractedLink  `json:"links"`
				Images     []types.ExtractedImage `json:"images"`
			}{note, categories, links, images})
		}

		fmt.Println("ID:      ", note.NoteID)
		fmt.Println("Title:   ", note.Title)
		fmt.Println("Status:  ", note.Status)
		fmt.Println("Folder:  ", note.Folder)
		fmt.Println("Account: ", note.Account)
		if note.CreatedAt != nil {
			fmt.Println("Created: ", displayTime(*note.CreatedAt))
		}
		fmt.Println("Categories:", joinTags(categories))
		for _, l := range links {
			fmt.Println("Link:    ", l.URL)
		}
		for _, img := range images {
			fmt.Println("Image:   ", img.Filename)
		}
		fmt.Println()
		fmt.Println(truncate(note.PlainText, 500))
		return nil
	},
}

var corpusReviewCmd = &cobra.Command{
	Use:   "review <id> <analyzed|failed>",
	Short: "Record a review outcome for a pending note",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := stores.Corpus.ReviewNote(args[0], args[1])
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(note)
		}
		fmt.Printf("Note %s is now %s\n", note.NoteID, note.Status)
		return nil
	},
}

var corpusRecoverCmd = &cobra.Command{
	Use:   "recover <id>",
	Short: "Return a reviewed note to pending",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := stores.Corpus.RecoverNote(args[0])
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(note)
		}
		fmt.Printf("Note %s is now %s\n", note.NoteID, note.Status)
		return nil
	},
}

var corpusDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Permanently delete a reviewed note",
	Long: `Delete removes a reviewed note and all its extracted data from the
corpus, and clears any organization-side links pointing at it. Pending
notes are protected; review them first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := stores.Corpus.DeleteNote(args[0]); err != nil {
			return err
		}
		if err := stores.Org.UnlinkAllForNote(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted note", args[0])
		return nil
	},
}

var corpusStatsGroup string

var corpusStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := stores.Corpus.CorpusStats(corpusStatsGroup)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(stats)
		}

		fmt.Println("Notes:   ", stats.TotalNotes)
		fmt.Println("Links:   ", stats.TotalLinks)
		fmt.Println("Images:  ", stats.TotalImages)
		fmt.Println("Tasks:   ", stats.TotalTasks)
		fmt.Println("Ideas:   ", stats.TotalIdeas)
		fmt.Println("Projects:", stats.TotalProjects)

		fmt.Println("\nBy status:")
		for status, n := range stats.StatusCounts {
			fmt.Printf("  %-12s %d\n", status, n)
		}
		fmt.Println("\nTimeline:")
		for _, b := range stats.Timeline {
			fmt.Printf("  %-10s %d\n", b.Bucket, b.Count)
		}
		return nil
	},
}

func init() {
	corpusListCmd.Flags().StringSliceVar(&corpusListStatuses, "status", nil, "filter by status (repeatable)")
	corpusListCmd.Flags().StringSliceVar(&corpusListFolders, "folder", nil, "filter by folder (repeatable)")
	corpusListCmd.Flags().StringSliceVar(&corpusListAccounts, "account", nil, "filter by account (repeatable)")
	corpusListCmd.Flags().StringSliceVar(&corpusListCategories, "category", nil, "filter by primary category (repeatable)")
	corpusListCmd.Flags().StringVar(&corpusListSearch, "search", "", "substring search over title and text")
	corpusListCmd.Flags().StringVar(&corpusListFrom, "from", "", "creation date lower bound (inclusive)")
	corpusListCmd.Flags().StringVar(&corpusListTo, "to", "", "creation date upper bound (inclusive)")
	corpusListCmd.Flags().BoolVar(&corpusListHasLinks, "has-links", false, "only notes with extracted links")
	corpusListCmd.Flags().BoolVar(&corpusListHasImages, "has-images", false, "only notes with extracted images")
	corpusListCmd.Flags().BoolVar(&corpusListHasTasks, "has-tasks", false, "only notes with extracted tasks")
	corpusListCmd.Flags().StringVar(&corpusListSortBy, "sort", "", "sort key: created, modified, title")
	corpusListCmd.Flags().StringVar(&corpusListSortOrder, "order", "", "sort order: asc, desc")
	corpusListCmd.Flags().IntVar(&corpusListLimit, "limit", 0, "maximum number of results (0 = no limit)")
	corpusListCmd.Flags().IntVar(&corpusListOffset, "offset", 0, "number of results to skip (needs --limit)")

	corpusStatsCmd.Flags().StringVar(&corpusStatsGroup, "group", "", "timeline bucket: day, month, year (default: month)")

	corpusCmd.AddCommand(corpusListCmd, corpusShowCmd, corpusReviewCmd,
		corpusRecoverCmd, corpusDeleteCmd, corpusStatsCmd)
}
