package types

import "time"

// Timeline grouping granularities for corpus statistics.
const (
	TimelineDay   = "day"
	TimelineMonth = "month"
	TimelineYear  = "year"
)

// ValidTimelineGroup reports whether g is a recognized timeline grouping.
func ValidTimelineGroup(g string) bool {
	return g == TimelineDay || g == TimelineMonth || g == TimelineYear
}

// OrgStats is one coherent snapshot of the organization store, computed
// fresh on each call. Empty tables yield zero counts and empty maps.
type OrgStats struct {
	TotalTasks    int
	TotalChores   int
	TotalIdeas    int
	TotalProjects int
	TotalOrgNotes int

	TaskStatus    map[string]int
	ChoreStatus   map[string]int
	IdeaStatus    map[string]int
	ProjectStatus map[string]int
	OrgNoteStatus map[string]int

	// ProjectTypeUsage maps project type name to the number of projects
	// carrying it.
	ProjectTypeUsage map[string]int

	// ReviewedNotes counts corpus notes that have been through review.
	ReviewedNotes int

	TotalAttachments int
}

// TimelineBucket is one time bucket of creation counts.
type TimelineBucket struct {
	Bucket string // e.g. "2025-11-08", "2025-11", or "2025".
	Count  int
}

// CorpusStats is one coherent snapshot of the corpus store.
type CorpusStats struct {
	TotalNotes    int
	TotalLinks    int
	TotalImages   int
	TotalTasks    int
	TotalIdeas    int
	TotalProjects int

	StatusCounts  map[string]int
	AccountCounts map[string]int
	FolderCounts  map[string]int

	// CategoryCounts breaks notes down by their primary category;
	// TopCategories counts every category assignment, so one note can
	// contribute to several entries.
	CategoryCounts map[string]int
	TopCategories  map[string]int

	CreatedRange  DateRange
	ModifiedRange DateRange

	Timeline []TimelineBucket
}

// DateRange is the earliest and latest timestamp seen in a column. Both
// ends are nil when no note carries a parseable value.
type DateRange struct {
	Earliest *time.Time
	Latest   *time.Time
}
