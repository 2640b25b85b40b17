package types

import "time"

// Note statuses. A note progresses through these states during review.
// The set is additive: widening it here is the only change needed for a
// schema evolution, since no query predicate hardcodes the list.
const (
	NoteStatusPending    = "pending"
	NoteStatusProcessing = "processing"
	NoteStatusAnalyzed   = "analyzed"
	NoteStatusFailed     = "failed"
)

// NoteStatuses lists the recognized note status values in display order.
var NoteStatuses = []string{
	NoteStatusPending,
	NoteStatusProcessing,
	NoteStatusAnalyzed,
	NoteStatusFailed,
}

// ValidNoteStatus reports whether s is a recognized note status.
func ValidNoteStatus(s string) bool {
	for _, v := range NoteStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Note is an imported corpus note. Rows are created once by the import
// pipeline; this core mutates only the status column or removes the row
// permanently.
type Note struct {
	NoteID          string     // Import-assigned identifier, immutable.
	OriginalIndex   int        // Position in the original export.
	Title           string
	Content         string     // Raw HTML content as exported.
	ContentCleaned  string
	PlainText       string     // Plain-text rendering used for search.
	Folder          string
	Account         string
	CoreDataID      string
	CreatedRaw      string     // Original date string from the export.
	CreatedAt       *time.Time // Parsed creation time; nil when unparseable.
	ModifiedRaw     string
	ModifiedAt      *time.Time
	Status          string
	Processed       bool
	PrimaryCategory string
	ContentLength   int
}

// ReviewOutcome reports whether s is a status a review action may assign.
// Review moves a pending note to analyzed or failed; nothing else.
func ReviewOutcome(s string) bool {
	return s == NoteStatusAnalyzed || s == NoteStatusFailed
}

// Reviewed reports whether the note has been through review.
func (n *Note) Reviewed() bool {
	return n.Status == NoteStatusAnalyzed || n.Status == NoteStatusFailed
}

// ExtractedLink is a URL pulled out of a note's content by the import
// pipeline.
type ExtractedLink struct {
	NoteID   string
	URL      string
	LinkType string
}

// ExtractedImage is an image attachment recorded by the import pipeline.
type ExtractedImage struct {
	NoteID       string
	Filename     string
	RelativePath string
	Format       string
	SizeBytes    int64
	Order        int
}
