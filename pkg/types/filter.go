package types

import (
	"fmt"
	"time"
)

// Sort keys accepted by the note filter. The store maps these to column
// names through its own closed table; raw column names never come from
// caller input.
const (
	SortByCreated  = "created"
	SortByModified = "modified"
	SortByTitle    = "title"
)

// Sort orders.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// SortKeys and SortOrders are the allow-lists for NoteFilter validation.
var (
	SortKeys   = []string{SortByCreated, SortByModified, SortByTitle}
	SortOrders = []string{SortAsc, SortDesc}
)

// filterDateLayouts are the accepted date filter formats, tried in order.
var filterDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// NoteFilter is a structured filter over the corpus. Zero values mean "no
// predicate". Each list field compiles to equality for one element and a
// bound-parameter IN clause for several. The boolean flags are
// additive-only: true adds an existence predicate, false adds nothing.
type NoteFilter struct {
	Categories []string
	Folders    []string
	Accounts   []string
	Statuses   []string

	// Search matches title or plain text by case-insensitive substring.
	Search string

	// DateFrom/DateTo bound the note's creation time, inclusive.
	// Unparseable values fail Validate; they never silently become
	// "no filter".
	DateFrom string
	DateTo   string

	HasLinks  bool
	HasImages bool
	HasTasks  bool

	SortBy    string // One of SortKeys; empty means created.
	SortOrder string // One of SortOrders; empty means desc.

	Limit  int
	Offset int // Honored only when Limit is set.
}

// Validate checks sort keys, statuses, and date bounds against their
// allow-lists. It returns an error wrapping ErrInvalidFilter so the caller
// can map it to a client-facing validation failure.
func (f NoteFilter) Validate() error {
	if f.SortBy != "" && !contains(SortKeys, f.SortBy) {
		return fmt.Errorf("%w: unknown sort key %q", ErrInvalidFilter, f.SortBy)
	}
	if f.SortOrder != "" && !contains(SortOrders, f.SortOrder) {
		return fmt.Errorf("%w: unknown sort order %q", ErrInvalidFilter, f.SortOrder)
	}
	for _, s := range f.Statuses {
		if !ValidNoteStatus(s) {
			return fmt.Errorf("%w: unknown status %q", ErrInvalidFilter, s)
		}
	}
	if _, _, err := f.DateBounds(); err != nil {
		return err
	}
	if f.Limit < 0 || f.Offset < 0 {
		return fmt.Errorf("%w: negative limit or offset", ErrInvalidFilter)
	}
	return nil
}

// DateBounds parses the inclusive creation-time bounds. A date-only DateTo
// extends to the end of that day so the bound stays inclusive.
func (f NoteFilter) DateBounds() (from, to *time.Time, err error) {
	if f.DateFrom != "" {
		t, err := parseFilterDate(f.DateFrom, false)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: date_from %q", ErrInvalidFilter, f.DateFrom)
		}
		from = &t
	}
	if f.DateTo != "" {
		t, err := parseFilterDate(f.DateTo, true)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: date_to %q", ErrInvalidFilter, f.DateTo)
		}
		to = &t
	}
	return from, to, nil
}

// Page derives the 1-based page number from limit and offset. Display only;
// the query is computed from Limit and Offset directly.
func (f NoteFilter) Page() int {
	if f.Limit <= 0 {
		return 1
	}
	return f.Offset/f.Limit + 1
}

func parseFilterDate(s string, endOfDay bool) (time.Time, error) {
	for _, layout := range filterDateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if endOfDay && layout == "2006-01-02" {
			t = t.Add(24*time.Hour - time.Second)
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
