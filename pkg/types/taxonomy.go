package types

import "time"

// ProjectType is a small enumerable taxonomy assignable to projects through
// a many-to-many junction. Default-flagged rows are built in and protected
// from deletion.
type ProjectType struct {
	TypeID    string
	Name      string
	Color     string
	Icon      string
	IsDefault bool
	CreatedAt time.Time
}

// Group is a lightweight bucket that organization entities may reference.
type Group struct {
	GroupID   string
	Name      string
	Color     string
	Icon      string
	IsDefault bool
	CreatedAt time.Time
}

// TaxonomyUpdate carries the fields of a partial project-type or group
// update. The IsDefault flag is set at seed time and never updatable.
type TaxonomyUpdate struct {
	Name  *string
	Color *string
	Icon  *string
}

// Empty reports whether the update supplies no fields.
func (u TaxonomyUpdate) Empty() bool {
	return u.Name == nil && u.Color == nil && u.Icon == nil
}
