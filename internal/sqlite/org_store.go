// Package sqlite implements the SQLite storage layer for Satchel: the
// read/write organization store and the import-populated corpus store.
// Both stores use raw database/sql over modernc.org/sqlite with explicit
// transaction boundaries around multi-statement mutations.
// See docs/ARCHITECTURE.md § Storage Layer.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// OrgStore is the long-lived handle to the organization store. One handle
// is shared for the lifetime of the process; the engine's own transaction
// isolation serializes readers and the single writer.
type OrgStore struct {
	db  *sql.DB
	log *zap.Logger
}

// OpenOrgStore opens (creating if necessary) the organization database at
// path and applies the schema. A nil logger disables logging.
func OpenOrgStore(path string, logger *zap.Logger) (*OrgStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening organization store: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	for _, ddl := range orgSchemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying organization schema: %w", err)
		}
	}

	if err := seedDefaults(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("seeding defaults: %w", err)
	}

	logger.Debug("organization store opened", zap.String("path", path))
	return &OrgStore{db: db, log: logger}, nil
}

// Close releases the store handle. Idempotent.
func (s *OrgStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.log.Debug("organization store closed")
	return err
}

// newUUID generates a UUID v7 string for entity IDs.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails.
		return uuid.New().String()
	}
	return id.String()
}

// timeLayout is the storage format for organization-store timestamps.
const timeLayout = time.RFC3339

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t, nil
}

// boolToInt normalizes a recurrence flag to the fixed 0/1 representation.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// rowExists reports whether a row with the given id exists in table.
// table and idCol come from closed in-package maps, never caller input.
func (s *OrgStore) rowExists(table, idCol, id string) (bool, error) {
	var one int
	err := s.db.QueryRow(
		"SELECT 1 FROM "+table+" WHERE "+idCol+" = ?", id,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking %s existence: %w", table, err)
	}
	return true, nil
}

// seedDefaults inserts the built-in project types and group on first open.
// Seeding is idempotent: it only runs when the taxonomy tables are empty.
func seedDefaults(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM project_types").Scan(&count); err != nil {
		return fmt.Errorf("counting project types: %w", err)
	}
	if count > 0 {
		return nil
	}

	nowStr := formatTime(time.Now())

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, pt := range defaultProjectTypes {
		_, err := tx.Exec(
			"INSERT INTO project_types (type_id, name, color, icon, is_default, created_at) VALUES (?, ?, ?, ?, 1, ?)",
			newUUID(), pt.name, pt.color, pt.icon, nowStr,
		)
		if err != nil {
			return fmt.Errorf("seeding project type %s: %w", pt.name, err)
		}
	}

	_, err = tx.Exec(
		"INSERT INTO groups (group_id, name, color, icon, is_default, created_at) VALUES (?, ?, ?, ?, 1, ?)",
		newUUID(), defaultGroupName, "#8e8e93", "tray", nowStr,
	)
	if err != nil {
		return fmt.Errorf("seeding default group: %w", err)
	}

	return tx.Commit()
}

// defaultGroupName is the built-in catch-all group.
const defaultGroupName = "inbox"

// defaultProjectTypes are seeded on first open and protected from deletion.
var defaultProjectTypes = []struct {
	name  string
	color string
	icon  string
}{
	{"personal", "#34c759", "person"},
	{"work", "#007aff", "briefcase"},
	{"creative", "#ff9500", "paintbrush"},
}
