// Corpus store: the imported notes database. Rows are created by the
// import pipeline; this layer reads them, steps their review status, and
// permanently deletes reviewed notes. Nothing else mutates.

package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// CorpusStore is the long-lived handle to the imported corpus database.
type CorpusStore struct {
	db  *sql.DB
	log *zap.Logger
}

// OpenCorpusStore opens the corpus database at path. When the file is new
// the import-pipeline schema is created so the store is usable before any
// import has run. A nil logger disables logging.
func OpenCorpusStore(path string, logger *zap.Logger) (*CorpusStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus store: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	for _, ddl := range corpusSchemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying corpus schema: %w", err)
		}
	}

	logger.Debug("corpus store opened", zap.String("path", path))
	return &CorpusStore{db: db, log: logger}, nil
}

// Close releases the store handle. Idempotent.
func (s *CorpusStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.log.Debug("corpus store closed")
	return err
}

// corpusTimeLayout is the datetime format the import pipeline writes.
const corpusTimeLayout = "2006-01-02 15:04:05"

func formatCorpusTime(t time.Time) string {
	return t.Format(corpusTimeLayout)
}

// nullableTime turns a scanned nullable DATETIME column into a *time.Time.
// The driver decodes DATETIME columns into time.Time; NULL comes back nil.
// The import pipeline leaves the column NULL when the export date was
// unparseable, with the raw string column preserving whatever it contained.
func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

const noteColumns = "note_id, original_index, title, content, content_cleaned, plain_text, " +
	"folder, account, coredata_id, created_raw, created_datetime, modified_raw, " +
	"modified_datetime, status, processed, primary_category, content_length"

// GetNote retrieves a note by ID. A missing note is a normal outcome: the
// result is (nil, nil), never an error.
func (s *CorpusStore) GetNote(id string) (*types.Note, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	row := s.db.QueryRow("SELECT "+noteColumns+" FROM notes WHERE note_id = ?", id)
	n, err := scanNote(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting note %s: %w", id, err)
	}
	return n, nil
}

// ReviewNote moves a pending note to a review outcome, analyzed or failed.
// Any other requested status is rejected, and a note that is not pending
// cannot be reviewed again.
func (s *CorpusStore) ReviewNote(id, outcome string) (*types.Note, error) {
	if !types.ReviewOutcome(outcome) {
		return nil, fmt.Errorf("%w: %q is not a review outcome", types.ErrInvalidStatus, outcome)
	}
	return s.stepNoteStatus(id, outcome, func(current string) bool {
		return current == types.NoteStatusPending
	})
}

// RecoverNote returns a reviewed note to pending so it can be reviewed
// again.
func (s *CorpusStore) RecoverNote(id string) (*types.Note, error) {
	return s.stepNoteStatus(id, types.NoteStatusPending, func(current string) bool {
		return current == types.NoteStatusAnalyzed || current == types.NoteStatusFailed
	})
}

// stepNoteStatus applies one transition of the note status machine. The
// allowed predicate gates on the current status; anything else is an
// invalid transition.
func (s *CorpusStore) stepNoteStatus(id, next string, allowed func(string) bool) (*types.Note, error) {
	n, err := s.GetNote(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, types.ErrNotFound
	}
	if !allowed(n.Status) {
		return nil, fmt.Errorf("%w: %s -> %s", types.ErrInvalidTransition, n.Status, next)
	}

	_, err = s.db.Exec(
		"UPDATE notes SET status = ?, updated_at = ? WHERE note_id = ?",
		next, formatCorpusTime(time.Now().UTC()), id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating note status: %w", err)
	}

	s.log.Debug("note status changed",
		zap.String("note", id),
		zap.String("from", n.Status),
		zap.String("to", next))
	n.Status = next
	return n, nil
}

// DeleteNote permanently removes a reviewed note and all its extracted
// rows in one transaction. Unreviewed notes are protected; review or fail
// them first. The caller is responsible for clearing any organization-side
// links via UnlinkAllForNote.
func (s *CorpusStore) DeleteNote(id string) error {
	n, err := s.GetNote(id)
	if err != nil {
		return err
	}
	if n == nil {
		return types.ErrNotFound
	}
	if !n.Reviewed() {
		return fmt.Errorf("%w: cannot delete %s note", types.ErrInvalidTransition, n.Status)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	cascades := []string{
		"DELETE FROM extracted_links WHERE note_id = ?",
		"DELETE FROM extracted_images WHERE note_id = ?",
		"DELETE FROM extracted_tasks WHERE note_id = ?",
		"DELETE FROM extracted_ideas WHERE note_id = ?",
		"DELETE FROM extracted_projects WHERE note_id = ?",
		"DELETE FROM analysis WHERE note_id = ?",
		"DELETE FROM note_categories WHERE note_id = ?",
	}
	for _, stmt := range cascades {
		if _, err := tx.Exec(stmt, id); err != nil {
			return fmt.Errorf("cascading note delete: %w", err)
		}
	}
	if _, err := tx.Exec("DELETE FROM notes WHERE note_id = ?", id); err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing note delete: %w", err)
	}
	s.log.Debug("note deleted", zap.String("note", id))
	return nil
}

// NoteCategories returns the categories attached to a note.
func (s *CorpusStore) NoteCategories(id string) ([]string, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	rows, err := s.db.Query("SELECT category FROM note_categories WHERE note_id = ? ORDER BY category", id)
	if err != nil {
		return nil, fmt.Errorf("fetching note categories: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// NoteLinksExtracted returns the URLs the import pipeline pulled out of a
// note's content.
func (s *CorpusStore) NoteLinksExtracted(id string) ([]types.ExtractedLink, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	rows, err := s.db.Query(
		"SELECT note_id, url, link_type FROM extracted_links WHERE note_id = ? ORDER BY link_id", id)
	if err != nil {
		return nil, fmt.Errorf("fetching extracted links: %w", err)
	}
	defer rows.Close()

	links := []types.ExtractedLink{}
	for rows.Next() {
		var l types.ExtractedLink
		var linkType sql.NullString
		if err := rows.Scan(&l.NoteID, &l.URL, &linkType); err != nil {
			return nil, fmt.Errorf("scanning extracted link: %w", err)
		}
		l.LinkType = linkType.String
		links = append(links, l)
	}
	return links, rows.Err()
}

// NoteImages returns the image attachments recorded for a note, in
// extraction order.
func (s *CorpusStore) NoteImages(id string) ([]types.ExtractedImage, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	rows, err := s.db.Query(
		"SELECT note_id, filename, relative_path, image_format, size_bytes, extraction_order "+
			"FROM extracted_images WHERE note_id = ? ORDER BY extraction_order", id)
	if err != nil {
		return nil, fmt.Errorf("fetching extracted images: %w", err)
	}
	defer rows.Close()

	images := []types.ExtractedImage{}
	for rows.Next() {
		var img types.ExtractedImage
		var format sql.NullString
		var size sql.NullInt64
		var order sql.NullInt64
		if err := rows.Scan(&img.NoteID, &img.Filename, &img.RelativePath, &format, &size, &order); err != nil {
			return nil, fmt.Errorf("scanning extracted image: %w", err)
		}
		img.Format = format.String
		img.SizeBytes = size.Int64
		img.Order = int(order.Int64)
		images = append(images, img)
	}
	return images, rows.Err()
}

// ReviewedNoteCount counts notes that have been through review. The status
// values are bound parameters so a widened status set stays a types-only
// change.
func (s *CorpusStore) ReviewedNoteCount() (int, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM notes WHERE status IN (?, ?)",
		types.NoteStatusAnalyzed, types.NoteStatusFailed,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting reviewed notes: %w", err)
	}
	return count, nil
}

func scanNote(scan func(...any) error) (*types.Note, error) {
	var n types.Note
	var contentCleaned, plainText, coredataID, primaryCategory sql.NullString
	var createdDT, modifiedDT sql.NullTime
	var processed sql.NullInt64
	var contentLength sql.NullInt64
	if err := scan(
		&n.NoteID, &n.OriginalIndex, &n.Title, &n.Content, &contentCleaned, &plainText,
		&n.Folder, &n.Account, &coredataID, &n.CreatedRaw, &createdDT, &n.ModifiedRaw,
		&modifiedDT, &n.Status, &processed, &primaryCategory, &contentLength,
	); err != nil {
		return nil, err
	}
	n.ContentCleaned = contentCleaned.String
	n.PlainText = plainText.String
	n.CoreDataID = coredataID.String
	n.PrimaryCategory = primaryCategory.String
	n.CreatedAt = nullableTime(createdDT)
	n.ModifiedAt = nullableTime(modifiedDT)
	n.Processed = processed.Int64 != 0
	n.ContentLength = int(contentLength.Int64)
	return &n, nil
}
