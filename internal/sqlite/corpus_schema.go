// Schema DDL for the corpus store, mirroring the import pipeline's layout.
// In production the importer has already created these tables; IF NOT EXISTS
// makes opening an empty file (fresh installs, tests) produce the same shape.

package sqlite

const corpusNotesDDL = `
CREATE TABLE IF NOT EXISTS notes (
	note_id TEXT PRIMARY KEY,
	original_index INTEGER NOT NULL,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	content_cleaned TEXT,
	plain_text TEXT,
	folder TEXT NOT NULL DEFAULT 'Notes',
	account TEXT NOT NULL,
	coredata_id TEXT UNIQUE,
	created_raw TEXT NOT NULL,
	created_datetime DATETIME,
	modified_raw TEXT NOT NULL,
	modified_datetime DATETIME,
	status TEXT DEFAULT 'pending',
	processed BOOLEAN DEFAULT 0,
	primary_category TEXT,
	content_length INTEGER,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
)`

const corpusExtractedLinksDDL = `
CREATE TABLE IF NOT EXISTS extracted_links (
	link_id INTEGER PRIMARY KEY AUTOINCREMENT,
	note_id TEXT NOT NULL,
	url TEXT NOT NULL,
	link_type TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (note_id) REFERENCES notes(note_id) ON DELETE CASCADE,
	UNIQUE(note_id, url)
)`

const corpusExtractedImagesDDL = `
CREATE TABLE IF NOT EXISTS extracted_images (
	image_id INTEGER PRIMARY KEY AUTOINCREMENT,
	note_id TEXT NOT NULL,
	filename TEXT NOT NULL,
	relative_path TEXT NOT NULL,
	image_format TEXT,
	size_bytes INTEGER,
	extraction_order INTEGER,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (note_id) REFERENCES notes(note_id) ON DELETE CASCADE,
	UNIQUE(note_id, filename)
)`

const corpusAnalysisDDL = `
CREATE TABLE IF NOT EXISTS analysis (
	analysis_id INTEGER PRIMARY KEY AUTOINCREMENT,
	note_id TEXT NOT NULL UNIQUE,
	summary TEXT,
	plain_text_sample TEXT,
	analyzed_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (note_id) REFERENCES notes(note_id) ON DELETE CASCADE
)`

const corpusExtractedTasksDDL = `
CREATE TABLE IF NOT EXISTS extracted_tasks (
	task_id INTEGER PRIMARY KEY AUTOINCREMENT,
	note_id TEXT NOT NULL,
	task_text TEXT NOT NULL,
	priority INTEGER,
	completed BOOLEAN DEFAULT 0,
	due_date DATE,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (note_id) REFERENCES notes(note_id) ON DELETE CASCADE
)`

const corpusExtractedIdeasDDL = `
CREATE TABLE IF NOT EXISTS extracted_ideas (
	idea_id INTEGER PRIMARY KEY AUTOINCREMENT,
	note_id TEXT NOT NULL,
	idea_text TEXT NOT NULL,
	status TEXT DEFAULT 'new',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (note_id) REFERENCES notes(note_id) ON DELETE CASCADE
)`

const corpusExtractedProjectsDDL = `
CREATE TABLE IF NOT EXISTS extracted_projects (
	project_id INTEGER PRIMARY KEY AUTOINCREMENT,
	note_id TEXT NOT NULL,
	project_name TEXT NOT NULL,
	status TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (note_id) REFERENCES notes(note_id) ON DELETE CASCADE
)`

const corpusNoteCategoriesDDL = `
CREATE TABLE IF NOT EXISTS note_categories (
	category_id INTEGER PRIMARY KEY AUTOINCREMENT,
	note_id TEXT NOT NULL,
	category TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (note_id) REFERENCES notes(note_id) ON DELETE CASCADE,
	UNIQUE(note_id, category)
)`

const corpusAccountsDDL = `
CREATE TABLE IF NOT EXISTS accounts (
	account_id INTEGER PRIMARY KEY AUTOINCREMENT,
	account_name TEXT NOT NULL UNIQUE,
	note_count INTEGER DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
)`

const corpusFoldersDDL = `
CREATE TABLE IF NOT EXISTS folders (
	folder_id INTEGER PRIMARY KEY AUTOINCREMENT,
	folder_name TEXT NOT NULL,
	account_name TEXT NOT NULL,
	note_count INTEGER DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(folder_name, account_name)
)`

var corpusIndexDDL = []string{
	"CREATE INDEX IF NOT EXISTS idx_notes_folder ON notes(folder)",
	"CREATE INDEX IF NOT EXISTS idx_notes_account ON notes(account)",
	"CREATE INDEX IF NOT EXISTS idx_notes_status ON notes(status)",
	"CREATE INDEX IF NOT EXISTS idx_notes_primary_category ON notes(primary_category)",
	"CREATE INDEX IF NOT EXISTS idx_notes_created_datetime ON notes(created_datetime)",
	"CREATE INDEX IF NOT EXISTS idx_notes_modified_datetime ON notes(modified_datetime)",
	"CREATE INDEX IF NOT EXISTS idx_notes_title ON notes(title)",
	"CREATE INDEX IF NOT EXISTS idx_links_note_id ON extracted_links(note_id)",
	"CREATE INDEX IF NOT EXISTS idx_links_type ON extracted_links(link_type)",
	"CREATE INDEX IF NOT EXISTS idx_images_note_id ON extracted_images(note_id)",
	"CREATE INDEX IF NOT EXISTS idx_analysis_note_id ON analysis(note_id)",
	"CREATE INDEX IF NOT EXISTS idx_tasks_note_id ON extracted_tasks(note_id)",
	"CREATE INDEX IF NOT EXISTS idx_ideas_note_id ON extracted_ideas(note_id)",
	"CREATE INDEX IF NOT EXISTS idx_projects_note_id ON extracted_projects(note_id)",
	"CREATE INDEX IF NOT EXISTS idx_categories_note_id ON note_categories(note_id)",
}

// corpusSchemaDDL is the full corpus schema in creation order.
var corpusSchemaDDL = append([]string{
	corpusNotesDDL,
	corpusExtractedLinksDDL,
	corpusExtractedImagesDDL,
	corpusAnalysisDDL,
	corpusExtractedTasksDDL,
	corpusExtractedIdeasDDL,
	corpusExtractedProjectsDDL,
	corpusNoteCategoriesDDL,
	corpusAccountsDDL,
	corpusFoldersDDL,
}, corpusIndexDDL...)
