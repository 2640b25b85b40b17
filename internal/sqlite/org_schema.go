// Schema DDL for the organization store. Statements use IF NOT EXISTS so
// opening an existing database is a no-op; evolution is additive only.

package sqlite

// Entity tables.
const (
	createTasks = `CREATE TABLE IF NOT EXISTS tasks (
    task_id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL,
    group_id TEXT NOT NULL DEFAULT '',
    source_note_id TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createChores = `CREATE TABLE IF NOT EXISTS chores (
    chore_id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL,
    is_recurring INTEGER NOT NULL DEFAULT 0,
    frequency TEXT NOT NULL DEFAULT '',
    group_id TEXT NOT NULL DEFAULT '',
    source_note_id TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createIdeas = `CREATE TABLE IF NOT EXISTS ideas (
    idea_id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL,
    group_id TEXT NOT NULL DEFAULT '',
    source_note_id TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createProjects = `CREATE TABLE IF NOT EXISTS projects (
    project_id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL,
    group_id TEXT NOT NULL DEFAULT '',
    source_note_id TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createOrgNotes = `CREATE TABLE IF NOT EXISTS org_notes (
    org_note_id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    content TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL,
    group_id TEXT NOT NULL DEFAULT '',
    source_note_id TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createProjectTypes = `CREATE TABLE IF NOT EXISTS project_types (
    type_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    color TEXT NOT NULL DEFAULT '',
    icon TEXT NOT NULL DEFAULT '',
    is_default INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
);`

	createGroups = `CREATE TABLE IF NOT EXISTS groups (
    group_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    color TEXT NOT NULL DEFAULT '',
    icon TEXT NOT NULL DEFAULT '',
    is_default INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
);`
)

// Relation tables. Tag sets are replaced wholesale, never patched, so the
// tag tables carry no surrogate key.
const (
	createTaskTags = `CREATE TABLE IF NOT EXISTS task_tags (
    task_id TEXT NOT NULL,
    tag TEXT NOT NULL,
    PRIMARY KEY (task_id, tag)
);`

	createIdeaTags = `CREATE TABLE IF NOT EXISTS idea_tags (
    idea_id TEXT NOT NULL,
    tag TEXT NOT NULL,
    PRIMARY KEY (idea_id, tag)
);`

	createProjectTags = `CREATE TABLE IF NOT EXISTS project_tags (
    project_id TEXT NOT NULL,
    tag TEXT NOT NULL,
    PRIMARY KEY (project_id, tag)
);`

	createProjectProjectTypes = `CREATE TABLE IF NOT EXISTS project_project_types (
    project_id TEXT NOT NULL,
    type_id TEXT NOT NULL,
    PRIMARY KEY (project_id, type_id)
);`

	createNoteLinks = `CREATE TABLE IF NOT EXISTS note_links (
    note_id TEXT NOT NULL,
    item_type TEXT NOT NULL,
    item_id TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

	createFileAttachments = `CREATE TABLE IF NOT EXISTS file_attachments (
    attachment_id TEXT PRIMARY KEY,
    item_type TEXT NOT NULL,
    item_id TEXT NOT NULL,
    filename TEXT NOT NULL,
    path TEXT NOT NULL DEFAULT '',
    size_bytes INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
);`
)

// Index DDL. The unique note_links index backs idempotent link insertion.
const (
	idxTasksStatus        = `CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);`
	idxChoresStatus       = `CREATE INDEX IF NOT EXISTS idx_chores_status ON chores(status);`
	idxIdeasStatus        = `CREATE INDEX IF NOT EXISTS idx_ideas_status ON ideas(status);`
	idxProjectsStatus     = `CREATE INDEX IF NOT EXISTS idx_projects_status ON projects(status);`
	idxNoteLinksUnique    = `CREATE UNIQUE INDEX IF NOT EXISTS idx_note_links_unique ON note_links(note_id, item_type, item_id);`
	idxNoteLinksItem      = `CREATE INDEX IF NOT EXISTS idx_note_links_item ON note_links(item_type, item_id);`
	idxAttachmentsItem    = `CREATE INDEX IF NOT EXISTS idx_attachments_item ON file_attachments(item_type, item_id);`
	idxJunctionProject    = `CREATE INDEX IF NOT EXISTS idx_ppt_project ON project_project_types(project_id);`
	idxJunctionType       = `CREATE INDEX IF NOT EXISTS idx_ppt_type ON project_project_types(type_id);`
)

// orgSchemaDDL lists all organization-store statements in dependency order.
var orgSchemaDDL = []string{
	createTasks,
	createChores,
	createIdeas,
	createProjects,
	createOrgNotes,
	createProjectTypes,
	createGroups,
	createTaskTags,
	createIdeaTags,
	createProjectTags,
	createProjectProjectTypes,
	createNoteLinks,
	createFileAttachments,
	idxTasksStatus,
	idxChoresStatus,
	idxIdeasStatus,
	idxProjectsStatus,
	idxNoteLinksUnique,
	idxNoteLinksItem,
	idxAttachmentsItem,
	idxJunctionProject,
	idxJunctionType,
}
