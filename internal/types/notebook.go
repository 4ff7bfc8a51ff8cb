package types

// DefaultNoteSource is used when a notebook entry is saved without naming
// where the recipe came from.
const DefaultNoteSource = "Unknown"

// NotebookEntry is one free-text kitchen note. Entries are created and
// deleted, never edited.
type NotebookEntry struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Source    string `json:"source"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"` // milliseconds since epoch
}

// NotebookEntryForm is the payload for creating a notebook entry.
type NotebookEntryForm struct {
	Title   string `json:"title" binding:"required"`
	Source  string `json:"source"`
	Content string `json:"content" binding:"required"`
}
