package model

import "path/filepath"

// DocumentModel tracks the identity of the opened image file and whether the
// committed image diverged from what is on disk. The zero value means no
// document and is usable. No synchronization needed: updates occur on the UI
// thread.
type DocumentModel struct {
	name   string
	dir    string
	loaded bool
	dirty  bool
}

func NewDocumentModel() *DocumentModel { return &DocumentModel{} }

// SetOpened records a freshly opened file. The dirty flag resets because the
// committed image now matches the file contents.
func (m *DocumentModel) SetOpened(path string) {
	if m == nil {
		return
	}
	m.name = filepath.Base(path)
	m.dir = filepath.Dir(path)
	m.loaded = true
	m.dirty = false
}

// MarkDirty flags unsaved committed changes (set on mosaic confirm).
func (m *DocumentModel) MarkDirty() {
	if m == nil {
		return
	}
	if m.loaded {
		m.dirty = true
	}
}

// MarkSaved clears the dirty flag after a successful save.
func (m *DocumentModel) MarkSaved() {
	if m == nil {
		return
	}
	m.dirty = false
}

// Name returns the base file name of the opened document, "" when none.
func (m *DocumentModel) Name() string {
	if m == nil {
		return ""
	}
	return m.name
}

// Dir returns the directory the document was opened from.
func (m *DocumentModel) Dir() string {
	if m == nil {
		return ""
	}
	return m.dir
}

// Loaded reports whether a document is open.
func (m *DocumentModel) Loaded() bool { return m != nil && m.loaded }

// Dirty reports whether committed changes are not yet saved.
func (m *DocumentModel) Dirty() bool { return m != nil && m.dirty }
