package session

import (
	"path/filepath"

	"github.com/dshills/kite/internal/engine"
	"github.com/dshills/kite/internal/engine/buffer"
)

// bom is the UTF-8 byte order mark.
const bom = "\uFEFF"

// Document is the text being edited together with its file association.
// It tracks unsaved changes by comparing the buffer revision with the
// revision last written to disk.
type Document struct {
	eng      *engine.Engine
	path     string
	savedRev buffer.RevisionID

	// hasBOM is set when the file was loaded with a byte order mark, which
	// is written back on save.
	hasBOM bool
}

func newDocument(eng *engine.Engine, path string) *Document {
	return &Document{
		eng:      eng,
		path:     path,
		savedRev: eng.Revision(),
	}
}

// Engine returns the editing engine over the document's buffer.
func (d *Document) Engine() *engine.Engine {
	return d.eng
}

// Path returns the associated file path, or "" for an unnamed document.
func (d *Document) Path() string {
	return d.path
}

// SetPath associates the document with a file path.
func (d *Document) SetPath(path string) {
	d.path = path
}

// Name returns the display name of the document.
func (d *Document) Name() string {
	if d.path == "" {
		return "[No Name]"
	}
	return filepath.Base(d.path)
}

// Modified reports whether the buffer changed since it was loaded or last
// saved.
func (d *Document) Modified() bool {
	return d.eng.Revision() != d.savedRev
}

// MarkSaved records the current buffer revision as saved.
func (d *Document) MarkSaved() {
	d.savedRev = d.eng.Revision()
}

// SavedRevision returns the buffer revision last loaded or written. It
// changes whenever the document is saved.
func (d *Document) SavedRevision() buffer.RevisionID {
	return d.savedRev
}

// Content returns the text as written to a file.
func (d *Document) Content() string {
	if d.hasBOM {
		return bom + d.eng.Buffer().Content()
	}
	return d.eng.Buffer().Content()
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return d.eng.LineCount()
}
