package buffer

// Snapshot provides a read-only view of a buffer at a specific point in time.
// It is safe for concurrent access and does not change when the original
// buffer is modified.
type Snapshot struct {
	lines      [][]rune
	revisionID RevisionID
}

// LineCount returns the number of lines.
func (s *Snapshot) LineCount() int {
	return len(s.lines)
}

// Line returns the runes of line i, or nil if out of range.
// The returned slice is shared and must not be modified.
func (s *Snapshot) Line(i int) []rune {
	if i < 0 || i >= len(s.lines) {
		return nil
	}
	return s.lines[i]
}

// LineText returns the text of line i.
func (s *Snapshot) LineText(i int) string {
	return string(s.Line(i))
}

// LineLen returns the rune length of line i, or 0 if out of range.
func (s *Snapshot) LineLen(i int) int {
	return len(s.Line(i))
}

// Text returns the snapshot content joined by LF.
func (s *Snapshot) Text() string {
	return joinLines(s.lines, "\n", false)
}

// Clamp returns the nearest valid position to pos.
func (s *Snapshot) Clamp(pos Position) Position {
	return clamp(s.lines, pos)
}

// Revision returns the revision the snapshot was taken at.
func (s *Snapshot) Revision() RevisionID {
	return s.revisionID
}
