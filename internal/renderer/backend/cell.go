package backend

// Attr represents text attributes.
type Attr uint8

// Text attribute flags.
const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << (iota - 1)
	AttrDim
	AttrUnderline
	AttrReverse
)

// Has returns true if the attribute set contains attr.
func (a Attr) Has(attr Attr) bool {
	return a&attr != 0
}

// Color is a terminal palette index, or ColorDefault.
type Color int16

// Palette colors.
const (
	ColorDefault Color = -1
	ColorBlack   Color = 0
	ColorRed     Color = 1
	ColorGreen   Color = 2
	ColorYellow  Color = 3
	ColorBlue    Color = 4
	ColorMagenta Color = 5
	ColorCyan    Color = 6
	ColorWhite   Color = 7
	ColorGray    Color = 8
)

// Style is the look of a cell.
type Style struct {
	Foreground Color
	Background Color
	Attrs      Attr
}

// DefaultStyle returns the terminal's default colors with no attributes.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// WithForeground returns a copy with the foreground set.
func (s Style) WithForeground(c Color) Style {
	s.Foreground = c
	return s
}

// WithBackground returns a copy with the background set.
func (s Style) WithBackground(c Color) Style {
	s.Background = c
	return s
}

// With returns a copy with attr added.
func (s Style) With(attr Attr) Style {
	s.Attrs |= attr
	return s
}

// Cell is one screen cell. A wide character occupies its cell and the next;
// Width is 2 for it and the next cell holds the zero Cell.
type Cell struct {
	Rune  rune
	Width int
	Style Style
}

// NewCell creates a single-width cell with the default style.
func NewCell(r rune) Cell {
	return Cell{Rune: r, Width: 1, Style: DefaultStyle()}
}

// EmptyCell returns a blank cell.
func EmptyCell() Cell {
	return NewCell(' ')
}
