// Package renderer draws an editing session on a character-cell backend.
//
// The renderer is stateless with respect to the editor: every frame is drawn
// from a View, a snapshot of what the session looks like after the last key.
// It keeps only screen-side state, which is the viewport scroll position.
//
// Layout from top to bottom:
//
//	┌──────┬──────────────────────────────┐
//	│gutter│ text rows                    │
//	├──────┴──────────────────────────────┤
//	│ NORMAL  name [+]        pending 1:1 │  status bar
//	├─────────────────────────────────────┤
//	│ :command or message                 │
//	└─────────────────────────────────────┘
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	_ = term.Init()
//	r := renderer.New(term, renderer.DefaultOptions())
//	r.Render(view)
package renderer
