// Package session holds the state of one editing session and routes key
// events through it.
//
// A Session is the single aggregate the event loop mutates: the document
// being edited, the cursor, the current mode, the pending Normal mode keys,
// the command line and the transient status message. HandleKey processes one
// key event completely before returning, so a session needs no locking as
// long as it is driven from one goroutine.
//
// # Key Routing
//
//   - The interrupt key (Ctrl+C by default) clears pending keys and returns
//     to Normal mode from any mode.
//   - Normal mode keys feed the keystroke accumulator; completed commands are
//     applied through the motion resolver and the editing engine.
//   - Insert mode keys edit the document at the cursor.
//   - Command mode keys edit the command line; Enter hands it to the
//     command interpreter.
//
// # Basic Usage
//
//	s, err := session.Open("notes.txt")
//	if err != nil {
//	    return err
//	}
//	for _, ev := range key.MustParseSequence("dwix<Esc>") {
//	    out := s.HandleKey(ev)
//	    if out.Quit {
//	        break
//	    }
//	}
package session
