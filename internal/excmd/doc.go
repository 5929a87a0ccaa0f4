// Package excmd parses and executes the commands typed on the ":" command
// line.
//
// Supported commands:
//
//	:w [file]     :write [file]   write the buffer
//	:wq [file]    :x [file]       write, then quit
//	:q            :quit           quit unless there are unsaved changes
//	:q!           :quit!          quit, discarding changes
//
// A "!" after w, wq or x is accepted and ignored. Problems are reported in the
// Result, never as a failure of the editor: the caller shows the message and
// keeps running.
package excmd
