// Package vim accumulates Normal mode keystrokes into commands.
//
// The grammar for Normal mode commands is:
//
//	[count][motion]
//	[count][operator][count][motion]
//	[count][operator][operator]      (line-wise: dd, cc)
//	[count][edit]                    (x, D, C, J, r<char>)
//	[entry]                          (i, a, I, A, o, O, :)
//
// Examples:
//   - "5j": count=5, motion=down
//   - "d3w": operator=delete, count=3, motion=word_forward
//   - "2d3w": counts multiply, delete 6 words
//   - "5dd": count=5, operator=delete, line-wise
//   - "3rx": replace 3 characters with x
//
// # Accumulator States
//
// The accumulator is a state machine fed one key at a time:
//
//  1. Initial: waiting for a count, operator, motion, edit or entry key
//  2. Count: accumulating digits
//  3. Operator: after an operator key, waiting for a motion
//  4. OperatorCount: accumulating digits after an operator
//  5. GPrefix: after 'g', waiting for the second key of gg
//  6. Replace: after 'r', waiting for the replacement character
//
// Every Feed returns Incomplete, Completed or Cancelled. Pending state is
// cleared whenever a command completes or a sequence is cancelled.
//
// # Usage
//
//	acc := vim.NewAccumulator(vim.DefaultKeymap())
//	res := acc.Feed(ev)
//	switch res.Status {
//	case vim.Completed:
//	    // execute res.Command
//	case vim.Incomplete:
//	    // show res.Pending in the status line
//	case vim.Cancelled:
//	    // nothing to do
//	}
package vim
