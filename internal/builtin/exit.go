package builtin

import "io"

// Exit exists only so type and tab completion see "exit" as a builtin. The
// REPL intercepts a line whose only stage is exit before the dispatcher ever
// reaches this entry (see internal/shell); an "exit" stage inside a
// multi-stage pipeline does reach it, and is inert: it drains its input and
// closes its output without writing anything.
func Exit(ctx *Context) {
	drain(ctx)
	_, closeOut := out(ctx, io.Discard)
	closeOut()
}
