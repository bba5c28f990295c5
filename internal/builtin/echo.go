package builtin

import (
	"io"
	"os"
	"strings"
)

// Echo emits the space-joined concatenation of its arguments followed by a
// newline. Quoting has already been resolved by the tokenizer, so literal
// whitespace inside quoted arguments survives verbatim.
func Echo(ctx *Context) {
	drain(ctx)

	w, closeOut := out(ctx, os.Stdout)
	defer closeOut()

	io.WriteString(w, strings.Join(ctx.Args, " "))
	io.WriteString(w, "\n")
}
