package builtin

import (
	"fmt"
	"io"
	"os"
)

// Pwd emits the current working directory followed by a newline.
func Pwd(ctx *Context) {
	drain(ctx)

	w, closeOut := out(ctx, os.Stdout)
	defer closeOut()

	wd, err := ctx.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stdout, "pwd: %s\n", err)
		return
	}
	io.WriteString(w, wd)
	io.WriteString(w, "\n")
}
