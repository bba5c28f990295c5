package builtin

import (
	"fmt"
	"os"

	"github.com/kvalheim/nushell/internal/pathenv"
)

// Type reports whether NAME is a shell builtin or resolves it against
// $PATH, reporting a shell builtin even when an executable of the same
// name also exists on the search path.
func Type(ctx *Context) {
	drain(ctx)

	w, closeOut := out(ctx, os.Stdout)
	defer closeOut()

	if len(ctx.Args) == 0 {
		fmt.Fprint(w, "type: missing argument\n")
		return
	}

	name := ctx.Args[0]
	if IsBuiltin(name) {
		fmt.Fprintf(w, "%s is a shell builtin\n", name)
		return
	}

	if resolved, ok := pathenv.Lookup(ctx.Getenv("PATH"), name); ok {
		fmt.Fprintf(w, "%s is %s\n", name, resolved)
		return
	}

	fmt.Fprintf(w, "%s: not found\n", name)
}
