package builtin

import (
	"fmt"
	"os"
	"strings"

	"github.com/kvalheim/nushell/internal/pathenv"
)

// Cd changes the process-wide working directory. With no argument it goes
// to $HOME; a target starting with "~" expands against $HOME first.
func Cd(ctx *Context) {
	drain(ctx)

	w, closeOut := out(ctx, os.Stdout)
	defer closeOut()

	home := ctx.Getenv("HOME")

	var target string
	switch {
	case len(ctx.Args) == 0:
		if home == "" {
			fmt.Fprint(w, "cd: HOME not set\n")
			return
		}
		target = home
	case strings.HasPrefix(ctx.Args[0], "~"):
		if home == "" {
			fmt.Fprint(w, "cd: HOME not set\n")
			return
		}
		target = pathenv.ExpandHome(ctx.Args[0], home)
	default:
		target = ctx.Args[0]
	}

	if err := ctx.Chdir(target); err != nil {
		fmt.Fprintf(w, "cd: %s: No such file or directory\n", target)
		return
	}
}
