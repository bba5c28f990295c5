package builtin

import (
	"fmt"
	"io"
	"os"
	"strconv"

	getopt "github.com/pborman/getopt/v2"
)

// History implements `history [N | -r F | -w F | -a F]`.
func History(ctx *Context) {
	drain(ctx)

	w, closeOut := out(ctx, os.Stdout)
	defer closeOut()

	if flag, missing := missingFlagArgument(ctx.Args); missing {
		fmt.Fprintf(w, "history: %s: option requires an argument\n", flag)
		return
	}

	opts := getopt.New()
	readFile := opts.StringLong("read", 'r', "", "replace history with the contents of a file")
	writeFile := opts.StringLong("write", 'w', "", "overwrite a file with the full history")
	appendFile := opts.StringLong("append", 'a', "", "append new history entries to a file")

	if err := opts.Getopt(append([]string{"history"}, ctx.Args...), nil); err != nil {
		fmt.Fprintf(w, "history: %s\n", err)
		return
	}

	switch {
	case *readFile != "":
		if err := ctx.History.LoadFile(*readFile); err != nil {
			fmt.Fprintf(w, "history: %s: No such file or directory\n", *readFile)
		}
	case *writeFile != "":
		if err := ctx.History.WriteFile(*writeFile); err != nil {
			fmt.Fprintf(w, "history: %s: cannot write to file\n", *writeFile)
		}
	case *appendFile != "":
		if err := ctx.History.AppendFile(*appendFile); err != nil {
			fmt.Fprintf(w, "history: %s: cannot write to file\n", *appendFile)
		}
	default:
		printHistory(w, ctx)
	}
}

// missingFlagArgument reports whether args ends with -r, -w or -a with no
// following value, so we can emit the spec's exact diagnostic instead of
// getopt's generic parse error.
func missingFlagArgument(args []string) (flag string, missing bool) {
	if len(args) == 0 {
		return "", false
	}
	last := args[len(args)-1]
	switch last {
	case "-r", "-w", "-a":
		return last, true
	default:
		return "", false
	}
}

func printHistory(w io.Writer, ctx *Context) {
	entries := ctx.History.All()

	if len(ctx.Args) > 0 {
		if n, err := strconv.Atoi(ctx.Args[0]); err == nil && n > 0 {
			entries = ctx.History.Last(n)
		}
	}

	offset := ctx.History.Len() - len(entries)
	for i, entry := range entries {
		fmt.Fprintf(w, "    %d  %s\n", offset+i+1, entry)
	}
}
