package shell

import "github.com/fatih/color"

// promptText is the fixed prompt the spec's REPL boundary displays before
// every read. Color is applied only when the session's stdin is an attached
// terminal; redirected/piped input gets the plain string so scripts and
// golden-output tests never have to strip ANSI codes.
func promptText(isTTY bool) string {
	if !isTTY {
		return "$ "
	}
	return color.New(color.FgGreen, color.Bold).Sprint("$ ")
}
