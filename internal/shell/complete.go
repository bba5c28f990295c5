package shell

import (
	"github.com/abiosoft/readline"

	"github.com/kvalheim/nushell/internal/builtin"
	"github.com/kvalheim/nushell/internal/pathenv"
)

// newCompleter builds the tab-completion catalog the spec's out-of-scope
// line-editing component consumes: every internal command name plus every
// executable visible on path. readline.PrefixCompleter already implements
// the longest-common-prefix lookup the spec names; this just hands it the
// catalog.
func newCompleter(path string) *readline.PrefixCompleter {
	names := append([]string{}, builtin.Names...)
	names = append(names, pathenv.All(path)...)

	items := make([]readline.PrefixCompleterInterface, 0, len(names))
	for _, name := range names {
		items = append(items, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(items...)
}
