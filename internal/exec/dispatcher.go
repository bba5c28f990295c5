package exec

import "github.com/kvalheim/nushell/internal/builtin"

// IsInternal reports whether name is routed to the internal command set
// rather than spawned as an external process. It reads builtin.Names, which
// holds the same names RunStage finds through builtin.Lookup.
func IsInternal(name string) bool {
	return builtin.IsBuiltin(name)
}
