package exec

import (
	"errors"
	"os"

	"github.com/kvalheim/nushell/internal/parser"
)

// errNoTarget marks a RedirectionClause whose operator had no following
// file token. The executor treats it as an I/O failure: no file is opened,
// and the stage's write end simply has nowhere to go.
var errNoTarget = errors.New("redirection target missing")

// openRedirectFile opens the file named by clause according to its fd and
// mode. For a stderr overwrite it first best-effort truncates the target,
// matching the source shell's two-step open (the follow-up OpenFile call
// surfaces the real error if the truncate failed).
func openRedirectFile(clause *parser.RedirectionClause) (*os.File, error) {
	if clause.Target == "" {
		return nil, errNoTarget
	}

	if clause.Fd == parser.FdStderr && clause.Mode == parser.ModeOverwrite {
		_ = os.Truncate(clause.Target, 0)
	}

	flags := os.O_CREATE | os.O_WRONLY
	if clause.Mode == parser.ModeAppend {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	return os.OpenFile(clause.Target, flags, 0o644)
}
