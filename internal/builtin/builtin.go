// Package builtin implements the shell's fixed set of in-process commands:
// echo, exit, type, pwd, cd and history.
package builtin

import (
	"io"

	"github.com/kvalheim/nushell/internal/history"
)

// Context is what every builtin command receives. Stdin is non-nil only
// when the command is a non-first stage of a pipeline; Stdout is non-nil
// when it is a non-last stage, or when its stdout is redirected to a file.
// A builtin that ignores Stdin must still
// drain it to completion so the upstream stage can finish flushing.
type Context struct {
	Args []string

	Stdin  io.Reader
	Stdout io.Writer

	History *history.Store

	Getenv func(key string) string
	Getwd  func() (string, error)
	Chdir  func(dir string) error
}

// Command is the signature every builtin implements. It runs to completion
// synchronously; by the time it returns, any output has been written (and,
// when Stdout was provided, closed) and Stdin (if any) has been drained.
type Command func(ctx *Context)

// Names is the fixed catalog of internal command names, in the order the
// spec lists them. `type` (through IsBuiltin) and tab completion read it;
// the dispatcher looks commands up in registry, which holds the same names.
var Names = []string{"echo", "exit", "type", "pwd", "cd", "history"}

// registry maps a builtin name to its implementation. exit is registered
// here only so type/completion can see it as a builtin; the REPL intercepts
// a line whose only stage is exit before dispatch ever reaches this entry
// (see internal/shell), so registry["exit"] runs only for an exit stage
// inside a multi-stage pipeline.
var registry = map[string]Command{
	"echo":    Echo,
	"exit":    Exit,
	"type":    Type,
	"pwd":     Pwd,
	"cd":      Cd,
	"history": History,
}

// Lookup returns the builtin registered for name, if any.
func Lookup(name string) (Command, bool) {
	cmd, ok := registry[name]
	return cmd, ok
}

// IsBuiltin reports whether name is one of the fixed internal commands.
func IsBuiltin(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}

// out returns the writer a builtin should send its payload to: ctx.Stdout
// (the pipeline's intermediate stream or a redirect file) when present, or
// the process's own
// stdout otherwise. When ctx.Stdout is non-nil, the caller must close it
// once done; out returns a matching close func (a no-op for the fallback
// case since the shell owns its own stdout).
func out(ctx *Context, fallback io.Writer) (io.Writer, func()) {
	if ctx.Stdout != nil {
		if closer, ok := ctx.Stdout.(io.Closer); ok {
			return ctx.Stdout, func() { closer.Close() }
		}
		return ctx.Stdout, func() {}
	}
	return fallback, func() {}
}

// drain consumes and discards ctx.Stdin if present. None of the builtins
// actually read their input; each must still drain it so an upstream
// pipeline stage can finish flushing and close its end.
func drain(ctx *Context) {
	if ctx.Stdin != nil {
		io.Copy(io.Discard, ctx.Stdin)
	}
}
