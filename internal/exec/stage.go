// Package exec dispatches a parsed command plan to either the internal
// command set or a spawned external process, and orchestrates multi-stage
// pipelines: allocating inter-stage byte channels, wiring each stage's
// stdio, and waiting on every participant before signalling completion.
package exec

import (
	"fmt"
	"io"
	"os"
	osexec "os/exec"

	"github.com/kvalheim/nushell/internal/builtin"
	"github.com/kvalheim/nushell/internal/history"
	"github.com/kvalheim/nushell/internal/parser"
	"github.com/kvalheim/nushell/internal/pathenv"
)

// Done is the one-shot terminal signal a stage emits once it is fully
// finished: a child's exit event for externals, or a builtin's synchronous
// return for internals. Both are modeled as a channel close so the pipeline
// executor can wait on a uniform type regardless of which kind of stage it
// is watching.
type Done <-chan struct{}

// RunStage dispatches plan to the internal command set or an external
// process and returns its terminal signal. stdin/downstreamWriter are the
// pipeline wiring for this stage's position: stdin is read from when the
// stage isn't first, downstreamWriter is written to (and closed) when the
// stage isn't last. Either may be nil when not applicable to the stage's
// role.
func RunStage(env Environment, hist *history.Store, plan parser.CommandPlan, isFirst, isLast bool, stdin io.Reader, downstreamWriter io.WriteCloser) Done {
	done := make(chan struct{})

	go func() {
		defer close(done)

		var file *os.File
		if plan.Redirect != nil {
			f, err := openRedirectFile(plan.Redirect)
			if err != nil {
				releaseStage(isFirst, isLast, stdin, downstreamWriter)
				return
			}
			file = f
			defer file.Close()
		}

		if cmd, ok := builtin.Lookup(plan.Head); ok {
			runBuiltinStage(cmd, env, hist, plan, isFirst, isLast, stdin, downstreamWriter, file)
			return
		}

		runExternalStage(env, plan, isFirst, isLast, stdin, downstreamWriter, file)
	}()

	return done
}

// releaseStage drains this stage's inbound channel and closes its outbound
// one. A stage that bails out before ever reaching builtin/external dispatch
// (a redirect that failed to open, a command that couldn't be found) would
// otherwise leave its neighbors blocked forever on an io.Pipe that never
// sees a writer or a reader.
func releaseStage(isFirst, isLast bool, stdin io.Reader, downstreamWriter io.WriteCloser) {
	if !isFirst && stdin != nil {
		io.Copy(io.Discard, stdin)
	}
	if !isLast && downstreamWriter != nil {
		downstreamWriter.Close()
	}
}

func runBuiltinStage(cmd builtin.Command, env Environment, hist *history.Store, plan parser.CommandPlan, isFirst, isLast bool, stdin io.Reader, downstreamWriter io.WriteCloser, file *os.File) {
	ctx := &builtin.Context{
		Args:    plan.Args,
		History: hist,
		Getenv:  env.Getenv,
		Getwd:   env.Getwd,
		Chdir:   env.Chdir,
	}

	if !isFirst {
		ctx.Stdin = stdin
	}

	switch {
	case plan.Redirect != nil && plan.Redirect.Fd == parser.FdStdout:
		ctx.Stdout = file
		// The channel slot this stage would otherwise have fed is now
		// carrying nothing, since builtins have no separate stderr stream
		// to route there instead; close it so the next stage sees EOF
		// rather than hanging.
		if !isLast && downstreamWriter != nil {
			downstreamWriter.Close()
		}
	case !isLast:
		ctx.Stdout = downstreamWriter
	default:
		ctx.Stdout = nil
	}

	cmd(ctx)
}

func runExternalStage(env Environment, plan parser.CommandPlan, isFirst, isLast bool, stdin io.Reader, downstreamWriter io.WriteCloser, file *os.File) {
	path, ok := pathenv.Lookup(env.Getenv("PATH"), plan.Head)
	if !ok {
		fmt.Fprintf(os.Stdout, "%s: command not found\n", plan.Head)
		releaseStage(isFirst, isLast, stdin, downstreamWriter)
		return
	}

	var cmdStdin io.Reader = os.Stdin
	if !isFirst {
		cmdStdin = stdin
	}

	var cmdStdout io.Writer = os.Stdout
	var cmdStderr io.Writer = os.Stderr
	if !isLast {
		cmdStdout = downstreamWriter
	}

	switch {
	case plan.Redirect != nil && plan.Redirect.Fd == parser.FdStdout:
		cmdStdout = file
		if !isLast {
			cmdStderr = downstreamWriter
		}
	case plan.Redirect != nil && plan.Redirect.Fd == parser.FdStderr:
		cmdStderr = file
	}

	c := &osexec.Cmd{
		Path:   path,
		Args:   append([]string{plan.Head}, plan.Args...),
		Stdin:  cmdStdin,
		Stdout: cmdStdout,
		Stderr: cmdStderr,
		Env:    os.Environ(),
	}

	if err := c.Start(); err != nil {
		fmt.Fprintf(os.Stdout, "Error: %s\n", err)
		releaseStage(isFirst, isLast, stdin, downstreamWriter)
		return
	}

	// Exit status is intentionally discarded; the shell does not surface $?.
	_ = c.Wait()

	if !isLast && downstreamWriter != nil {
		downstreamWriter.Close()
	}
}
