// Package shell is the REPL boundary: it owns the read-eval-print loop,
// history persistence, prompt rendering and line editing, and wires each
// line through tokenization, pipeline splitting, redirection extraction and
// the executor.
package shell

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/abiosoft/readline"
	"golang.org/x/term"

	"github.com/kvalheim/nushell/internal/exec"
	"github.com/kvalheim/nushell/internal/history"
	"github.com/kvalheim/nushell/internal/parser"
	"github.com/kvalheim/nushell/internal/token"
)

const defaultHistFileName = ".nu_history"

// Shell holds everything that lives for the duration of one REPL session.
type Shell struct {
	rl       *readline.Instance
	hist     *history.Store
	histFile string
	env      exec.Environment
	isTTY    bool
}

// New constructs a Shell wired to the real process environment: stdin/stdout,
// $PATH, $HOME and $HISTFILE. It loads any existing history file so history
// persists across sessions.
func New() (*Shell, error) {
	histFile := os.Getenv("HISTFILE")
	if histFile == "" {
		if home := os.Getenv("HOME"); home != "" {
			histFile = filepath.Join(home, defaultHistFileName)
		}
	}

	hist := history.NewStore()
	if histFile != "" {
		if err := hist.LoadFile(histFile); err != nil && !os.IsNotExist(err) {
			log.Printf("history: could not load %s: %v", histFile, err)
		}
	}

	cfg := &readline.Config{
		Prompt:       "$ ",
		AutoComplete: newCompleter(os.Getenv("PATH")),
		// History is owned entirely by internal/history and the HISTFILE
		// convention; readline's own persisted-history file would double up
		// on bookkeeping the history builtin already does.
		HistoryFile:     "",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	}
	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &Shell{
		rl:       rl,
		hist:     hist,
		histFile: histFile,
		isTTY:    term.IsTerminal(int(os.Stdin.Fd())),
		env: exec.Environment{
			Getenv: os.Getenv,
			Getwd:  os.Getwd,
			Chdir:  os.Chdir,
		},
	}, nil
}

// Run drives the read-eval-print loop until stdin is closed or a line whose
// command is "exit" is read, returning the process exit code.
func (s *Shell) Run() int {
	defer s.rl.Close()

	for {
		s.rl.SetPrompt(promptText(s.isTTY))
		line, err := s.rl.Readline()

		switch {
		case err == io.EOF:
			s.shutdown()
			return 0
		case err == readline.ErrInterrupt:
			continue
		case err != nil:
			log.Printf("readline: %v", err)
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// History records the invocation before it runs, so a line that
		// itself inspects history (e.g. `history`) observes its own entry.
		s.hist.Add(line)

		if s.dispatch(line) {
			s.shutdown()
			return 0
		}
	}
}

// dispatch tokenizes and runs one line. It returns true when the line should
// terminate the REPL.
func (s *Shell) dispatch(line string) (terminate bool) {
	toks := token.Tokenize(line)

	stages, err := parser.SplitStages(toks)
	if err != nil {
		fmt.Println(err.Error())
		return false
	}
	if len(stages) == 0 {
		return false
	}

	// "exit" is intercepted at the REPL boundary regardless of trailing
	// arguments or redirections, and only when it is the whole pipeline:
	// mid-pipeline it is just another (odd) command name.
	if len(stages) == 1 && stages[0][0] == "exit" {
		return true
	}

	plan := make(parser.PipelinePlan, 0, len(stages))
	for _, st := range stages {
		cmdToks, clause := parser.ExtractRedirection(st)
		if len(cmdToks) == 0 {
			// A stage that is nothing but a redirection clause has no
			// command to dispatch; skip it rather than invoke RunStage
			// with an empty Head.
			continue
		}
		plan = append(plan, parser.CommandPlan{
			Head:     cmdToks[0],
			Args:     cmdToks[1:],
			Redirect: clause,
		})
	}

	exec.Execute(s.env, s.hist, plan)
	return false
}

func (s *Shell) shutdown() {
	if s.histFile == "" {
		return
	}
	if err := s.hist.AppendFile(s.histFile); err != nil {
		log.Printf("history: could not save %s: %v", s.histFile, err)
	}
}
