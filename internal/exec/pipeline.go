package exec

import (
	"io"

	"github.com/kvalheim/nushell/internal/history"
	"github.com/kvalheim/nushell/internal/parser"
)

// Execute wires every stage of plan together — allocating an inter-stage
// byte channel between each pair of adjacent stages, connecting each
// stage's stdin/stdout/stderr per its role — and blocks until every stage
// (and any file sink it opened) has reached a terminal state. Stages run
// concurrently once wired; Execute returns only after all of them have
// signalled completion, so the caller never reprints its prompt early.
func Execute(env Environment, hist *history.Store, plan parser.PipelinePlan) {
	n := len(plan)
	if n == 0 {
		return
	}

	readers := make([]io.Reader, n)
	writers := make([]io.WriteCloser, n)
	for i := 0; i < n-1; i++ {
		pr, pw := io.Pipe()
		readers[i+1] = pr
		writers[i] = pw
	}

	dones := make([]Done, n)
	for i, stage := range plan {
		dones[i] = RunStage(env, hist, stage, i == 0, i == n-1, readers[i], writers[i])
	}

	for _, d := range dones {
		<-d
	}
}
