package review

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// Pipeline states for one review request.
const (
	StateInit     = "init"
	StateScan     = "scan"
	StateGenerate = "generate"
	StateValidate = "validate"
	StateMerge    = "merge"
	StateDone     = "done"
	StateFailed   = "failed"
)

// Pipeline events.
const (
	EventScan      = "scan"
	EventGenerate  = "generate"
	EventCandidate = "candidate"
	EventRetry     = "retry"
	EventValid     = "valid"
	EventFinalize  = "finalize"
	EventFail      = "fail"
)

type pipelineContext struct{}

// pipelineFSM enforces the valid transitions of the review pipeline:
// init -> scan -> generate -> validate -> merge -> done, with a retry edge
// from generate/validate back to generate and fail edges to failed.
type pipelineFSM struct {
	interpreter *statekit.Interpreter[pipelineContext]
}

func newPipelineFSM() (*pipelineFSM, error) {
	builder := statekit.NewMachine[pipelineContext]("review-pipeline").
		WithInitial(statekit.StateID(StateInit)).
		WithContext(pipelineContext{})

	builder.State(StateInit).
		On(EventScan).Target(StateScan).
		Done()

	builder.State(StateScan).
		On(EventGenerate).Target(StateGenerate).
		Done()

	builder.State(StateGenerate).
		On(EventCandidate).Target(StateValidate).
		On(EventRetry).Target(StateGenerate).
		On(EventFail).Target(StateFailed).
		Done()

	builder.State(StateValidate).
		On(EventValid).Target(StateMerge).
		On(EventRetry).Target(StateGenerate).
		On(EventFail).Target(StateFailed).
		Done()

	builder.State(StateMerge).
		On(EventFinalize).Target(StateDone).
		Done()

	builder.State(StateDone).Done()
	builder.State(StateFailed).Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("building pipeline state machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &pipelineFSM{interpreter: interpreter}, nil
}

// selfTransitions are the declared loops where an event legitimately leaves
// the machine in the same state.
var selfTransitions = map[string]map[string]bool{
	StateGenerate: {EventRetry: true},
}

// Transition sends an event and reports an error if the machine rejected it.
func (f *pipelineFSM) Transition(event string) error {
	before := f.Current()
	f.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	after := f.Current()

	if before != after {
		return nil
	}
	if selfTransitions[before][event] {
		return nil
	}
	return fmt.Errorf("event %q is not valid in pipeline state %q", event, before)
}

// Current returns the pipeline's current state.
func (f *pipelineFSM) Current() string {
	return string(f.interpreter.State().Value)
}
