package review

import "testing"

func TestPipelineFSM_HappyPath(t *testing.T) {
	fsm, err := newPipelineFSM()
	if err != nil {
		t.Fatalf("newPipelineFSM error: %v", err)
	}
	if fsm.Current() != StateInit {
		t.Fatalf("initial state = %q, want %q", fsm.Current(), StateInit)
	}

	steps := []struct {
		event string
		want  string
	}{
		{EventScan, StateScan},
		{EventGenerate, StateGenerate},
		{EventCandidate, StateValidate},
		{EventValid, StateMerge},
		{EventFinalize, StateDone},
	}
	for _, s := range steps {
		if err := fsm.Transition(s.event); err != nil {
			t.Fatalf("Transition(%s) error: %v", s.event, err)
		}
		if fsm.Current() != s.want {
			t.Fatalf("after %s state = %q, want %q", s.event, fsm.Current(), s.want)
		}
	}
}

func TestPipelineFSM_RetryFromValidate(t *testing.T) {
	fsm, err := newPipelineFSM()
	if err != nil {
		t.Fatalf("newPipelineFSM error: %v", err)
	}
	for _, e := range []string{EventScan, EventGenerate, EventCandidate} {
		if err := fsm.Transition(e); err != nil {
			t.Fatalf("Transition(%s) error: %v", e, err)
		}
	}
	if err := fsm.Transition(EventRetry); err != nil {
		t.Fatalf("Transition(retry) error: %v", err)
	}
	if fsm.Current() != StateGenerate {
		t.Errorf("state after retry = %q, want %q", fsm.Current(), StateGenerate)
	}
}

func TestPipelineFSM_RetryWithinGenerate(t *testing.T) {
	fsm, err := newPipelineFSM()
	if err != nil {
		t.Fatalf("newPipelineFSM error: %v", err)
	}
	for _, e := range []string{EventScan, EventGenerate} {
		if err := fsm.Transition(e); err != nil {
			t.Fatalf("Transition(%s) error: %v", e, err)
		}
	}
	// A generation failure retries without ever reaching validate.
	if err := fsm.Transition(EventRetry); err != nil {
		t.Fatalf("Transition(retry) error: %v", err)
	}
	if fsm.Current() != StateGenerate {
		t.Errorf("state after retry = %q, want %q", fsm.Current(), StateGenerate)
	}
}

func TestPipelineFSM_InvalidEvent(t *testing.T) {
	fsm, err := newPipelineFSM()
	if err != nil {
		t.Fatalf("newPipelineFSM error: %v", err)
	}
	if err := fsm.Transition(EventValid); err == nil {
		t.Error("expected error sending valid from init")
	}
	if fsm.Current() != StateInit {
		t.Errorf("state after rejected event = %q, want %q", fsm.Current(), StateInit)
	}
}

func TestPipelineFSM_FailIsTerminal(t *testing.T) {
	fsm, err := newPipelineFSM()
	if err != nil {
		t.Fatalf("newPipelineFSM error: %v", err)
	}
	for _, e := range []string{EventScan, EventGenerate, EventFail} {
		if err := fsm.Transition(e); err != nil {
			t.Fatalf("Transition(%s) error: %v", e, err)
		}
	}
	if fsm.Current() != StateFailed {
		t.Fatalf("state = %q, want %q", fsm.Current(), StateFailed)
	}
	if err := fsm.Transition(EventRetry); err == nil {
		t.Error("expected error sending retry from failed")
	}
}
