// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package portfsm

import (
	"sync"

	"code.hybscloud.com/atomix"
	"go.uber.org/zap"
)

// FSM2 is the two-stage port state machine: one source slot, one sink
// slot, no middle slot. The zero value is not usable — construct with
// [NewFSM2].
type FSM2 struct {
	mu    sync.Mutex
	state State2
	// nextState is scratch space per §3's Data Model, computed once at
	// the top of event() and committed to state in the driver's step 5.
	nextState State2
	policy    Policy
	debug     atomix.Bool
	logger    *zap.Logger
}

// NewFSM2 creates a two-stage FSM in its initial state (st_00, all
// slots empty) with a pass-through policy and a no-op logger. Call
// [FSM2.SetPolicy] before first use for anything beyond property
// testing of the transition tables themselves.
func NewFSM2() *FSM2 {
	return &FSM2{
		state:  St00,
		policy: PassThroughPolicy{},
		logger: zap.NewNop(),
	}
}

// Lock returns the FSM's internal mutex so a Policy implementation
// (e.g. [CondPolicy2]) can bind its condition variables to it before
// being installed with [FSM2.SetPolicy].
func (f *FSM2) Lock() *sync.Mutex { return &f.mu }

// SetPolicy installs the action policy. Not safe to call concurrently
// with in-flight do_* calls.
func (f *FSM2) SetPolicy(p Policy) { f.policy = p }

// SetLogger installs the diagnostic trace sink.
func (f *FSM2) SetLogger(l *zap.Logger) { f.logger = l }

// EnableDebug turns on unconditional diagnostic tracing.
func (f *FSM2) EnableDebug() { f.debug.StoreRelease(true) }

// DisableDebug turns off unconditional diagnostic tracing; tracing
// still occurs for calls that pass a non-empty message.
func (f *FSM2) DisableDebug() { f.debug.StoreRelease(false) }

// State returns the current committed state.
func (f *FSM2) State() State2 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// NextState returns the scratch next-state value from the most recent
// event() call.
func (f *FSM2) NextState() State2 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.nextState
}

// SetState forcibly sets the current state. For testing only (§6).
func (f *FSM2) SetState(s State2) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = s
}

// SetNextState forcibly sets the scratch next-state. For testing only
// (§6).
func (f *FSM2) SetNextState(s State2) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextState = s
}

// DoFill issues source_fill. msg is an optional diagnostic message;
// when non-empty it forces a trace regardless of the debug flag.
func (f *FSM2) DoFill(msg string) error { return f.event(EventSourceFill, msg) }

// DoPush issues source_push.
func (f *FSM2) DoPush(msg string) error { return f.event(EventSourcePush, msg) }

// DoDrain issues sink_drain.
func (f *FSM2) DoDrain(msg string) error { return f.event(EventSinkDrain, msg) }

// DoPull issues sink_pull.
func (f *FSM2) DoPull(msg string) error { return f.event(EventSinkPull, msg) }

// Shutdown issues the reserved shutdown event. Per §9 this is
// intentionally a no-op: the tables route it to error from every
// state, but the driver intercepts and suppresses the transition.
func (f *FSM2) Shutdown(msg string) error { return f.event(EventShutdown, msg) }

// event implements the driver's 8-step algorithm (§4.2) for the
// two-stage tables. The mutex is held for the entire call; wait
// actions release and re-acquire it internally via the policy.
func (f *FSM2) event(e Event, msg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	trace := shouldTrace(f.debug.LoadAcquire(), msg)
	var seq uint64
	if trace {
		seq = nextEventSeq()
	}

	current := f.state
	f.nextState = nextTable2[current][e]
	exitAction := exitTable2[current][e]
	entryAction := entryTable2[f.nextState][e]

	if trace {
		emitTrace(f.logger, seq, phaseStart, msg, e, current.String(), exitAction.String(), entryAction.String(), f.nextState.String())
	}

	// shutdown is a reserved no-op; state is never mutated for it even
	// though the tables above route it to error (§4.2 step 2, §9).
	if e == EventShutdown {
		return nil
	}

	if trace {
		emitTrace(f.logger, seq, phasePreExit, msg, e, current.String(), exitAction.String(), entryAction.String(), f.nextState.String())
	}
	if runAction(f.policy, &f.mu, exitAction, "exit", current.String(), e) {
		return nil // ac_return: unwind without further state change
	}
	if trace {
		emitTrace(f.logger, seq, phasePostExit, msg, e, current.String(), exitAction.String(), entryAction.String(), f.nextState.String())
	}

	// Commit (§4.2 step 5).
	f.state = f.nextState

	// Re-read the entry action from the now-committed state (§4.2 step
	// 6); the policy's wait callbacks may have observed concurrent
	// progress on this FSM while the mutex was released.
	entryAction = entryTable2[f.state][e]

	if trace {
		emitTrace(f.logger, seq, phasePreEntry, msg, e, current.String(), exitAction.String(), entryAction.String(), f.state.String())
	}
	if runAction(f.policy, &f.mu, entryAction, "entry", f.state.String(), e) {
		return nil
	}
	if entryAction == ActionSourceMove || entryAction == ActionSinkMove {
		f.state = collapseTwo(f.state)
	}
	if trace {
		emitTrace(f.logger, seq, phasePostEntry, msg, e, current.String(), exitAction.String(), entryAction.String(), f.state.String())
	}

	if f.state == St2Error {
		return ErrIllegalTransition
	}
	return nil
}
