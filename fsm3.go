// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package portfsm

import (
	"sync"

	"code.hybscloud.com/atomix"
	"go.uber.org/zap"
)

// FSM3 is the three-stage port state machine: a source slot, a middle
// slot, and a sink slot. The zero value is not usable — construct with
// [NewFSM3].
type FSM3 struct {
	mu        sync.Mutex
	state     State3
	nextState State3
	policy    Policy
	debug     atomix.Bool
	logger    *zap.Logger
}

// NewFSM3 creates a three-stage FSM in its initial state (st_000, all
// slots empty) with a pass-through policy and a no-op logger.
func NewFSM3() *FSM3 {
	return &FSM3{
		state:  St000,
		policy: PassThroughPolicy{},
		logger: zap.NewNop(),
	}
}

// Lock returns the FSM's internal mutex so a Policy implementation
// (e.g. [CondPolicy3]) can bind its condition variables to it before
// being installed with [FSM3.SetPolicy].
func (f *FSM3) Lock() *sync.Mutex { return &f.mu }

// SetPolicy installs the action policy.
func (f *FSM3) SetPolicy(p Policy) { f.policy = p }

// SetLogger installs the diagnostic trace sink.
func (f *FSM3) SetLogger(l *zap.Logger) { f.logger = l }

// EnableDebug turns on unconditional diagnostic tracing.
func (f *FSM3) EnableDebug() { f.debug.StoreRelease(true) }

// DisableDebug turns off unconditional diagnostic tracing.
func (f *FSM3) DisableDebug() { f.debug.StoreRelease(false) }

// State returns the current committed state.
func (f *FSM3) State() State3 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// NextState returns the scratch next-state value from the most recent
// event() call.
func (f *FSM3) NextState() State3 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.nextState
}

// SetState forcibly sets the current state. For testing only (§6).
func (f *FSM3) SetState(s State3) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = s
}

// SetNextState forcibly sets the scratch next-state. For testing only
// (§6).
func (f *FSM3) SetNextState(s State3) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextState = s
}

// DoFill issues source_fill.
func (f *FSM3) DoFill(msg string) error { return f.event(EventSourceFill, msg) }

// DoPush issues source_push.
func (f *FSM3) DoPush(msg string) error { return f.event(EventSourcePush, msg) }

// DoDrain issues sink_drain.
func (f *FSM3) DoDrain(msg string) error { return f.event(EventSinkDrain, msg) }

// DoPull issues sink_pull.
func (f *FSM3) DoPull(msg string) error { return f.event(EventSinkPull, msg) }

// Shutdown issues the reserved shutdown event; a no-op by design (§9).
func (f *FSM3) Shutdown(msg string) error { return f.event(EventShutdown, msg) }

// event implements the driver's 8-step algorithm (§4.2) for the
// three-stage tables.
func (f *FSM3) event(e Event, msg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	trace := shouldTrace(f.debug.LoadAcquire(), msg)
	var seq uint64
	if trace {
		seq = nextEventSeq()
	}

	current := f.state
	f.nextState = nextTable3[current][e]
	exitAction := exitTable3[current][e]
	entryAction := entryTable3[f.nextState][e]

	if trace {
		emitTrace(f.logger, seq, phaseStart, msg, e, current.String(), exitAction.String(), entryAction.String(), f.nextState.String())
	}

	if e == EventShutdown {
		return nil
	}

	if trace {
		emitTrace(f.logger, seq, phasePreExit, msg, e, current.String(), exitAction.String(), entryAction.String(), f.nextState.String())
	}
	if runAction(f.policy, &f.mu, exitAction, "exit", current.String(), e) {
		return nil
	}
	if trace {
		emitTrace(f.logger, seq, phasePostExit, msg, e, current.String(), exitAction.String(), entryAction.String(), f.nextState.String())
	}

	f.state = f.nextState

	entryAction = entryTable3[f.state][e]

	if trace {
		emitTrace(f.logger, seq, phasePreEntry, msg, e, current.String(), exitAction.String(), entryAction.String(), f.state.String())
	}
	if runAction(f.policy, &f.mu, entryAction, "entry", f.state.String(), e) {
		return nil
	}
	if entryAction == ActionSourceMove || entryAction == ActionSinkMove {
		f.state = collapseThree(f.state)
	}
	if trace {
		emitTrace(f.logger, seq, phasePostEntry, msg, e, current.String(), exitAction.String(), entryAction.String(), f.state.String())
	}

	if f.state == St3Error {
		return ErrIllegalTransition
	}
	return nil
}
