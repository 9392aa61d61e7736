// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package portfsm

import "sync"

// CondPolicy2 is a blocking, sync.Cond-based reference Policy for the
// two-stage FSM. It owns the two physical slots (source, sink) the
// CORE SPECIFICATION keeps out of the driver itself (§1, §5) — the
// direct generalization of the teacher's own "Pipeline Stage" usage
// pattern (lfq's doc.go), except parking the goroutine on a condition
// variable instead of polling with iox.Backoff, since this driver's
// wait actions must actually block the caller (§4.4).
//
// Construct with [NewCondPolicy2] bound to an [FSM2]'s mutex (via
// [FSM2.Lock]), then install with [FSM2.SetPolicy].
type CondPolicy2[T any] struct {
	lock       *sync.Mutex
	sourceCond *sync.Cond
	sinkCond   *sync.Cond

	source, sink         T
	sourceFull, sinkFull bool
}

// NewCondPolicy2 creates a CondPolicy2 bound to lock, which must be the
// same mutex the owning FSM2 locks for the duration of every event().
func NewCondPolicy2[T any](lock *sync.Mutex) *CondPolicy2[T] {
	return &CondPolicy2[T]{
		lock:       lock,
		sourceCond: sync.NewCond(lock),
		sinkCond:   sync.NewCond(lock),
	}
}

// PutSource stages v in the source slot. Call before FSM2.DoFill, never
// while the FSM's mutex is already held (e.g. not from inside a Policy
// callback).
func (p *CondPolicy2[T]) PutSource(v T) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.source = v
	p.sourceFull = true
}

// TakeSink removes and returns the item staged in the sink slot. Call
// after FSM2.DoDrain.
func (p *CondPolicy2[T]) TakeSink() T {
	p.lock.Lock()
	defer p.lock.Unlock()
	v := p.sink
	var zero T
	p.sink = zero
	p.sinkFull = false
	return v
}

func (p *CondPolicy2[T]) move() {
	if p.sourceFull && !p.sinkFull {
		p.sink, p.source = p.source, p.sink
		p.sinkFull, p.sourceFull = true, false
	}
}

func (p *CondPolicy2[T]) OnSourceMove(*sync.Mutex) { p.move() }
func (p *CondPolicy2[T]) OnSinkMove(*sync.Mutex)   { p.move() }

func (p *CondPolicy2[T]) OnSourceWait(*sync.Mutex) { p.sourceCond.Wait() }
func (p *CondPolicy2[T]) OnSinkWait(*sync.Mutex)   { p.sinkCond.Wait() }

func (p *CondPolicy2[T]) NotifySource(*sync.Mutex) { p.sourceCond.Signal() }
func (p *CondPolicy2[T]) NotifySink(*sync.Mutex)   { p.sinkCond.Signal() }

func (p *CondPolicy2[T]) OnACReturn(*sync.Mutex) {}

var _ Policy = (*CondPolicy2[int])(nil)

// CondPolicy3 is the three-slot (source, middle, sink) analogue of
// CondPolicy2 for the three-stage FSM.
type CondPolicy3[T any] struct {
	lock       *sync.Mutex
	sourceCond *sync.Cond
	sinkCond   *sync.Cond

	source, middle, sink             T
	sourceFull, middleFull, sinkFull bool
}

// NewCondPolicy3 creates a CondPolicy3 bound to lock, which must be the
// same mutex the owning FSM3 locks for the duration of every event().
func NewCondPolicy3[T any](lock *sync.Mutex) *CondPolicy3[T] {
	return &CondPolicy3[T]{
		lock:       lock,
		sourceCond: sync.NewCond(lock),
		sinkCond:   sync.NewCond(lock),
	}
}

// PutSource stages v in the source slot. Call before FSM3.DoFill.
func (p *CondPolicy3[T]) PutSource(v T) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.source = v
	p.sourceFull = true
}

// TakeSink removes and returns the item staged in the sink slot. Call
// after FSM3.DoDrain.
func (p *CondPolicy3[T]) TakeSink() T {
	p.lock.Lock()
	defer p.lock.Unlock()
	v := p.sink
	var zero T
	p.sink = zero
	p.sinkFull = false
	return v
}

// move compacts occupied slots against the sink end, matching the
// next-state table's own collapse of a partially filled pipe (§4.3):
// whichever slots are occupied retain their relative (FIFO) order but
// are packed into the slots nearest the sink with no gaps left
// between them, mirroring the occupancy pattern the transition tables
// already compute for source_move/sink_move.
func (p *CondPolicy3[T]) move() {
	var items []T
	if p.sourceFull {
		items = append(items, p.source)
	}
	if p.middleFull {
		items = append(items, p.middle)
	}
	if p.sinkFull {
		items = append(items, p.sink)
	}

	var zero T
	p.source, p.middle, p.sink = zero, zero, zero
	p.sourceFull, p.middleFull, p.sinkFull = false, false, false

	slots := [3]*T{&p.source, &p.middle, &p.sink}
	fulls := [3]*bool{&p.sourceFull, &p.middleFull, &p.sinkFull}
	offset := 3 - len(items)
	for i, v := range items {
		*slots[offset+i] = v
		*fulls[offset+i] = true
	}
}

func (p *CondPolicy3[T]) OnSourceMove(*sync.Mutex) { p.move() }
func (p *CondPolicy3[T]) OnSinkMove(*sync.Mutex)   { p.move() }

func (p *CondPolicy3[T]) OnSourceWait(*sync.Mutex) { p.sourceCond.Wait() }
func (p *CondPolicy3[T]) OnSinkWait(*sync.Mutex)   { p.sinkCond.Wait() }

func (p *CondPolicy3[T]) NotifySource(*sync.Mutex) { p.sourceCond.Signal() }
func (p *CondPolicy3[T]) NotifySink(*sync.Mutex)   { p.sinkCond.Signal() }

func (p *CondPolicy3[T]) OnACReturn(*sync.Mutex) {}

var _ Policy = (*CondPolicy3[int])(nil)
