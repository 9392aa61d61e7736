// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package portfsm

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

// spinThenBackoff spins on spin.Wait for a short run before escalating to
// iox.Backoff, mirroring the two-tier idiom the teacher's own stress
// tests use when polling a lock-free queue under contention
// (compact_seq_test.go): cheap spinning while the wait is expected to be
// short, backing off once it clearly isn't.
func spinThenBackoff(ready func() bool) {
	sw := spin.Wait{}
	for i := 0; i < 64; i++ {
		if ready() {
			return
		}
		sw.Once()
	}
	bo := iox.Backoff{}
	for !ready() {
		bo.Wait()
	}
}

// SpinPolicy2 is a non-blocking reference Policy for the two-stage FSM.
// Where CondPolicy2 parks the caller on a sync.Cond, SpinPolicy2 releases
// the FSM's mutex and busy-waits on an atomix.Bool ready flag using
// spin.Wait, the same escalating-backoff idiom the teacher's lock-free
// queues use in their own Enqueue/Dequeue hot loops (mpmc.go). Useful
// when the caller's own scheduler makes parking expensive relative to a
// short expected wait.
type SpinPolicy2[T any] struct {
	sourceReady atomix.Bool
	sinkReady   atomix.Bool

	source, sink         T
	sourceFull, sinkFull bool
}

// NewSpinPolicy2 creates an unbound SpinPolicy2. Unlike CondPolicy2 it
// does not need the FSM's mutex at construction time; each wait callback
// receives it from the driver.
func NewSpinPolicy2[T any]() *SpinPolicy2[T] {
	return &SpinPolicy2[T]{}
}

// PutSource stages v in the source slot. Call before FSM2.DoFill.
func (p *SpinPolicy2[T]) PutSource(v T) {
	p.source = v
	p.sourceFull = true
}

// TakeSink removes and returns the item staged in the sink slot. Call
// after FSM2.DoDrain.
func (p *SpinPolicy2[T]) TakeSink() T {
	v := p.sink
	var zero T
	p.sink = zero
	p.sinkFull = false
	return v
}

func (p *SpinPolicy2[T]) move() {
	if p.sourceFull && !p.sinkFull {
		p.sink, p.source = p.source, p.sink
		p.sinkFull, p.sourceFull = true, false
	}
}

func (p *SpinPolicy2[T]) OnSourceMove(*sync.Mutex) { p.move() }
func (p *SpinPolicy2[T]) OnSinkMove(*sync.Mutex)   { p.move() }

func (p *SpinPolicy2[T]) OnSourceWait(lock *sync.Mutex) {
	lock.Unlock()
	spinThenBackoff(p.sourceReady.LoadAcquire)
	p.sourceReady.StoreRelease(false)
	lock.Lock()
}

func (p *SpinPolicy2[T]) OnSinkWait(lock *sync.Mutex) {
	lock.Unlock()
	spinThenBackoff(p.sinkReady.LoadAcquire)
	p.sinkReady.StoreRelease(false)
	lock.Lock()
}

func (p *SpinPolicy2[T]) NotifySource(*sync.Mutex) { p.sourceReady.StoreRelease(true) }
func (p *SpinPolicy2[T]) NotifySink(*sync.Mutex)   { p.sinkReady.StoreRelease(true) }

func (p *SpinPolicy2[T]) OnACReturn(*sync.Mutex) {}

var _ Policy = (*SpinPolicy2[int])(nil)

// SpinPolicy3 is the three-slot analogue of SpinPolicy2 for the
// three-stage FSM.
type SpinPolicy3[T any] struct {
	sourceReady atomix.Bool
	sinkReady   atomix.Bool

	source, middle, sink             T
	sourceFull, middleFull, sinkFull bool
}

// NewSpinPolicy3 creates an unbound SpinPolicy3.
func NewSpinPolicy3[T any]() *SpinPolicy3[T] {
	return &SpinPolicy3[T]{}
}

// PutSource stages v in the source slot. Call before FSM3.DoFill.
func (p *SpinPolicy3[T]) PutSource(v T) {
	p.source = v
	p.sourceFull = true
}

// TakeSink removes and returns the item staged in the sink slot. Call
// after FSM3.DoDrain.
func (p *SpinPolicy3[T]) TakeSink() T {
	v := p.sink
	var zero T
	p.sink = zero
	p.sinkFull = false
	return v
}

// move mirrors CondPolicy3.move: pack occupied slots against the sink
// end, preserving relative order.
func (p *SpinPolicy3[T]) move() {
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

func (p *SpinPolicy3[T]) OnSourceMove(*sync.Mutex) { p.move() }
func (p *SpinPolicy3[T]) OnSinkMove(*sync.Mutex)   { p.move() }

func (p *SpinPolicy3[T]) OnSourceWait(lock *sync.Mutex) {
	lock.Unlock()
	spinThenBackoff(p.sourceReady.LoadAcquire)
	p.sourceReady.StoreRelease(false)
	lock.Lock()
}

func (p *SpinPolicy3[T]) OnSinkWait(lock *sync.Mutex) {
	lock.Unlock()
	spinThenBackoff(p.sinkReady.LoadAcquire)
	p.sinkReady.StoreRelease(false)
	lock.Lock()
}

func (p *SpinPolicy3[T]) NotifySource(*sync.Mutex) { p.sourceReady.StoreRelease(true) }
func (p *SpinPolicy3[T]) NotifySink(*sync.Mutex)   { p.sinkReady.StoreRelease(true) }

func (p *SpinPolicy3[T]) OnACReturn(*sync.Mutex) {}

var _ Policy = (*SpinPolicy3[int])(nil)
