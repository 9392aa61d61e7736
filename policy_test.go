// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package portfsm_test

import (
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/portfsm"
)

func TestCondPolicy2FillPushDrainRoundTrip(t *testing.T) {
	fsm := portfsm.NewFSM2()
	policy := portfsm.NewCondPolicy2[string](fsm.Lock())
	fsm.SetPolicy(policy)

	policy.PutSource("hello")
	if err := fsm.DoFill(""); err != nil {
		t.Fatalf("DoFill: %v", err)
	}
	if err := fsm.DoPush(""); err != nil {
		t.Fatalf("DoPush: %v", err)
	}
	if err := fsm.DoDrain(""); err != nil {
		t.Fatalf("DoDrain: %v", err)
	}
	if got := policy.TakeSink(); got != "hello" {
		t.Fatalf("TakeSink: got %q, want %q", got, "hello")
	}
}

// TestCondPolicy2WaitBlocksUntilNotified exercises the Policy contract
// directly (§4.4): on_source_wait must release the lock, block, and
// re-acquire it only after notify_source signals — independent of
// whatever the FSM driver does with the result.
func TestCondPolicy2WaitBlocksUntilNotified(t *testing.T) {
	fsm := portfsm.NewFSM2()
	policy := portfsm.NewCondPolicy2[int](fsm.Lock())
	lock := fsm.Lock()

	woke := make(chan struct{})
	lock.Lock()
	go func() {
		policy.OnSourceWait(lock)
		lock.Unlock()
		close(woke)
	}()

	select {
	case <-woke:
		t.Fatal("OnSourceWait returned before NotifySource")
	case <-time.After(20 * time.Millisecond):
	}

	lock.Lock()
	policy.NotifySource(lock)
	lock.Unlock()

	select {
	case <-woke:
	case <-time.After(time.Second):
		t.Fatal("OnSourceWait never woke after NotifySource")
	}
}

func TestCondPolicy3MoveCompactsTowardSink(t *testing.T) {
	var mu sync.Mutex
	policy := portfsm.NewCondPolicy3[int](&mu)

	policy.PutSource(7)
	policy.OnSourceMove(&mu)
	if got := policy.TakeSink(); got != 7 {
		t.Fatalf("TakeSink after single-item move: got %d, want 7", got)
	}
}

func TestSpinPolicy2FillPushDrainRoundTrip(t *testing.T) {
	fsm := portfsm.NewFSM2()
	policy := portfsm.NewSpinPolicy2[string]()
	fsm.SetPolicy(policy)

	policy.PutSource("spin")
	if err := fsm.DoFill(""); err != nil {
		t.Fatalf("DoFill: %v", err)
	}
	if err := fsm.DoPush(""); err != nil {
		t.Fatalf("DoPush: %v", err)
	}
	if err := fsm.DoDrain(""); err != nil {
		t.Fatalf("DoDrain: %v", err)
	}
	if got := policy.TakeSink(); got != "spin" {
		t.Fatalf("TakeSink: got %q, want %q", got, "spin")
	}
}

// TestSpinPolicy2WaitWakesOnNotify exercises the busy-wait contract
// directly: OnSourceWait must release the lock, spin on the ready flag,
// and return only after NotifySource sets it.
func TestSpinPolicy2WaitWakesOnNotify(t *testing.T) {
	var mu sync.Mutex
	policy := portfsm.NewSpinPolicy2[int]()

	woke := make(chan struct{})
	mu.Lock()
	go func() {
		policy.OnSourceWait(&mu)
		mu.Unlock()
		close(woke)
	}()

	select {
	case <-woke:
		t.Fatal("OnSourceWait returned before NotifySource")
	case <-time.After(20 * time.Millisecond):
	}

	mu.Lock()
	policy.NotifySource(&mu)
	mu.Unlock()

	select {
	case <-woke:
	case <-time.After(time.Second):
		t.Fatal("OnSourceWait never woke after NotifySource")
	}
}
