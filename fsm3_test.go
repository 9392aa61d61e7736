// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package portfsm_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/portfsm"
)

func TestFSM3FillPushPullDrain(t *testing.T) {
	fsm := portfsm.NewFSM3()

	if err := fsm.DoFill(""); err != nil {
		t.Fatalf("DoFill: %v", err)
	}
	if got := fsm.State(); got != portfsm.St100 {
		t.Fatalf("after fill: got %v, want st_100", got)
	}

	if err := fsm.DoPush(""); err != nil {
		t.Fatalf("DoPush: %v", err)
	}
	if got := fsm.State(); got != portfsm.St001 {
		t.Fatalf("after push: got %v, want st_001 (source falls straight through to sink)", got)
	}

	if err := fsm.DoPull(""); err != nil {
		t.Fatalf("DoPull: %v", err)
	}
	if got := fsm.State(); got != portfsm.St001 {
		t.Fatalf("after pull: got %v, want st_001 unchanged", got)
	}

	if err := fsm.DoDrain(""); err != nil {
		t.Fatalf("DoDrain: %v", err)
	}
	if got := fsm.State(); got != portfsm.St000 {
		t.Fatalf("after drain: got %v, want st_000", got)
	}
}

func TestFSM3DoubleFillIsIllegal(t *testing.T) {
	fsm := portfsm.NewFSM3()

	if err := fsm.DoFill(""); err != nil {
		t.Fatalf("first DoFill: %v", err)
	}
	if got := fsm.State(); got != portfsm.St100 {
		t.Fatalf("after first fill: got %v, want st_100", got)
	}

	err := fsm.DoFill("")
	if !errors.Is(err, portfsm.ErrIllegalTransition) {
		t.Fatalf("second DoFill: got %v, want ErrIllegalTransition", err)
	}
	if got := fsm.State(); got != portfsm.St3Error {
		t.Fatalf("after illegal fill: got %v, want error", got)
	}
}

func TestFSM3PipelinedFillPushFillPushPullDrainPullDrain(t *testing.T) {
	fsm := portfsm.NewFSM3()

	steps := []struct {
		do   func(string) error
		want portfsm.State3
	}{
		{fsm.DoFill, portfsm.St100},
		{fsm.DoPush, portfsm.St001},
		{fsm.DoFill, portfsm.St101},
		{fsm.DoPush, portfsm.St011},
		{fsm.DoPull, portfsm.St011},
		{fsm.DoDrain, portfsm.St010},
		{fsm.DoPull, portfsm.St001},
		{fsm.DoDrain, portfsm.St000},
	}
	for i, step := range steps {
		if err := step.do(""); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if got := fsm.State(); got != step.want {
			t.Fatalf("step %d: got %v, want %v", i, got, step.want)
		}
	}
}

func TestFSM3ShutdownIsNeutral(t *testing.T) {
	fsm := portfsm.NewFSM3()
	if err := fsm.DoFill(""); err != nil {
		t.Fatalf("DoFill: %v", err)
	}
	before := fsm.State()
	if err := fsm.Shutdown(""); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if got := fsm.State(); got != before {
		t.Fatalf("shutdown must be a no-op: got %v, want %v", got, before)
	}
}

func TestFSM3CondPolicyFillDrainRoundTrip(t *testing.T) {
	fsm := portfsm.NewFSM3()
	policy := portfsm.NewCondPolicy3[int](fsm.Lock())
	fsm.SetPolicy(policy)

	policy.PutSource(42)
	if err := fsm.DoFill(""); err != nil {
		t.Fatalf("DoFill: %v", err)
	}
	if err := fsm.DoPush(""); err != nil {
		t.Fatalf("DoPush: %v", err)
	}
	if got := fsm.State(); got != portfsm.St001 {
		t.Fatalf("got %v, want st_001", got)
	}
	if err := fsm.DoDrain(""); err != nil {
		t.Fatalf("DoDrain: %v", err)
	}
	if got := policy.TakeSink(); got != 42 {
		t.Fatalf("TakeSink: got %d, want 42", got)
	}
}
