// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package portfsm

import (
	"testing"

	"pgregory.net/rapid"
)

var allEvents = []Event{
	EventSourceFill, EventSourcePush, EventSinkDrain, EventSinkPull, EventShutdown,
}

// TestPropertyTableSanityTwoStage is P2: the error and done rows route
// every event to error.
func TestPropertyTableSanityTwoStage(t *testing.T) {
	for _, s := range []State2{St2Error, St2Done} {
		for _, e := range allEvents {
			if got := nextTable2[s][e]; got != St2Error {
				t.Fatalf("nextTable2[%v][%v] = %v, want error", s, e, got)
			}
		}
	}
}

// TestPropertyTableSanityThreeStage is P2 for the three-stage tables.
func TestPropertyTableSanityThreeStage(t *testing.T) {
	for _, s := range []State3{St3Error, St3Done} {
		for _, e := range allEvents {
			if got := nextTable3[s][e]; got != St3Error {
				t.Fatalf("nextTable3[%v][%v] = %v, want error", s, e, got)
			}
		}
	}
}

// TestPropertyDeterminismTwoStage is P1: replaying the same event
// sequence from the same initial state always visits the same states.
func TestPropertyDeterminismTwoStage(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 24).Draw(t, "n")
		events := make([]Event, n)
		for i := range events {
			events[i] = rapid.SampledFrom(allEvents).Draw(t, "event")
		}

		run := func() []State2 {
			fsm := NewFSM2()
			trail := make([]State2, 0, n)
			for _, e := range events {
				_ = fsm.event(e, "")
				trail = append(trail, fsm.State())
			}
			return trail
		}

		first := run()
		second := run()
		if len(first) != len(second) {
			t.Fatalf("trail length mismatch: %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("step %d: %v vs %v for the same event sequence", i, first[i], second[i])
			}
		}
	})
}

// TestPropertyMoveCollapseTwoStage is P4 for the two-stage FSM: after
// any entry-phase source_move/sink_move, state must be st_01.
func TestPropertyMoveCollapseTwoStage(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		fsm := NewFSM2()
		n := rapid.IntRange(1, 16).Draw(t, "n")
		for range n {
			e := rapid.SampledFrom(allEvents).Draw(t, "event")

			current := fsm.state
			nextState := nextTable2[current][e]
			entryAction := entryTable2[nextState][e]

			_ = fsm.event(e, "")

			if entryAction == ActionSourceMove || entryAction == ActionSinkMove {
				if fsm.state != St01 {
					t.Fatalf("after move-collapse from %v on %v: state = %v, want st_01", current, e, fsm.state)
				}
			}
		}
	})
}

// TestPropertyMoveCollapseThreeStage is P4 for the three-stage FSM.
func TestPropertyMoveCollapseThreeStage(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		fsm := NewFSM3()
		n := rapid.IntRange(1, 16).Draw(t, "n")
		for range n {
			e := rapid.SampledFrom(allEvents).Draw(t, "event")

			current := fsm.state
			nextState := nextTable3[current][e]
			entryAction := entryTable3[nextState][e]

			_ = fsm.event(e, "")

			if entryAction == ActionSourceMove || entryAction == ActionSinkMove {
				switch nextState {
				case St010, St100:
					if fsm.state != St001 {
						t.Fatalf("after move-collapse from %v on %v: state = %v, want st_001", current, e, fsm.state)
					}
				case St110, St101:
					if fsm.state != St011 {
						t.Fatalf("after move-collapse from %v on %v: state = %v, want st_011", current, e, fsm.state)
					}
				}
			}
		}
	})
}

// TestPropertyEntryActionRecomputedAfterCommit relates to the §8
// closing property: for every (state, event) pair, it checks that
// re-indexing entry_table by the final committed state after event()
// never yields a move action (the collapse is idempotent from the
// driver's point of view).
func TestPropertyEntryActionRecomputedAfterCommit(t *testing.T) {
	for s := State2(0); int(s) < state2Count; s++ {
		for _, e := range allEvents {
			fsm := NewFSM2()
			fsm.SetState(s)
			_ = fsm.event(e, "")

			finalEntryAction := entryTable2[fsm.state][e]
			if finalEntryAction == ActionSourceMove || finalEntryAction == ActionSinkMove {
				t.Fatalf("state=%v event=%v: committed state %v still maps to a move action; collapse did not converge", s, e, fsm.state)
			}
		}
	}
}

// TestPropertyEntryActionRecomputedAfterCommitThreeStage is the
// three-stage analogue of TestPropertyEntryActionRecomputedAfterCommit.
func TestPropertyEntryActionRecomputedAfterCommitThreeStage(t *testing.T) {
	for s := State3(0); int(s) < state3Count; s++ {
		for _, e := range allEvents {
			fsm := NewFSM3()
			fsm.SetState(s)
			_ = fsm.event(e, "")

			finalEntryAction := entryTable3[fsm.state][e]
			if finalEntryAction == ActionSourceMove || finalEntryAction == ActionSinkMove {
				t.Fatalf("state=%v event=%v: committed state %v still maps to a move action; collapse did not converge", s, e, fsm.state)
			}
		}
	}
}
