// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package portfsm

// State2 is the port state alphabet for the two-stage pipe: one source
// slot and one sink slot, no middle slot. Ordinal equals the binary
// encoding, MSB→LSB = (source, sink).
type State2 uint8

const (
	// St00 is source empty, sink empty — the initial state.
	St00 State2 = iota
	// St01 is source empty, sink full.
	St01
	// St10 is source full, sink empty.
	St10
	// St11 is source full, sink full.
	St11
	// St2Error is the error sentinel. The driver commits it as the state
	// when an event is illegal in the current state, and every event
	// other than shutdown keeps the FSM in it.
	St2Error
	// St2Done is the done sentinel.
	St2Done

	state2Count = int(St2Done) + 1
)

// String returns the stable, spec-named identifier for s.
func (s State2) String() string {
	switch s {
	case St00:
		return "st_00"
	case St01:
		return "st_01"
	case St10:
		return "st_10"
	case St11:
		return "st_11"
	case St2Error:
		return "error"
	case St2Done:
		return "done"
	default:
		return "state2(?)"
	}
}

// State3 is the port state alphabet for the three-stage pipe: a
// source slot, a middle slot, and a sink slot. Ordinal equals the
// binary encoding, MSB→LSB = (source, middle, sink).
type State3 uint8

const (
	// St000 is source empty, middle empty, sink empty — the initial
	// state.
	St000 State3 = iota
	// St001 is sink full only.
	St001
	// St010 is middle full only.
	St010
	// St011 is middle and sink full.
	St011
	// St100 is source full only.
	St100
	// St101 is source and sink full.
	St101
	// St110 is source and middle full.
	St110
	// St111 is all three slots full.
	St111
	// St3Error is the error sentinel.
	St3Error
	// St3Done is the done sentinel.
	St3Done

	state3Count = int(St3Done) + 1
)

// String returns the stable, spec-named identifier for s.
func (s State3) String() string {
	switch s {
	case St000:
		return "st_000"
	case St001:
		return "st_001"
	case St010:
		return "st_010"
	case St011:
		return "st_011"
	case St100:
		return "st_100"
	case St101:
		return "st_101"
	case St110:
		return "st_110"
	case St111:
		return "st_111"
	case St3Error:
		return "error"
	case St3Done:
		return "done"
	default:
		return "state3(?)"
	}
}
