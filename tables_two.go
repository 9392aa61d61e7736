// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package portfsm

// These tables are the authoritative specification of two-stage
// behaviour, reproduced verbatim. Do not "correct" apparently dead
// entries (e.g. entry actions indexed by a next-state value that no
// reachable transition ever produces) — see the package-level design
// notes; the CORE SPECIFICATION requires they be preserved exactly as
// given, including entries no reachable sequence ever exercises.

// nextTable2[state][event] is the two-stage next-state table.
var nextTable2 = [state2Count][eventCount]State2{
	St00: {EventSourceFill: St10, EventSourcePush: St00, EventSinkDrain: St2Error, EventSinkPull: St00, EventShutdown: St2Error},
	St01: {EventSourceFill: St11, EventSourcePush: St01, EventSinkDrain: St00, EventSinkPull: St01, EventShutdown: St2Error},
	St10: {EventSourceFill: St2Error, EventSourcePush: St01, EventSinkDrain: St2Error, EventSinkPull: St01, EventShutdown: St2Error},
	St11: {EventSourceFill: St2Error, EventSourcePush: St11, EventSinkDrain: St10, EventSinkPull: St11, EventShutdown: St2Error},
	St2Error: {
		EventSourceFill: St2Error, EventSourcePush: St2Error, EventSinkDrain: St2Error,
		EventSinkPull: St2Error, EventShutdown: St2Error,
	},
	St2Done: {
		EventSourceFill: St2Error, EventSourcePush: St2Error, EventSinkDrain: St2Error,
		EventSinkPull: St2Error, EventShutdown: St2Error,
	},
}

// exitTable2[state][event] is the two-stage exit-action table. All
// entries are ActionNone except the four overrides below.
var exitTable2 = [state2Count][eventCount]Action{
	St00: {EventSinkPull: ActionSinkWait},
	St10: {EventSourcePush: ActionSourceMove, EventSinkPull: ActionSinkMove},
	St11: {EventSourcePush: ActionSourceWait},
}

// entryTable2[state][event] is the two-stage entry-action table,
// indexed by the *next* state and the current event (see the driver's
// event method). All entries are ActionNone except the six overrides
// below.
var entryTable2 = [state2Count][eventCount]Action{
	St00: {EventSinkDrain: ActionNotifySource},
	St10: {
		EventSourceFill: ActionNotifySink,
		EventSourcePush: ActionSourceMove,
		EventSinkDrain:  ActionNotifySource,
		EventSinkPull:   ActionSinkMove,
	},
	St11: {EventSourceFill: ActionNotifySink},
}

// collapseTwo applies the two-stage post-move state collapse (§4.3):
// after any entry-phase source_move/sink_move, the state unconditionally
// normalizes to St01, the only valid post-move configuration for a
// two-stage pipe.
func collapseTwo(State2) State2 {
	return St01
}
