// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package portfsm

// These tables are the authoritative specification of three-stage
// behaviour, reproduced verbatim. See tables_two.go for the note on
// preserving apparently-dead entries.

// nextTable3[state][event] is the three-stage next-state table.
var nextTable3 = [state3Count][eventCount]State3{
	St000: {EventSourceFill: St100, EventSourcePush: St000, EventSinkDrain: St3Error, EventSinkPull: St000, EventShutdown: St3Error},
	St001: {EventSourceFill: St101, EventSourcePush: St001, EventSinkDrain: St000, EventSinkPull: St001, EventShutdown: St3Error},
	St010: {EventSourceFill: St110, EventSourcePush: St001, EventSinkDrain: St3Error, EventSinkPull: St001, EventShutdown: St3Error},
	St011: {EventSourceFill: St111, EventSourcePush: St011, EventSinkDrain: St010, EventSinkPull: St011, EventShutdown: St3Error},
	St100: {EventSourceFill: St3Error, EventSourcePush: St001, EventSinkDrain: St3Error, EventSinkPull: St001, EventShutdown: St3Error},
	St101: {EventSourceFill: St3Error, EventSourcePush: St011, EventSinkDrain: St100, EventSinkPull: St011, EventShutdown: St3Error},
	St110: {EventSourceFill: St3Error, EventSourcePush: St011, EventSinkDrain: St3Error, EventSinkPull: St011, EventShutdown: St3Error},
	St111: {EventSourceFill: St3Error, EventSourcePush: St111, EventSinkDrain: St110, EventSinkPull: St111, EventShutdown: St3Error},
	St3Error: {
		EventSourceFill: St3Error, EventSourcePush: St3Error, EventSinkDrain: St3Error,
		EventSinkPull: St3Error, EventShutdown: St3Error,
	},
	St3Done: {
		EventSourceFill: St3Error, EventSourcePush: St3Error, EventSinkDrain: St3Error,
		EventSinkPull: St3Error, EventShutdown: St3Error,
	},
}

// exitTable3[state][event] is the three-stage exit-action table.
var exitTable3 = [state3Count][eventCount]Action{
	St010: {EventSourcePush: ActionSourceMove, EventSinkPull: ActionSinkMove},
	St100: {EventSourcePush: ActionSourceMove, EventSinkPull: ActionSinkMove},
	St101: {EventSourcePush: ActionSourceMove, EventSinkPull: ActionSinkMove},
	St110: {EventSourcePush: ActionSourceMove, EventSinkPull: ActionSinkMove},
	St111: {EventSourcePush: ActionSourceWait},
	St000: {EventSinkPull: ActionSinkWait},
}

// entryTable3[state][event] is the three-stage entry-action table,
// indexed by the *next* state and the current event.
var entryTable3 = [state3Count][eventCount]Action{
	St000: {EventSinkDrain: ActionNotifySource},
	St010: {EventSinkDrain: ActionNotifySource, EventSourcePush: ActionSourceMove, EventSinkPull: ActionSinkMove},
	St100: {
		EventSinkDrain:  ActionNotifySource,
		EventSourceFill: ActionNotifySink,
		EventSourcePush: ActionSourceMove,
		EventSinkPull:   ActionSinkMove,
	},
	St101: {EventSourceFill: ActionNotifySink, EventSourcePush: ActionSourceMove, EventSinkPull: ActionSinkMove},
	St110: {
		EventSinkDrain:  ActionNotifySource,
		EventSourceFill: ActionNotifySink,
		EventSourcePush: ActionSourceMove,
		EventSinkPull:   ActionSinkMove,
	},
	St111: {EventSourceFill: ActionNotifySink},
}

// collapseThree applies the three-stage post-move state collapse
// (§4.3): st_010/st_100 normalize to st_001; st_110/st_101 normalize to
// st_011; any other state is left unchanged.
func collapseThree(s State3) State3 {
	switch s {
	case St010, St100:
		return St001
	case St110, St101:
		return St011
	default:
		return s
	}
}
