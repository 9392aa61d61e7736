// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package portfsm

// Action is the port action alphabet invoked by the driver during the
// exit and entry phases of a transition. It is shared by the two-stage
// and three-stage state machines.
type Action uint8

const (
	// ActionNone performs no policy callback.
	ActionNone Action = iota
	// ActionReturn (ac_return) unwinds back to the caller; the driver
	// short-circuits after invoking it. Defined in the alphabet but
	// triggered by no table entry in either stage count — preserved
	// per the CORE SPECIFICATION's open question, not pruned.
	ActionReturn
	// ActionSourceMove invokes the policy's source-side move callback.
	ActionSourceMove
	// ActionSinkMove invokes the policy's sink-side move callback.
	ActionSinkMove
	// ActionNotifySource signals the source-side condition.
	ActionNotifySource
	// ActionNotifySink signals the sink-side condition.
	ActionNotifySink
	// ActionSourceWait blocks the source side on a condition.
	ActionSourceWait
	// ActionSinkWait blocks the sink side on a condition.
	ActionSinkWait
	// ActionError marks an illegal transition. No exit or entry table
	// contains it (illegal events are expressed as an error next state);
	// the driver has no callback for it and panics via logicFault if it
	// is ever dispatched.
	ActionError

	actionCount = int(ActionError) + 1
)

// String returns the stable, spec-named identifier for a.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionReturn:
		return "ac_return"
	case ActionSourceMove:
		return "source_move"
	case ActionSinkMove:
		return "sink_move"
	case ActionNotifySource:
		return "notify_source"
	case ActionNotifySink:
		return "notify_sink"
	case ActionSourceWait:
		return "source_wait"
	case ActionSinkWait:
		return "sink_wait"
	case ActionError:
		return "error"
	default:
		return "action(?)"
	}
}
