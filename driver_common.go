// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package portfsm

import "sync"

// runAction executes the policy callback for action during phase
// ("exit" or "entry") and reports whether the driver must short-circuit
// the whole event() call (true only for ActionReturn, per §4.2 step
// 4's ac_return case). Shared between FSM2 and FSM3 since the action
// alphabet, and the driver's dispatch discipline, do not depend on
// stage count (§4.2).
func runAction(policy Policy, lock *sync.Mutex, action Action, phase, stateName string, e Event) (shortCircuit bool) {
	switch action {
	case ActionNone:
	case ActionReturn:
		policy.OnACReturn(lock)
		return true
	case ActionSourceMove:
		policy.OnSourceMove(lock)
	case ActionSinkMove:
		policy.OnSinkMove(lock)
	case ActionSourceWait:
		policy.OnSourceWait(lock)
	case ActionSinkWait:
		policy.OnSinkWait(lock)
	case ActionNotifySource:
		policy.NotifySource(lock)
	case ActionNotifySink:
		policy.NotifySink(lock)
	default:
		logicFault(stateName, e.String(), action.String(), phase)
	}
	return false
}
