// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package portfsm

import "sync"

// Policy supplies the blocking, notification, and data-movement
// primitives the driver invokes during a transition's exit and entry
// phases (§4.4). The FSM passes the same *sync.Mutex it holds for the
// entire event() call into every callback, matching the CORE
// SPECIFICATION's "the policy receives the held lock object in every
// callback".
//
// Implementations must honor this contract:
//
//   - OnSourceWait / OnSinkWait must atomically release lock, wait for
//     a condition, and re-acquire lock before returning. Spurious wakes
//     are permitted; the driver is always re-invoked by the caller.
//   - NotifySource / NotifySink must signal without releasing lock.
//   - OnSourceMove / OnSinkMove must move data without releasing lock.
//   - OnACReturn unwinds back to the caller; the driver short-circuits
//     immediately after.
//
// Policy is otherwise opaque to the FSM and may be swapped freely — the
// FSM owns only the state and next-state scratch fields; the policy
// owns any condition variables and data buffers (§5).
type Policy interface {
	OnSourceWait(lock *sync.Mutex)
	OnSinkWait(lock *sync.Mutex)
	NotifySource(lock *sync.Mutex)
	NotifySink(lock *sync.Mutex)
	OnSourceMove(lock *sync.Mutex)
	OnSinkMove(lock *sync.Mutex)
	OnACReturn(lock *sync.Mutex)
}

// PassThroughPolicy is a Policy whose callbacks are all no-ops. It is
// used by the package's property-based tests (P1, Determinism) and is
// useful as a baseline when only the pure transition logic matters.
type PassThroughPolicy struct{}

func (PassThroughPolicy) OnSourceWait(*sync.Mutex) {}
func (PassThroughPolicy) OnSinkWait(*sync.Mutex)   {}
func (PassThroughPolicy) NotifySource(*sync.Mutex) {}
func (PassThroughPolicy) NotifySink(*sync.Mutex)   {}
func (PassThroughPolicy) OnSourceMove(*sync.Mutex) {}
func (PassThroughPolicy) OnSinkMove(*sync.Mutex)   {}
func (PassThroughPolicy) OnACReturn(*sync.Mutex)   {}

var _ Policy = PassThroughPolicy{}
