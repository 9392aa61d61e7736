// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package portfsm

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
	pkgerrors "github.com/pkg/errors"
)

// ErrIllegalTransition indicates the driver reached the error sentinel
// state for the requested event. Per the CORE SPECIFICATION's error
// handling design (§7), this is not a failure the driver raises — the
// table intentionally admits it for impossible transitions (e.g.
// filling a full slot) and leaves sequencing discipline to the
// surrounding policy. ErrIllegalTransition is returned to the caller
// purely as an observability signal.
//
// This mirrors lfq's own non-failure classification
// ([code.hybscloud.com/iox]'s semantic errors): a caller can use
// [IsIllegalTransition] the same way lfq callers use IsWouldBlock to
// distinguish expected control flow from real failures.
var ErrIllegalTransition = errors.New("portfsm: illegal transition")

// IsIllegalTransition reports whether err is (or wraps)
// ErrIllegalTransition.
func IsIllegalTransition(err error) bool {
	return errors.Is(err, ErrIllegalTransition)
}

// IsSemantic reports whether err is a control-flow signal rather than a
// failure. Delegates to [iox.IsSemantic] for ecosystem consistency with
// lfq, in addition to classifying ErrIllegalTransition as semantic.
func IsSemantic(err error) bool {
	return IsIllegalTransition(err) || iox.IsSemantic(err)
}

// logicFault panics with a stack-carrying error when the driver
// encounters an action value the dispatch switch does not handle
// (ActionError, or a value outside the declared alphabet) (§7.2). This
// is unreachable in a correct build: the exit and entry tables hold
// only handled actions, so reaching this path means the tables or the
// switch in runAction have drifted apart.
func logicFault(state, event, action, phase string) {
	panic(pkgerrors.WithStack(fmt.Errorf(
		"portfsm: logic fault: unrecognised %s action %q for state=%s event=%s",
		phase, action, state, event,
	)))
}
