// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package portfsm

import (
	"code.hybscloud.com/atomix"
	"go.uber.org/zap"
)

// eventCounter is the process-wide, monotonically increasing event
// counter referenced by the CORE SPECIFICATION's diagnostic trace
// (§6, §9). It is atomic and diagnostic only, the same trivial-lifecycle
// pattern lfq uses for its own atomic counters (e.g. mpmc.go's
// threshold field).
var eventCounter atomix.Uint64

// nextEventSeq returns the next value of the global event counter.
func nextEventSeq() uint64 {
	return eventCounter.AddAcqRel(1)
}

// tracePhase identifies one of the five mandated diagnostic phases.
type tracePhase string

const (
	phaseStart     tracePhase = "on-event-start"
	phasePreExit   tracePhase = "pre-exit"
	phasePostExit  tracePhase = "post-exit"
	phasePreEntry  tracePhase = "pre-entry"
	phasePostEntry tracePhase = "post-entry"
)

// emitTrace writes one structured trace line via logger, when tracing
// is active for this call (see shouldTrace). Fields follow §6: the
// event counter, message, event name, source state, exit action, entry
// action, and destination state.
func emitTrace(logger *zap.Logger, seq uint64, phase tracePhase, msg string, event Event, from, exitAction, entryAction, to string) {
	logger.Debug("portfsm transition",
		zap.Uint64("seq", seq),
		zap.String("phase", string(phase)),
		zap.String("msg", msg),
		zap.String("event", event.String()),
		zap.String("from", from),
		zap.String("exit_action", exitAction),
		zap.String("entry_action", entryAction),
		zap.String("to", to),
	)
}

// shouldTrace reports whether a trace line should be emitted: debug is
// enabled, or a non-empty diagnostic message was supplied for this call.
func shouldTrace(debug bool, msg string) bool {
	return debug || msg != ""
}
