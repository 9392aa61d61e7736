// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package portfsm

// Event is the port event alphabet. It is shared by the two-stage and
// three-stage state machines — stage count only affects the state
// alphabet and the transition tables.
type Event uint8

const (
	// EventSourceFill is source_fill: the source deposits an item into
	// its slot.
	EventSourceFill Event = iota
	// EventSourcePush is source_push: an item advances from the source
	// side toward the sink side.
	EventSourcePush
	// EventSinkDrain is sink_drain: the sink removes an item from its
	// slot.
	EventSinkDrain
	// EventSinkPull is sink_pull: an item advances into the sink's
	// slot.
	EventSinkPull
	// EventShutdown is shutdown: reserved, currently a no-op by design
	// (see the driver's event method).
	EventShutdown

	eventCount = int(EventShutdown) + 1
)

// String returns the stable, spec-named identifier for e. These names
// are part of the observable surface for diagnostics.
func (e Event) String() string {
	switch e {
	case EventSourceFill:
		return "source_fill"
	case EventSourcePush:
		return "source_push"
	case EventSinkDrain:
		return "sink_drain"
	case EventSinkPull:
		return "sink_pull"
	case EventShutdown:
		return "shutdown"
	default:
		return "event(?)"
	}
}
