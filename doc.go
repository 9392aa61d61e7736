// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package portfsm implements a data-flow port state machine that
// coordinates producer/consumer handoff across a bounded staging area
// with one intermediate slot (two-stage) or two intermediate slots
// (three-stage).
//
// The state machine itself never touches payload data — it only
// signals when a fill, push, drain, or pull may proceed, and calls out
// to a pluggable [Policy] for the actual blocking, notification, and
// data-movement primitives. This mirrors how [code.hybscloud.com/lfq]
// separates the bounded-queue algorithm from the element type: here the
// separation is between the transition logic (fixed, tabulated) and the
// policy (pluggable, stateful).
//
// # Quick Start
//
// Direct constructors build an FSM bound to a policy:
//
//	fsm := portfsm.NewFSM2()
//	policy := portfsm.NewCondPolicy2[Event](fsm.Lock())
//	fsm.SetPolicy(policy)
//
//	fsm.DoFill("")  // source_fill
//	fsm.DoPush("")  // source_push
//	fsm.DoPull("")  // sink_pull
//	fsm.DoDrain("") // sink_drain
//
// Builder API mirrors [code.hybscloud.com/lfq]'s fluent Options/Builder:
//
//	fsm, policy := portfsm.BuildCond2[Event](portfsm.New2().WithLogger(logger))
//
// # Two-Stage vs Three-Stage
//
// Two-stage states encode (source-slot, sink-slot) occupancy as two
// bits; three-stage states encode (source-slot, middle-slot,
// sink-slot) as three bits. Both share the same event and action
// alphabets and the same driver discipline — they differ only in their
// transition tables and in the post-move collapse rule.
//
// # Reference Policies
//
// [CondPolicy2] / [CondPolicy3] are blocking policies built on
// sync.Cond, generalizing the teacher's own blocking producer/consumer
// examples (see lfq's doc comments on Pipeline Stage usage) to real
// condition-variable waits instead of busy polling, because this FSM's
// wait actions must block the caller until woken.
//
// [SpinPolicy2] / [SpinPolicy3] are non-blocking, busy-wait policies
// for latency-sensitive callers who would rather spend CPU than park a
// goroutine — the direct analogue of lfq's FAA/CAS queues, which never
// block and instead spin with code.hybscloud.com/spin escalating to
// code.hybscloud.com/iox's Backoff.
//
// # Diagnostics
//
// Every operation accepts an optional message string. When debug is
// enabled (via EnableDebug) or a non-empty message is supplied, the
// driver emits a structured trace line at each of five phases
// (on-event start, pre-exit, post-exit, pre-entry, post-entry) via an
// injected *zap.Logger, carrying a process-wide monotonic event
// counter.
//
// # Thread Safety
//
// A single mutex serializes all transitions for one FSM instance. Any
// number of goroutines may call into the do_* operations concurrently;
// the mutex and the policy are the only shared, concurrent surface. The
// mutex is held for the entirety of one event, including both action
// phases — wait actions release it only via the policy's own wait
// primitives, which re-acquire it before returning.
package portfsm
