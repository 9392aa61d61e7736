// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package portfsm

import "go.uber.org/zap"

// Builder2 configures construction of a two-stage FSM, mirroring the
// teacher's own fluent Options/Builder for queue construction: a small
// struct of deferred settings applied at Build time rather than through
// constructor parameters.
//
// Go methods cannot carry their own type parameters, so the final build
// step is a package-level generic function taking the builder, e.g.
// BuildCond2[Event](portfsm.New2()), rather than a builder method.
type Builder2 struct {
	logger *zap.Logger
	debug  bool
}

// New2 creates a Builder2 with a no-op logger and debug tracing off.
func New2() *Builder2 {
	return &Builder2{logger: zap.NewNop()}
}

// WithLogger installs the diagnostic trace sink.
func (b *Builder2) WithLogger(l *zap.Logger) *Builder2 {
	b.logger = l
	return b
}

// WithDebug enables unconditional diagnostic tracing.
func (b *Builder2) WithDebug() *Builder2 {
	b.debug = true
	return b
}

func (b *Builder2) build() *FSM2 {
	fsm := NewFSM2()
	fsm.SetLogger(b.logger)
	if b.debug {
		fsm.EnableDebug()
	}
	return fsm
}

// BuildCond2 builds a two-stage FSM bound to a fresh [CondPolicy2][T].
func BuildCond2[T any](b *Builder2) (*FSM2, *CondPolicy2[T]) {
	fsm := b.build()
	policy := NewCondPolicy2[T](fsm.Lock())
	fsm.SetPolicy(policy)
	return fsm, policy
}

// BuildSpin2 builds a two-stage FSM bound to a fresh [SpinPolicy2][T].
func BuildSpin2[T any](b *Builder2) (*FSM2, *SpinPolicy2[T]) {
	fsm := b.build()
	policy := NewSpinPolicy2[T]()
	fsm.SetPolicy(policy)
	return fsm, policy
}

// Builder3 is the three-stage analogue of Builder2.
type Builder3 struct {
	logger *zap.Logger
	debug  bool
}

// New3 creates a Builder3 with a no-op logger and debug tracing off.
func New3() *Builder3 {
	return &Builder3{logger: zap.NewNop()}
}

// WithLogger installs the diagnostic trace sink.
func (b *Builder3) WithLogger(l *zap.Logger) *Builder3 {
	b.logger = l
	return b
}

// WithDebug enables unconditional diagnostic tracing.
func (b *Builder3) WithDebug() *Builder3 {
	b.debug = true
	return b
}

func (b *Builder3) build() *FSM3 {
	fsm := NewFSM3()
	fsm.SetLogger(b.logger)
	if b.debug {
		fsm.EnableDebug()
	}
	return fsm
}

// BuildCond3 builds a three-stage FSM bound to a fresh [CondPolicy3][T].
func BuildCond3[T any](b *Builder3) (*FSM3, *CondPolicy3[T]) {
	fsm := b.build()
	policy := NewCondPolicy3[T](fsm.Lock())
	fsm.SetPolicy(policy)
	return fsm, policy
}

// BuildSpin3 builds a three-stage FSM bound to a fresh [SpinPolicy3][T].
func BuildSpin3[T any](b *Builder3) (*FSM3, *SpinPolicy3[T]) {
	fsm := b.build()
	policy := NewSpinPolicy3[T]()
	fsm.SetPolicy(policy)
	return fsm, policy
}
