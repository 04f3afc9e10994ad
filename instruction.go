package blue

//go:generate go run golang.org/x/tools/cmd/stringer -type=InstructionKind

// InstructionKind identifies the variant of a yield instruction.
type InstructionKind uint8

const (
	InstructionNone InstructionKind = iota
	InstructionWaitTime
	InstructionWaitPredicate
	InstructionWaitRoutine
)

// YieldInstruction is a resumable suspension point inside a coroutine. An
// instruction is advanced once per scheduler tick until it resolves; once
// resolved it is released back to its pool immediately and never advanced
// again.
//
// Instructions are created through the scheduler (WaitSeconds, WaitUntil,
// WaitWhile, WaitFor) so that every instruction comes from and returns to a
// scheduler-owned pool. Yielding a nil instruction suspends the coroutine for
// exactly one tick.
type YieldInstruction interface {
	Kind() InstructionKind

	// advance moves the instruction one tick forward and reports whether it
	// resolved.
	advance(frame *UpdateFrame) bool

	// release clears internal state and returns the instruction to its pool.
	// Cleared state must not retain predicates, closures or components.
	release(s *CoroutineScheduler)
}

// waitTime resolves once the accumulated frame time reaches the target
// duration. The elapsed accumulator is reset every time the instruction is
// handed out, so a pooled instance never carries time across reuses.
type waitTime struct {
	target   float64
	elapsed  float64
	unscaled bool
}

func (w *waitTime) Kind() InstructionKind { return InstructionWaitTime }

func (w *waitTime) advance(frame *UpdateFrame) bool {
	if w.unscaled {
		w.elapsed += frame.RawDeltaTime
	} else {
		w.elapsed += frame.DeltaTime
	}
	return w.elapsed >= w.target
}

func (w *waitTime) release(s *CoroutineScheduler) {
	*w = waitTime{}
	s.waitTimes.Put(w)
}

// waitPredicate resolves when its predicate reports the target value, which
// makes one type serve both wait-until (target true) and wait-while (target
// false).
type waitPredicate struct {
	pred   func() bool
	target bool
}

func (w *waitPredicate) Kind() InstructionKind { return InstructionWaitPredicate }

func (w *waitPredicate) advance(*UpdateFrame) bool {
	return w.pred() == w.target
}

func (w *waitPredicate) release(s *CoroutineScheduler) {
	*w = waitPredicate{}
	s.waitPreds.Put(w)
}

// waitRoutine drives a child coroutine and resolves when the child's sequence
// is exhausted. The child is not registered with the scheduler; it lives and
// dies with the instruction.
type waitRoutine struct {
	child *Coroutine
}

func (w *waitRoutine) Kind() InstructionKind { return InstructionWaitRoutine }

func (w *waitRoutine) advance(frame *UpdateFrame) bool {
	return w.child.Advance(frame)
}

func (w *waitRoutine) release(s *CoroutineScheduler) {
	if w.child != nil {
		s.releaseCoroutine(w.child)
	}
	*w = waitRoutine{}
	s.waitRoutines.Put(w)
}
