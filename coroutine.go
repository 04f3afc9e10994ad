package blue

import (
	"iter"
	"time"
)

// Routine is the body of a coroutine: a sequence of yield instructions driven
// one step per scheduler tick. Yield a nil instruction to suspend for exactly
// one tick.
type Routine = iter.Seq[YieldInstruction]

// CoroutineOwner receives exactly one notification when a coroutine it owns
// finishes or is stopped. The callback runs at the commit point that releases
// the coroutine; the coroutine's state is still readable inside the callback
// and is cleared immediately after.
type CoroutineOwner interface {
	CoroutineFinished(co *Coroutine)
}

// Coroutine wraps a resumable instruction sequence. Coroutines are pooled:
// they are obtained from the scheduler via Start and returned to the pool
// when the sequence is exhausted or the coroutine is stopped. Callers must
// not retain a *Coroutine past its finish notification.
type Coroutine struct {
	tag    string
	paused bool
	owner  CoroutineOwner

	current YieldInstruction
	next    func() (YieldInstruction, bool)
	stop    func()
	sched   *CoroutineScheduler
}

// Tag returns the coroutine's tag, if any.
func (c *Coroutine) Tag() string { return c.tag }

// SetTag sets a tag for bulk lookup and cancellation.
func (c *Coroutine) SetTag(tag string) { c.tag = tag }

// Paused reports whether the coroutine is paused.
func (c *Coroutine) Paused() bool { return c.paused }

// Pause suspends advancement. A paused coroutine stays registered.
func (c *Coroutine) Pause() { c.paused = true }

// Resume clears the pause flag.
func (c *Coroutine) Resume() { c.paused = false }

// SetOwner sets the owner notified when the coroutine finishes.
func (c *Coroutine) SetOwner(owner CoroutineOwner) { c.owner = owner }

// Current returns the yield instruction the coroutine is suspended on, or
// nil.
func (c *Coroutine) Current() YieldInstruction { return c.current }

// Stop requests cancellation. A live coroutine is released (pooled, owner
// notified) at the scheduler's next commit point, not immediately; a coroutine
// stopped before its first tick never reaches the live list and is released
// right away.
func (c *Coroutine) Stop() {
	if c.sched != nil {
		c.sched.stop(c)
	}
}

// Advance drives the coroutine one tick. It reports true when the underlying
// sequence is exhausted.
//
// If the coroutine holds a yield instruction, the instruction is advanced;
// when it resolves it is released to its pool at once and the sequence is
// stepped in the same tick, so a wait's final tick and the following step are
// not separated by a frame.
func (c *Coroutine) Advance(frame *UpdateFrame) bool {
	if c.paused || c.next == nil {
		return false
	}

	if c.current != nil {
		if !c.current.advance(frame) {
			return false
		}
		c.current.release(c.sched)
		c.current = nil
	}

	instr, ok := c.next()
	if !ok {
		return true
	}
	c.current = instr
	return false
}

// CoroutineStats provides statistics about the last scheduler tick.
type CoroutineStats struct {
	Live         int
	Advanced     int
	LastDuration time.Duration
}

// CoroutineScheduler maintains the set of active coroutines and advances each
// one once per tick. All coroutine and instruction objects come from pools
// the scheduler owns, so tearing down a scheduler tears down its whole pool
// state.
type CoroutineScheduler struct {
	reg *registry[*Coroutine]

	coroutines   *Pool[Coroutine]
	waitTimes    *Pool[waitTime]
	waitPreds    *Pool[waitPredicate]
	waitRoutines *Pool[waitRoutine]

	stats CoroutineStats
}

// NewCoroutineScheduler creates an empty scheduler with fresh pools.
func NewCoroutineScheduler() *CoroutineScheduler {
	return &CoroutineScheduler{
		reg:          newRegistry[*Coroutine](),
		coroutines:   NewPool[Coroutine](nil),
		waitTimes:    NewPool[waitTime](nil),
		waitPreds:    NewPool[waitPredicate](nil),
		waitRoutines: NewPool[waitRoutine](nil),
	}
}

// Start registers a coroutine for the given routine. The routine's first step
// runs on the scheduler's next Update, after the commit point. Returns nil
// for a nil routine.
func (s *CoroutineScheduler) Start(routine Routine) *Coroutine {
	if routine == nil {
		return nil
	}
	co := s.newCoroutine(routine)
	s.reg.register(co)
	return co
}

func (s *CoroutineScheduler) newCoroutine(routine Routine) *Coroutine {
	co := s.coroutines.Get()
	co.sched = s
	co.next, co.stop = iter.Pull(routine)
	return co
}

// Update commits pending registrations and removals (releasing every removed
// coroutine), then advances each live unpaused coroutine once. A coroutine
// that completes is staged for removal and released at the next commit, never
// mid-iteration.
func (s *CoroutineScheduler) Update(frame *UpdateFrame) {
	start := time.Now()

	s.reg.commit(s.releaseCoroutine)

	advanced := 0
	for _, co := range s.reg.live {
		if co.paused {
			continue
		}
		advanced++
		if co.Advance(frame) {
			s.reg.unregister(co)
		}
	}

	s.stats = CoroutineStats{
		Live:         s.reg.liveLen(),
		Advanced:     advanced,
		LastDuration: time.Since(start),
	}
}

// releaseCoroutine notifies the owner, clears every reference the coroutine
// holds and returns it to the pool. A pooled coroutine must not retain its
// instruction, iterator, owner or tag across reuse.
func (s *CoroutineScheduler) releaseCoroutine(co *Coroutine) {
	if co.owner != nil {
		co.owner.CoroutineFinished(co)
	}
	if co.current != nil {
		co.current.release(s)
		co.current = nil
	}
	if co.stop != nil {
		co.stop()
	}
	co.tag = ""
	co.paused = false
	co.owner = nil
	co.next = nil
	co.stop = nil
	co.sched = nil
	s.coroutines.Put(co)
}

// stop removes a coroutine from the scheduler. A live coroutine is staged for
// removal and released at the next commit; one still pending addition is
// cancelled and released immediately, so owner notification and pooling are
// never skipped.
func (s *CoroutineScheduler) stop(co *Coroutine) {
	if s.reg.cancelPending(co) {
		s.releaseCoroutine(co)
		return
	}
	s.reg.unregister(co)
}

// StopAll stops every live and pending coroutine.
func (s *CoroutineScheduler) StopAll() {
	for _, co := range s.reg.live {
		s.reg.unregister(co)
	}
	pending := append([]*Coroutine(nil), s.reg.pendingAdd...)
	for _, co := range pending {
		s.stop(co)
	}
}

// StopByTag stops every coroutine with the given tag.
func (s *CoroutineScheduler) StopByTag(tag string) {
	s.eachWithTag(tag, s.stop)
}

// PauseByTag pauses every coroutine with the given tag.
func (s *CoroutineScheduler) PauseByTag(tag string) {
	s.eachWithTag(tag, (*Coroutine).Pause)
}

// ResumeByTag resumes every coroutine with the given tag.
func (s *CoroutineScheduler) ResumeByTag(tag string) {
	s.eachWithTag(tag, (*Coroutine).Resume)
}

// CountByTag returns the number of live or pending coroutines with the tag.
func (s *CoroutineScheduler) CountByTag(tag string) int {
	n := 0
	s.eachWithTag(tag, func(*Coroutine) { n++ })
	return n
}

func (s *CoroutineScheduler) eachWithTag(tag string, fn func(*Coroutine)) {
	for _, co := range s.reg.live {
		if co.tag == tag && s.reg.contains(co) {
			fn(co)
		}
	}
	pending := append([]*Coroutine(nil), s.reg.pendingAdd...)
	for _, co := range pending {
		if co.tag == tag {
			fn(co)
		}
	}
}

// Each calls fn for every live coroutine until fn returns false. The live
// list must not be mutated structurally from fn; Stop and Pause are safe.
func (s *CoroutineScheduler) Each(fn func(*Coroutine) bool) {
	for _, co := range s.reg.live {
		if !fn(co) {
			return
		}
	}
}

// Len returns the number of live coroutines.
func (s *CoroutineScheduler) Len() int {
	return s.reg.liveLen()
}

// Stats returns statistics about the last tick.
func (s *CoroutineScheduler) Stats() CoroutineStats {
	return s.stats
}

// WaitSeconds returns an instruction that resolves once the given number of
// scaled seconds has accumulated.
func (s *CoroutineScheduler) WaitSeconds(seconds float64) YieldInstruction {
	w := s.waitTimes.Get()
	*w = waitTime{target: seconds}
	return w
}

// WaitSecondsReal is WaitSeconds on the unscaled clock.
func (s *CoroutineScheduler) WaitSecondsReal(seconds float64) YieldInstruction {
	w := s.waitTimes.Get()
	*w = waitTime{target: seconds, unscaled: true}
	return w
}

// WaitUntil returns an instruction that resolves when pred reports true.
// A nil predicate is a programming error and panics immediately.
func (s *CoroutineScheduler) WaitUntil(pred func() bool) YieldInstruction {
	if pred == nil {
		panic("blue: WaitUntil requires a non-nil predicate")
	}
	w := s.waitPreds.Get()
	*w = waitPredicate{pred: pred, target: true}
	return w
}

// WaitWhile returns an instruction that resolves when pred reports false.
// A nil predicate is a programming error and panics immediately.
func (s *CoroutineScheduler) WaitWhile(pred func() bool) YieldInstruction {
	if pred == nil {
		panic("blue: WaitWhile requires a non-nil predicate")
	}
	w := s.waitPreds.Get()
	*w = waitPredicate{pred: pred, target: false}
	return w
}

// WaitFor returns an instruction that drives routine as a child coroutine and
// resolves when the child's sequence is exhausted.
func (s *CoroutineScheduler) WaitFor(routine Routine) YieldInstruction {
	if routine == nil {
		panic("blue: WaitFor requires a non-nil routine")
	}
	w := s.waitRoutines.Get()
	*w = waitRoutine{child: s.newCoroutine(routine)}
	return w
}
