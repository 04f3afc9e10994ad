package blue

import "sync/atomic"

// Pool is a stack-backed cache of reusable objects. It eliminates allocation
// churn for short-lived scheduling objects such as coroutines and yield
// instructions.
//
// A Pool is owned by a single consumer and is not safe for concurrent use;
// see SharedPool for the concurrent variant. Releasing the same object twice
// is a programming error the pool does not defend against: an object is owned
// exactly by whoever last received it.
type Pool[T any] struct {
	items []*T

	// New constructs a fresh object when the pool is empty.
	// If nil, Get allocates a zero value.
	New func() *T
}

// NewPool creates a pool that uses the given constructor for cache misses.
func NewPool[T any](newFn func() *T) *Pool[T] {
	return &Pool[T]{New: newFn}
}

// Get returns a pooled object, constructing one if the pool is empty.
func (p *Pool[T]) Get() *T {
	if n := len(p.items); n > 0 {
		item := p.items[n-1]
		p.items[n-1] = nil
		p.items = p.items[:n-1]
		return item
	}
	if p.New != nil {
		return p.New()
	}
	return new(T)
}

// Put returns an object to the pool for reuse. The caller must have cleared
// any references the object holds before releasing it.
func (p *Pool[T]) Put(item *T) {
	if item == nil {
		return
	}
	p.items = append(p.items, item)
}

// Size returns the number of objects currently cached.
func (p *Pool[T]) Size() int {
	return len(p.items)
}

// sharedNode is a link in the SharedPool free stack. Nodes are never reused:
// a popped node is left to the GC, and its fields are never written after it
// is published, which is what keeps the pop CAS free of the ABA problem.
type sharedNode[T any] struct {
	item *T
	next *sharedNode[T]
}

// SharedPool is a lock-free object pool built on a Treiber stack. It remains
// safe if objects are produced and consumed from different goroutines, which
// the frame-driven core never does on its own but the low-level allocation
// path must tolerate.
type SharedPool[T any] struct {
	head atomic.Pointer[sharedNode[T]]

	// New constructs a fresh object when the pool is empty.
	// If nil, Get allocates a zero value.
	New func() *T
}

// NewSharedPool creates a concurrent pool that uses the given constructor for
// cache misses.
func NewSharedPool[T any](newFn func() *T) *SharedPool[T] {
	return &SharedPool[T]{New: newFn}
}

// Get pops an object from the free stack, constructing one on a miss.
func (p *SharedPool[T]) Get() *T {
	for {
		node := p.head.Load()
		if node == nil {
			if p.New != nil {
				return p.New()
			}
			return new(T)
		}
		if p.head.CompareAndSwap(node, node.next) {
			return node.item
		}
	}
}

// Put pushes an object onto the free stack.
func (p *SharedPool[T]) Put(item *T) {
	if item == nil {
		return
	}
	node := &sharedNode[T]{item: item}
	for {
		head := p.head.Load()
		node.next = head
		if p.head.CompareAndSwap(head, node) {
			return
		}
	}
}
