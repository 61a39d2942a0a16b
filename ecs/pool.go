package ecs

// componentPool is the type-erased handle under which per-type pools are
// stored together in the registry's pool vector. The registry recovers the
// typed pool with a downcast; the cast is safe because the ComponentID used
// to index the vector always matches the type the pool was created with.
type componentPool interface {
	// resize grows the backing storage to hold at least n slots. It never
	// shrinks.
	resize(n int)
	// clear drops all stored values. Used only on full teardown.
	clear()
	// value returns a pointer to the stored value at index i as an untyped
	// interface, for inspection tooling. nil if i is out of range.
	value(i int) any
	// len returns the current slot count.
	len() int
}

// pool is a dense, growable array of T indexed directly by entity id.
// Slots for entities that never had the component hold the zero value and
// are not meaningfully readable until written; the registry's signature
// check is what decides logical presence.
type pool[T any] struct {
	data []T
}

func newPool[T any]() *pool[T] {
	return &pool[T]{}
}

func (p *pool[T]) resize(n int) {
	if n <= cap(p.data) {
		p.data = p.data[:max(n, len(p.data))]
		return
	}
	grown := make([]T, n)
	copy(grown, p.data)
	p.data = grown
}

func (p *pool[T]) clear() {
	p.data = nil
}

func (p *pool[T]) len() int {
	return len(p.data)
}

func (p *pool[T]) value(i int) any {
	if i < 0 || i >= len(p.data) {
		return nil
	}
	return &p.data[i]
}

// set writes v at slot i. The caller resizes first; i must be in range.
func (p *pool[T]) set(i int, v T) {
	p.data[i] = v
}

// get returns a pointer to the value at slot i so callers can mutate the
// stored component in place.
func (p *pool[T]) get(i int) *T {
	return &p.data[i]
}
