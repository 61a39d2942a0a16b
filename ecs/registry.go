package ecs

import (
	"fmt"
	"iter"
	"log/slog"
	"reflect"

	"github.com/kamstrup/intmap"
)

// Registry is the central authority owning all entities, component pools,
// signatures and systems. Every create/attach/detach/query operation goes
// through it.
//
// Entity creation and destruction are staged rather than applied
// immediately: a created entity is dispatched to matching systems, and a
// killed entity removed from all systems, only at the next Update call.
// Code iterating a system's entity list mid-frame therefore never observes
// the list change out from under it.
type Registry struct {
	numEntities int

	// alive and signatures are indexed by entity id.
	alive      []bool
	signatures []Signature

	// pools is indexed by ComponentID. A nil slot means the type has never
	// been attached through this registry.
	pools []componentPool

	// systems holds one instance per distinct system type, with order
	// preserving registration sequence so Update dispatch is deterministic.
	systems map[reflect.Type]EntitySystem
	order   []reflect.Type

	pendingAdd     []Entity
	pendingAddSet  *intmap.Map[EntityID, struct{}]
	pendingKill    []Entity
	pendingKillSet *intmap.Map[EntityID, struct{}]

	logger *slog.Logger
}

// NewRegistry creates an empty registry. Logging is discarded until a
// logger is installed with SetLogger.
func NewRegistry() *Registry {
	return &Registry{
		systems:        make(map[reflect.Type]EntitySystem),
		pendingAddSet:  intmap.New[EntityID, struct{}](64),
		pendingKillSet: intmap.New[EntityID, struct{}](64),
		logger:         slog.New(slog.DiscardHandler),
	}
}

// SetLogger installs a logger for debug-level lifecycle events.
func (r *Registry) SetLogger(logger *slog.Logger) {
	if logger != nil {
		r.logger = logger
	}
}

// CreateEntity allocates a fresh entity id with an all-zero signature and
// stages the entity for system dispatch at the next Update. Ids are never
// reused; operations on a destroyed id fail with ErrEntityNotAlive.
func (r *Registry) CreateEntity() Entity {
	id := EntityID(r.numEntities)
	r.numEntities++

	r.signatures = append(r.signatures, 0)
	r.alive = append(r.alive, true)

	e := Entity{id: id, registry: r}
	r.pendingAdd = append(r.pendingAdd, e)
	r.pendingAddSet.Put(id, struct{}{})

	r.logger.Debug("entity created", "entity", id)
	return e
}

// KillEntity stages the entity for destruction at the next Update. Killing
// an entity twice before Update is a single kill; killing a destroyed
// entity returns ErrEntityNotAlive.
func (r *Registry) KillEntity(e Entity) error {
	if !r.IsAlive(e) {
		return fmt.Errorf("kill entity %d: %w", e.id, ErrEntityNotAlive)
	}
	if _, staged := r.pendingKillSet.Get(e.id); staged {
		return nil
	}
	r.pendingKill = append(r.pendingKill, e)
	r.pendingKillSet.Put(e.id, struct{}{})

	r.logger.Debug("entity killed", "entity", e.id)
	return nil
}

// IsAlive reports whether e refers to an entity this registry created and
// has not yet destroyed.
func (r *Registry) IsAlive(e Entity) bool {
	return int(e.id) < len(r.alive) && r.alive[e.id]
}

// NumEntities returns the count of entities ever allocated, including
// destroyed ones.
func (r *Registry) NumEntities() int {
	return r.numEntities
}

// NumAlive returns the count of entities currently alive.
func (r *Registry) NumAlive() int {
	n := 0
	for _, a := range r.alive {
		if a {
			n++
		}
	}
	return n
}

// Update is the synchronization point, expected to run once per frame.
// Every entity staged by CreateEntity is dispatched to the systems whose
// required signature is a subset of the entity's signature at this moment;
// every entity staged by KillEntity is removed from all systems, its
// signature cleared and its id retired. Both pending sets are drained.
func (r *Registry) Update() {
	for _, e := range r.pendingAdd {
		r.AddEntityToSystems(e)
	}
	r.pendingAdd = r.pendingAdd[:0]
	r.pendingAddSet.Clear()

	for _, e := range r.pendingKill {
		for _, key := range r.order {
			r.systems[key].base().RemoveEntityFromSystem(e)
		}
		r.signatures[e.id] = 0
		r.alive[e.id] = false
		r.logger.Debug("entity destroyed", "entity", e.id)
	}
	r.pendingKill = r.pendingKill[:0]
	r.pendingKillSet.Clear()
}

// AddEntityToSystems evaluates e against every registered system's required
// signature and adds it where it matches. Update calls this for each newly
// staged entity; callers may also invoke it directly to re-match an already
// active entity after changing its components, since AddComponent and
// RemoveComponent on their own never re-run membership.
func (r *Registry) AddEntityToSystems(e Entity) {
	sig := r.signatures[e.id]
	for _, key := range r.order {
		sys := r.systems[key].base()
		if sig.ContainsAll(sys.Signature()) {
			sys.AddEntityToSystem(e)
		}
	}
}

// SignatureOf returns the entity's current component signature.
func (r *Registry) SignatureOf(e Entity) (Signature, error) {
	if !r.IsAlive(e) {
		return 0, fmt.Errorf("signature of entity %d: %w", e.id, ErrEntityNotAlive)
	}
	return r.signatures[e.id], nil
}

// Entities iterates over all currently alive entities in id order.
func (r *Registry) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for id, a := range r.alive {
			if !a {
				continue
			}
			if !yield(Entity{id: EntityID(id), registry: r}) {
				return
			}
		}
	}
}

// ComponentValue returns a pointer to the stored value for the given
// component id on the entity, as an untyped interface. Intended for
// inspection tooling; typed access goes through GetComponent.
func (r *Registry) ComponentValue(e Entity, id ComponentID) (any, error) {
	if !r.IsAlive(e) {
		return nil, fmt.Errorf("component value of entity %d: %w", e.id, ErrEntityNotAlive)
	}
	if !r.signatures[e.id].Test(id) {
		return nil, fmt.Errorf("component id %d on entity %d: %w", id, e.id, ErrComponentNotPresent)
	}
	return r.pools[id].value(int(e.id)), nil
}

func registryAddComponent[T any](r *Registry, e Entity, component T) error {
	cid, err := TypeID[T]()
	if err != nil {
		return err
	}
	if !r.IsAlive(e) {
		return fmt.Errorf("add %s to entity %d: %w", reflect.TypeFor[T](), e.id, ErrEntityNotAlive)
	}

	for int(cid) >= len(r.pools) {
		r.pools = append(r.pools, nil)
	}
	if r.pools[cid] == nil {
		r.pools[cid] = newPool[T]()
	}

	p := r.pools[cid].(*pool[T])
	if int(e.id) >= p.len() {
		p.resize(r.numEntities)
	}
	p.set(int(e.id), component)
	r.signatures[e.id].Set(cid)

	r.logger.Debug("component added", "component", cid, "entity", e.id)
	return nil
}

func (r *Registry) removeComponent(e Entity, cid ComponentID) error {
	if !r.IsAlive(e) {
		return fmt.Errorf("remove component id %d from entity %d: %w", cid, e.id, ErrEntityNotAlive)
	}
	r.signatures[e.id].Clear(cid)

	r.logger.Debug("component removed", "component", cid, "entity", e.id)
	return nil
}

func (r *Registry) hasComponent(e Entity, cid ComponentID) bool {
	return r.IsAlive(e) && r.signatures[e.id].Test(cid)
}

func registryGetComponent[T any](r *Registry, e Entity) (*T, error) {
	cid, err := TypeID[T]()
	if err != nil {
		return nil, err
	}
	if !r.IsAlive(e) {
		return nil, fmt.Errorf("get %s of entity %d: %w", reflect.TypeFor[T](), e.id, ErrEntityNotAlive)
	}
	if !r.signatures[e.id].Test(cid) {
		return nil, fmt.Errorf("get %s of entity %d: %w", reflect.TypeFor[T](), e.id, ErrComponentNotPresent)
	}
	p := r.pools[cid].(*pool[T])
	return p.get(int(e.id)), nil
}

// systemKey normalizes a system value to the struct type used as its map
// key, so one instance exists per distinct system type.
func systemKey(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

func (r *Registry) addSystem(key reflect.Type, sys EntitySystem) {
	if _, ok := r.systems[key]; !ok {
		r.order = append(r.order, key)
	}
	r.systems[key] = sys
	r.logger.Debug("system added", "system", key.Name())
}

// AddSystem registers the system instance under its own type. Registering
// the same system type again replaces the previous instance.
func AddSystem[S EntitySystem](r *Registry, system S) {
	r.addSystem(systemKey(reflect.TypeOf(system)), system)
}

// RemoveSystem erases the system of type S. It returns
// ErrSystemNotRegistered if no such system was added.
func RemoveSystem[S EntitySystem](r *Registry) error {
	key := systemKey(reflect.TypeFor[S]())
	if _, ok := r.systems[key]; !ok {
		return fmt.Errorf("remove system %s: %w", key.Name(), ErrSystemNotRegistered)
	}
	delete(r.systems, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// HasSystem reports whether a system of type S is registered.
func HasSystem[S EntitySystem](r *Registry) bool {
	_, ok := r.systems[systemKey(reflect.TypeFor[S]())]
	return ok
}

// GetSystem returns the registered system of type S, or
// ErrSystemNotRegistered.
func GetSystem[S EntitySystem](r *Registry) (S, error) {
	sys, ok := r.systems[systemKey(reflect.TypeFor[S]())]
	if !ok {
		var zero S
		return zero, fmt.Errorf("get system %s: %w", systemKey(reflect.TypeFor[S]()).Name(), ErrSystemNotRegistered)
	}
	return sys.(S), nil
}
