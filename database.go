package depot

import (
	"slices"
	"unsafe"

	"go.uber.org/zap"
)

// Database is an archetype-based entity store. All structural mutations (creating and
// deleting entities, adding and removing components) must come from a single goroutine
// and never overlap iteration; read-only access may run concurrently on an unchanging
// layout.
type Database struct {
	locks    int
	pool     *entityPool
	records  *recordTable
	registry *componentRegistry
	graph    *archetypeGraph
	opQueue  opQueue
	log      *zap.Logger
}

func newDatabase(opts ...Option) *Database {
	cfg := newConfig(opts...)
	registry := newComponentRegistry()
	return &Database{
		pool:     newEntityPool(cfg.maxEntities),
		records:  newRecordTable(cfg.maxEntities),
		registry: registry,
		graph:    newArchetypeGraph(registry, cfg.maxEntities, cfg.logger),
		opQueue:  newOpQueue(),
		log:      cfg.logger,
	}
}

// fatal logs err and panics with it. Every invariant check of the public surface goes
// through here before any state is touched.
func (db *Database) fatal(err error) {
	db.log.Error("fatal entity database error", zap.Error(err))
	panic(err)
}

func (db *Database) checkUnlocked(op string) {
	if db.locks > 0 {
		db.fatal(LockedDatabaseError{Op: op})
	}
}

func (db *Database) mustBeAlive(e EntityID) {
	if !db.pool.alive(e) {
		db.fatal(EntityNotAliveError{Entity: e})
	}
}

func (db *Database) componentInfo(id ComponentTypeID) *componentInfo {
	info, ok := db.registry.lookupID(id)
	if !ok {
		db.fatal(ComponentNotRegisteredError{ID: id})
	}
	return info
}

// Capacity is the maximum number of simultaneously live entities.
func (db *Database) Capacity() int {
	return db.pool.capacity()
}

// Alive reports whether e refers to a live entity. Handles of deleted entities stay
// dead even after their slot is reused.
func (db *Database) Alive(e EntityID) bool {
	return db.pool.alive(e)
}

func (db *Database) newEntity() EntityID {
	if db.pool.liveCount == db.pool.capacity() {
		db.fatal(CapacityExceededError{What: "entity", Capacity: db.pool.capacity()})
	}
	return db.pool.create()
}

// CreateEntity creates an entity with no components.
func (db *Database) CreateEntity() EntityID {
	db.checkUnlocked("CreateEntity")
	e := db.newEntity()
	empty := db.graph.empty()
	row := empty.addEntityRow(e)
	db.records.set(e, empty.id, row)
	return e
}

// CreateEntities creates n entities directly in the archetype of the given components,
// each component holding its registered default value.
func (db *Database) CreateEntities(n int, components ...ComponentTypeID) []EntityID {
	db.checkUnlocked("CreateEntities")
	if db.pool.liveCount+n > db.pool.capacity() {
		db.fatal(CapacityExceededError{What: "entity", Capacity: db.pool.capacity()})
	}
	for _, c := range components {
		db.componentInfo(c)
	}

	arch := db.graph.getOrCreate(components)
	entities := make([]EntityID, n)
	for i := range entities {
		e := db.pool.create()
		row := arch.addEntityRow(e)
		for col := range arch.columns {
			info := db.componentInfo(arch.columns[col].component)
			copy(arch.columns[col].bytes(row), info.defaults)
		}
		db.records.set(e, arch.id, row)
		entities[i] = e
	}
	return entities
}

// DeleteEntity removes e and all of its components. The handle is dead afterwards.
func (db *Database) DeleteEntity(e EntityID) {
	db.checkUnlocked("DeleteEntity")
	db.mustBeAlive(e)

	rec := db.records.get(e)
	arch := db.graph.get(rec.archetype)
	if moved := arch.removeEntityRow(rec.row); moved != InvalidEntity {
		db.records.setRow(moved, rec.row)
	}
	db.records.clear(e)
	db.pool.free(e)
}

// AddComponentByID adds component id to e with its registered default value.
func (db *Database) AddComponentByID(e EntityID, id ComponentTypeID) {
	db.addComponent("AddComponent", e, id, nil)
}

// RemoveComponentByID removes component id from e.
func (db *Database) RemoveComponentByID(e EntityID, id ComponentTypeID) {
	db.removeComponent("RemoveComponent", e, id)
}

func (db *Database) addComponent(op string, e EntityID, id ComponentTypeID, value []byte) {
	db.checkUnlocked(op)
	db.mustBeAlive(e)
	info := db.componentInfo(id)

	from := db.graph.get(db.records.get(e).archetype)
	if _, found := db.graph.columnFor(id, from.id); found {
		db.fatal(ComponentExistsError{Entity: e, Component: id})
	}
	if value == nil {
		value = info.defaults
	}
	to := db.graph.withComponent(from, id)
	db.graph.moveEntity(db.records, e, to, id, value)
}

func (db *Database) removeComponent(op string, e EntityID, id ComponentTypeID) {
	db.checkUnlocked(op)
	db.mustBeAlive(e)
	db.componentInfo(id)

	from := db.graph.get(db.records.get(e).archetype)
	if _, found := db.graph.columnFor(id, from.id); !found {
		db.fatal(ComponentNotFoundError{Entity: e, Component: id})
	}
	to := db.graph.withoutComponent(from, id)
	db.graph.moveEntity(db.records, e, to, id, nil)
}

// HasComponent reports whether the live entity e currently carries component id.
func (db *Database) HasComponent(e EntityID, id ComponentTypeID) bool {
	db.mustBeAlive(e)
	db.componentInfo(id)
	_, found := db.graph.columnFor(id, db.records.get(e).archetype)
	return found
}

// Components returns the component set of e in ascending ID order.
func (db *Database) Components(e EntityID) []ComponentTypeID {
	db.mustBeAlive(e)
	return slices.Clone(db.graph.get(db.records.get(e).archetype).components)
}

// componentPtr returns the address of component id of e. The address stays valid until
// the next structural mutation.
func (db *Database) componentPtr(e EntityID, id ComponentTypeID) (unsafe.Pointer, bool) {
	db.mustBeAlive(e)
	rec := db.records.get(e)
	col, found := db.graph.columnFor(id, rec.archetype)
	if !found {
		return nil, false
	}
	return db.graph.get(rec.archetype).columns[col].at(rec.row), true
}

// Locked reports whether structural mutations are currently refused.
func (db *Database) Locked() bool {
	return db.locks > 0
}

// Lock refuses structural mutations until the matching Unlock. Locks nest.
func (db *Database) Lock() {
	db.locks++
}

// Unlock releases one lock. Releasing the last lock applies every queued operation.
func (db *Database) Unlock() {
	if db.locks == 0 {
		return
	}
	db.locks--
	if db.locks == 0 {
		db.processOperationQueue()
	}
}
