package depot

import "slices"

type operation struct {
	typ    operationType
	amount int
	comps  []ComponentTypeID
	entity EntityID
	value  []byte
}

type operationType int

const (
	opCreate operationType = iota
	opDestroy
	opAddComponent
	opRemoveComponent
	opCancelled
)

// opQueue holds structural mutations requested while the database is locked. They are
// applied in three phases on the last Unlock: creates, component changes, destroys.
type opQueue struct {
	createOps      []operation
	componentOps   []operation
	destroyOps     []operation
	pendingDestroy map[EntityID]struct{}
	pendingMods    map[EntityID][]int
}

func newOpQueue() opQueue {
	return opQueue{
		pendingDestroy: make(map[EntityID]struct{}),
		pendingMods:    make(map[EntityID][]int),
	}
}

func (q *opQueue) empty() bool {
	return len(q.createOps) == 0 && len(q.componentOps) == 0 && len(q.destroyOps) == 0
}

func (q *opQueue) enqueueCreate(amount int, comps []ComponentTypeID) {
	q.createOps = append(q.createOps, operation{
		typ:    opCreate,
		amount: amount,
		comps:  slices.Clone(comps),
	})
}

func (q *opQueue) enqueueDestroy(e EntityID) {
	if _, exists := q.pendingDestroy[e]; exists {
		return
	}
	q.pendingDestroy[e] = struct{}{}

	// Component changes on an entity about to be destroyed are pointless.
	for _, idx := range q.pendingMods[e] {
		q.componentOps[idx].typ = opCancelled
	}
	delete(q.pendingMods, e)

	q.destroyOps = append(q.destroyOps, operation{typ: opDestroy, entity: e})
}

func (q *opQueue) enqueueComponentOp(typ operationType, e EntityID, comp ComponentTypeID, value []byte) {
	if _, isDestroyed := q.pendingDestroy[e]; isDestroyed {
		return
	}
	q.pendingMods[e] = append(q.pendingMods[e], len(q.componentOps))
	q.componentOps = append(q.componentOps, operation{
		typ:    typ,
		entity: e,
		comps:  []ComponentTypeID{comp},
		value:  slices.Clone(value),
	})
}

func (q *opQueue) take() opQueue {
	taken := *q
	*q = newOpQueue()
	return taken
}

// processOperationQueue applies everything queued while the database was locked.
// Operations on entities that died in the meantime are dropped.
func (db *Database) processOperationQueue() {
	if db.opQueue.empty() {
		return
	}
	queued := db.opQueue.take()

	for _, op := range queued.createOps {
		db.CreateEntities(op.amount, op.comps...)
	}

	for _, op := range queued.componentOps {
		if !db.Alive(op.entity) {
			continue
		}
		switch op.typ {
		case opAddComponent:
			db.addComponent("AddComponent", op.entity, op.comps[0], op.value)
		case opRemoveComponent:
			db.removeComponent("RemoveComponent", op.entity, op.comps[0])
		}
	}

	for _, op := range queued.destroyOps {
		if db.Alive(op.entity) {
			db.DeleteEntity(op.entity)
		}
	}
}

// EnqueueCreateEntities creates n entities with the given components now, or once the
// database unlocks.
func (db *Database) EnqueueCreateEntities(n int, components ...ComponentTypeID) {
	if !db.Locked() {
		db.CreateEntities(n, components...)
		return
	}
	for _, c := range components {
		db.componentInfo(c)
	}
	db.opQueue.enqueueCreate(n, components)
}

// EnqueueDeleteEntity deletes e now, or once the database unlocks.
func (db *Database) EnqueueDeleteEntity(e EntityID) {
	if !db.Locked() {
		db.DeleteEntity(e)
		return
	}
	db.mustBeAlive(e)
	db.opQueue.enqueueDestroy(e)
}

// EnqueueAddComponentByID is the untyped form of EnqueueAddComponent using the
// registered default value.
func (db *Database) EnqueueAddComponentByID(e EntityID, id ComponentTypeID) {
	if !db.Locked() {
		db.AddComponentByID(e, id)
		return
	}
	db.mustBeAlive(e)
	db.componentInfo(id)
	db.opQueue.enqueueComponentOp(opAddComponent, e, id, nil)
}

func (db *Database) EnqueueRemoveComponentByID(e EntityID, id ComponentTypeID) {
	if !db.Locked() {
		db.RemoveComponentByID(e, id)
		return
	}
	db.mustBeAlive(e)
	db.componentInfo(id)
	db.opQueue.enqueueComponentOp(opRemoveComponent, e, id, nil)
}
