package depot

import (
	"reflect"

	"github.com/TheBitDrifter/table"
)

// RegisterComponent registers T with its zero value as default. Registering the same
// type twice is a programmer error and panics.
func RegisterComponent[T any](db *Database) ComponentTypeID {
	var zero T
	return RegisterComponentWithDefault(db, zero)
}

// RegisterComponentWithDefault registers T; def is written whenever T is added without
// an explicit value.
func RegisterComponentWithDefault[T any](db *Database, def T) ComponentTypeID {
	typ := reflect.TypeFor[T]()
	if err := db.registry.validate(typ); err != nil {
		db.fatal(err)
	}
	info, err := db.registry.register(typ, table.FactoryNewElementType[T](), valueBytes(&def))
	if err != nil {
		db.fatal(err)
	}
	return info.ID
}

// ComponentID returns the ID T was registered under and panics when T is unknown.
func ComponentID[T any](db *Database) ComponentTypeID {
	return typeInfo[T](db).ID
}

func typeInfo[T any](db *Database) *componentInfo {
	typ := reflect.TypeFor[T]()
	info, ok := db.registry.lookupType(typ)
	if !ok {
		db.fatal(ComponentNotRegisteredError{Type: typ})
	}
	return info
}

// AddComponent moves e into the archetype that also holds T and stores value there.
func AddComponent[T any](db *Database, e EntityID, value T) {
	db.addComponent("AddComponent", e, typeInfo[T](db).ID, valueBytes(&value))
}

// AddDefaultComponent adds T to e holding the default registered for T.
func AddDefaultComponent[T any](db *Database, e EntityID) {
	db.addComponent("AddComponent", e, typeInfo[T](db).ID, nil)
}

func RemoveComponent[T any](db *Database, e EntityID) {
	db.removeComponent("RemoveComponent", e, typeInfo[T](db).ID)
}

func HasComponent[T any](db *Database, e EntityID) bool {
	return db.HasComponent(e, typeInfo[T](db).ID)
}

// GetComponent returns the T of e. The pointer is valid until the next structural
// mutation of the database. Panics when e does not carry T.
func GetComponent[T any](db *Database, e EntityID) *T {
	id := typeInfo[T](db).ID
	ptr, found := db.componentPtr(e, id)
	if !found {
		db.fatal(ComponentNotFoundError{Entity: e, Component: id})
	}
	return (*T)(ptr)
}

// TryGetComponent is GetComponent that reports a missing component instead of
// panicking. Dead entities and unregistered types still panic.
func TryGetComponent[T any](db *Database, e EntityID) (*T, bool) {
	ptr, found := db.componentPtr(e, typeInfo[T](db).ID)
	if !found {
		return nil, false
	}
	return (*T)(ptr), true
}

// EnqueueAddComponent adds T to e now, or once the database unlocks when iteration
// is in progress.
func EnqueueAddComponent[T any](db *Database, e EntityID, value T) {
	id := typeInfo[T](db).ID
	if !db.Locked() {
		db.addComponent("AddComponent", e, id, valueBytes(&value))
		return
	}
	db.mustBeAlive(e)
	db.opQueue.enqueueComponentOp(opAddComponent, e, id, valueBytes(&value))
}

// EnqueueRemoveComponent removes T from e now, or once the database unlocks.
func EnqueueRemoveComponent[T any](db *Database, e EntityID) {
	id := typeInfo[T](db).ID
	if !db.Locked() {
		db.removeComponent("RemoveComponent", e, id)
		return
	}
	db.mustBeAlive(e)
	db.opQueue.enqueueComponentOp(opRemoveComponent, e, id, nil)
}
