package depot

import (
	"fmt"
	"reflect"
)

// LockedDatabaseError is raised when a structural mutation is attempted while a
// cursor or an explicit Lock holds the database.
type LockedDatabaseError struct {
	Op string
}

func (e LockedDatabaseError) Error() string {
	return fmt.Sprintf("database is currently locked: %s not allowed during iteration", e.Op)
}

type CapacityExceededError struct {
	What     string
	Capacity int
}

func (e CapacityExceededError) Error() string {
	return fmt.Sprintf("%s capacity exceeded (%d)", e.What, e.Capacity)
}

type EntityNotAliveError struct {
	Entity EntityID
}

func (e EntityNotAliveError) Error() string {
	return fmt.Sprintf("entity %v is not alive", e.Entity)
}

type ComponentNotRegisteredError struct {
	Type reflect.Type
	ID   ComponentTypeID
}

func (e ComponentNotRegisteredError) Error() string {
	if e.Type != nil {
		return fmt.Sprintf("component type %v not registered", e.Type)
	}
	return fmt.Sprintf("component id %d not registered", e.ID)
}

type ComponentAlreadyRegisteredError struct {
	Type reflect.Type
}

func (e ComponentAlreadyRegisteredError) Error() string {
	return fmt.Sprintf("component type %v already registered", e.Type)
}

// UnsupportedComponentError reports a component type that cannot live in a byte
// column, usually because it holds Go pointers.
type UnsupportedComponentError struct {
	Type   reflect.Type
	Reason string
}

func (e UnsupportedComponentError) Error() string {
	return fmt.Sprintf("component type %v unsupported: %s", e.Type, e.Reason)
}

type ComponentExistsError struct {
	Entity    EntityID
	Component ComponentTypeID
}

func (e ComponentExistsError) Error() string {
	return fmt.Sprintf("component %d already exists on entity %v", e.Component, e.Entity)
}

type ComponentNotFoundError struct {
	Entity    EntityID
	Component ComponentTypeID
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component %d does not exist on entity %v", e.Component, e.Entity)
}

type RowOutOfRangeError struct {
	Row   int
	Count int
}

func (e RowOutOfRangeError) Error() string {
	return fmt.Sprintf("row %d out of range (count %d)", e.Row, e.Count)
}
