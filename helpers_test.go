package depot

import (
	"errors"
	"testing"

	"go.uber.org/zap/zaptest"
)

// Test component types
type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

type Health struct {
	Current, Max int32
}

type Frozen struct{}

func catchPanic(fn func()) (recovered any) {
	defer func() {
		recovered = recover()
	}()
	fn()
	return nil
}

// expectPanic runs fn and fails the test unless it panics with an error of type E.
func expectPanic[E error](t *testing.T, fn func()) E {
	t.Helper()
	var target E
	r := catchPanic(fn)
	if r == nil {
		t.Fatalf("expected panic with %T, got none", target)
	}
	err, ok := r.(error)
	if !ok {
		t.Fatalf("panic value %v (%T) is not an error", r, r)
	}
	if !errors.As(err, &target) {
		t.Fatalf("panic %v (%T), want %T", err, err, target)
	}
	return target
}

func newTestDatabase(t *testing.T, maxEntities int) (*Database, ComponentTypeID, ComponentTypeID, ComponentTypeID) {
	t.Helper()
	db := Factory.NewDatabase(WithMaxEntities(maxEntities), WithLogger(zaptest.NewLogger(t)))
	pos := RegisterComponent[Position](db)
	vel := RegisterComponent[Velocity](db)
	health := RegisterComponentWithDefault(db, Health{Current: 100, Max: 100})
	return db, pos, vel, health
}
