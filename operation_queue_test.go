package depot

import (
	"testing"
)

func TestEnqueueDuringIteration(t *testing.T) {
	db, pos, vel, _ := newTestDatabase(t, 32)
	entities := db.CreateEntities(6, pos)
	for i, e := range entities {
		GetComponent[Position](db, e).X = float64(i)
	}

	q := NewQuery1[Position](db)
	for e, p := range q.All() {
		switch int(p.X) % 3 {
		case 0:
			EnqueueAddComponent(db, e, Velocity{X: p.X})
		case 1:
			db.EnqueueDeleteEntity(e)
		}
	}
	db.EnqueueCreateEntities(2, pos, vel)

	if db.Locked() {
		t.Fatal("database still locked after iteration")
	}
	snap := db.Snapshot()
	if snap.Entities != 6-2+2 {
		t.Errorf("entities = %d, want 6", snap.Entities)
	}
	for i, e := range entities {
		switch i % 3 {
		case 0:
			if got := GetComponent[Velocity](db, e).X; got != float64(i) {
				t.Errorf("entity %d Velocity.X = %v, want %d", i, got, i)
			}
		case 1:
			if db.Alive(e) {
				t.Errorf("entity %d alive after queued delete", i)
			}
		case 2:
			if HasComponent[Velocity](db, e) {
				t.Errorf("entity %d unexpectedly has Velocity", i)
			}
		}
	}
}

func TestEnqueueAppliedOnLastUnlock(t *testing.T) {
	db, pos, vel, _ := newTestDatabase(t, 8)
	e := db.CreateEntity()

	db.Lock()
	db.Lock()
	db.EnqueueAddComponentByID(e, pos)
	db.EnqueueCreateEntities(1, vel)

	db.Unlock()
	if HasComponent[Position](db, e) {
		t.Fatal("queued add applied before the last unlock")
	}
	db.Unlock()

	if !HasComponent[Position](db, e) {
		t.Error("queued add not applied")
	}
	if got := db.Query(With(vel)).Len(); got != 1 {
		t.Errorf("queued create produced %d entities with Velocity, want 1", got)
	}
}

func TestEnqueueDestroyCancelsComponentOps(t *testing.T) {
	db, pos, _, _ := newTestDatabase(t, 8)
	e := db.CreateEntity()
	db.AddComponentByID(e, pos)

	db.Lock()
	EnqueueRemoveComponent[Position](db, e)
	db.EnqueueDeleteEntity(e)
	db.EnqueueDeleteEntity(e)
	EnqueueAddComponent(db, e, Velocity{})
	db.Unlock()

	if db.Alive(e) {
		t.Error("entity alive after queued delete")
	}
	if got := db.Snapshot().Entities; got != 0 {
		t.Errorf("entities = %d, want 0", got)
	}
}

func TestEnqueueWhenUnlockedAppliesImmediately(t *testing.T) {
	db, pos, _, _ := newTestDatabase(t, 8)
	e := db.CreateEntity()

	db.EnqueueAddComponentByID(e, pos)
	if !HasComponent[Position](db, e) {
		t.Error("enqueue on an unlocked database was deferred")
	}
	db.EnqueueRemoveComponentByID(e, pos)
	if HasComponent[Position](db, e) {
		t.Error("enqueued remove on an unlocked database was deferred")
	}
	db.EnqueueDeleteEntity(e)
	if db.Alive(e) {
		t.Error("enqueued delete on an unlocked database was deferred")
	}
}
