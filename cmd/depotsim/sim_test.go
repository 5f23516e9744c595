package main

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/TheBitDrifter/depot"
	"github.com/TheBitDrifter/depot/internal/config"
)

func newTestSimulation(t *testing.T) *simulation {
	t.Helper()
	log := zaptest.NewLogger(t)
	db := depot.Factory.NewDatabase(depot.WithMaxEntities(32), depot.WithLogger(log))
	sim := newSimulation(db, config.SimulationConfig{Movers: 10, Statics: 5, Lifetime: 4}, log)
	sim.spawn()
	return sim
}

func TestSimulationStepMovesOnlyMovers(t *testing.T) {
	sim := newTestSimulation(t)

	var mover, static depot.EntityID
	for e := range sim.db.Query(depot.With(sim.position, sim.velocity)).Entities() {
		if depot.GetComponent[Lifetime](sim.db, e).Remaining == 2 {
			mover = e
			break
		}
	}
	for e := range sim.still.Entities() {
		static = e
		break
	}

	sim.step(1)

	if got := *depot.GetComponent[Position](sim.db, mover); got != (Position{X: 2, Y: -0.5}) {
		t.Errorf("mover position = %+v, want {2 -0.5}", got)
	}
	if got := *depot.GetComponent[Position](sim.db, static); got != (Position{}) {
		t.Errorf("static position = %+v, want zero", got)
	}
}

func TestSimulationReplacesExpiredMovers(t *testing.T) {
	sim := newTestSimulation(t)

	wantDespawned := []int{3, 6, 8, 10}
	for tick, want := range wantDespawned {
		sim.step(0.1)
		if sim.despawned != want {
			t.Fatalf("tick %d: despawned = %d, want %d", tick+1, sim.despawned, want)
		}
		if got := sim.db.Snapshot().Entities; got != 15 {
			t.Fatalf("tick %d: entities = %d, want 15", tick+1, got)
		}
		if sim.db.Locked() {
			t.Fatalf("tick %d: database still locked", tick+1)
		}
	}
	if got := sim.statics(); got != 5 {
		t.Errorf("statics = %d, want 5", got)
	}
	if got := sim.moving.Len(); got != 10 {
		t.Errorf("movers = %d, want 10", got)
	}
}
