package main

import (
	"go.uber.org/zap"

	"github.com/TheBitDrifter/depot"
	"github.com/TheBitDrifter/depot/internal/config"
)

type Position struct{ X, Y float64 }

type Velocity struct{ X, Y float64 }

// Lifetime counts down once per tick. Movers at zero are despawned and replaced.
type Lifetime struct{ Remaining int32 }

type simulation struct {
	db  *depot.Database
	cfg config.SimulationConfig
	log *zap.Logger

	position, velocity, lifetime depot.ComponentTypeID

	moving *depot.Query2[Position, Velocity]
	aging  *depot.Query1[Lifetime]
	still  *depot.Query

	despawned int
}

func newSimulation(db *depot.Database, cfg config.SimulationConfig, log *zap.Logger) *simulation {
	return &simulation{
		db:       db,
		cfg:      cfg,
		log:      log,
		position: depot.RegisterComponent[Position](db),
		velocity: depot.RegisterComponentWithDefault(db, Velocity{X: 1, Y: 0.5}),
		lifetime: depot.RegisterComponentWithDefault(db, Lifetime{Remaining: int32(cfg.Lifetime)}),
	}
}

func (s *simulation) spawn() {
	s.db.CreateEntities(s.cfg.Statics, s.position)
	movers := s.db.CreateEntities(s.cfg.Movers, s.position, s.velocity, s.lifetime)
	for i, e := range movers {
		// Stagger expiry so replacements trickle in instead of arriving in one wave.
		depot.GetComponent[Lifetime](s.db, e).Remaining = int32(1 + i%s.cfg.Lifetime)
		v := depot.GetComponent[Velocity](s.db, e)
		v.X += float64(i % 7)
		v.Y -= float64(i % 3)
	}

	s.moving = depot.NewQuery2[Position, Velocity](s.db)
	s.aging = depot.NewQuery1[Lifetime](s.db)
	s.still = s.db.Query(depot.With(s.position).Without(s.velocity))
	s.log.Debug("queries resolved",
		zap.Int("moving", s.moving.Len()),
		zap.Int("aging", s.aging.Len()),
		zap.Int("still", s.still.Len()))
}

// step integrates positions, ages movers and replaces the expired ones.
func (s *simulation) step(dt float64) {
	s.moving.Each(func(p *Position, v *Velocity) {
		p.X += v.X * dt
		p.Y += v.Y * dt
	})

	expired := 0
	for e, life := range s.aging.All() {
		life.Remaining--
		if life.Remaining <= 0 {
			s.db.EnqueueDeleteEntity(e)
			expired++
		}
	}
	if expired == 0 {
		return
	}
	s.despawned += expired
	s.db.CreateEntities(expired, s.position, s.velocity, s.lifetime)
}

func (s *simulation) statics() int {
	return s.still.Len()
}
