package bench

import (
	"testing"

	"github.com/TheBitDrifter/depot"
)

const (
	nPos    = 9000
	nPosVel = 1000
)

type Position struct {
	X float64
	Y float64
}

type Velocity struct {
	X float64
	Y float64
}

func newDatabase() (*depot.Database, depot.ComponentTypeID, depot.ComponentTypeID) {
	db := depot.Factory.NewDatabase(depot.WithMaxEntities(nPos + nPosVel + 1))
	position := depot.RegisterComponent[Position](db)
	velocity := depot.RegisterComponentWithDefault(db, Velocity{X: 1, Y: 1})
	return db, position, velocity
}

func BenchmarkIterDepotQuery2(b *testing.B) {
	b.StopTimer()
	db, position, velocity := newDatabase()
	db.CreateEntities(nPos, position)
	db.CreateEntities(nPosVel, position, velocity)
	query := depot.NewQuery2[Position, Velocity](db)
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		for pos, vel := range query.All() {
			pos.X += vel.X
			pos.Y += vel.Y
		}
	}
}

func BenchmarkIterDepotCursor(b *testing.B) {
	b.StopTimer()
	db, position, velocity := newDatabase()
	db.CreateEntities(nPos, position)
	db.CreateEntities(nPosVel, position, velocity)
	cursor := db.Query(depot.With(position, velocity)).Cursor()
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		for cursor.Next() {
			pos := (*Position)(cursor.Field(0))
			vel := (*Velocity)(cursor.Field(1))
			pos.X += vel.X
			pos.Y += vel.Y
		}
	}
}

func BenchmarkAddRemoveDepot(b *testing.B) {
	b.StopTimer()
	db, position, velocity := newDatabase()
	entity := db.CreateEntities(1, position)[0]
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		db.AddComponentByID(entity, velocity)
		db.RemoveComponentByID(entity, velocity)
	}
}
