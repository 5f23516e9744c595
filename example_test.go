package depot_test

import (
	"fmt"

	"github.com/TheBitDrifter/depot"
)

// Position is a simple component for 2D coordinates
type Position struct {
	X float64
	Y float64
}

// Velocity is a simple component for 2D movement
type Velocity struct {
	X float64
	Y float64
}

// Player tags the entity controlled by the user
type Player struct{}

// Example shows basic depot usage with entity creation and queries
func Example_basic() {
	db := depot.Factory.NewDatabase(depot.WithMaxEntities(64))

	// Register components
	position := depot.RegisterComponent[Position](db)
	velocity := depot.RegisterComponentWithDefault(db, Velocity{X: 1, Y: 1})
	depot.RegisterComponent[Player](db)

	// Create entities
	db.CreateEntities(5, position)
	db.CreateEntities(3, position, velocity)

	// Create the player one component at a time
	player := db.CreateEntity()
	depot.AddComponent(db, player, Position{X: 10, Y: 20})
	depot.AddComponent(db, player, Velocity{X: 1, Y: 2})
	depot.AddComponent(db, player, Player{})

	// Query for all entities with position and velocity
	movers := depot.NewQuery2[Position, Velocity](db)
	fmt.Printf("Found %d entities with position and velocity\n", movers.Len())

	for pos, vel := range movers.All() {
		pos.X += vel.X
		pos.Y += vel.Y
	}

	pos := depot.GetComponent[Position](db, player)
	fmt.Printf("Player moved to (%.1f, %.1f)\n", pos.X, pos.Y)

	snap := db.Snapshot()
	fmt.Printf("%d entities in %d archetypes\n", snap.Entities, snap.Archetypes)

	// Output:
	// Found 4 entities with position and velocity
	// Player moved to (11.0, 22.0)
	// 9 entities in 4 archetypes
}

// Example_queries shows how to use filters
func Example_queries() {
	db := depot.Factory.NewDatabase(depot.WithMaxEntities(64))

	position := depot.RegisterComponent[Position](db)
	velocity := depot.RegisterComponent[Velocity](db)
	player := depot.RegisterComponent[Player](db)

	db.CreateEntities(3, position)
	db.CreateEntities(3, position, velocity)
	db.CreateEntities(3, position, player)
	db.CreateEntities(3, position, velocity, player)

	// With: entities with position AND velocity
	query := db.Query(depot.With(position, velocity))
	fmt.Printf("With query matched %d entities\n", query.Len())

	// WithAny: entities with velocity OR player
	query = db.Query(depot.Factory.NewFilter().WithAny(velocity, player))
	fmt.Printf("WithAny query matched %d entities\n", query.Len())

	// Without: entities with position but NOT velocity
	query = db.Query(depot.With(position).Without(velocity))
	fmt.Printf("Without query matched %d entities\n", query.Len())

	// Output:
	// With query matched 6 entities
	// WithAny query matched 9 entities
	// Without query matched 6 entities
}

// Example_deferred shows structural changes requested while iterating
func Example_deferred() {
	db := depot.Factory.NewDatabase(depot.WithMaxEntities(16))
	depot.RegisterComponent[Position](db)
	velocity := depot.RegisterComponent[Velocity](db)

	for i := range 4 {
		e := db.CreateEntity()
		depot.AddComponent(db, e, Position{X: float64(i)})
	}

	cursor := db.Query(depot.With(depot.ComponentID[Position](db))).Cursor()
	for cursor.Next() {
		if depot.Get[Position](cursor).X >= 2 {
			db.EnqueueAddComponentByID(cursor.Entity(), velocity)
		}
	}

	fmt.Printf("%d entities gained velocity\n", db.Query(depot.With(velocity)).Len())

	// Output:
	// 2 entities gained velocity
}
