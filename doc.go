/*
Package depot provides an archetype-based entity database for games and simulations.

Entities with the same set of component types live together in one archetype table,
where every component type is a densely packed column. Adding or removing a component
moves the entity's row to the table of its new component set; deleting an entity
swap-removes its row so tables never have holes.

Core Concepts:

  - Entity: a generational handle. Handles of deleted entities never resolve again.
  - Component: plain, pointer-free data registered once per database.
  - Archetype: the table holding every entity with one exact component set.
  - Query: the archetypes whose component set contains the requested components.

Basic Usage:

	db := depot.Factory.NewDatabase(depot.WithMaxEntities(1024))

	depot.RegisterComponent[Position](db)
	depot.RegisterComponentWithDefault(db, Velocity{X: 1})

	e := db.CreateEntity()
	depot.AddComponent(db, e, Position{X: 10})
	depot.AddDefaultComponent[Velocity](db, e)

	query := depot.NewQuery2[Position, Velocity](db)
	for pos, vel := range query.All() {
		pos.X += vel.X
		pos.Y += vel.Y
	}

Structural mutations are not allowed while a query is iterating. Use the Enqueue
variants from inside a loop; they are applied when iteration ends.

Capacity is fixed per database: every column is provisioned for WithMaxEntities rows up
front, and running out of room panics instead of growing.
*/
package depot
