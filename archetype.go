package depot

import (
	"github.com/TheBitDrifter/mask"
	"github.com/kamstrup/intmap"
)

// ArchetypeID identifies an archetype inside one database. The empty archetype is 0.
type ArchetypeID uint32

// archetype stores every entity sharing one signature. Row r of every column belongs to
// rowToEntity[r].
type archetype struct {
	id          ArchetypeID
	signature   mask.Mask
	components  []ComponentTypeID
	columns     []column
	rowToEntity []EntityID
	count       int

	addEdges    *intmap.Map[ComponentTypeID, ArchetypeID]
	removeEdges *intmap.Map[ComponentTypeID, ArchetypeID]
}

func newArchetype(id ArchetypeID, signature mask.Mask, components []ComponentTypeID, infos []*componentInfo, capacity int) *archetype {
	columns := make([]column, len(infos))
	for i, info := range infos {
		columns[i] = newColumn(info.ID, info.Size, capacity)
	}
	return &archetype{
		id:          id,
		signature:   signature,
		components:  components,
		columns:     columns,
		rowToEntity: make([]EntityID, capacity),
		addEdges:    intmap.New[ComponentTypeID, ArchetypeID](4),
		removeEdges: intmap.New[ComponentTypeID, ArchetypeID](4),
	}
}

func (a *archetype) ID() ArchetypeID {
	return a.id
}

func (a *archetype) Len() int {
	return a.count
}

func (a *archetype) addEntityRow(e EntityID) int {
	if a.count == len(a.rowToEntity) {
		panic(CapacityExceededError{What: "archetype", Capacity: len(a.rowToEntity)})
	}
	row := a.count
	for i := range a.columns {
		// All columns share capacity and count, so none of these can fail here.
		a.columns[i].appendToEnd()
	}
	a.rowToEntity[row] = e
	a.count++
	return row
}

// removeEntityRow swap-removes row from every column and returns the entity that now
// occupies row, or InvalidEntity when row was the last one.
func (a *archetype) removeEntityRow(row int) EntityID {
	if row < 0 || row >= a.count {
		panic(RowOutOfRangeError{Row: row, Count: a.count})
	}
	last := a.count - 1
	for i := range a.columns {
		a.columns[i].removeAt(row)
	}
	moved := InvalidEntity
	if row != last {
		moved = a.rowToEntity[last]
		a.rowToEntity[row] = moved
	}
	a.rowToEntity[last] = InvalidEntity
	a.count--
	return moved
}

func (a *archetype) entityAt(row int) EntityID {
	if row < 0 || row >= a.count {
		panic(RowOutOfRangeError{Row: row, Count: a.count})
	}
	return a.rowToEntity[row]
}
