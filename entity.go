package depot

import "fmt"

// EntityID encodes a 32-bit index in the lower bits and a 32-bit generation in the
// upper bits. Generations start at 1, so the zero value is never a live entity.
type EntityID uint64

// InvalidEntity is the handle that never refers to a live entity.
const InvalidEntity EntityID = 0

func newEntityID(index, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

func (id EntityID) Index() uint32      { return uint32(id) }
func (id EntityID) Generation() uint32 { return uint32(id >> 32) }
func (id EntityID) IsValid() bool      { return id != InvalidEntity }

func (id EntityID) String() string {
	if id == InvalidEntity {
		return "entity(invalid)"
	}
	return fmt.Sprintf("entity(%d@%d)", id.Index(), id.Generation())
}

// entityPool hands out entity handles from a fixed number of slots. Freed slots go
// on a free list and get their generation bumped so stale handles stop resolving.
type entityPool struct {
	generations []uint32
	live        []bool
	freeList    []uint32
	nextIndex   uint32
	liveCount   int
}

func newEntityPool(capacity int) *entityPool {
	return &entityPool{
		generations: make([]uint32, capacity),
		live:        make([]bool, capacity),
		freeList:    make([]uint32, 0, min(capacity, 256)),
	}
}

func (p *entityPool) capacity() int {
	return len(p.generations)
}

func (p *entityPool) create() EntityID {
	var idx uint32
	switch {
	case len(p.freeList) > 0:
		idx = p.freeList[len(p.freeList)-1]
		p.freeList = p.freeList[:len(p.freeList)-1]
	case int(p.nextIndex) < len(p.generations):
		idx = p.nextIndex
		p.nextIndex++
		p.generations[idx] = 1
	default:
		panic(CapacityExceededError{What: "entity", Capacity: len(p.generations)})
	}
	p.live[idx] = true
	p.liveCount++
	return newEntityID(idx, p.generations[idx])
}

func (p *entityPool) alive(id EntityID) bool {
	idx := id.Index()
	if id == InvalidEntity || idx >= p.nextIndex {
		return false
	}
	return p.live[idx] && p.generations[idx] == id.Generation()
}

func (p *entityPool) free(id EntityID) {
	if !p.alive(id) {
		panic(EntityNotAliveError{Entity: id})
	}
	idx := id.Index()
	p.live[idx] = false
	p.generations[idx]++
	if p.generations[idx] == 0 {
		p.generations[idx] = 1
	}
	p.freeList = append(p.freeList, idx)
	p.liveCount--
}
