package depot

// entityRecord locates a live entity: its archetype and its row inside it.
type entityRecord struct {
	archetype ArchetypeID
	row       int
}

// recordTable is indexed by entity index. Liveness is owned by the entity pool; a
// record is only meaningful while its entity is alive.
type recordTable struct {
	records []entityRecord
}

func newRecordTable(capacity int) *recordTable {
	return &recordTable{records: make([]entityRecord, capacity)}
}

func (t *recordTable) get(e EntityID) entityRecord {
	return t.records[e.Index()]
}

func (t *recordTable) set(e EntityID, arch ArchetypeID, row int) {
	t.records[e.Index()] = entityRecord{archetype: arch, row: row}
}

// setRow repoints an entity displaced by a swap-remove inside its own archetype.
func (t *recordTable) setRow(e EntityID, row int) {
	t.records[e.Index()].row = row
}

func (t *recordTable) clear(e EntityID) {
	t.records[e.Index()] = entityRecord{}
}
