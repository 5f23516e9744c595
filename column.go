package depot

import "unsafe"

// column is a fixed-capacity packed array of one component type. Elements live in a
// single byte buffer, rows [0, count) are valid and there are never holes.
type column struct {
	component ComponentTypeID
	size      int
	capacity  int
	count     int
	data      []byte
}

func newColumn(component ComponentTypeID, size uintptr, capacity int) column {
	return column{
		component: component,
		size:      int(size),
		capacity:  capacity,
		data:      make([]byte, int(size)*capacity),
	}
}

func (c *column) appendToEnd() int {
	if c.count == c.capacity {
		panic(CapacityExceededError{What: "column", Capacity: c.capacity})
	}
	row := c.count
	c.count++
	return row
}

func (c *column) bytes(row int) []byte {
	if row < 0 || row >= c.count {
		panic(RowOutOfRangeError{Row: row, Count: c.count})
	}
	off := row * c.size
	return c.data[off : off+c.size : off+c.size]
}

func (c *column) at(row int) unsafe.Pointer {
	if row < 0 || row >= c.count {
		panic(RowOutOfRangeError{Row: row, Count: c.count})
	}
	if c.size == 0 {
		return unsafe.Pointer(unsafe.SliceData(c.data))
	}
	return unsafe.Pointer(&c.data[row*c.size])
}

// removeAt swap-removes row and returns the row whose element now sits at row.
// When row was already last the returned row equals row.
func (c *column) removeAt(row int) int {
	if row < 0 || row >= c.count {
		panic(RowOutOfRangeError{Row: row, Count: c.count})
	}
	last := c.count - 1
	if row != last && c.size > 0 {
		copy(c.data[row*c.size:(row+1)*c.size], c.data[last*c.size:(last+1)*c.size])
	}
	c.count--
	return last
}
