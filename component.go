package depot

import (
	"reflect"
	"slices"
	"unsafe"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
)

// MaxComponentTypes bounds how many component types one database can register. IDs are
// dense per database, so every ID fits an archetype signature.
var MaxComponentTypes = int(mask.MaxBits)

// ComponentTypeID is the stable numeric handle of a registered component type.
type ComponentTypeID uint32

// Component is the schema element backing a registered component type.
type Component interface {
	table.ElementType
}

// ComponentInfo describes a registered component type.
type ComponentInfo struct {
	ID    ComponentTypeID
	Name  string
	Size  uintptr
	Align uintptr
}

type componentInfo struct {
	ComponentInfo
	elem     Component
	typ      reflect.Type
	defaults []byte
}

type componentRegistry struct {
	schema table.Schema
	byType map[reflect.Type]*componentInfo
	byID   map[ComponentTypeID]*componentInfo
	byName map[string]ComponentTypeID
	order  []ComponentTypeID
}

func newComponentRegistry() *componentRegistry {
	return &componentRegistry{
		schema: table.Factory.NewSchema(),
		byType: make(map[reflect.Type]*componentInfo),
		byID:   make(map[ComponentTypeID]*componentInfo),
		byName: make(map[string]ComponentTypeID),
	}
}

// validate reports why typ cannot be registered, if it cannot.
func (r *componentRegistry) validate(typ reflect.Type) error {
	if _, found := r.byType[typ]; found {
		return ComponentAlreadyRegisteredError{Type: typ}
	}
	if !pointerFree(typ) {
		return UnsupportedComponentError{Type: typ, Reason: "component data must not contain Go pointers"}
	}
	if len(r.order) >= MaxComponentTypes {
		return CapacityExceededError{What: "component type", Capacity: MaxComponentTypes}
	}
	return nil
}

func (r *componentRegistry) register(typ reflect.Type, elem Component, defaults []byte) (*componentInfo, error) {
	if err := r.validate(typ); err != nil {
		return nil, err
	}

	// The schema tracks element identity only; its row indexes come from a process-wide
	// counter and are not usable as signature bits.
	r.schema.Register(elem)
	id := ComponentTypeID(len(r.order))

	info := &componentInfo{
		ComponentInfo: ComponentInfo{
			ID:    id,
			Name:  typ.String(),
			Size:  typ.Size(),
			Align: uintptr(typ.Align()),
		},
		elem:     elem,
		typ:      typ,
		defaults: slices.Clone(defaults),
	}
	r.byType[typ] = info
	r.byID[id] = info
	r.byName[info.Name] = id
	r.order = append(r.order, id)
	return info, nil
}

func (r *componentRegistry) lookupType(typ reflect.Type) (*componentInfo, bool) {
	info, ok := r.byType[typ]
	return info, ok
}

func (r *componentRegistry) lookupID(id ComponentTypeID) (*componentInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// pointerFree reports whether values of t can be copied byte for byte without
// hiding references from the garbage collector.
func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func valueBytes[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}
