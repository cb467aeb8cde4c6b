package domain

import (
	"fmt"
	"reflect"
)

// ValueID identifies a cached value object.
// Two ValueIDs are equal only when they denote the same underlying object:
// pointers by address, slices by backing array and length, and other
// comparable values by value. Non-comparable values, and values that are
// not equal to themselves such as NaN, are tied to their owner, so they never
// match a value held by anyone else.
//
// Distinct zero-size allocations (empty slices, pointers to empty structs)
// may share an address and therefore a ValueID. Such values are grouped
// together, which can hide a mismatch between them but never invents one.
type ValueID struct {
	typ   reflect.Type
	addr  uintptr
	n     int
	val   any
	owner any
}

// NewValueID derives the identity token of v.
func NewValueID(v any) ValueID {
	return valueID(v, nil)
}

func valueID(v any, owner any) ValueID {
	if v == nil {
		return ValueID{}
	}

	rv := reflect.ValueOf(v)
	id := ValueID{typ: rv.Type()}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		id.addr = rv.Pointer()
	case reflect.Slice:
		id.addr = rv.Pointer()
		id.n = rv.Len()
	default:
		// Values unequal to themselves, such as NaN, cannot be map keys.
		if rv.Comparable() && rv.Equal(rv) {
			id.val = v
			break
		}
		if owner == nil {
			owner = new(byte)
		}
		id.owner = owner
	}
	return id
}

// Type returns the dynamic type of the identified value, or nil for a nil value.
func (id ValueID) Type() reflect.Type {
	return id.typ
}

// String returns a short token of the form <type>#<identity>.
func (id ValueID) String() string {
	switch {
	case id.typ == nil:
		return "<nil>"
	case id.addr != 0:
		return fmt.Sprintf("%s#%x", id.typ, id.addr)
	case id.owner != nil:
		return fmt.Sprintf("%s#%p", id.typ, id.owner)
	default:
		return fmt.Sprintf("%s#%v", id.typ, id.val)
	}
}
