package inspect

import (
	"reflect"
	"strconv"
	"sync"
)

// maxArrayFields bounds the scalars an array may expand to. Larger arrays,
// such as landscape vertex grids, are not exposed.
const maxArrayFields = 64

var (
	bytesType     = reflect.TypeFor[[]byte]()
	validatorType = reflect.TypeFor[validator]()
	stringerType  = reflect.TypeFor[interface{ String() string }]()
)

type validator interface {
	Valid() bool
}

// step is one hop from a struct to a nested value: a field or array index.
type step struct {
	field int
	index int
	array bool
}

// leaf describes one scalar field of a record type.
type leaf struct {
	path  string
	name  string
	kind  Kind
	typ   reflect.Type
	steps []step
}

// layout is the flattened leaf list of a record type.
type layout struct {
	leaves []leaf
	byPath map[string]int
}

var layouts sync.Map // reflect.Type -> *layout

func layoutOf(t reflect.Type) *layout {
	if l, ok := layouts.Load(t); ok {
		return l.(*layout)
	}

	l := &layout{byPath: make(map[string]int)}
	l.walkStruct(t, "", "", nil)
	for i, s := range l.leaves {
		l.byPath[s.path] = i
	}

	actual, _ := layouts.LoadOrStore(t, l)

	return actual.(*layout)
}

// walkStruct adds the fields of t. A non-empty label prefixes the display
// names, which tells apart the elements of an array of structs.
func (l *layout) walkStruct(t reflect.Type, path, label string, steps []step) {
	for i := range t.NumField() {
		f := t.Field(i)
		next := append(steps[:len(steps):len(steps)], step{field: i})

		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			l.walkStruct(f.Type, path, label, next)
			continue
		}
		if !f.IsExported() {
			continue
		}

		name := displayName(f.Name)
		if label != "" {
			name = label + " " + name
		}
		l.walk(f.Type, join(path, pathName(f.Name)), name, next)
	}
}

func (l *layout) walk(t reflect.Type, path, name string, steps []step) {
	elem := t
	if t.Kind() == reflect.Pointer {
		elem = t.Elem()
	}

	switch {
	case t == bytesType:
		l.add(path, name, KindBytes, t, steps)
	case t.Kind() == reflect.Interface:
		l.add(path, name, KindAny, t, steps)
	case elem.Kind() == reflect.Struct:
		label := ""
		if steps[len(steps)-1].array {
			label = name
		}
		l.walkStruct(elem, path, label, steps)
	case elem.Kind() == reflect.Array:
		if scalarCount(elem) > maxArrayFields {
			return
		}
		for i := range elem.Len() {
			idx := strconv.Itoa(i)
			next := append(steps[:len(steps):len(steps)], step{index: i, array: true})
			l.walk(elem.Elem(), join(path, idx), name+" "+idx, next)
		}
	default:
		if kind, ok := kindOf(elem); ok {
			l.add(path, name, kind, t, steps)
		}
	}
}

func (l *layout) add(path, name string, kind Kind, t reflect.Type, steps []step) {
	l.leaves = append(l.leaves, leaf{path: path, name: name, kind: kind, typ: t, steps: steps})
}

func kindOf(t reflect.Type) (Kind, bool) {
	switch t.Kind() {
	case reflect.String:
		return KindString, true
	case reflect.Bool:
		return KindBool, true
	case reflect.Float32, reflect.Float64:
		return KindFloat, true
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		if k, ok := namedIntKind(t); ok {
			return k, true
		}
		return KindInt, true
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		if k, ok := namedIntKind(t); ok {
			return k, true
		}
		return KindUint, true
	default:
		return 0, false
	}
}

func namedIntKind(t reflect.Type) (Kind, bool) {
	switch {
	case t.Implements(validatorType):
		return KindEnum, true
	case t.Implements(stringerType):
		return KindFlags, true
	default:
		return 0, false
	}
}

func scalarCount(t reflect.Type) int {
	switch t.Kind() {
	case reflect.Array:
		return t.Len() * scalarCount(t.Elem())
	case reflect.Struct:
		n := 0
		for i := range t.NumField() {
			n += scalarCount(t.Field(i).Type)
		}
		return n
	default:
		return 1
	}
}

func join(prefix, segment string) string {
	if prefix == "" {
		return segment
	}

	return prefix + "." + segment
}

// resolve follows steps from root. Nil pointers on the way stop the walk
// unless alloc is set, in which case they are allocated. The returned value
// is the leaf itself, which may be a nil pointer or interface.
func resolve(root reflect.Value, steps []step, alloc bool) (reflect.Value, bool) {
	v := root
	for _, s := range steps {
		if v.Kind() == reflect.Pointer {
			if v.IsNil() {
				if !alloc {
					return reflect.Value{}, false
				}
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		if s.array {
			v = v.Index(s.index)
		} else {
			v = v.Field(s.field)
		}
	}

	return v, true
}
