// Package inspect gives editors generic access to the fields of a record.
//
// Every record kind is flattened into a list of scalar leaves addressed by
// dotted paths built from the Go field names: MiscItem.Data.Weight is
// "data.weight", Class.Data.MajorSkills[2] is "data.majorSkills.2". The
// header flags shared by all kinds are "flags". Repeated sub-structures held
// in slices (inventories, effects, references) are not leaves; editors reach
// them through the record type directly.
//
// The layout depends only on the record kind. Optional values, such as a
// creature's scale or an interior cell's atmosphere, are listed even when
// absent; Value reports them as nil and Set allocates them.
package inspect

import (
	"fmt"
	"math"
	"reflect"

	"github.com/arloliu/tes3/errs"
	"github.com/arloliu/tes3/esp"
)

// Field is one leaf of a record.
type Field struct {
	// Path addresses the field in Get and Set, for example "data.weight".
	Path string
	// Name is the display label, for example "Weight".
	Name string
	// Kind classifies the value.
	Kind Kind

	root reflect.Value
	leaf *leaf
}

// Value returns the current value with its declared type, for example an
// esp.WeaponType. Absent optional values return nil.
func (f Field) Value() any {
	v, ok := resolve(f.root, f.leaf.steps, false)
	if !ok {
		return nil
	}
	if v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if f.Kind == KindBytes {
		return append([]byte(nil), v.Bytes()...)
	}

	return v.Interface()
}

// Set assigns value to the field. See the package level Set.
func (f Field) Set(value any) error {
	return set(f.root, f.leaf, value)
}

// Fields lists the leaves of rec in declaration order.
func Fields(rec esp.Record) []Field {
	root, ok := recordValue(rec)
	if !ok {
		return nil
	}

	l := layoutOf(root.Type())
	fields := make([]Field, len(l.leaves))
	for i := range l.leaves {
		s := &l.leaves[i]
		fields[i] = Field{Path: s.path, Name: s.name, Kind: s.kind, root: root, leaf: s}
	}

	return fields
}

// Lookup returns the field of rec at path.
func Lookup(rec esp.Record, path string) (Field, error) {
	root, ok := recordValue(rec)
	if !ok {
		return Field{}, fmt.Errorf("%w: %q on nil record", errs.ErrInvalidFieldPath, path)
	}

	l := layoutOf(root.Type())
	i, ok := l.byPath[path]
	if !ok {
		return Field{}, fmt.Errorf("%w: %q in %s", errs.ErrInvalidFieldPath, path, rec.TypeName())
	}
	s := &l.leaves[i]

	return Field{Path: s.path, Name: s.name, Kind: s.kind, root: root, leaf: s}, nil
}

// Get returns the value at path. Absent optional values return nil.
func Get(rec esp.Record, path string) (any, error) {
	f, err := Lookup(rec, path)
	if err != nil {
		return nil, err
	}

	return f.Value(), nil
}

// Set assigns value to the field at path.
//
// Numeric values convert between Go types when they fit: an int
// may set a uint16 field if it is in range, and a float64 may set an int32
// field if it is integral. Enum fields accept only values for which Valid
// reports true. A nil value clears an optional field. Missing optional
// parents are allocated.
//
// Parameters:
//   - rec: Record to modify
//   - path: Field path as listed by Fields
//   - value: New value
//
// Returns:
//   - error: errs.ErrInvalidFieldPath for an unknown path, or
//     errs.ErrFieldTypeMismatch when value cannot be stored in the field
func Set(rec esp.Record, path string, value any) error {
	f, err := Lookup(rec, path)
	if err != nil {
		return err
	}

	return f.Set(value)
}

func recordValue(rec esp.Record) (reflect.Value, bool) {
	if rec == nil {
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(rec)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, false
	}

	return v.Elem(), true
}

func set(root reflect.Value, s *leaf, value any) error {
	mismatch := func(detail string) error {
		return fmt.Errorf("%w: %s: %s", errs.ErrFieldTypeMismatch, s.path, detail)
	}

	src := reflect.ValueOf(value)
	optional := s.typ.Kind() == reflect.Pointer

	if value == nil {
		if !optional && s.kind != KindAny {
			return mismatch("nil for required field")
		}
		if dst, ok := resolve(root, s.steps, false); ok {
			dst.SetZero()
		}
		return nil
	}

	elemType := s.typ
	if optional {
		elemType = s.typ.Elem()
	}

	candidate := reflect.New(elemType).Elem()
	switch s.kind {
	case KindAny:
		if !src.Type().Implements(elemType) {
			return mismatch(fmt.Sprintf("%T does not implement %s", value, elemType))
		}
		candidate.Set(src)
	case KindBytes:
		b, ok := value.([]byte)
		if !ok {
			return mismatch(fmt.Sprintf("%T is not []byte", value))
		}
		candidate.SetBytes(append([]byte(nil), b...))
	case KindString:
		if src.Kind() != reflect.String {
			return mismatch(fmt.Sprintf("%T is not a string", value))
		}
		candidate.SetString(src.String())
	case KindBool:
		if src.Kind() != reflect.Bool {
			return mismatch(fmt.Sprintf("%T is not a bool", value))
		}
		candidate.SetBool(src.Bool())
	default:
		if err := setNumber(candidate, src); err != nil {
			return mismatch(err.Error())
		}
		if s.kind == KindEnum {
			if v, ok := candidate.Interface().(validator); ok && !v.Valid() {
				return mismatch(fmt.Sprintf("invalid %s value %v", elemType.Name(), value))
			}
		}
	}

	dst, _ := resolve(root, s.steps, true)
	if optional {
		p := reflect.New(elemType)
		p.Elem().Set(candidate)
		dst.Set(p)

		return nil
	}
	dst.Set(candidate)

	return nil
}

// setNumber stores src in dst when the conversion is exact.
func setNumber(dst, src reflect.Value) error {
	switch src.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return setInt(dst, src.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := src.Uint()
		if u > math.MaxInt64 {
			if dst.CanUint() && !dst.OverflowUint(u) {
				dst.SetUint(u)
				return nil
			}
			return fmt.Errorf("%d out of range for %s", u, dst.Type())
		}
		return setInt(dst, int64(u))
	case reflect.Float32, reflect.Float64:
		f := src.Float()
		if dst.CanFloat() {
			if dst.OverflowFloat(f) {
				return fmt.Errorf("%g out of range for %s", f, dst.Type())
			}
			dst.SetFloat(f)
			return nil
		}
		if f != math.Trunc(f) || math.IsInf(f, 0) || f < math.MinInt64 || f >= math.MaxInt64 {
			return fmt.Errorf("%g is not an integer", f)
		}
		return setInt(dst, int64(f))
	default:
		return fmt.Errorf("%s is not a number", src.Type())
	}
}

func setInt(dst reflect.Value, i int64) error {
	switch {
	case dst.CanInt():
		if dst.OverflowInt(i) {
			return fmt.Errorf("%d out of range for %s", i, dst.Type())
		}
		dst.SetInt(i)
	case dst.CanUint():
		if i < 0 || dst.OverflowUint(uint64(i)) {
			return fmt.Errorf("%d out of range for %s", i, dst.Type())
		}
		dst.SetUint(uint64(i))
	case dst.CanFloat():
		dst.SetFloat(float64(i))
	default:
		return fmt.Errorf("cannot store a number in %s", dst.Type())
	}

	return nil
}
