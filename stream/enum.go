package stream

import "github.com/arloliu/tes3/errs"

// Enum is a closed set of named values bound to fixed wire integers.
// Valid reports whether the value is one of the named variants.
type Enum interface {
	~int8 | ~int16 | ~int32 | ~uint8 | ~uint16 | ~uint32
	Valid() bool
}

func checkEnum[E Enum](r *Reader, e E, raw int64, offset int64) E {
	if r.err != nil {
		return e
	}
	if !e.Valid() || int64(e) != raw {
		de := errs.NewDecodeError(errs.ErrInvalidDiscriminant, offset)
		de.Value = raw
		r.FailAt(de, offset)
	}

	return e
}

// EnumU8 reads a one byte unsigned enum value.
func EnumU8[E Enum](r *Reader) E {
	offset := r.Offset()
	v := r.U8()

	return checkEnum(r, E(v), int64(v), offset)
}

// EnumI8 reads a one byte signed enum value.
func EnumI8[E Enum](r *Reader) E {
	offset := r.Offset()
	v := r.I8()

	return checkEnum(r, E(v), int64(v), offset)
}

// EnumU16 reads a two byte unsigned enum value.
func EnumU16[E Enum](r *Reader) E {
	offset := r.Offset()
	v := r.U16()

	return checkEnum(r, E(v), int64(v), offset)
}

// EnumI16 reads a two byte signed enum value.
func EnumI16[E Enum](r *Reader) E {
	offset := r.Offset()
	v := r.I16()

	return checkEnum(r, E(v), int64(v), offset)
}

// EnumU32 reads a four byte unsigned enum value.
func EnumU32[E Enum](r *Reader) E {
	offset := r.Offset()
	v := r.U32()

	return checkEnum(r, E(v), int64(v), offset)
}

// EnumI32 reads a four byte signed enum value.
func EnumI32[E Enum](r *Reader) E {
	offset := r.Offset()
	v := r.I32()

	return checkEnum(r, E(v), int64(v), offset)
}

// FlagsU8 reads a one byte flag set. Unknown bits are kept.
func FlagsU8[F ~uint8](r *Reader) F {
	return F(r.U8())
}

// FlagsU16 reads a two byte flag set. Unknown bits are kept.
func FlagsU16[F ~uint16](r *Reader) F {
	return F(r.U16())
}

// FlagsU32 reads a four byte flag set. Unknown bits are kept.
func FlagsU32[F ~uint32](r *Reader) F {
	return F(r.U32())
}
