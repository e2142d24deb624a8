package inspect

// Kind classifies the value held by a field.
type Kind uint8

const (
	KindString Kind = iota + 1
	KindBool
	KindInt
	KindUint
	KindFloat
	KindEnum  // integer code with a fixed set of valid values
	KindFlags // bit set
	KindBytes
	KindAny // interface value whose dynamic type decides the content
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindUint:
		return "Uint"
	case KindFloat:
		return "Float"
	case KindEnum:
		return "Enum"
	case KindFlags:
		return "Flags"
	case KindBytes:
		return "Bytes"
	case KindAny:
		return "Any"
	default:
		return "Unknown"
	}
}
