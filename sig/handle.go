package sig

// Handle is an opaque, dense-integer index into a [Table]. The zero Handle
// never refers to a valid entry; real handles start at 1.
//
// Handle is cheaply copyable and safe to embed in other signatures, which is
// how the table breaks reference cycles between mutually-referencing classes
// (spec.md §3, §4.2).
type Handle uint32

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h == 0
}

// Kind identifies which TypeSignature variant a Handle refers to.
type Kind uint8

const (
	// KindInvalid marks a Handle with no entry.
	KindInvalid Kind = iota
	KindPrimitive
	KindNullable
	KindReference
	KindClass
	KindInterface
	KindFunction
	KindExtension
	KindModule
)

// String returns a human-readable label for k.
func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindNullable:
		return "nullable"
	case KindReference:
		return "reference"
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindFunction:
		return "function"
	case KindExtension:
		return "extension"
	case KindModule:
		return "module"
	default:
		return "invalid"
	}
}

// Visibility is the accessibility of a declaration. Visibility defaults to
// private at module scope; the `pub` keyword promotes it to public
// (spec.md §4.6, §6).
type Visibility uint8

const (
	Private Visibility = iota
	Public
)

// String returns a human-readable label for v.
func (v Visibility) String() string {
	if v == Public {
		return "public"
	}
	return "private"
}

// PrimitiveKind enumerates the built-in primitive types recognized by the
// resolver (spec.md §6).
type PrimitiveKind uint8

const (
	I8 PrimitiveKind = iota
	I16
	I32
	I64
	U8
	U16
	U32
	U64
	Float
	Double
	Bool
	String
	Void
)

// String returns the source-language keyword for p.
func (p PrimitiveKind) String() string {
	switch p {
	case I8:
		return "i8"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case U8:
		return "u8"
	case U16:
		return "u16"
	case U32:
		return "u32"
	case U64:
		return "u64"
	case Float:
		return "float"
	case Double:
		return "double"
	case Bool:
		return "bool"
	case String:
		return "string"
	case Void:
		return "void"
	default:
		return "unknown"
	}
}
