// Package symbols defines the discriminated symbol hierarchy bound names
// resolve to: primitive and class TypeSymbols, VariableSymbol subkinds, and
// FunctionSymbol with its overloadFor chain and optional class receiver.
package symbols

// TypeSymbol is either one of the fixed primitive types or a user-defined
// class type (Class != nil). Symbol identity is pointer identity — two
// TypeSymbols are the same type iff they are the same pointer (§3's
// "symbol identity is pointer-equal" invariant).
type TypeSymbol struct {
	Name string

	// Class is non-nil for a class type; nil for every primitive.
	Class *ClassSymbol

	numeric      bool
	float        bool
	signed       bool
	rank         int
	defaultValue interface{}
}

// IsNumeric reports whether the type participates in the numeric tower
// (integers and floats; not bool, char, string, object, void or error).
func (t *TypeSymbol) IsNumeric() bool { return t.numeric }

// IsFloat reports whether the type is one of the floating-point types.
func (t *TypeSymbol) IsFloat() bool { return t.float }

// IsSigned reports whether the type is a signed integer. Meaningless for
// non-integer types.
func (t *TypeSymbol) IsSigned() bool { return t.signed }

// Rank orders types within the same numeric family (signed, unsigned, or
// float) by width, used by the implicit-widening rule in §4.4's conversion
// lattice: within a family, A converts implicitly to B iff A.Rank() <= B.Rank().
func (t *TypeSymbol) Rank() int { return t.rank }

// IsClass reports whether this type is a user-defined class type.
func (t *TypeSymbol) IsClass() bool { return t.Class != nil }

// DefaultValue returns the zero value a variable of this type holds when
// declared without an initializer. Class types default to a nil reference
// (represented as Go nil).
func (t *TypeSymbol) DefaultValue() interface{} { return t.defaultValue }

func (t *TypeSymbol) String() string { return t.Name }

// NewClassType wraps class as a TypeSymbol. Called once per ClassSymbol,
// from NewClassSymbol.
func NewClassType(class *ClassSymbol) *TypeSymbol {
	return &TypeSymbol{Name: class.Name, Class: class}
}

// The fixed primitive types, per §3's TypeSymbol list. Float128 has no
// native Go representation; it is carried as a distinct named type whose
// runtime values are stored as float64 (the target ISA's actual 128-bit
// float format is an emitter concern, out of scope per §1).
var (
	Object = &TypeSymbol{Name: "object"}
	Bool   = &TypeSymbol{Name: "bool", defaultValue: false}

	Int8  = &TypeSymbol{Name: "int8", numeric: true, signed: true, rank: 0, defaultValue: int8(0)}
	Int16 = &TypeSymbol{Name: "int16", numeric: true, signed: true, rank: 1, defaultValue: int16(0)}
	Int32 = &TypeSymbol{Name: "int32", numeric: true, signed: true, rank: 2, defaultValue: int32(0)}
	Int64 = &TypeSymbol{Name: "int64", numeric: true, signed: true, rank: 3, defaultValue: int64(0)}

	UInt8  = &TypeSymbol{Name: "uint8", numeric: true, signed: false, rank: 0, defaultValue: uint8(0)}
	UInt16 = &TypeSymbol{Name: "uint16", numeric: true, signed: false, rank: 1, defaultValue: uint16(0)}
	UInt32 = &TypeSymbol{Name: "uint32", numeric: true, signed: false, rank: 2, defaultValue: uint32(0)}
	UInt64 = &TypeSymbol{Name: "uint64", numeric: true, signed: false, rank: 3, defaultValue: uint64(0)}

	Float32  = &TypeSymbol{Name: "float32", numeric: true, float: true, rank: 0, defaultValue: float32(0)}
	Float64  = &TypeSymbol{Name: "float64", numeric: true, float: true, rank: 1, defaultValue: float64(0)}
	Float128 = &TypeSymbol{Name: "float128", numeric: true, float: true, rank: 2, defaultValue: float64(0)}

	Char   = &TypeSymbol{Name: "char", defaultValue: rune(0)}
	String = &TypeSymbol{Name: "string", defaultValue: ""}
	Void   = &TypeSymbol{Name: "void"}

	// Error is the sentinel type that suppresses cascading diagnostics
	// (§3, §7's propagation policy).
	Error = &TypeSymbol{Name: "error"}
)

var primitives = map[string]*TypeSymbol{
	"object": Object, "bool": Bool,
	"int8": Int8, "int16": Int16, "int32": Int32, "int64": Int64,
	"uint8": UInt8, "uint16": UInt16, "uint32": UInt32, "uint64": UInt64,
	"float32": Float32, "float64": Float64, "float128": Float128,
	"char": Char, "string": String, "void": Void,
}

// LookupPrimitive resolves a type name to its fixed TypeSymbol, if it names
// a primitive. Class type names are resolved by the binder against the
// scope's declared ClassSymbols, not here.
func LookupPrimitive(name string) (*TypeSymbol, bool) {
	t, ok := primitives[name]
	return t, ok
}
