package binder

import "github.com/lumen-lang/lumenc/internal/symbols"

// ConversionKind classifies how (or whether) a value of one type can
// become a value of another, per §4.4's conversion lattice.
type ConversionKind int

const (
	// ConversionNone means no conversion exists between the two types.
	ConversionNone ConversionKind = iota
	// ConversionIdentity means the types are the same, or one side is the
	// error sentinel (which is identity-convertible to/from anything so a
	// single bad expression doesn't cascade into further diagnostics).
	ConversionIdentity
	// ConversionImplicit means the binder inserts the conversion silently:
	// widening within a numeric family, or any type converting to object
	// or string.
	ConversionImplicit
	// ConversionExplicit means the conversion exists but only through an
	// explicit conversion-call syntax: narrowing or cross-family numeric
	// conversions, string/char <-> numeric, or object to any type.
	ConversionExplicit
)

func (k ConversionKind) Exists() bool { return k != ConversionNone }

// sameFamily reports whether a and b belong to the same numeric family —
// signed integers, unsigned integers, or floats are three disjoint
// families; widening conversions are only implicit within a family.
func sameFamily(a, b *symbols.TypeSymbol) bool {
	if a.IsFloat() != b.IsFloat() {
		return false
	}
	if a.IsFloat() {
		return true
	}
	return a.IsSigned() == b.IsSigned()
}

// Classify determines how a value of type from can become a value of type
// to. It is the single source of truth the binder consults for assignment
// compatibility, argument passing, and operand promotion (§4.4).
func Classify(from, to *symbols.TypeSymbol) ConversionKind {
	if from == to {
		return ConversionIdentity
	}
	if from == symbols.Error || to == symbols.Error {
		return ConversionIdentity
	}

	if from.IsNumeric() && to.IsNumeric() && sameFamily(from, to) && from.Rank() <= to.Rank() {
		return ConversionImplicit
	}
	if to == symbols.Object || to == symbols.String {
		return ConversionImplicit
	}

	if from.IsNumeric() && to.IsNumeric() {
		return ConversionExplicit
	}
	if (from == symbols.String && to.IsNumeric()) || (from.IsNumeric() && to == symbols.String) {
		return ConversionExplicit
	}
	if (from == symbols.Char && to.IsNumeric()) || (from.IsNumeric() && to == symbols.Char) {
		return ConversionExplicit
	}
	if from == symbols.Object {
		return ConversionExplicit
	}

	return ConversionNone
}
