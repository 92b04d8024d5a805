package symbols

import "testing"

func TestLookupPrimitive(t *testing.T) {
	tests := []struct {
		name string
		want *TypeSymbol
	}{
		{"int32", Int32},
		{"float64", Float64},
		{"string", String},
		{"void", Void},
	}
	for _, tt := range tests {
		got, ok := LookupPrimitive(tt.name)
		if !ok || got != tt.want {
			t.Errorf("LookupPrimitive(%q) = (%v, %v), want (%v, true)", tt.name, got, ok, tt.want)
		}
	}
	if _, ok := LookupPrimitive("Point"); ok {
		t.Errorf("LookupPrimitive(%q) should not resolve a class name", "Point")
	}
}

func TestNumericFamilyClassification(t *testing.T) {
	if !Int32.IsNumeric() || Int32.IsFloat() || !Int32.IsSigned() {
		t.Errorf("int32 should be numeric, non-float, signed")
	}
	if !UInt32.IsNumeric() || UInt32.IsSigned() {
		t.Errorf("uint32 should be numeric, unsigned")
	}
	if !Float64.IsNumeric() || !Float64.IsFloat() {
		t.Errorf("float64 should be numeric and float")
	}
	if Bool.IsNumeric() || String.IsNumeric() || Object.IsNumeric() {
		t.Errorf("bool/string/object must not be numeric")
	}
}

func TestRankOrdersWideningWithinFamily(t *testing.T) {
	if !(Int8.Rank() < Int16.Rank() && Int16.Rank() < Int32.Rank() && Int32.Rank() < Int64.Rank()) {
		t.Errorf("expected signed integer ranks to increase with width")
	}
}

func TestClassSymbolIdentity(t *testing.T) {
	a := NewClassSymbol("Point", nil)
	b := NewClassSymbol("Point", nil)
	if a.Type == b.Type {
		t.Errorf("two distinct class declarations must produce distinct TypeSymbols")
	}
	if !a.Type.IsClass() || a.Type.Class != a {
		t.Errorf("class TypeSymbol must point back at its ClassSymbol")
	}
}

func TestClassSymbolFieldAndMethodLookup(t *testing.T) {
	c := NewClassSymbol("Point", nil)
	x := &FieldSymbol{Name: "x", Type: Int32}
	tag := &FieldSymbol{Name: "tag", Type: String, Const: true}
	c.Fields = []*FieldSymbol{x, tag}
	c.CtorParameters = []*FieldSymbol{x}

	if got, ok := c.FindField("x"); !ok || got != x {
		t.Errorf("FindField(x) = (%v, %v), want (%v, true)", got, ok, x)
	}
	if _, ok := c.FindField("missing"); ok {
		t.Errorf("FindField(missing) should not resolve")
	}
	if len(c.CtorParameters) != 1 || c.CtorParameters[0] != x {
		t.Errorf("const field tag must not appear in CtorParameters")
	}

	sum := &FunctionSymbol{Name: "sum", Receiver: c}
	c.Methods = []*FunctionSymbol{sum}
	if got, ok := c.FindMethod("sum"); !ok || got != sum {
		t.Errorf("FindMethod(sum) = (%v, %v), want (%v, true)", got, ok, sum)
	}
	if _, ok := c.FindMethod("missing"); ok {
		t.Errorf("FindMethod(missing) should not resolve")
	}
}

func TestFunctionSymbolOverloadChain(t *testing.T) {
	f3 := &FunctionSymbol{Name: "f"}
	f2 := &FunctionSymbol{Name: "f", OverloadFor: f3}
	f1 := &FunctionSymbol{Name: "f", OverloadFor: f2}

	chain := f1.Overloads()
	if len(chain) != 3 || chain[0] != f1 || chain[1] != f2 || chain[2] != f3 {
		t.Fatalf("unexpected overload chain: %v", chain)
	}
}

func TestFunctionSymbolReceiverAndSynthesis(t *testing.T) {
	class := NewClassSymbol("Point", nil)
	method := &FunctionSymbol{Name: "sum", Receiver: class}
	if !method.IsInstanceMethod() {
		t.Errorf("expected sum to be an instance method")
	}
	if !method.IsSynthesized() {
		t.Errorf("a FunctionSymbol with no Declaration is synthesized")
	}
}
