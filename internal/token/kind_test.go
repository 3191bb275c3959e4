package token

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{EOF, "eof"},
		{Unknown, "unknown"},
		{IntegerLiteral, "integerLiteral"},
		{FloatingLiteral, "floatingLiteral"},
		{Identifier, "identifier"},
		{Wildcard, "wildcard"},
		{BinaryOperator, "binaryOperator"},
		{Period, "period"},
		{Kind(9999), "invalid"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindClassifiers(t *testing.T) {
	if !IntegerLiteral.IsLiteral() {
		t.Error("IntegerLiteral should be a literal")
	}
	if Identifier.IsLiteral() {
		t.Error("Identifier should not be a literal")
	}
	if !BinaryOperator.IsOperator() {
		t.Error("BinaryOperator should be an operator")
	}
	if !PoundIf.IsPound() {
		t.Error("PoundIf should be a pound kind")
	}
	if Pound.IsPound() {
		t.Error("the bare Pound fallback is not one of the pound-directive kinds")
	}
}

func TestLookupPound(t *testing.T) {
	tests := []struct {
		text      string
		wantKind  Kind
		wantFound bool
	}{
		{"if", PoundIf, true},
		{"elseif", PoundElseif, true},
		{"_hasSymbol", PoundHasSymbol, true},
		{"bogus", Pound, false},
	}

	for _, tt := range tests {
		k, ok := LookupPound(tt.text)
		if k != tt.wantKind || ok != tt.wantFound {
			t.Errorf("LookupPound(%q) = (%v, %v), want (%v, %v)", tt.text, k, ok, tt.wantKind, tt.wantFound)
		}
	}
}

func TestIsKeywordAndWildcard(t *testing.T) {
	if !IsKeyword("func") {
		t.Error(`"func" should be a keyword`)
	}
	if IsKeyword("myVariable") {
		t.Error(`"myVariable" should not be a keyword`)
	}
	if !IsWildcard("_") {
		t.Error(`"_" should be the wildcard`)
	}
	if IsWildcard("__") {
		t.Error(`"__" should not be the wildcard`)
	}
}
