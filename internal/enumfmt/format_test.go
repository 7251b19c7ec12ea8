package enumfmt

import "testing"

func kindTable() *Table {
	return NewTable("NodeKind", []Member{
		{Value: 0, Name: "Unknown"},
		{Value: 1, Name: "Identifier"},
		{Value: 2, Name: "Literal"},
		{Value: 3, Name: "Keyword"},
	})
}

func flagsTable() *Table {
	return NewTable("SymbolFlags", []Member{
		{Value: 0, Name: "None"},
		{Value: 1, Name: "Variable"},
		{Value: 2, Name: "Property"},
		{Value: 4, Name: "Function"},
		{Value: 3, Name: "Value"}, // composite flag overlapping Variable|Property
		{Value: 8, Name: "Class"},
	})
}

func TestFormatExactMatch(t *testing.T) {
	tbl := kindTable()
	cases := []struct {
		value int64
		want  string
	}{
		{0, "Unknown"},
		{1, "Identifier"},
		{3, "Keyword"},
		{99, "99"},
	}
	for _, tc := range cases {
		if got := tbl.Format(tc.value); got != tc.want {
			t.Errorf("Format(%d) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestFormatZeroWithoutZeroMember(t *testing.T) {
	tbl := NewTable("Bits", []Member{{Value: 1, Name: "A"}, {Value: 2, Name: "B"}})
	if got := tbl.Format(0); got != "0" {
		t.Errorf("Format(0) = %q, want %q", got, "0")
	}
	if got := tbl.FormatFlags(0, nil); got != "0" {
		t.Errorf("FormatFlags(0) = %q, want %q", got, "0")
	}
}

func TestFormatFlagsDecomposition(t *testing.T) {
	tbl := flagsTable()
	cases := []struct {
		value int64
		want  string
	}{
		{0, "None"},
		{8, "Class"},
		{12, "Class|Function"},
		// 3 is fully covered by the composite member, which wins greedily.
		{3, "Value"},
		{7, "Function|Value"},
		{11, "Class|Value"},
		// 16 is not declared anywhere: all-or-nothing fallback.
		{16, "16"},
		{28, "28"},
	}
	for _, tc := range cases {
		if got := tbl.FormatFlags(tc.value, nil); got != tc.want {
			t.Errorf("FormatFlags(%d) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestFormatFlagsFilter(t *testing.T) {
	tbl := flagsTable()
	noComposites := func(m Member) bool { return m.Name != "Value" }
	if got := tbl.FormatFlags(3, noComposites); got != "Property|Variable" {
		t.Errorf("FormatFlags(3, noComposites) = %q, want %q", got, "Property|Variable")
	}
	// Filtering out the only member able to cover a bit forces the fallback.
	onlyClass := func(m Member) bool { return m.Name == "Class" }
	if got := tbl.FormatFlags(9, onlyClass); got != "9" {
		t.Errorf("FormatFlags(9, onlyClass) = %q, want %q", got, "9")
	}
}

func TestFormatFlagsFallbackKeepsOriginalValue(t *testing.T) {
	tbl := flagsTable()
	// 8|16: Class matches first, then 16 is left over. The partial
	// decomposition must be discarded in favor of the original value.
	if got := tbl.FormatFlags(24, nil); got != "24" {
		t.Errorf("FormatFlags(24) = %q, want %q", got, "24")
	}
}

func TestNewTableStableSort(t *testing.T) {
	tbl := NewTable("Alias", []Member{
		{Value: 2, Name: "B"},
		{Value: 1, Name: "First"},
		{Value: 1, Name: "Second"},
	})
	members := tbl.Members()
	if members[0].Name != "First" || members[1].Name != "Second" {
		t.Fatalf("stable sort broke declaration order for ties: %+v", members)
	}
	// The earliest declared alias wins exact-match formatting.
	if got := tbl.Format(1); got != "First" {
		t.Errorf("Format(1) = %q, want %q", got, "First")
	}
}

func TestFormatEnumDispatch(t *testing.T) {
	tbl := flagsTable()
	if got := FormatEnum(12, tbl, true); got != "Class|Function" {
		t.Errorf("FormatEnum(12, flags) = %q, want %q", got, "Class|Function")
	}
	if got := FormatEnum(4, tbl, false); got != "Function" {
		t.Errorf("FormatEnum(4, plain) = %q, want %q", got, "Function")
	}
}
