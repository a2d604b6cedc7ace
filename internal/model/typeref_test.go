package model

import "testing"

func TestTypeRefString(t *testing.T) {
	tests := []struct {
		ref  TypeRef
		want string
	}{
		{TypeRef{Builtin: String}, "string"},
		{TypeRef{Builtin: Integer}, "integer"},
		{TypeRef{Builtin: Raw}, "raw"},
		{TypeRef{Builtin: "date-time"}, "date-time"},
		{TypeRef{}, "unknown"},
		{TypeRef{Named: "Operations"}, "Operations"},
		{TypeRef{Common: CommonLink}, "common.Link"},
		{SliceOf(TypeRef{Common: CommonLink}), "list<common.Link>"},
		{SliceOf(SliceOf(TypeRef{Builtin: Integer})), "list<list<integer>>"},
		{TypeRef{Slice: true}, "list<unknown>"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.ref.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSliceOfMovesWireName(t *testing.T) {
	ref := SliceOf(TypeRef{Builtin: Raw, WireName: "Oem"})

	if ref.WireName != "Oem" || ref.Element.WireName != "" {
		t.Errorf("wire name not moved: sequence %q, element %q", ref.WireName, ref.Element.WireName)
	}
	if !ref.Element.IsRaw() || ref.IsRaw() {
		t.Error("IsRaw should hold for the element only")
	}
}

func TestModelUses(t *testing.T) {
	m := &Model{Classes: []*Class{{
		Name: "Thing",
		Attributes: []Field{
			{Name: "Size", Type: TypeRef{Builtin: Integer}},
		},
	}}}
	if m.UsesCommon() || m.UsesRawJSON() {
		t.Fatal("plain model should not need imports")
	}

	m.Classes[0].Attributes = append(m.Classes[0].Attributes,
		Field{Name: "OEM", Type: SliceOf(TypeRef{Builtin: Raw})})
	if !m.UsesRawJSON() {
		t.Error("UsesRawJSON() = false for a sequence of raw payloads")
	}

	m.Classes[0].IsEntity = true
	if !m.UsesCommon() {
		t.Error("UsesCommon() = false for an entity class")
	}
}

func TestClassLookups(t *testing.T) {
	c := &Class{
		Attributes:            []Field{{Name: "AssetTag"}, {Name: "Model"}},
		MutableAttributeNames: []string{"AssetTag"},
	}

	if _, ok := c.Attribute("Model"); !ok {
		t.Error("Attribute(Model) not found")
	}
	if _, ok := c.Attribute("Missing"); ok {
		t.Error("Attribute(Missing) found")
	}
	if !c.IsMutable("AssetTag") || c.IsMutable("Model") {
		t.Error("IsMutable mismatch")
	}
}

func TestCommentLines(t *testing.T) {
	if CommentLines("") != nil {
		t.Error("empty description should have no lines")
	}
	if got := CommentLines("a\nb"); len(got) != 2 || got[1] != "b" {
		t.Errorf("CommentLines = %q", got)
	}
}
