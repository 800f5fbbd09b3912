package entity

import "testing"

func TestProfile_Equal_IgnoresSurroundingWhitespace(t *testing.T) {
	base := Profile{DisplayName: "Jane Doe", Handle: "jane", Bio: "hello"}
	edited := Profile{DisplayName: "Jane Doe   ", Handle: " jane", Bio: "hello"}

	if !base.Equal(edited) {
		t.Error("trailing-space-only edits should not make profiles unequal")
	}
}

func TestProfile_Equal_DetectsRealChanges(t *testing.T) {
	base := Profile{DisplayName: "A"}
	edited := Profile{DisplayName: "B"}

	if base.Equal(edited) {
		t.Error("different display names should not be equal")
	}
}

func TestProfile_Validate_EmptyDisplayName(t *testing.T) {
	p := Profile{DisplayName: "   "}

	if err := p.Validate(); err != ErrDisplayNameRequired {
		t.Errorf("expected ErrDisplayNameRequired, got %v", err)
	}

	p.DisplayName = "Jane"
	if err := p.Validate(); err != nil {
		t.Errorf("valid profile should pass validation, got %v", err)
	}
}

func TestProfile_Initials(t *testing.T) {
	cases := []struct {
		name     string
		expected string
	}{
		{"Jane Doe", "JD"},
		{"jane", "J"},
		{"Nguyễn Văn An", "NV"},
		{"  ", "?"},
		{"a b c", "AB"},
	}

	for _, c := range cases {
		p := Profile{DisplayName: c.name}
		if got := p.Initials(); got != c.expected {
			t.Errorf("Initials(%q) = %q, want %q", c.name, got, c.expected)
		}
	}
}
