package textutil

import "testing"

func TestRepairEncoding(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain ascii", "hello world", "hello world"},
		{"accented mojibake", "TÃ©st", "Tést"},
		{"curly apostrophe mojibake", "donât stop", "don’t stop"},
		{"emoji mojibake", "ok ð", "ok \U0001f44d"},
		{"already correct utf8", "café", "café"},
		{"outside latin-1", "price €10", "price €10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RepairEncoding(tt.in)
			if got != tt.want {
				t.Errorf("RepairEncoding(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRepairEncodingRoundTrip(t *testing.T) {
	// Mangling a UTF-8 string through a Latin-1 read and repairing it must
	// recover the original exactly.
	original := "Tonight’s show – café \U0001f389"
	mangled := ""
	for _, b := range []byte(original) {
		mangled += string(rune(b))
	}

	if got := RepairEncoding(mangled); got != original {
		t.Errorf("RepairEncoding(round trip) = %q, want %q", got, original)
	}
}
