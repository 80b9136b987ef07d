package assetlist

import (
	"errors"
	"testing"
)

func mustID(t *testing.T, major, minor int) AssetID {
	t.Helper()
	id, err := NewAssetID(major, minor)
	if err != nil {
		t.Fatalf("NewAssetID(%d, %d): %v", major, minor, err)
	}
	return id
}

func TestNewAssetID_Bounds(t *testing.T) {
	tests := []struct {
		name    string
		major   int
		minor   int
		wantErr bool
	}{
		{"zero", 0, 0, false},
		{"max", 999, 999, false},
		{"major negative", -1, 0, true},
		{"major too large", 1000, 0, true},
		{"minor negative", 0, -1, true},
		{"minor too large", 0, 1000, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAssetID(tt.major, tt.minor)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewAssetID(%d, %d) error = %v, wantErr %v", tt.major, tt.minor, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrComponentRange) {
				t.Errorf("error = %v, want ErrComponentRange", err)
			}
		})
	}
}

func TestAssetID_String(t *testing.T) {
	tests := []struct {
		major int
		minor int
		want  string
	}{
		{0, 0, "000-000"},
		{12, 7, "012-007"},
		{999, 999, "999-999"},
		{1, 0, "001-000"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := mustID(t, tt.major, tt.minor).String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Rendering then re-parsing a single identifier must yield the same pair.
func TestAssetID_RenderParseRoundTrip(t *testing.T) {
	for _, pair := range [][2]int{{0, 0}, {0, 999}, {999, 0}, {999, 999}, {12, 7}, {100, 500}} {
		id := mustID(t, pair[0], pair[1])

		list, err := Parse(id.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", id, err)
		}
		if len(list) != 1 || list[0].Kind() != KindSingle {
			t.Fatalf("Parse(%q) = %v, want one Single entry", id, list)
		}
		if got := list[0].ID(); got != id {
			t.Errorf("round trip of %v = %v", id, got)
		}
	}
}

func TestAssetID_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b [2]int
		want int // sign only
	}{
		{"equal", [2]int{5, 5}, [2]int{5, 5}, 0},
		{"minor less", [2]int{5, 4}, [2]int{5, 5}, -1},
		{"minor greater", [2]int{5, 6}, [2]int{5, 5}, 1},
		{"major dominates minor", [2]int{4, 999}, [2]int{5, 0}, -1},
		{"major greater", [2]int{6, 0}, [2]int{5, 999}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustID(t, tt.a[0], tt.a[1])
			b := mustID(t, tt.b[0], tt.b[1])
			got := a.Compare(b)
			if sign(got) != tt.want {
				t.Errorf("Compare() = %d, want sign %d", got, tt.want)
			}
			if a.Less(b) != (tt.want < 0) {
				t.Errorf("Less() = %v, want %v", a.Less(b), tt.want < 0)
			}
		})
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestAssetID_Next(t *testing.T) {
	tests := []struct {
		name string
		in   [2]int
		want [2]int
	}{
		{"simple increment", [2]int{0, 0}, [2]int{0, 1}},
		{"carry at 999", [2]int{0, 999}, [2]int{1, 0}},
		{"carry preserves major progression", [2]int{12, 999}, [2]int{13, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mustID(t, tt.in[0], tt.in[1]).Next()
			if err != nil {
				t.Fatalf("Next(): %v", err)
			}
			if want := mustID(t, tt.want[0], tt.want[1]); got != want {
				t.Errorf("Next() = %v, want %v", got, want)
			}
		})
	}
}

func TestAssetID_Next_Overflow(t *testing.T) {
	_, err := mustID(t, 999, 999).Next()
	if !errors.Is(err, ErrIDOverflow) {
		t.Fatalf("Next() error = %v, want ErrIDOverflow", err)
	}
}
