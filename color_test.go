package filler

import (
	"errors"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"r", Red, false},
		{"Yellow", Yellow, false},
		{" g ", Green, false},
		{"BLUE", Blue, false},
		{"p", Purple, false},
		{"k", Black, false},
		{"black", Black, false},
		{"", 0, true},
		{"orange", 0, true},
		{"x", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownColor) {
					t.Errorf("ParseColor(%q) error = %v, want ErrUnknownColor", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("%+v", err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColors(t *testing.T) {
	colors := Colors()
	if len(colors) != 6 {
		t.Fatalf("got %d colors, want 6", len(colors))
	}

	seen := map[Color]bool{}
	keys := map[string]bool{}
	for _, c := range colors {
		if !c.Valid() {
			t.Errorf("%v is not valid", c)
		}
		if seen[c] {
			t.Errorf("%v listed twice", c)
		}
		if keys[c.Key()] {
			t.Errorf("key %q used twice", c.Key())
		}
		seen[c] = true
		keys[c.Key()] = true
	}

	// The returned slice is a copy.
	colors[0] = Black
	if Colors()[0] != Red {
		t.Errorf("Colors() exposed the palette")
	}
}

func TestZeroColorIsNotInPalette(t *testing.T) {
	var c Color
	if c.Valid() {
		t.Errorf("zero color is valid")
	}
	if c.Key() != "?" {
		t.Errorf("zero color key = %q", c.Key())
	}
	if c.String() != "Color(0)" {
		t.Errorf("zero color string = %q", c.String())
	}
}

func TestPlayerOther(t *testing.T) {
	if PlayerOne.Other() != PlayerTwo || PlayerTwo.Other() != PlayerOne {
		t.Errorf("players do not alternate")
	}
	if NoPlayer.Other() != NoPlayer {
		t.Errorf("NoPlayer.Other() = %v", NoPlayer.Other())
	}
}
