package slant

import (
	"reflect"
	"testing"
)

func TestDecodeGivens(t *testing.T) {
	cases := []struct {
		name  string
		given string
		want  []int
	}{
		{"empty", "", nil},
		{"all literal", "01234", []int{0, 1, 2, 3, 4}},
		{"single run", "a", []int{-1}},
		{"max run", "z", make([]int, 26, 26)},
		{"mixed", "1c2", []int{1, -1, -1, -1, 2}},
		{"tolerant of junk", "1-c/2", []int{1, -1, -1, -1, 2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := DecodeGivens(c.given)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.name == "max run" {
				for i := range c.want {
					c.want[i] = -1
				}
			}
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("DecodeGivens(%q) = %v, want %v", c.given, got, c.want)
			}
		})
	}
}

func TestEncodeGivensRoundTrip(t *testing.T) {
	cases := [][]int{
		{0, 1, 2, 3, 4},
		{-1},
		{1, -1, -1, -1, 2},
		{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	}
	for _, clues := range cases {
		encoded := EncodeGivens(clues)
		decoded, err := DecodeGivens(encoded)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(decoded, clues) {
			t.Fatalf("round trip of %v produced %q -> %v", clues, encoded, decoded)
		}
	}
}

func TestToSolutionString(t *testing.T) {
	b, err := NewBoard(2, 1, "1d2")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if got, want := b.ToSolutionString(), ".."; got != want {
		t.Fatalf("fresh board solution string = %q, want %q", got, want)
	}
	if err := b.PlaceValue(b.GetCell(0, 0), Slash); err != nil {
		t.Fatalf("PlaceValue: %v", err)
	}
	if err := b.PlaceValue(b.GetCell(1, 0), Backslash); err != nil {
		t.Fatalf("PlaceValue: %v", err)
	}
	if got, want := b.ToSolutionString(), "/\\"; got != want {
		t.Fatalf("solution string = %q, want %q", got, want)
	}
}
