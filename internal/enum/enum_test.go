package enum

import (
	"errors"
	"testing"
)

type color uint8

var colorNames = []string{"RED", "GREEN_BLUE"}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"red", "RED"},
		{"  Green-Blue ", "GREEN_BLUE"},
		{"green blue", "GREEN_BLUE"},
		{"FLIP_X", "FLIP_X"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	got, err := Parse[color]("color", colorNames, "green-blue")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got != 1 {
		t.Errorf("Parse() = %d, want 1", got)
	}

	_, err = Parse[color]("color", colorNames, "purple")
	if !errors.Is(err, ErrUnknownName) {
		t.Errorf("Parse(purple) error = %v, want ErrUnknownName", err)
	}
}

func TestNameValid(t *testing.T) {
	if Name(colorNames, color(0)) != "RED" {
		t.Errorf("Name(0) = %q", Name(colorNames, color(0)))
	}
	if Name(colorNames, color(9)) != "Unknown" {
		t.Errorf("Name(9) = %q", Name(colorNames, color(9)))
	}
	if !Valid(colorNames, color(1)) || Valid(colorNames, color(2)) {
		t.Error("Valid() mismatch")
	}
}
