package broadcast

import (
	"reflect"
	"testing"
)

func TestZip(t *testing.T) {
	tests := []struct {
		name string
		seqs [][]string
		want [][]string
	}{
		{
			name: "scalar replication",
			seqs: [][]string{{"a", "b", "c"}, {"x"}},
			want: [][]string{{"a", "x"}, {"b", "x"}, {"c", "x"}},
		},
		{
			name: "pad by repeating last",
			seqs: [][]string{{"a", "b"}, {"x", "y", "z"}},
			want: [][]string{{"a", "x"}, {"b", "y"}, {"b", "z"}},
		},
		{
			name: "equal lengths",
			seqs: [][]string{{"a", "b"}, {"x", "y"}},
			want: [][]string{{"a", "x"}, {"b", "y"}},
		},
		{
			name: "empty sequence means no work",
			seqs: [][]string{{"a", "b"}, {}},
			want: [][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Zip(tt.seqs...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Zip() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLength(t *testing.T) {
	tests := []struct {
		lens []int
		want int
	}{
		{nil, 0},
		{[]int{1}, 1},
		{[]int{3, 1, 2}, 3},
		{[]int{3, 0, 2}, 0},
	}
	for _, tt := range tests {
		if got := Length(tt.lens...); got != tt.want {
			t.Errorf("Length(%v) = %d, want %d", tt.lens, got, tt.want)
		}
	}
}

type box struct{ v *int }

func (b box) Clone() box {
	v := *b.v
	return box{v: &v}
}

func TestPick_ClonesPaddedSlots(t *testing.T) {
	v := 7
	s := []box{{v: &v}}

	first := Pick(s, 0)
	padded := Pick(s, 1)
	if first.v != &v {
		t.Error("in-range slot should return the element itself")
	}
	if padded.v == &v {
		t.Fatal("padded slot shares the original value")
	}

	*padded.v = 99
	if v != 7 {
		t.Errorf("mutating a padded slot changed the source: %d", v)
	}
}

func TestPick_Empty(t *testing.T) {
	if got := Pick([]int(nil), 3); got != 0 {
		t.Errorf("Pick(nil) = %d, want 0", got)
	}
}

func TestDefault(t *testing.T) {
	if got := Default[int](nil, 5); !reflect.DeepEqual(got, []int{5}) {
		t.Errorf("Default(nil) = %v", got)
	}
	if got := Default([]int{}, 5); len(got) != 0 {
		t.Errorf("Default(empty) = %v, want empty", got)
	}
	if got := Default([]int{1, 2}, 5); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("Default(values) = %v", got)
	}
}

func TestGather(t *testing.T) {
	got := Gather([]string{"a"}, nil, []string{"b", "c"})
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Gather() = %v", got)
	}
}
