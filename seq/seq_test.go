package seq

import (
	"errors"
	"slices"
	"strconv"
	"testing"
)

func TestConcat(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want []int
	}{
		{"both populated", []int{1, 2}, []int{3, 4}, []int{1, 2, 3, 4}},
		{"empty first", nil, []int{3}, []int{3}},
		{"empty second", []int{1}, nil, []int{1}},
		{"both empty", nil, nil, []int{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Concat(test.a, test.b)
			if !slices.Equal(got, test.want) {
				t.Errorf("Concat(%v, %v): expected %v, got %v", test.a, test.b, test.want, got)
			}
		})
	}
}

func TestConcat_DoesNotAliasInputs(t *testing.T) {
	a := []int{1, 2}
	b := []int{3}
	got := Concat(a, b)
	got[0] = 99
	if a[0] != 1 {
		t.Errorf("Concat result aliases first input: %v", a)
	}
}

func TestConcat_PreservesNamedSliceType(t *testing.T) {
	type row []rune
	got := Concat(row("ab"), row("cd"))
	if string(got) != "abcd" {
		t.Errorf("Concat: expected %q, got %q", "abcd", string(got))
	}
}

func TestConcatStrings(t *testing.T) {
	if got := ConcatStrings("ab", "cd"); got != "abcd" {
		t.Errorf("ConcatStrings: expected %q, got %q", "abcd", got)
	}
}

func TestMaskSelect(t *testing.T) {
	got, err := MaskSelect([]int{1, 2, 3, 4}, []bool{true, false, true, false})
	if err != nil {
		t.Fatalf("MaskSelect: %v", err)
	}
	if !slices.Equal(got, []int{1, 3}) {
		t.Errorf("MaskSelect: expected [1 3], got %v", got)
	}
}

func TestMaskSelect_LengthMismatch(t *testing.T) {
	if _, err := MaskSelect([]int{1, 2, 3}, []bool{true}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("MaskSelect: expected ErrLengthMismatch, got %v", err)
	}
}

func TestMaskSelectString(t *testing.T) {
	got, err := MaskSelectString("abcd", []bool{true, false, true, false})
	if err != nil {
		t.Fatalf("MaskSelectString: %v", err)
	}
	if got != "ac" {
		t.Errorf("MaskSelectString: expected %q, got %q", "ac", got)
	}

	if _, err := MaskSelectString("abcd", []bool{true}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("MaskSelectString: expected ErrLengthMismatch, got %v", err)
	}
}

func TestApply(t *testing.T) {
	got := Apply(strconv.Itoa, []int{3, 1, 2})
	if !slices.Equal(got, []string{"3", "1", "2"}) {
		t.Errorf("Apply: expected [3 1 2] as strings in input order, got %v", got)
	}
}

func TestApply2(t *testing.T) {
	add := func(a, b int) int { return a + b }
	got := Apply2(add, []Pair[int, int]{{1, 2}, {3, 4}, {5, 6}})
	if !slices.Equal(got, []int{3, 7, 11}) {
		t.Errorf("Apply2: expected [3 7 11], got %v", got)
	}
}

func TestZip(t *testing.T) {
	got := slices.Collect(Zip([]int{1, 2, 3}, []int{4, 5}))
	want := []Pair[int, int]{{1, 4}, {2, 5}}
	if !slices.Equal(got, want) {
		t.Errorf("Zip: expected %v, got %v", want, got)
	}
}

func TestZip_EmptyInput(t *testing.T) {
	if got := slices.Collect(Zip[int](nil, []int{1, 2})); len(got) != 0 {
		t.Errorf("Zip with empty input: expected no pairs, got %v", got)
	}
}

func TestZip_EarlyBreak(t *testing.T) {
	count := 0
	for range Zip([]int{1, 2, 3}, []int{4, 5, 6}) {
		count++
		break
	}
	if count != 1 {
		t.Errorf("Zip: expected iteration to stop after break, ran %d times", count)
	}
}

func TestUnique(t *testing.T) {
	got := slices.Collect(Unique(slices.Values([]int{1, 1, 2, 1, 3, 2})))
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("Unique: expected [1 2 3], got %v", got)
	}
}

func TestUniqueSlice(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"duplicates removed in order", []string{"b", "a", "b", "c", "a"}, []string{"b", "a", "c"}},
		{"already unique", []string{"x", "y"}, []string{"x", "y"}},
		{"empty", nil, nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := UniqueSlice(test.in)
			if !slices.Equal(got, test.want) {
				t.Errorf("UniqueSlice(%v): expected %v, got %v", test.in, test.want, got)
			}
		})
	}
}

func TestPartition(t *testing.T) {
	isEven := func(n int) bool { return n%2 == 0 }

	matches, rest := Partition([]int{1, 2, 3, 4}, isEven)
	if !slices.Equal(matches, []int{2, 4}) {
		t.Errorf("Partition matches: expected [2 4], got %v", matches)
	}
	if !slices.Equal(rest, []int{1, 3}) {
		t.Errorf("Partition rest: expected [1 3], got %v", rest)
	}
}

func TestPartition_AllOneSide(t *testing.T) {
	always := func(int) bool { return true }
	matches, rest := Partition([]int{1, 2}, always)
	if !slices.Equal(matches, []int{1, 2}) || rest != nil {
		t.Errorf("Partition: expected all matches, got %v / %v", matches, rest)
	}
}

func TestTakeWhile(t *testing.T) {
	under5 := func(n int) bool { return n < 5 }

	// Stops permanently at 10 even though 4 would satisfy the predicate.
	got := slices.Collect(TakeWhile(slices.Values([]int{1, 2, 3, 10, 4}), under5))
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("TakeWhile: expected [1 2 3], got %v", got)
	}
}

func TestTakeWhile_DoesNotReadPastFailure(t *testing.T) {
	under5 := func(n int) bool { return n < 5 }

	visited := 0
	src := func(yield func(int) bool) {
		for _, n := range []int{1, 9, 2} {
			visited++
			if !yield(n) {
				return
			}
		}
	}

	got := slices.Collect(TakeWhile(src, under5))
	if !slices.Equal(got, []int{1}) {
		t.Errorf("TakeWhile: expected [1], got %v", got)
	}
	if visited != 2 {
		t.Errorf("TakeWhile: expected producer to stop after the failing element, visited %d", visited)
	}
}
