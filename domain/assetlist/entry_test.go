package assetlist

import "testing"

func drain(it *Iter) []AssetID {
	var ids []AssetID
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		ids = append(ids, id)
	}
	return ids
}

func pairs(t *testing.T, ids []AssetID) [][2]int {
	t.Helper()
	out := make([][2]int, len(ids))
	for i, id := range ids {
		out[i] = [2]int{id.Major(), id.Minor()}
	}
	return out
}

func TestSingle_Iter(t *testing.T) {
	e := Single(mustID(t, 7, 3))

	got := drain(e.Iter())
	if len(got) != 1 || got[0] != mustID(t, 7, 3) {
		t.Fatalf("expansion = %v, want [007-003]", got)
	}
}

func TestRange_Iter(t *testing.T) {
	tests := []struct {
		name string
		from [2]int
		to   [2]int
		want [][2]int
	}{
		{
			"from equals to",
			[2]int{3, 3}, [2]int{3, 3},
			[][2]int{{3, 3}},
		},
		{
			"within one major",
			[2]int{1, 0}, [2]int{1, 2},
			[][2]int{{1, 0}, {1, 1}, {1, 2}},
		},
		{
			"carry across minor boundary",
			[2]int{0, 998}, [2]int{1, 1},
			[][2]int{{0, 998}, {0, 999}, {1, 0}, {1, 1}},
		},
		{
			"top of identifier space",
			[2]int{999, 998}, [2]int{999, 999},
			[][2]int{{999, 998}, {999, 999}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Range(mustID(t, tt.from[0], tt.from[1]), mustID(t, tt.to[0], tt.to[1]))

			got := pairs(t, drain(e.Iter()))
			if len(got) != len(tt.want) {
				t.Fatalf("expansion = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("expansion[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// Two iterations of the same entry must not share cursor state.
func TestRange_Iter_Independent(t *testing.T) {
	e := Range(mustID(t, 0, 0), mustID(t, 0, 5))

	a := e.Iter()
	b := e.Iter()

	// Interleave the two traversals.
	var gotA, gotB []AssetID
	for {
		idA, okA := a.Next()
		idB, okB := b.Next()
		if okA != okB {
			t.Fatal("iterators disagreed on length")
		}
		if !okA {
			break
		}
		gotA = append(gotA, idA)
		gotB = append(gotB, idB)
	}

	if len(gotA) != 6 {
		t.Fatalf("got %d identifiers, want 6", len(gotA))
	}
	for i := range gotA {
		if gotA[i] != gotB[i] {
			t.Errorf("position %d: %v vs %v", i, gotA[i], gotB[i])
		}
	}
}

func TestIter_ExhaustedStaysExhausted(t *testing.T) {
	it := Single(mustID(t, 1, 1)).Iter()
	if _, ok := it.Next(); !ok {
		t.Fatal("first Next() should yield")
	}
	for i := 0; i < 3; i++ {
		if _, ok := it.Next(); ok {
			t.Fatal("exhausted iterator yielded again")
		}
	}
}

func TestList_Expand_PreservesEntryOrder(t *testing.T) {
	list, err := Parse("005-000,001-000--001-001,003-000")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := [][2]int{{5, 0}, {1, 0}, {1, 1}, {3, 0}}
	got := pairs(t, list.Expand())
	if len(got) != len(want) {
		t.Fatalf("Expand() = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("Expand()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestList_Strings(t *testing.T) {
	list, err := Parse("000-998--001-000")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []string{"000-998", "000-999", "001-000"}
	got := list.Strings()
	if len(got) != len(want) {
		t.Fatalf("Strings() = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("Strings()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
