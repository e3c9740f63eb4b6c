package schedule

import "testing"

// The schedule is a pure function of its inputs: the same (view, instance,
// roster size) always yields the same rank, every consecutive view shifts
// the master rank by one, and over totalNodes consecutive views each rank
// is chosen exactly once.
func TestRank_CyclesThroughAllRanks(t *testing.T) {
	for _, totalNodes := range []int{1, 4, 7, 100} {
		seen := make(map[int]int)
		for view := uint64(0); view < uint64(totalNodes); view++ {
			seen[Rank(view, 0, totalNodes)]++
		}
		if len(seen) != totalNodes {
			t.Errorf("totalNodes=%d: %d distinct ranks over one full cycle, want %d", totalNodes, len(seen), totalNodes)
		}
		for rank, n := range seen {
			if n != 1 {
				t.Errorf("totalNodes=%d: rank %d chosen %d times in one cycle", totalNodes, rank, n)
			}
		}
	}
}

func TestRank_SuccessiveViewsShiftByOne(t *testing.T) {
	const totalNodes = 4
	for view := uint64(0); view < 1000; view++ {
		cur := Rank(view, 0, totalNodes)
		next := Rank(view+1, 0, totalNodes)
		if next != (cur+1)%totalNodes {
			t.Fatalf("view %d: rank %d followed by %d", view, cur, next)
		}
	}
}

func TestRank_InstanceOffsetsMatchViewOffsets(t *testing.T) {
	const totalNodes = 7
	for view := uint64(0); view < 100; view++ {
		for inst := uint32(0); inst < 5; inst++ {
			if Rank(view, inst, totalNodes) != Rank(view+uint64(inst), 0, totalNodes) {
				t.Fatalf("view %d instance %d: instance offset disagrees with view offset", view, inst)
			}
		}
	}
}
