package processor

import (
	"slices"
)

// sortNoteOffFirst reorders the events of each tick so that note ends come before note starts.
// The order within each of the two groups is kept.
func sortNoteOffFirst(events []Event) []Event {
	out := slices.Clone(events)
	fixup := func(begin, end int) {
		if end <= begin+1 {
			return
		}
		slices.SortStableFunc(out[begin:end], func(a, b Event) int {
			aOff, bOff := a.closes(), b.closes()
			switch {
			case aOff && !bOff:
				return -1
			case bOff && !aOff:
				return 1
			}
			return 0
		})
	}

	begin := 0
	for i, ev := range out {
		if ev.Time != out[begin].Time {
			fixup(begin, i)
			begin = i
		}
	}
	fixup(begin, len(out))
	return out
}
