package softheap

// meldChunk reduces items to a single node by balanced pairwise melding: a
// binary-tree reduction that pairs up adjacent nodes, melds each pair, and
// recurses on the winners. No corruption is introduced. Returns ok=false
// only when items is empty.
func meldChunk[T any](less func(a, b T) bool, items []Node[T]) (Node[T], bool) {
	if len(items) == 0 {
		return Node[T]{}, false
	}
	for len(items) >= 2 {
		next := make([]Node[T], 0, (len(items)+1)/2)
		for i := 0; i < len(items); i += 2 {
			if i+1 < len(items) {
				next = append(next, meld(less, items[i], items[i+1]))
			} else {
				next = append(next, items[i])
			}
		}
		items = next
	}
	return items[0], true
}

// mergeChildren is the canonical chunked two-pass merge strategy: the only
// way children are consolidated, during delete-min and recursively during
// corrupt. items is partitioned into consecutive groups of k, with a
// possibly smaller trailing group. Each full group is reduced by
// meldChunk, then corrupted -- exactly one new corruption per full group.
// The trailing partial group (strictly fewer than k items) is reduced the
// same way but granted grace: no corruption. Finally every surviving
// per-group node is melded together by one more balanced pairwise
// reduction, itself never corrupted.
//
// Returns ok=false only when items is empty. corrupted collects every key
// absorbed into a pool anywhere during this call, each appearing exactly
// once, in the order corruption happened.
func mergeChildren[T any](less func(a, b T) bool, k int, items []Node[T]) (result Node[T], ok bool, corrupted []T) {
	if len(items) == 0 {
		return Node[T]{}, false, nil
	}

	var reduced []Node[T]
	for i := 0; i < len(items); i += k {
		end := i + k
		if end > len(items) {
			end = len(items)
		}
		chunk := items[i:end]

		m, ok := meldChunk(less, chunk)
		if !ok {
			continue
		}

		if len(chunk) == k {
			// full chunk: corrupt it, emitting exactly one new corruption
			// (plus anything absorbed recursively within it).
			c, absorbed := corrupt(less, k, m)
			reduced = append(reduced, c)
			corrupted = append(corrupted, absorbed...)
		} else {
			// trailing partial chunk: grace, no corruption.
			reduced = append(reduced, m)
		}
	}

	final, ok := meldChunk(less, reduced)
	return final, ok, corrupted
}
