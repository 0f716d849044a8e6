package reconcile

// tally counts identities in the order they are first encountered.
// Ties on the most common identity go to the one encountered first.
type tally struct {
	order  []Identity
	counts map[Identity]int
	total  int
}

func (t *tally) add(id Identity) {
	if t.counts == nil {
		t.counts = make(map[Identity]int)
	}
	if _, seen := t.counts[id]; !seen {
		t.order = append(t.order, id)
	}
	t.counts[id]++
	t.total++
}

// distinct returns the number of different identities counted.
func (t *tally) distinct() int {
	return len(t.order)
}

// top returns the most common identity and its count.
// It returns false when nothing was counted.
func (t *tally) top() (Identity, int, bool) {
	var (
		best  Identity
		count int
	)
	for _, id := range t.order {
		if c := t.counts[id]; c > count {
			best, count = id, c
		}
	}
	return best, count, count > 0
}
