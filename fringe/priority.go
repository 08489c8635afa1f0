package fringe

import "container/heap"

// item wraps an Entry with its priority key and push sequence.
type item struct {
	entry Entry
	key   int64
	seq   uint64
}

// itemPQ is a min-heap ordered by key, then by push sequence so equal keys
// leave in insertion order.
type itemPQ []*item

// Len returns the number of items in the heap.
func (pq itemPQ) Len() int { return len(pq) }

// Less orders by key, then by sequence.
func (pq itemPQ) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq itemPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be *item.
func (pq *itemPQ) Push(x interface{}) { *pq = append(*pq, x.(*item)) }

// Pop is called by heap.Pop.
func (pq *itemPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return it
}

// priority is a heap-backed fringe keyed by the policy.
type priority struct {
	policy Policy
	pq     itemPQ
	seq    uint64
}

func newPriority(p Policy) *priority {
	return &priority{policy: p}
}

func (p *priority) Push(e Entry) {
	p.seq++
	heap.Push(&p.pq, &item{entry: e, key: p.keyOf(e), seq: p.seq})
}

func (p *priority) Pop() (Entry, bool) {
	if p.pq.Len() == 0 {
		return Entry{}, false
	}

	return heap.Pop(&p.pq).(*item).entry, true
}

func (p *priority) Len() int { return p.pq.Len() }

func (p *priority) Policy() Policy { return p.policy }

// keyOf extracts the ordering key for the configured policy.
func (p *priority) keyOf(e Entry) int64 {
	switch p.policy {
	case MinEstimate:
		return e.Estimate
	case MinTotal:
		return e.Total()
	default:
		return e.Cost
	}
}
