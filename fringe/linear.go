package fringe

// queue is a FIFO fringe. head advances instead of re-slicing from zero so
// long searches do not keep shifting the backing array.
type queue struct {
	items []Entry
	head  int
}

func (q *queue) Push(e Entry) { q.items = append(q.items, e) }

func (q *queue) Pop() (Entry, bool) {
	if q.head >= len(q.items) {
		return Entry{}, false
	}
	e := q.items[q.head]
	q.items[q.head] = Entry{} // release Path for GC
	q.head++
	if q.head == len(q.items) {
		q.items, q.head = q.items[:0], 0
	}

	return e, true
}

func (q *queue) Len() int { return len(q.items) - q.head }

func (q *queue) Policy() Policy { return FIFO }

// stack is a LIFO fringe.
type stack struct {
	items []Entry
}

func (s *stack) Push(e Entry) { s.items = append(s.items, e) }

func (s *stack) Pop() (Entry, bool) {
	n := len(s.items)
	if n == 0 {
		return Entry{}, false
	}
	e := s.items[n-1]
	s.items[n-1] = Entry{}
	s.items = s.items[:n-1]

	return e, true
}

func (s *stack) Len() int { return len(s.items) }

func (s *stack) Policy() Policy { return LIFO }
