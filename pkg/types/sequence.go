package types

// Sequence hands out increasing integer IDs starting at 1.
// The zero value is ready to use. A Sequence is owned by whoever creates
// entities (a store or service); it is not safe for concurrent use.
type Sequence struct {
	last int
}

// Next advances the sequence and returns the new ID.
func (s *Sequence) Next() int {
	s.last++
	return s.last
}

// Peek returns the ID the next call to Next will return.
func (s *Sequence) Peek() int {
	return s.last + 1
}
