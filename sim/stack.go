package sim

const (
	STACK_LIMIT = 64 // Maximum call depth
)

// Stack is the call stack of return indexes.
type Stack struct {
	Data []int
}

func (s *Stack) Push(value int) (err error) {
	if s.Full() {
		err = ErrStackFull
		return
	}
	s.Data = append(s.Data, value)
	return
}

func (s *Stack) Pop() (value int, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Full() bool {
	return len(s.Data) == STACK_LIMIT
}

func (s *Stack) Peek() (value int, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
