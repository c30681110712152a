package control

// Frame is an open container.
type Frame struct {
	Type Type

	// Blocks counts the blocks read directly inside this container.
	Blocks uint64
}

type Stack []*Frame

func (s *Stack) Push(f *Frame) {
	*s = append(*s, f)
}

func (s Stack) Top() *Frame {
	if len(s) == 0 {
		return nil
	}

	return s[len(s)-1]
}

func (s *Stack) Pop() (err error) {
	top := s.Top()
	if top == nil {
		return Error.New("no frame on stack")
	}

	*s = (*s)[:len(*s)-1]

	return nil
}

// Count records a block read inside the innermost container.
func (s *Stack) Count() {
	if top := s.Top(); top != nil {
		top.Blocks++
	}
}
