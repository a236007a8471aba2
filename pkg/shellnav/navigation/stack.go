package navigation

// Entry is one page in the frame history, with the parameter and transition
// it was shown with.
type Entry struct {
	Page       Page
	Parameter  any
	Transition Transition
}

// Stack is one side of the frame history. The most recently left page is on top.
type Stack struct {
	entries []Entry
}

func NewStack() *Stack {
	return &Stack{}
}

// Push records entry as the most recently left page.
func (s *Stack) Push(entry Entry) {
	s.entries = append(s.entries, entry)
}

// Pop takes the most recently left page off the history, or returns nil when
// the history is empty.
func (s *Stack) Pop() *Entry {
	top := s.Peek()
	if top == nil {
		return nil
	}
	entry := *top
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the page Pop would return without removing it.
func (s *Stack) Peek() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear drops the whole history, as a new navigation does to the forward side.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
