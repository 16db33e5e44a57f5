package typing

// CharClass is the rendering class of one character of the active word.
type CharClass int

const (
	// CharPending is not typed yet.
	CharPending CharClass = iota
	// CharCorrect matches the target.
	CharCorrect
	// CharIncorrect differs from the target, or lies beyond its end.
	CharIncorrect
)

// WordStatus is the rendering status of a word in the stream.
type WordStatus int

const (
	// WordPending comes after the active word.
	WordPending WordStatus = iota
	// WordActive is being typed.
	WordActive
	// WordCompleted was submitted.
	WordCompleted
)

// Classify compares input against target position by position.
// The result covers max(len(target), len(input)) positions; typed
// positions past the end of target are always incorrect.
func Classify(target, input []rune) []CharClass {
	n := len(target)
	if len(input) > n {
		n = len(input)
	}
	out := make([]CharClass, n)
	for i := 0; i < n; i++ {
		switch {
		case i >= len(input):
			out[i] = CharPending
		case i < len(target) && input[i] == target[i]:
			out[i] = CharCorrect
		default:
			out[i] = CharIncorrect
		}
	}
	return out
}

// WordStatus reports whether word i is completed, active or pending.
func (s State) WordStatus(i int) WordStatus {
	switch {
	case i < s.Cursor:
		return WordCompleted
	case i == s.Cursor && !s.Done:
		return WordActive
	default:
		return WordPending
	}
}

// ActiveClasses classifies the input against the active word.
// It returns nil once every word is done.
func (s State) ActiveClasses() []CharClass {
	current, ok := s.Current()
	if !ok {
		return nil
	}
	return Classify([]rune(current.Source), s.Input)
}
