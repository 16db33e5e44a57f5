// Package typing implements the word-by-word typing state machine.
package typing

import (
	"errors"
	"strings"

	"github.com/verte-zerg/vocabtype/internal/generator"
	"github.com/verte-zerg/vocabtype/internal/model"
)

// Separator submits a word, or continues a multi-word phrase.
const Separator = ' '

// ErrEmptyTopic is returned when practice starts on a topic without words.
var ErrEmptyTopic = errors.New("topic has no words")

// KeyKind identifies the class of a key event.
type KeyKind int

const (
	// KeyOther is any key the engine ignores.
	KeyOther KeyKind = iota
	// KeyChar is a single printable character other than the separator.
	KeyChar
	// KeyBackspace removes the last typed character.
	KeyBackspace
	// KeySeparator is the space key.
	KeySeparator
)

// Key is a single key event.
type Key struct {
	Kind KeyKind
	Char rune
}

// CharKey builds the key event for a typed rune.
func CharKey(r rune) Key {
	if r == Separator {
		return Key{Kind: KeySeparator}
	}
	return Key{Kind: KeyChar, Char: r}
}

// Event reports what a transition did.
type Event int

const (
	// EventNone means the word was not submitted.
	EventNone Event = iota
	// EventSubmitted means a word other than the last one was accepted.
	EventSubmitted
	// EventFinished means the last word was accepted.
	EventFinished
)

// State is the typing progress through a shuffled word list.
type State struct {
	Words           []model.VocabularyWord
	Cursor          int
	Input           []rune
	LastTranslation string
	HasTranslation  bool
	Done            bool
}

// Engine starts typing sessions.
type Engine struct {
	gen *generator.Generator
}

// NewEngine returns an Engine shuffling with gen.
func NewEngine(gen *generator.Generator) *Engine {
	return &Engine{gen: gen}
}

// Start returns a fresh state over a new random order of the topic's words.
func (e *Engine) Start(topic model.VocabularyTopic) (State, error) {
	if len(topic.Words) == 0 {
		return State{}, ErrEmptyTopic
	}
	return State{Words: e.gen.Shuffle(topic.Words)}, nil
}

// HandleKey applies one key event and returns the next state.
// The receiver state is never modified.
func HandleKey(s State, k Key) (State, Event) {
	if s.Done || s.Cursor >= len(s.Words) {
		return s, EventNone
	}
	switch k.Kind {
	case KeyChar:
		if k.Char == Separator {
			return HandleKey(s, Key{Kind: KeySeparator})
		}
		s.Input = appendRune(s.Input, k.Char)
		return s, EventNone
	case KeyBackspace:
		if len(s.Input) == 0 {
			return s, EventNone
		}
		s.Input = s.Input[:len(s.Input)-1]
		return s, EventNone
	case KeySeparator:
		return handleSeparator(s)
	default:
		return s, EventNone
	}
}

func handleSeparator(s State) (State, Event) {
	current := s.Words[s.Cursor]
	typed := string(s.Input)
	switch {
	case typed == current.Source:
		s.LastTranslation = current.Translation
		s.HasTranslation = true
		s.Input = nil
		if s.Cursor == len(s.Words)-1 {
			s.Cursor = len(s.Words)
			s.Done = true
			return s, EventFinished
		}
		s.Cursor++
		return s, EventSubmitted
	case strings.HasPrefix(current.Source, typed+string(Separator)):
		s.Input = appendRune(s.Input, Separator)
		return s, EventNone
	default:
		return s, EventNone
	}
}

// appendRune never writes into the backing array of in, so earlier states stay intact.
func appendRune(in []rune, r rune) []rune {
	out := make([]rune, len(in), len(in)+1)
	copy(out, in)
	return append(out, r)
}

// Current returns the active word, or false once every word is done.
func (s State) Current() (model.VocabularyWord, bool) {
	if s.Done || s.Cursor >= len(s.Words) {
		return model.VocabularyWord{}, false
	}
	return s.Words[s.Cursor], true
}

// Typed returns the input for the active word.
func (s State) Typed() string {
	return string(s.Input)
}

// Progress returns the number of completed words and the total.
func (s State) Progress() (done, total int) {
	return s.Cursor, len(s.Words)
}
