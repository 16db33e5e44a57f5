package typing

import (
	"testing"

	"github.com/verte-zerg/vocabtype/internal/model"
)

func TestClassify(t *testing.T) {
	got := Classify([]rune("abc"), []rune("ax"))
	want := []CharClass{CharCorrect, CharIncorrect, CharPending}
	if len(got) != len(want) {
		t.Fatalf("expected %d classes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestClassifyOvertyped(t *testing.T) {
	got := Classify([]rune("ab"), []rune("abcd"))
	if len(got) != 4 {
		t.Fatalf("expected 4 classes, got %d", len(got))
	}
	if got[0] != CharCorrect || got[1] != CharCorrect {
		t.Fatalf("expected target positions correct: %v", got)
	}
	if got[2] != CharIncorrect || got[3] != CharIncorrect {
		t.Fatalf("expected extra positions incorrect: %v", got)
	}
}

func TestWordStatus(t *testing.T) {
	s := State{
		Words: []model.VocabularyWord{
			{Source: "a"}, {Source: "b"}, {Source: "c"},
		},
		Cursor: 1,
	}
	want := []WordStatus{WordCompleted, WordActive, WordPending}
	for i, w := range want {
		if got := s.WordStatus(i); got != w {
			t.Fatalf("word %d: expected %v, got %v", i, w, got)
		}
	}
	done, total := s.Progress()
	if done != 1 || total != 3 {
		t.Fatalf("unexpected progress %d/%d", done, total)
	}
}

func TestWordStatusAfterDone(t *testing.T) {
	s := State{
		Words:  []model.VocabularyWord{{Source: "a"}, {Source: "b"}},
		Cursor: 2,
		Done:   true,
	}
	for i := range s.Words {
		if s.WordStatus(i) != WordCompleted {
			t.Fatalf("expected word %d completed", i)
		}
	}
	if s.ActiveClasses() != nil {
		t.Fatalf("expected no active classes after done")
	}
}
