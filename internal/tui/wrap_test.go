package tui

import (
	"testing"

	"github.com/verte-zerg/vocabtype/internal/model"
	"github.com/verte-zerg/vocabtype/internal/typing"
)

func TestBuildActiveWordCursor(t *testing.T) {
	runes := buildActiveWord([]rune("ab"), []rune("a"))
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != currentWordStyle.Underline(true).Render("b") {
		t.Fatalf("expected cursor style for second rune")
	}
}

func TestBuildActiveWordKeepsTargetOnMistype(t *testing.T) {
	runes := buildActiveWord([]rune("ab"), []rune("ax"))
	if len(runes) != 3 {
		t.Fatalf("expected 2 runes plus cursor, got %d", len(runes))
	}
	if runes[1].s != incorrectStyle.Render("b") {
		t.Fatalf("expected incorrect style on target rune")
	}
	if runes[2].s != cursorStyle.Render(" ") {
		t.Fatalf("expected trailing cursor cell")
	}
}

func TestBuildActiveWordOvertyped(t *testing.T) {
	runes := buildActiveWord([]rune("ab"), []rune("abxy"))
	if len(runes) != 5 {
		t.Fatalf("expected 4 runes plus cursor, got %d", len(runes))
	}
	if runes[2].s != incorrectStyle.Render("x") || runes[3].s != incorrectStyle.Render("y") {
		t.Fatalf("expected overtyped runes shown as typed in incorrect style")
	}
}

func TestBuildActiveWordWrongSpaceDot(t *testing.T) {
	runes := buildActiveWord([]rune("a b"), []rune("ax"))
	if len(runes) != 3 {
		t.Fatalf("expected 3 runes, got %d", len(runes))
	}
	if runes[1].s != incorrectStyle.Render("•") {
		t.Fatalf("expected red dot for wrong space")
	}
	if runes[1].isBreak {
		t.Fatalf("space inside a phrase must not be a break")
	}
}

func TestBuildWordStreamStatuses(t *testing.T) {
	state := typing.State{
		Words: []model.VocabularyWord{
			{Source: "one"}, {Source: "two"}, {Source: "six"},
		},
		Cursor: 1,
		Input:  []rune("t"),
	}
	runes := buildWordStream(state)
	// 3 words of 3 runes plus 2 gaps.
	if len(runes) != 11 {
		t.Fatalf("expected 11 cells, got %d", len(runes))
	}
	if runes[0].s != completedStyle.Render("o") {
		t.Fatalf("expected completed style for first word")
	}
	if !runes[3].isBreak || runes[3].width != 2 {
		t.Fatalf("expected word gap after first word")
	}
	if runes[4].s != correctStyle.Render("t") {
		t.Fatalf("expected correct style for typed rune of active word")
	}
	if runes[5].s != currentWordStyle.Underline(true).Render("w") {
		t.Fatalf("expected cursor on next rune of active word")
	}
	if runes[8].s != pendingStyle.Render("s") {
		t.Fatalf("expected pending style for last word")
	}
}

func plainCells(words ...string) []styledRune {
	out := []styledRune{}
	for i, word := range words {
		if i > 0 {
			out = append(out, styledRune{s: wordGap, width: 2, isBreak: true})
		}
		for _, r := range word {
			out = append(out, styledRune{s: string(r), width: 1})
		}
	}
	return out
}

func TestWrapKeepsPhrasesTogether(t *testing.T) {
	got := wrapStyledRunes(plainCells("rely on", "as soon as"), 10)
	if got != "rely on\nas soon as" {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestWrapSingleLine(t *testing.T) {
	got := wrapStyledRunes(plainCells("a", "b"), 10)
	if got != "a  b" {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestWrapHardBreaksLongPhrase(t *testing.T) {
	got := wrapStyledRunes(plainCells("stay on top of"), 6)
	if got != "stay o\nn top \nof" {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestWrapZeroWidthRendersAll(t *testing.T) {
	got := wrapStyledRunes(plainCells("a", "b"), 0)
	if got != "a  b" {
		t.Fatalf("unexpected render: %q", got)
	}
}
