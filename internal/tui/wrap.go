package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/vocabtype/internal/typing"
)

const wordGap = "  "

type styledRune struct {
	s     string
	width int
	// isBreak marks the gap between words; spaces inside a phrase never break.
	isBreak bool
}

// buildWordStream lays out every word of the state with its rendering style.
func buildWordStream(state typing.State) []styledRune {
	out := []styledRune{}
	for i, word := range state.Words {
		if i > 0 {
			out = append(out, styledRune{s: wordGap, width: len(wordGap), isBreak: true})
		}
		switch state.WordStatus(i) {
		case typing.WordCompleted:
			out = appendPlain(out, word.Source, completedStyle)
		case typing.WordActive:
			out = append(out, buildActiveWord([]rune(word.Source), state.Input)...)
		default:
			out = appendPlain(out, word.Source, pendingStyle)
		}
	}
	return out
}

func appendPlain(out []styledRune, text string, style lipgloss.Style) []styledRune {
	for _, r := range text {
		out = append(out, styledRune{
			s:     style.Render(string(r)),
			width: runewidth.RuneWidth(r),
		})
	}
	return out
}

// buildActiveWord styles the word being typed. Characters typed past the
// end of the target are shown as typed, in the incorrect style.
func buildActiveWord(targetRunes, inputRunes []rune) []styledRune {
	classes := typing.Classify(targetRunes, inputRunes)
	out := make([]styledRune, 0, len(classes)+1)
	for i, class := range classes {
		var displayed rune
		if i < len(targetRunes) {
			displayed = targetRunes[i]
		} else {
			displayed = inputRunes[i]
		}
		var style lipgloss.Style
		switch class {
		case typing.CharCorrect:
			style = correctStyle
		case typing.CharIncorrect:
			style = incorrectStyle
			if displayed == ' ' {
				displayed = '•'
			}
		default:
			style = currentWordStyle
		}
		if i == len(inputRunes) {
			style = style.Underline(true)
		}
		out = append(out, styledRune{
			s:     style.Render(string(displayed)),
			width: runewidth.RuneWidth(displayed),
		})
	}
	if len(inputRunes) >= len(targetRunes) {
		out = append(out, styledRune{s: cursorStyle.Render(" "), width: 1})
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastBreakIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastBreakIdx >= 0 {
				out.WriteString(renderStyledRunes(line[:lastBreakIdx]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastBreakIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastBreakIdx = lastBreakIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastBreakIdx = -1
			}
			continue
		}
		if item.isBreak && len(line) == 0 {
			i++
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isBreak {
			lastBreakIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastBreakIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isBreak {
			return i
		}
	}
	return -1
}
