package vocab

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/vocabtype/internal/model"
)

// RenderTopics prints the topic list as an aligned table.
func RenderTopics(w io.Writer, list []model.VocabularyTopic) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "No topics found.")
		return err
	}
	headers := []string{"ID", "Topic", "Vietnamese", "Words"}
	rows := make([][]string, 0, len(list))
	for _, t := range list {
		rows = append(rows, []string{
			fmt.Sprintf("%d", t.ID),
			DisplayTitle(t.Title),
			t.LocalizedTitle,
			fmt.Sprintf("%d", len(t.Words)),
		})
	}
	return writeLines(w, formatTable(headers, rows, map[int]bool{0: true, 3: true}))
}

// RenderWords prints the word pairs of a topic in data order.
func RenderWords(w io.Writer, topic model.VocabularyTopic) error {
	if _, err := fmt.Fprintf(w, "%s (%s)\n", DisplayTitle(topic.Title), topic.LocalizedTitle); err != nil {
		return err
	}
	rows := make([][]string, 0, len(topic.Words))
	for _, word := range topic.Words {
		rows = append(rows, []string{word.Source, word.Translation})
	}
	return writeLines(w, formatTable([]string{"English", "Vietnamese"}, rows, nil))
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlignCols))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	var b strings.Builder
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(padCell(cell, widths[i], rightAlignCols[i]))
	}
	return strings.TrimRight(b.String(), " ")
}

func padCell(value string, width int, rightAlign bool) string {
	valueWidth := runewidth.StringWidth(value)
	if valueWidth >= width {
		return value
	}
	padding := width - valueWidth
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}
