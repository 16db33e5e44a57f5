// Package model defines shared data structures.
package model

// VocabularyWord pairs a source term with its translation.
// Source may contain spaces for multi-word phrases.
type VocabularyWord struct {
	Source      string
	Translation string
}

// VocabularyTopic is a named, ordered list of words.
type VocabularyTopic struct {
	ID             int
	Title          string
	LocalizedTitle string
	Words          []VocabularyWord
}

// Config defines practice settings.
type Config struct {
	Topic    int
	Seed     int64
	WidthPct float64
	Debug    bool
	LogPath  string
}
