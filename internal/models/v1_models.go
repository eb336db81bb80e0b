package models

// Comment is a single reply attached to a story. Every field is required
// by the version 1.0 schema.
type Comment struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}

// StoryCore holds the eight story scalars shared by every schema
// generation. Timestamps are opaque strings, ISO-8601 by convention only.
type StoryCore struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Domain    string `json:"domain"`
	Author    string `json:"author"`
	Timestamp string `json:"timestamp"`
	Points    int    `json:"points"`
	Rank      int    `json:"rank"`
}

// Story is a single feed item in the version 1.0 schema. Comments is never
// nil; a story whose input lacked the key carries an empty slice.
type Story struct {
	StoryCore
	Comments []Comment `json:"comments"`
}

// DatasetCore holds the top-level fields shared by every schema generation.
type DatasetCore struct {
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// Dataset is a complete version 1.0 feed snapshot.
type Dataset struct {
	DatasetCore
	Stories []Story `json:"stories"`
}
