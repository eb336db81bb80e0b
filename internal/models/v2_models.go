package models

// SentimentAnalysis is a pre-computed opinion score attached to stories and
// comments in the version 2.0 schema. Score is conventionally in
// [-1.0, 1.0] and Confidence in [0.0, 1.0]; neither range is enforced,
// values pass through as supplied.
type SentimentAnalysis struct {
	Score      float64  `json:"score"`
	Confidence float64  `json:"confidence"`
	Aspects    []string `json:"aspects"`
}

// NeutralSentiment is the sentiment substituted for items whose input
// carries none. Aspects is allocated so it serializes as [] and not null.
func NeutralSentiment() SentimentAnalysis {
	return SentimentAnalysis{Score: 0.0, Confidence: 0.0, Aspects: []string{}}
}

// CommentV2 extends the version 1.0 comment with sentiment. Sentiment is
// always populated; comments without one get the neutral default.
type CommentV2 struct {
	Comment
	Sentiment SentimentAnalysis `json:"sentiment"`
}

// StoryRelationships carries the engagement aggregates supplied with a
// story. The values are trusted as-is: CommentCount is not cross-checked
// against the parsed comment list.
type StoryRelationships struct {
	CommentCount        int     `json:"comment_count"`
	EngagementScore     float64 `json:"engagement_score"`
	CommentSentimentAvg float64 `json:"comment_sentiment_avg"`
}

// StoryV2 extends the version 1.0 story with sentiment and relationships.
// Relationships stays nil when the input had none; it serializes as an
// explicit null, unlike Sentiment which is neutral-defaulted.
type StoryV2 struct {
	StoryCore
	Comments      []CommentV2         `json:"comments"`
	Sentiment     SentimentAnalysis   `json:"sentiment"`
	Relationships *StoryRelationships `json:"relationships"`
}

// DatasetMetrics carries dataset-wide aggregates supplied with a version
// 2.0 snapshot.
type DatasetMetrics struct {
	TotalStories    int     `json:"total_stories"`
	TotalComments   int     `json:"total_comments"`
	AvgSentiment    float64 `json:"avg_sentiment"`
	EngagementScore float64 `json:"engagement_score"`
}

// DatasetV2 is a complete version 2.0 feed snapshot. Metrics stays nil when
// absent from the input and serializes as an explicit null.
type DatasetV2 struct {
	DatasetCore
	Stories []StoryV2       `json:"stories"`
	Metrics *DatasetMetrics `json:"metrics"`
}
