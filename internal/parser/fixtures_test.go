package parser

import (
	"testing"

	"github.com/tidwall/sjson"

	"github.com/spacesedan/hnparser/internal/models"
)

// Minimal well-formed payloads, one story with one comment each. Tests
// derive malformed variants from these with sjson instead of maintaining
// a fixture per case.
const v1Minimal = `{
	"version": "1.0",
	"timestamp": "2024-03-14T12:00:00Z",
	"stories": [
		{
			"id": "123456",
			"title": "Test Story",
			"url": "https://example.com/test",
			"domain": "example.com",
			"author": "test_author",
			"timestamp": "2024-03-14T10:00:00Z",
			"points": 100,
			"rank": 1,
			"comments": [
				{
					"id": "c1",
					"author": "commenter1",
					"timestamp": "2024-03-14T11:00:00Z",
					"text": "Great article!"
				}
			]
		}
	]
}`

const v2Minimal = `{
	"version": "2.0",
	"timestamp": "2024-03-14T12:00:00Z",
	"stories": [
		{
			"id": "123456",
			"title": "Test Story",
			"url": "https://example.com/test",
			"domain": "example.com",
			"author": "test_author",
			"timestamp": "2024-03-14T10:00:00Z",
			"points": 100,
			"rank": 1,
			"sentiment": {
				"score": 0.8,
				"confidence": 0.95,
				"aspects": ["positive", "informative"]
			},
			"comments": [
				{
					"id": "c1",
					"author": "commenter1",
					"timestamp": "2024-03-14T11:00:00Z",
					"text": "Great article!",
					"sentiment": {
						"score": 0.9,
						"confidence": 0.85,
						"aspects": ["positive", "enthusiastic"]
					}
				}
			],
			"relationships": {
				"comment_count": 1,
				"engagement_score": 0.85,
				"comment_sentiment_avg": 0.85
			}
		}
	],
	"metrics": {
		"total_stories": 1,
		"total_comments": 1,
		"avg_sentiment": 0.85,
		"engagement_score": 0.85
	}
}`

func wantV1Minimal() *models.Dataset {
	return &models.Dataset{
		DatasetCore: models.DatasetCore{Version: "1.0", Timestamp: "2024-03-14T12:00:00Z"},
		Stories: []models.Story{{
			StoryCore: models.StoryCore{
				ID:        "123456",
				Title:     "Test Story",
				URL:       "https://example.com/test",
				Domain:    "example.com",
				Author:    "test_author",
				Timestamp: "2024-03-14T10:00:00Z",
				Points:    100,
				Rank:      1,
			},
			Comments: []models.Comment{{
				ID:        "c1",
				Author:    "commenter1",
				Timestamp: "2024-03-14T11:00:00Z",
				Text:      "Great article!",
			}},
		}},
	}
}

func wantV2Minimal() *models.DatasetV2 {
	return &models.DatasetV2{
		DatasetCore: models.DatasetCore{Version: "2.0", Timestamp: "2024-03-14T12:00:00Z"},
		Stories: []models.StoryV2{{
			StoryCore: models.StoryCore{
				ID:        "123456",
				Title:     "Test Story",
				URL:       "https://example.com/test",
				Domain:    "example.com",
				Author:    "test_author",
				Timestamp: "2024-03-14T10:00:00Z",
				Points:    100,
				Rank:      1,
			},
			Comments: []models.CommentV2{{
				Comment: models.Comment{
					ID:        "c1",
					Author:    "commenter1",
					Timestamp: "2024-03-14T11:00:00Z",
					Text:      "Great article!",
				},
				Sentiment: models.SentimentAnalysis{
					Score:      0.9,
					Confidence: 0.85,
					Aspects:    []string{"positive", "enthusiastic"},
				},
			}},
			Sentiment: models.SentimentAnalysis{
				Score:      0.8,
				Confidence: 0.95,
				Aspects:    []string{"positive", "informative"},
			},
			Relationships: &models.StoryRelationships{
				CommentCount:        1,
				EngagementScore:     0.85,
				CommentSentimentAvg: 0.85,
			},
		}},
		Metrics: &models.DatasetMetrics{
			TotalStories:    1,
			TotalComments:   1,
			AvgSentiment:    0.85,
			EngagementScore: 0.85,
		},
	}
}

func mustDelete(t *testing.T, data, path string) []byte {
	t.Helper()
	out, err := sjson.Delete(data, path)
	if err != nil {
		t.Fatalf("sjson.Delete(%q): %v", path, err)
	}
	return []byte(out)
}

func mustSetRaw(t *testing.T, data, path, raw string) []byte {
	t.Helper()
	out, err := sjson.SetRaw(data, path, raw)
	if err != nil {
		t.Fatalf("sjson.SetRaw(%q): %v", path, err)
	}
	return []byte(out)
}
