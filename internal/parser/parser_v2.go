package parser

import (
	"fmt"

	"github.com/spacesedan/hnparser/internal/models"
	"github.com/tidwall/gjson"
)

// V2 parses the version 2.0 feed schema. It owns the sentiment,
// relationship, and metrics additions and delegates every shared-field
// extraction to an inner V1, so the two generations cannot drift on
// required-field rules.
type V2 struct {
	v1 *V1
}

// NewV2 returns a parser that only accepts inline data.
func NewV2() *V2 {
	return &V2{v1: NewV1()}
}

// NewV2FromFile returns a parser that falls back to reading path when
// Parse is called without inline data.
func NewV2FromFile(path string) *V2 {
	return &V2{v1: NewV1FromFile(path)}
}

// Parse converts a raw snapshot into a version 2.0 dataset. A payload
// shaped like version 1.0 parses cleanly: sentiment becomes the neutral
// default everywhere and relationships and metrics stay null.
func (p *V2) Parse(data []byte) (*models.DatasetV2, error) {
	doc, err := p.v1.load(data)
	if err != nil {
		return nil, err
	}
	core, err := p.v1.parseDatasetCore(doc)
	if err != nil {
		return nil, err
	}
	raws, err := datasetStories(doc)
	if err != nil {
		return nil, err
	}
	stories := make([]models.StoryV2, 0, len(raws))
	for i, raw := range raws {
		story, err := p.parseStory(raw)
		if err != nil {
			return nil, fmt.Errorf("stories[%d]: %w", i, err)
		}
		stories = append(stories, story)
	}
	var metrics *models.DatasetMetrics
	if raw, ok := optionalObject(doc, "metrics"); ok {
		if metrics, err = p.parseMetrics(raw); err != nil {
			return nil, fmt.Errorf("metrics: %w", err)
		}
	}
	return &models.DatasetV2{DatasetCore: core, Stories: stories, Metrics: metrics}, nil
}

func (p *V2) parseStory(raw gjson.Result) (models.StoryV2, error) {
	core, err := p.v1.parseStoryCore(raw)
	if err != nil {
		return models.StoryV2{}, err
	}
	rawComments, err := storyComments(raw)
	if err != nil {
		return models.StoryV2{}, err
	}
	comments := make([]models.CommentV2, 0, len(rawComments))
	for i, c := range rawComments {
		comment, err := p.parseComment(c)
		if err != nil {
			return models.StoryV2{}, fmt.Errorf("comments[%d]: %w", i, err)
		}
		comments = append(comments, comment)
	}
	sentiment := models.NeutralSentiment()
	if s, ok := optionalObject(raw, "sentiment"); ok {
		if sentiment, err = p.parseSentiment(s); err != nil {
			return models.StoryV2{}, fmt.Errorf("sentiment: %w", err)
		}
	}
	var relationships *models.StoryRelationships
	if r, ok := optionalObject(raw, "relationships"); ok {
		if relationships, err = p.parseRelationships(r); err != nil {
			return models.StoryV2{}, fmt.Errorf("relationships: %w", err)
		}
	}
	return models.StoryV2{
		StoryCore:     core,
		Comments:      comments,
		Sentiment:     sentiment,
		Relationships: relationships,
	}, nil
}

func (p *V2) parseComment(raw gjson.Result) (models.CommentV2, error) {
	base, err := p.v1.parseComment(raw)
	if err != nil {
		return models.CommentV2{}, err
	}
	sentiment := models.NeutralSentiment()
	if s, ok := optionalObject(raw, "sentiment"); ok {
		if sentiment, err = p.parseSentiment(s); err != nil {
			return models.CommentV2{}, fmt.Errorf("sentiment: %w", err)
		}
	}
	return models.CommentV2{Comment: base, Sentiment: sentiment}, nil
}

func (p *V2) parseSentiment(raw gjson.Result) (models.SentimentAnalysis, error) {
	var (
		s   models.SentimentAnalysis
		err error
	)
	if s.Score, err = requireFloat(raw, "score"); err != nil {
		return models.SentimentAnalysis{}, err
	}
	if s.Confidence, err = requireFloat(raw, "confidence"); err != nil {
		return models.SentimentAnalysis{}, err
	}
	if s.Aspects, err = requireStrings(raw, "aspects"); err != nil {
		return models.SentimentAnalysis{}, err
	}
	return s, nil
}

func (p *V2) parseRelationships(raw gjson.Result) (*models.StoryRelationships, error) {
	var (
		r   models.StoryRelationships
		err error
	)
	if r.CommentCount, err = requireInt(raw, "comment_count"); err != nil {
		return nil, err
	}
	if r.EngagementScore, err = requireFloat(raw, "engagement_score"); err != nil {
		return nil, err
	}
	if r.CommentSentimentAvg, err = requireFloat(raw, "comment_sentiment_avg"); err != nil {
		return nil, err
	}
	return &r, nil
}

func (p *V2) parseMetrics(raw gjson.Result) (*models.DatasetMetrics, error) {
	var (
		m   models.DatasetMetrics
		err error
	)
	if m.TotalStories, err = requireInt(raw, "total_stories"); err != nil {
		return nil, err
	}
	if m.TotalComments, err = requireInt(raw, "total_comments"); err != nil {
		return nil, err
	}
	if m.AvgSentiment, err = requireFloat(raw, "avg_sentiment"); err != nil {
		return nil, err
	}
	if m.EngagementScore, err = requireFloat(raw, "engagement_score"); err != nil {
		return nil, err
	}
	return &m, nil
}
