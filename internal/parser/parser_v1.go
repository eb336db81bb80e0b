// Package parser converts raw news-feed JSON snapshots into the typed
// structures in internal/models. Two schema generations are supported: V1
// handles the baseline stories-and-comments format, and V2 layers
// sentiment, relationship, and metrics extraction on top of V1's field
// rules. Parsing is a pure transformation; required fields fail fast with
// errors naming the offending key and its position.
package parser

import (
	"fmt"
	"os"

	"github.com/spacesedan/hnparser/internal/models"
	"github.com/tidwall/gjson"
)

// V1 parses the version 1.0 feed schema. A parser built with
// NewV1FromFile reads and caches the file on first use; the cache is not
// synchronized, so concurrent first calls on a shared instance need
// external coordination.
type V1 struct {
	path   string
	doc    gjson.Result
	loaded bool
}

// NewV1 returns a parser that only accepts inline data.
func NewV1() *V1 {
	return &V1{}
}

// NewV1FromFile returns a parser that falls back to reading path when
// Parse is called without inline data.
func NewV1FromFile(path string) *V1 {
	return &V1{path: path}
}

// load resolves the input source: inline data wins, then the cached file
// document, then a first read of the configured path.
func (p *V1) load(data []byte) (gjson.Result, error) {
	if data != nil {
		if !gjson.ValidBytes(data) {
			return gjson.Result{}, ErrInvalidJSON
		}
		return gjson.ParseBytes(data), nil
	}
	if p.loaded {
		return p.doc, nil
	}
	if p.path == "" {
		return gjson.Result{}, ErrNoData
	}
	raw, err := os.ReadFile(p.path)
	if err != nil {
		return gjson.Result{}, err
	}
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, fmt.Errorf("%s: %w", p.path, ErrInvalidJSON)
	}
	p.doc = gjson.ParseBytes(raw)
	p.loaded = true
	return p.doc, nil
}

// Parse converts a raw snapshot into a version 1.0 dataset. With nil data
// the parser falls back to its configured file source.
func (p *V1) Parse(data []byte) (*models.Dataset, error) {
	doc, err := p.load(data)
	if err != nil {
		return nil, err
	}
	core, err := p.parseDatasetCore(doc)
	if err != nil {
		return nil, err
	}
	raws, err := datasetStories(doc)
	if err != nil {
		return nil, err
	}
	stories := make([]models.Story, 0, len(raws))
	for i, raw := range raws {
		story, err := p.parseStory(raw)
		if err != nil {
			return nil, fmt.Errorf("stories[%d]: %w", i, err)
		}
		stories = append(stories, story)
	}
	return &models.Dataset{DatasetCore: core, Stories: stories}, nil
}

func (p *V1) parseDatasetCore(doc gjson.Result) (models.DatasetCore, error) {
	version, err := requireString(doc, "version")
	if err != nil {
		return models.DatasetCore{}, err
	}
	timestamp, err := requireString(doc, "timestamp")
	if err != nil {
		return models.DatasetCore{}, err
	}
	return models.DatasetCore{Version: version, Timestamp: timestamp}, nil
}

func (p *V1) parseStory(raw gjson.Result) (models.Story, error) {
	core, err := p.parseStoryCore(raw)
	if err != nil {
		return models.Story{}, err
	}
	rawComments, err := storyComments(raw)
	if err != nil {
		return models.Story{}, err
	}
	comments := make([]models.Comment, 0, len(rawComments))
	for i, c := range rawComments {
		comment, err := p.parseComment(c)
		if err != nil {
			return models.Story{}, fmt.Errorf("comments[%d]: %w", i, err)
		}
		comments = append(comments, comment)
	}
	return models.Story{StoryCore: core, Comments: comments}, nil
}

func (p *V1) parseStoryCore(raw gjson.Result) (models.StoryCore, error) {
	var (
		core models.StoryCore
		err  error
	)
	if core.ID, err = requireString(raw, "id"); err != nil {
		return models.StoryCore{}, err
	}
	if core.Title, err = requireString(raw, "title"); err != nil {
		return models.StoryCore{}, err
	}
	if core.URL, err = requireString(raw, "url"); err != nil {
		return models.StoryCore{}, err
	}
	if core.Domain, err = requireString(raw, "domain"); err != nil {
		return models.StoryCore{}, err
	}
	if core.Author, err = requireString(raw, "author"); err != nil {
		return models.StoryCore{}, err
	}
	if core.Timestamp, err = requireString(raw, "timestamp"); err != nil {
		return models.StoryCore{}, err
	}
	if core.Points, err = requireInt(raw, "points"); err != nil {
		return models.StoryCore{}, err
	}
	if core.Rank, err = requireInt(raw, "rank"); err != nil {
		return models.StoryCore{}, err
	}
	return core, nil
}

func (p *V1) parseComment(raw gjson.Result) (models.Comment, error) {
	var (
		c   models.Comment
		err error
	)
	if c.ID, err = requireString(raw, "id"); err != nil {
		return models.Comment{}, err
	}
	if c.Author, err = requireString(raw, "author"); err != nil {
		return models.Comment{}, err
	}
	if c.Timestamp, err = requireString(raw, "timestamp"); err != nil {
		return models.Comment{}, err
	}
	if c.Text, err = requireString(raw, "text"); err != nil {
		return models.Comment{}, err
	}
	return c, nil
}
