// Package summary renders parsed datasets as human-readable text for the
// command line.
package summary

import (
	"fmt"
	"io"
	"strings"

	"github.com/spacesedan/hnparser/internal/models"
)

// PrintDataset writes a version 1.0 dataset summary: the story count
// followed by title, author, and comment count per story.
func PrintDataset(w io.Writer, d *models.Dataset) {
	fmt.Fprintf(w, "Parsed %d stories from version %s\n", len(d.Stories), d.Version)
	for _, story := range d.Stories {
		fmt.Fprintf(w, "\nStory: %s\n", story.Title)
		fmt.Fprintf(w, "Author: %s\n", story.Author)
		fmt.Fprintf(w, "Comments: %d\n", len(story.Comments))
	}
}

// PrintDatasetV2 writes a version 2.0 dataset summary, adding the
// dataset metrics block plus per-story sentiment and engagement when the
// payload carried them.
func PrintDatasetV2(w io.Writer, d *models.DatasetV2) {
	fmt.Fprintf(w, "Parsed %d stories from version %s\n", len(d.Stories), d.Version)
	if d.Metrics != nil {
		fmt.Fprintln(w, "Dataset metrics:")
		fmt.Fprintf(w, "- Total stories: %d\n", d.Metrics.TotalStories)
		fmt.Fprintf(w, "- Total comments: %d\n", d.Metrics.TotalComments)
		fmt.Fprintf(w, "- Average sentiment: %.2f\n", d.Metrics.AvgSentiment)
		fmt.Fprintf(w, "- Engagement score: %.2f\n", d.Metrics.EngagementScore)
	}
	for _, story := range d.Stories {
		fmt.Fprintf(w, "\nStory: %s\n", story.Title)
		fmt.Fprintf(w, "Author: %s\n", story.Author)
		fmt.Fprintf(w, "Sentiment: %.2f (%s)\n",
			story.Sentiment.Score, strings.Join(story.Sentiment.Aspects, ", "))
		fmt.Fprintf(w, "Comments: %d\n", len(story.Comments))
		if story.Relationships != nil {
			fmt.Fprintf(w, "Engagement: %.2f\n", story.Relationships.EngagementScore)
		}
	}
}
