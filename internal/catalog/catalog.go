// Package catalog holds the list operations behind the explorer view:
// sorting, filtering, pagination and the top-score chart series.
package catalog

import (
	"cmp"
	"slices"
	"strings"

	"animexplorer/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	PageSize       = 20
	ChartSize      = 10
	chartLabelSize = 20
)

// SortByScore returns a copy ordered by descending score. Missing scores
// count as zero and ties keep their input order.
func SortByScore(items []models.AnimeData) []models.AnimeData {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b models.AnimeData) int {
		return cmp.Compare(b.ScoreOrZero(), a.ScoreOrZero())
	})
	return sorted
}

// SortByTitle returns a copy ordered by title using English collation.
func SortByTitle(items []models.AnimeData) []models.AnimeData {
	// a Collator keeps internal buffers, so one per call
	col := collate.New(language.English)
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b models.AnimeData) int {
		return col.CompareString(a.Title, b.Title)
	})
	return sorted
}

// SortByEpisodes returns a copy ordered by descending episode count,
// missing counts as zero.
func SortByEpisodes(items []models.AnimeData) []models.AnimeData {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b models.AnimeData) int {
		return cmp.Compare(b.EpisodesOrZero(), a.EpisodesOrZero())
	})
	return sorted
}

func Sort(items []models.AnimeData, key models.SortKey) []models.AnimeData {
	switch key {
	case models.SortByTitle:
		return SortByTitle(items)
	case models.SortByEpisodes:
		return SortByEpisodes(items)
	default:
		return SortByScore(items)
	}
}

// Filter keeps entries whose title or synopsis contains query, ignoring case.
func Filter(items []models.AnimeData, query string) []models.AnimeData {
	q := strings.ToLower(query)
	out := make([]models.AnimeData, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), q) ||
			strings.Contains(strings.ToLower(item.Synopsis), q) {
			out = append(out, item)
		}
	}
	return out
}

// TopByScore returns at most n of the highest scored entries.
func TopByScore(items []models.AnimeData, n int) []models.AnimeData {
	sorted := SortByScore(items)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

type Chart struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

// ChartData builds the top-score bar chart series.
func ChartData(items []models.AnimeData) Chart {
	top := TopByScore(items, ChartSize)
	chart := Chart{
		Labels: make([]string, len(top)),
		Scores: make([]float64, len(top)),
	}
	for i, item := range top {
		chart.Labels[i] = Truncate(item.Title, chartLabelSize)
		chart.Scores[i] = item.ScoreOrZero()
	}
	return chart
}

// Truncate cuts s to n runes and marks the cut with "...".
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
