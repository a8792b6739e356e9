package models

type JikanListResponse struct {
	Data       []AnimeData `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

type JikanDetailResponse struct {
	Data AnimeData `json:"data"`
}

// AnimeData is the summary record returned by the list, search and detail
// endpoints. Score and Episodes are nil when Jikan reports null.
type AnimeData struct {
	MalId    int      `json:"mal_id"`
	Title    string   `json:"title"`
	Score    *float64 `json:"score"`
	Episodes *int     `json:"episodes"`
	Synopsis string   `json:"synopsis"`
	Images   Images   `json:"images"`
	Genres   []Genre  `json:"genres"`
	URL      string   `json:"url"`
}

type Images struct {
	JPG ImageURL `json:"jpg"`
}

type ImageURL struct {
	ImageURL string `json:"image_url"`
}

type Genre struct {
	Name string `json:"name"`
}

type Pagination struct {
	HasNextPage bool `json:"has_next_page"`
	Items       struct {
		Count int `json:"count"`
		Total int `json:"total"`
	} `json:"items"`
}

// ScoreOrZero treats a missing score as zero.
func (a AnimeData) ScoreOrZero() float64 {
	if a.Score == nil {
		return 0
	}
	return *a.Score
}

func (a AnimeData) EpisodesOrZero() int {
	if a.Episodes == nil {
		return 0
	}
	return *a.Episodes
}

func (a AnimeData) GenreNames() []string {
	names := make([]string, len(a.Genres))
	for i, g := range a.Genres {
		names[i] = g.Name
	}
	return names
}
