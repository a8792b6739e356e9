package models

type SortKey string

const (
	SortByScore    SortKey = "score"
	SortByTitle    SortKey = "title"
	SortByEpisodes SortKey = "episodes"
)

// ParseSortKey maps user input to a SortKey, falling back to score.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortByTitle:
		return SortByTitle
	case SortByEpisodes:
		return SortByEpisodes
	default:
		return SortByScore
	}
}

// SessionState is what a visitor sees: the current result set in the order
// the API returned it, plus how it is being displayed.
type SessionState struct {
	Results []AnimeData `json:"results"`
	Sort    SortKey     `json:"sort"`
	Page    int         `json:"page"`
	Filter  string      `json:"filter,omitempty"`
	Error   string      `json:"error,omitempty"`
	Loaded  bool        `json:"loaded"`
}

func NewSessionState() *SessionState {
	return &SessionState{Sort: SortByScore, Page: 1}
}

// Replace swaps in a fresh result set and resets the view to the first page
// sorted by score.
func (s *SessionState) Replace(results []AnimeData) {
	s.Results = results
	s.Sort = SortByScore
	s.Page = 1
	s.Filter = ""
	s.Loaded = true
}

// TakeError returns the pending error message once.
func (s *SessionState) TakeError() string {
	msg := s.Error
	s.Error = ""
	return msg
}
