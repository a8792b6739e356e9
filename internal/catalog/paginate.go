package catalog

import "animexplorer/internal/models"

type Page struct {
	Items      []models.AnimeData
	Page       int
	TotalPages int
	Numbers    []int
}

func (p Page) HasPrev() bool { return p.Page > 1 }

func (p Page) HasNext() bool { return p.Page < p.TotalPages }

func (p Page) Prev() int { return p.Page - 1 }

func (p Page) Next() int { return p.Page + 1 }

// ShowNav reports whether a pagination bar is worth drawing.
func (p Page) ShowNav() bool { return p.TotalPages > 1 }

// TotalPages is ceil(n/size).
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Paginate slices out the requested 1-based page. Page numbers outside the
// valid range are clamped; the last page holds whatever is left over.
func Paginate(items []models.AnimeData, page, size int) Page {
	total := TotalPages(len(items), size)
	if page > total {
		page = total
	}
	if page < 1 {
		page = 1
	}

	p := Page{
		Page:       page,
		TotalPages: total,
		Numbers:    make([]int, total),
		Items:      []models.AnimeData{},
	}
	for i := range p.Numbers {
		p.Numbers[i] = i + 1
	}
	if total == 0 {
		return p
	}

	start := (page - 1) * size
	end := min(start+size, len(items))
	p.Items = items[start:end]
	return p
}
