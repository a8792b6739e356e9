package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"animexplorer/internal/catalog"
	"animexplorer/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageView is everything the explorer page needs for one render.
type PageView struct {
	Cards      template.HTML
	Error      template.HTML
	Pagination catalog.Page
	Paginated  bool
	Sort       models.SortKey
	Filter     string
	Chart      catalog.Chart
	Total      int
}

// NewPageView derives the display for a session: the sorted copy, the
// requested page, the chart, or the filtered list when a filter is active.
func NewPageView(state *models.SessionState) PageView {
	sorted := catalog.Sort(state.Results, state.Sort)
	view := PageView{
		Sort:   state.Sort,
		Filter: state.Filter,
		Chart:  catalog.ChartData(sorted),
		Total:  len(state.Results),
	}

	if msg := state.TakeError(); msg != "" {
		view.Error = template.HTML(ErrorPanel(msg))
	}

	if state.Filter != "" {
		view.Cards = template.HTML(Cards(catalog.Filter(state.Results, state.Filter)))
		return view
	}

	view.Pagination = catalog.Paginate(sorted, state.Page, catalog.PageSize)
	view.Paginated = view.Pagination.ShowNav()
	state.Page = view.Pagination.Page
	view.Cards = template.HTML(Cards(view.Pagination.Items))
	return view
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"year": func() int { return time.Now().Year() },
	}
	tmpl, err := template.New("explorer").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Page(w io.Writer, view PageView) error {
	return r.tmpl.ExecuteTemplate(w, "index.html", view)
}
