package render

import (
	"fmt"
	"strconv"
	"strings"

	"animexplorer/internal/catalog"
	"animexplorer/internal/models"
)

const (
	placeholderImage = "https://via.placeholder.com/120"
	notAvailable     = "N/D"
	synopsisLength   = 200

	NoResults = "Nessun anime trovato."
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML replaces the five markup-significant characters with entities.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// Cards renders result cards, four to a row. An empty list renders the
// no-results notice instead.
func Cards(animes []models.AnimeData) string {
	if len(animes) == 0 {
		return fmt.Sprintf("<p class=\"text-center\">%s</p>", NoResults)
	}

	var b strings.Builder
	b.WriteString("<div class=\"row\">")
	for _, anime := range animes {
		title := orNotAvailable(anime.Title)
		image := anime.Images.JPG.ImageURL
		if image == "" {
			image = placeholderImage
		}
		synopsis := "Descrizione non disponibile."
		if anime.Synopsis != "" {
			synopsis = catalog.Truncate(anime.Synopsis, synopsisLength)
		}

		b.WriteString("<div class=\"col-md-3\"><div class=\"anime-card h-100\">")
		fmt.Fprintf(&b, "<img src=\"%s\" alt=\"%s\">", EscapeHTML(image), EscapeHTML(title))
		b.WriteString("<div class=\"card-body\">")
		fmt.Fprintf(&b, "<h4>%s</h4>", EscapeHTML(title))
		fmt.Fprintf(&b, "<p><strong>Punteggio:</strong> %s</p>", formatScore(anime.Score))
		fmt.Fprintf(&b, "<p><strong>Episodi:</strong> %s</p>", formatEpisodes(anime.Episodes))
		fmt.Fprintf(&b, "<p>%s</p>", EscapeHTML(synopsis))
		fmt.Fprintf(&b, "<button class=\"btn btn-sm btn-secondary\" data-anime-id=\"%d\">Leggi di più</button>", anime.MalId)
		b.WriteString("</div></div></div>")
	}
	b.WriteString("</div>")
	return b.String()
}

// Detail renders the modal body for a single title.
func Detail(anime *models.AnimeData) string {
	title := orNotAvailable(anime.Title)
	synopsis := anime.Synopsis
	if synopsis == "" {
		synopsis = "Nessuna descrizione disponibile."
	}

	var b strings.Builder
	b.WriteString("<div class=\"container-fluid\"><div class=\"row\"><div class=\"col-md-4\">")
	if image := anime.Images.JPG.ImageURL; image != "" {
		fmt.Fprintf(&b, "<img src=\"%s\" alt=\"%s\" class=\"img-fluid mb-3\" style=\"max-height:300px; object-fit:cover;\">",
			EscapeHTML(image), EscapeHTML(title))
	}
	b.WriteString("</div><div class=\"col-md-8\">")
	fmt.Fprintf(&b, "<h2>%s</h2>", EscapeHTML(title))
	fmt.Fprintf(&b, "<p><strong>Punteggio:</strong> %s</p>", formatScore(anime.Score))
	fmt.Fprintf(&b, "<p><strong>Episodi:</strong> %s</p>", formatEpisodes(anime.Episodes))
	fmt.Fprintf(&b, "<p><strong>Generi:</strong> %s</p>", EscapeHTML(strings.Join(anime.GenreNames(), ", ")))
	fmt.Fprintf(&b, "<p><strong>Sinossi:</strong><br>%s</p>", EscapeHTML(synopsis))
	if anime.URL != "" {
		fmt.Fprintf(&b, "<p><a href=\"%s\" target=\"_blank\" rel=\"noopener\" class=\"btn btn-sm btn-primary\">Visualizza su MyAnimeList</a></p>",
			EscapeHTML(anime.URL))
	}
	b.WriteString("</div></div></div>")
	return b.String()
}

func ErrorPanel(message string) string {
	return fmt.Sprintf("<div class=\"alert alert-danger\">%s</div>", EscapeHTML(message))
}

func DetailError(message string) string {
	return fmt.Sprintf("<p class=\"text-danger\">%s</p>", EscapeHTML(message))
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

// zero is shown as N/D, same as missing
func formatScore(score *float64) string {
	if score == nil || *score == 0 {
		return notAvailable
	}
	return strconv.FormatFloat(*score, 'f', -1, 64)
}

func formatEpisodes(episodes *int) string {
	if episodes == nil || *episodes == 0 {
		return notAvailable
	}
	return strconv.Itoa(*episodes)
}
