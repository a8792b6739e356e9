package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"animexplorer/internal/catalog"
	"animexplorer/internal/models"
	"animexplorer/internal/render"
	"animexplorer/internal/services"
	"animexplorer/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const sessionCookie = "explorer_session"

// AnimeSource is the slice of the Jikan client the explorer needs.
type AnimeSource interface {
	LoadTopAnime(ctx context.Context) ([]models.AnimeData, error)
	SearchAnime(ctx context.Context, query string) ([]models.AnimeData, error)
	AnimeDetails(ctx context.Context, id int) (*models.AnimeData, error)
}

type Explorer struct {
	anime      AnimeSource
	sessions   session.Store
	renderer   *render.Renderer
	logger     *logrus.Logger
	sessionTTL time.Duration
}

func NewExplorer(anime AnimeSource, sessions session.Store, renderer *render.Renderer, logger *logrus.Logger, sessionTTL time.Duration) *Explorer {
	return &Explorer{
		anime:      anime,
		sessions:   sessions,
		renderer:   renderer,
		logger:     logger,
		sessionTTL: sessionTTL,
	}
}

// Index renders the current view. A visitor without results gets the top
// ranking loaded first.
func (e *Explorer) Index(w http.ResponseWriter, r *http.Request) {
	id, state := e.loadSession(w, r)
	if !state.Loaded {
		e.loadTop(r.Context(), state)
	}

	view := render.NewPageView(state)
	e.saveSession(r.Context(), id, state)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := e.renderer.Page(w, view); err != nil {
		e.logger.WithError(err).Error("Failed to render page")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (e *Explorer) Top(w http.ResponseWriter, r *http.Request) {
	id, state := e.loadSession(w, r)
	e.loadTop(r.Context(), state)
	e.saveSession(r.Context(), id, state)
	backToIndex(w, r)
}

func (e *Explorer) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.FormValue("q"))
	if query == "" {
		backToIndex(w, r)
		return
	}

	id, state := e.loadSession(w, r)
	results, err := e.anime.SearchAnime(r.Context(), query)
	if err != nil {
		e.logger.WithError(err).WithField("query", query).Error("Failed to search anime")
		state.Error = failureMessage("Errore nella ricerca", err)
	} else {
		state.Replace(results)
	}
	e.saveSession(r.Context(), id, state)
	backToIndex(w, r)
}

func (e *Explorer) Sort(w http.ResponseWriter, r *http.Request) {
	id, state := e.loadSession(w, r)
	state.Sort = models.ParseSortKey(r.FormValue("by"))
	state.Page = 1
	state.Filter = ""
	e.saveSession(r.Context(), id, state)
	backToIndex(w, r)
}

func (e *Explorer) Page(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(chi.URLParam(r, "page"))
	if err != nil {
		http.Error(w, "Invalid page", http.StatusBadRequest)
		return
	}

	id, state := e.loadSession(w, r)
	state.Page = page
	state.Filter = ""
	e.saveSession(r.Context(), id, state)
	backToIndex(w, r)
}

func (e *Explorer) Filter(w http.ResponseWriter, r *http.Request) {
	id, state := e.loadSession(w, r)
	state.Filter = strings.TrimSpace(r.FormValue("q"))
	e.saveSession(r.Context(), id, state)
	backToIndex(w, r)
}

// Detail returns the modal body for one title. The modal title travels in
// the X-Anime-Title header.
func (e *Explorer) Detail(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	malID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || malID <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, render.DetailError("ID non valido"))
		return
	}

	anime, err := e.anime.AnimeDetails(r.Context(), malID)
	if err != nil {
		e.logger.WithError(err).WithField("mal_id", malID).Error("Failed to load anime details")
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, render.DetailError(failureMessage("Errore nel caricamento dei dettagli", err)))
		return
	}

	title := anime.Title
	if title == "" {
		title = "N/D"
	}
	w.Header().Set("X-Anime-Title", url.PathEscape(title))
	fmt.Fprint(w, render.Detail(anime))
}

// Chart serves the top-score series for the visitor's current results.
func (e *Explorer) Chart(w http.ResponseWriter, r *http.Request) {
	id, state := e.loadSession(w, r)
	e.saveSession(r.Context(), id, state)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(catalog.ChartData(state.Results)); err != nil {
		e.logger.WithError(err).Error("Failed to encode chart")
	}
}

func (e *Explorer) loadTop(ctx context.Context, state *models.SessionState) {
	results, err := e.anime.LoadTopAnime(ctx)
	if err != nil {
		e.logger.WithError(err).Error("Failed to load top anime")
		state.Error = failureMessage("Errore nel caricamento dei top anime", err)
		state.Loaded = true
		return
	}
	state.Replace(results)
}

func (e *Explorer) loadSession(w http.ResponseWriter, r *http.Request) (string, *models.SessionState) {
	if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		state, err := e.sessions.Load(r.Context(), cookie.Value)
		if err == nil {
			return cookie.Value, state
		}
		if !errors.Is(err, session.ErrNotFound) {
			e.logger.WithError(err).Warn("Failed to load session, starting a new one")
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(e.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	e.logger.WithField("session", id).Debug("New session")
	return id, models.NewSessionState()
}

func (e *Explorer) saveSession(ctx context.Context, id string, state *models.SessionState) {
	if err := e.sessions.Save(ctx, id, state); err != nil {
		e.logger.WithError(err).WithField("session", id).Error("Failed to save session")
	}
}

func backToIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func failureMessage(prefix string, err error) string {
	var se *services.StatusError
	if errors.As(err, &se) {
		return fmt.Sprintf("%s: %d", prefix, se.Code)
	}
	return fmt.Sprintf("%s: %s", prefix, err.Error())
}
