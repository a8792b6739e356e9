package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"animexplorer/internal/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	jikanAPIURL     = "https://api.jikan.moe/v4"
	defaultTimeout  = 30 * time.Second
	defaultRate     = 3.0
	userAgent       = "AnimeExplorer/1.0"
	searchLimit     = 25
	maxTopPages     = 16
	maxResponseSize = 5 * 1024 * 1024 // 5MB
)

var ErrEmptyQuery = errors.New("search query cannot be empty")

// StatusError is returned when Jikan answers with anything other than 200.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API returned status code %d", e.Code)
}

// IsStatusError reports whether err carries an upstream HTTP status.
func IsStatusError(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}

type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *logrus.Logger
	limiter    *rate.Limiter
}

type ClientConfig struct {
	BaseURL    string
	Timeout    time.Duration
	RatePerSec float64
	UserAgent  string
	Logger     *logrus.Logger
}

func NewClient() *Client {
	return NewClientWithConfig(&ClientConfig{
		BaseURL:    jikanAPIURL,
		Timeout:    defaultTimeout,
		RatePerSec: defaultRate,
		UserAgent:  userAgent,
		Logger:     logrus.New(),
	})
}

func NewClientWithConfig(config *ClientConfig) *Client {
	if config.Logger == nil {
		config.Logger = logrus.New()
	}
	if config.BaseURL == "" {
		config.BaseURL = jikanAPIURL
	}
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}
	if config.RatePerSec <= 0 {
		config.RatePerSec = defaultRate
	}
	if config.UserAgent == "" {
		config.UserAgent = userAgent
	}

	return &Client{
		baseURL:   strings.TrimRight(config.BaseURL, "/"),
		userAgent: config.UserAgent,
		httpClient: &http.Client{
			Timeout: config.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:          100,
				MaxIdleConnsPerHost:   10,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		logger:  config.Logger,
		limiter: rate.NewLimiter(rate.Limit(config.RatePerSec), 1),
	}
}

// TopAnime fetches a single page of the top anime ranking.
func (c *Client) TopAnime(ctx context.Context, page int) ([]models.AnimeData, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	var result models.JikanListResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/top/anime?%s", c.baseURL, params.Encode()), &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// LoadTopAnime walks the ranking one page at a time until it has read
// maxTopPages pages or hits an empty one. A bad status on a later page stops
// the walk and keeps what was already collected; transport and decode
// failures abort.
func (c *Client) LoadTopAnime(ctx context.Context) ([]models.AnimeData, error) {
	c.logger.Info("Loading top anime...")

	results := []models.AnimeData{}
	for page := 1; page <= maxTopPages; page++ {
		data, err := c.TopAnime(ctx, page)
		if err != nil {
			if IsStatusError(err) && len(results) > 0 {
				c.logger.WithError(err).WithField("page", page).Error("Top anime page failed, keeping earlier pages")
				break
			}
			return nil, fmt.Errorf("failed to load top anime page %d: %w", page, err)
		}
		if len(data) == 0 {
			break
		}
		results = append(results, data...)
	}

	c.logger.WithField("count", len(results)).Info("Top anime loaded")
	return results, nil
}

func (c *Client) SearchAnime(ctx context.Context, query string) ([]models.AnimeData, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	c.logger.WithField("query", query).Info("Searching anime...")

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(searchLimit))

	var result models.JikanListResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/anime?%s", c.baseURL, params.Encode()), &result); err != nil {
		return nil, err
	}
	if result.Data == nil {
		result.Data = []models.AnimeData{}
	}
	return result.Data, nil
}

func (c *Client) AnimeDetails(ctx context.Context, id int) (*models.AnimeData, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid anime ID: %d", id)
	}

	c.logger.WithField("mal_id", id).Debug("Fetching anime details")

	var result models.JikanDetailResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/anime/%d", c.baseURL, id), &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	body, err := c.makeRequest(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) makeRequest(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).WithField("url", url).Error("API request failed")
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.WithFields(logrus.Fields{
			"url":    url,
			"status": resp.StatusCode,
		}).Warn("API returned non-OK status")
		return nil, &StatusError{Code: resp.StatusCode, URL: url}
	}

	body, err := c.readRespBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"url":           url,
		"status":        resp.StatusCode,
		"response_size": len(body),
		"elapsed":       time.Since(start),
	}).Debug("API request successful")

	return body, nil
}

func (c *Client) readRespBody(resp *http.Response) ([]byte, error) {
	if resp.ContentLength > maxResponseSize {
		return nil, fmt.Errorf("response too large: %d bytes", resp.ContentLength)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return nil, err
	}
	if len(body) > maxResponseSize {
		return nil, fmt.Errorf("response too large: exceeded %d bytes", maxResponseSize)
	}
	return body, nil
}
