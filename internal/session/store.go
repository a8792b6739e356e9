// Package session keeps each visitor's current result set between requests.
package session

import (
	"context"
	"errors"

	"animexplorer/internal/models"
)

var ErrNotFound = errors.New("session not found")

type Store interface {
	Load(ctx context.Context, id string) (*models.SessionState, error)
	Save(ctx context.Context, id string, state *models.SessionState) error
	Delete(ctx context.Context, id string) error
	Close() error
}
