package container

import (
	"context"
	"testing"

	"animexplorer/internal/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsToMemoryStore(t *testing.T) {
	t.Setenv("SESSION_STORE", "")
	t.Setenv("PORT", "")

	c, err := New(context.Background())
	require.NoError(t, err)
	defer c.Close()

	assert.IsType(t, &session.MemoryStore{}, c.Sessions)
	assert.NotNil(t, c.Explorer)
	assert.Equal(t, "8080", c.Config.Port)
}

func TestNew_RedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("R_HOST", mr.Host())
	t.Setenv("R_PORT", mr.Port())

	c, err := New(context.Background())
	require.NoError(t, err)
	defer c.Close()

	assert.IsType(t, &session.RedisStore{}, c.Sessions)
}

func TestNew_UnknownStore(t *testing.T) {
	t.Setenv("SESSION_STORE", "postgres")

	_, err := New(context.Background())
	assert.ErrorContains(t, err, `unknown session store "postgres"`)
}
