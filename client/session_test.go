package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumni-portal/models"
)

func testSessionStore(t *testing.T, store SessionStore) {
	t.Helper()

	// Absence means anonymous, not an error.
	user, err := store.Get()
	require.NoError(t, err)
	assert.Nil(t, user)

	require.NoError(t, store.Set(&models.User{
		Email: "john.smith@email.com",
		Name:  "John Smith",
		Role:  models.RoleAlumni,
	}))

	user, err = store.Get()
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "John Smith", user.Name)

	require.NoError(t, store.Clear())
	user, err = store.Get()
	require.NoError(t, err)
	assert.Nil(t, user)

	// Clearing an already-empty store is fine.
	require.NoError(t, store.Clear())
}

func TestMemorySessionStore(t *testing.T) {
	testSessionStore(t, NewMemorySessionStore())
}

func TestFileSessionStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), SessionKey+".json")
	testSessionStore(t, NewFileSessionStore(path))
}
