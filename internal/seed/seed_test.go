package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resfinder/resfinder/internal/directory"
	"github.com/resfinder/resfinder/internal/store"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeSeed(t, `
admins:
  - Ops@Example.edu
users:
  - student@example.edu
subscribers: []
`)

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ops@Example.edu"}, f.Admins)
	assert.Equal(t, []string{"student@example.edu"}, f.Users)
	assert.Empty(t, f.Subscribers)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeSeed(t, "admins: [broken"))
	assert.Error(t, err)
}

func TestApplySeedsMissingDocuments(t *testing.T) {
	docs := store.NewMemStore()

	f := &File{
		Admins: []string{"Ops@Example.edu", "ops@example.edu"},
		Users:  []string{"zed@example.edu"},
	}
	require.NoError(t, f.Apply(docs))

	var admins []string
	require.NoError(t, docs.Load(directory.AdminsDoc, &admins))
	assert.Equal(t, []string{"ops@example.edu"}, admins)

	// Admins fold into the seeded users, normalized and sorted.
	var users []string
	require.NoError(t, docs.Load(directory.UsersDoc, &users))
	assert.Equal(t, []string{"ops@example.edu", "zed@example.edu"}, users)

	// Empty collections are not created by seeding.
	assert.Nil(t, docs.Raw(directory.SubscribersDoc))
}

func TestApplyNeverOverwrites(t *testing.T) {
	docs := store.NewMemStore()
	require.NoError(t, docs.Save(directory.AdminsDoc, []string{"existing@example.edu"}))

	f := &File{Admins: []string{"ops@example.edu"}}
	require.NoError(t, f.Apply(docs))

	var admins []string
	require.NoError(t, docs.Load(directory.AdminsDoc, &admins))
	assert.Equal(t, []string{"existing@example.edu"}, admins)
}
