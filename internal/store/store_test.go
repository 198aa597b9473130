package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearform/sf86gen/pkg/formdata"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "drafts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndLoad(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doc := formdata.New()
	require.NoError(t, doc.Set("section1.fullName.lastName", "Doe"))

	id, err := s.Save(ctx, "", "jane", doc)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	loaded, err := s.Load(ctx, id)
	require.NoError(t, err)
	got, ok := loaded.Get("section1.fullName.lastName")
	require.True(t, ok)
	assert.Equal(t, "Doe", got)
}

func TestSaveUpserts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doc := formdata.New()
	require.NoError(t, doc.Set("section1.fullName.lastName", "Doe"))
	id, err := s.Save(ctx, "", "jane", doc)
	require.NoError(t, err)

	require.NoError(t, doc.Set("section1.fullName.firstName", "Jane"))
	sameID, err := s.Save(ctx, id, "jane-v2", doc)
	require.NoError(t, err)
	assert.Equal(t, id, sameID)

	drafts, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "jane-v2", drafts[0].Name)

	loaded, err := s.Load(ctx, id)
	require.NoError(t, err)
	got, ok := loaded.Get("section1.fullName.firstName")
	require.True(t, ok)
	assert.Equal(t, "Jane", got)
}

func TestListOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.Save(ctx, "", "first", formdata.New())
	require.NoError(t, err)
	second, err := s.Save(ctx, "", "second", formdata.New())
	require.NoError(t, err)

	drafts, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	ids := []string{drafts[0].ID, drafts[1].ID}
	assert.Contains(t, ids, first)
	assert.Contains(t, ids, second)
	assert.False(t, drafts[0].UpdatedAt.Before(drafts[1].UpdatedAt))
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Save(ctx, "", "doomed", formdata.New())
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, id))
	_, err = s.Load(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, id), ErrNotFound)
}

func TestLoadMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
