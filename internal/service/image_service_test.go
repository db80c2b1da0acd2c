package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mimistyle/backend/internal/imagestore"
	"github.com/mimistyle/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImageFixture(t *testing.T) (string, *fakeProductRepo, *fakeImageRepo, ImageService) {
	t.Helper()
	dir := t.TempDir()
	store := imagestore.New(dir)
	require.NoError(t, store.EnsureDir())

	productRepo := &fakeProductRepo{products: map[uint64]*model.Product{
		1: {ID: 1, Name: "Xe đẩy"},
	}}
	imageRepo := &fakeImageRepo{}
	return dir, productRepo, imageRepo, NewImageService(store, productRepo, imageRepo)
}

func TestImageService_Upload(t *testing.T) {
	dir, _, _, svc := newImageFixture(t)

	names, err := svc.Upload(context.Background(), []UploadFile{
		{Filename: "bé yêu.PNG", Content: strings.NewReader("png-bytes")},
		{Filename: "noext", Content: strings.NewReader("jpg-bytes")},
	})
	require.NoError(t, err)
	require.Len(t, names, 2)

	assert.True(t, strings.HasSuffix(names[0], ".png"), "extension kept lowercased: %s", names[0])
	assert.True(t, strings.HasSuffix(names[1], ".jpg"), "unknown extension defaults to .jpg: %s", names[1])
	assert.NotEqual(t, names[0], names[1])

	for i, want := range []string{"png-bytes", "jpg-bytes"} {
		data, err := os.ReadFile(filepath.Join(dir, names[i]))
		require.NoError(t, err)
		assert.Equal(t, want, string(data))
	}
}

func TestImageService_Upload_Empty(t *testing.T) {
	_, _, _, svc := newImageFixture(t)

	_, err := svc.Upload(context.Background(), nil)
	var ir *InvalidRequestError
	assert.True(t, errors.As(err, &ir))
}

func TestImageService_Attach(t *testing.T) {
	_, _, imageRepo, svc := newImageFixture(t)

	saved, err := svc.Attach(context.Background(), 1, []string{"a.jpg", "  ", "b.jpg"})
	require.NoError(t, err)
	require.Len(t, saved, 2, "blank filenames are skipped")

	assert.True(t, saved[0].IsThumbnail, "first of the batch becomes thumbnail")
	assert.False(t, saved[1].IsThumbnail)
	assert.Equal(t, 1, imageRepo.thumbnailCount(1))

	// A later batch must not create a second thumbnail.
	more, err := svc.Attach(context.Background(), 1, []string{"c.jpg"})
	require.NoError(t, err)
	assert.False(t, more[0].IsThumbnail)
	assert.Equal(t, 1, imageRepo.thumbnailCount(1))
}

func TestImageService_Attach_Failures(t *testing.T) {
	_, _, _, svc := newImageFixture(t)

	_, err := svc.Attach(context.Background(), 404, []string{"a.jpg"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Attach(context.Background(), 1, nil)
	var ir *InvalidRequestError
	assert.True(t, errors.As(err, &ir))
}

func TestImageService_Delete_PromotesNextThumbnail(t *testing.T) {
	dir, _, imageRepo, svc := newImageFixture(t)

	_, err := svc.Attach(context.Background(), 1, []string{"thumb.jpg", "second.jpg", "third.jpg"})
	require.NoError(t, err)
	for _, name := range []string{"thumb.jpg", "second.jpg", "third.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	require.NoError(t, svc.Delete(context.Background(), 1, "thumb.jpg"))

	_, err = os.Stat(filepath.Join(dir, "thumb.jpg"))
	assert.True(t, os.IsNotExist(err), "file removed from disk")

	remaining, err := imageRepo.ListByProduct(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, 1, imageRepo.thumbnailCount(1), "exactly one thumbnail after promotion")
	assert.True(t, remaining[0].IsThumbnail, "lowest id promoted")
	assert.Equal(t, "second.jpg", remaining[0].ImageURL)
}

func TestImageService_Delete_NonThumbnailKeepsFlag(t *testing.T) {
	_, _, imageRepo, svc := newImageFixture(t)

	_, err := svc.Attach(context.Background(), 1, []string{"thumb.jpg", "other.jpg"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), 1, "other.jpg"))

	remaining, err := imageRepo.ListByProduct(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.True(t, remaining[0].IsThumbnail)
	assert.Equal(t, "thumb.jpg", remaining[0].ImageURL)
}

func TestImageService_Delete_LastImage(t *testing.T) {
	_, _, imageRepo, svc := newImageFixture(t)

	_, err := svc.Attach(context.Background(), 1, []string{"only.jpg"})
	require.NoError(t, err)

	// Missing file on disk is tolerated; the record still goes away.
	require.NoError(t, svc.Delete(context.Background(), 1, "only.jpg"))

	remaining, err := imageRepo.ListByProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestImageService_Delete_UnknownImage(t *testing.T) {
	_, _, _, svc := newImageFixture(t)

	err := svc.Delete(context.Background(), 1, "ghost.jpg")
	assert.ErrorIs(t, err, ErrNotFound)
}
