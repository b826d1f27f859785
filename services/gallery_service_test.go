package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Edsonffff/catering-new/repository"
)

func newGalleryService(t *testing.T) *GalleryService {
	return NewGalleryService(repository.NewGalleryRepository(newTestDB(t)))
}

func TestGalleryCategoryFilter(t *testing.T) {
	svc := newGalleryService(t)

	_, err := svc.Add(GalleryInput{Title: "Wedding setup", ImageURL: "/uploads/a.jpg", Category: "wedding"})
	require.NoError(t, err)
	corp, err := svc.Add(GalleryInput{Title: "Office buffet", ImageURL: "/uploads/b.jpg", Category: "corporate"})
	require.NoError(t, err)

	all, err := svc.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	corporate, err := svc.List("corporate")
	require.NoError(t, err)
	require.Len(t, corporate, 1)
	assert.Equal(t, corp.ID, corporate[0].ID)
}

func TestGalleryRequiresImage(t *testing.T) {
	svc := newGalleryService(t)

	_, err := svc.Add(GalleryInput{Title: "No file"})
	assert.ErrorIs(t, err, ErrImageRequired)
}

func TestGalleryHidesInactive(t *testing.T) {
	svc := newGalleryService(t)

	img, err := svc.Add(GalleryInput{ImageURL: "/uploads/a.jpg"})
	require.NoError(t, err)

	off := false
	require.NoError(t, svc.Update(img.ID, GalleryUpdate{IsActive: &off}))

	visible, err := svc.List("")
	require.NoError(t, err)
	assert.Empty(t, visible)

	all, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
