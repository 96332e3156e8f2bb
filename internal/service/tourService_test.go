package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ainthinai/booking-api/config"
	"github.com/ainthinai/booking-api/internal/entity"
)

type fakeTourRepo struct {
	tours map[string]*entity.Tour
}

func newFakeTourRepo() *fakeTourRepo {
	return &fakeTourRepo{tours: make(map[string]*entity.Tour)}
}

func (f *fakeTourRepo) Create(_ context.Context, tour *entity.Tour) error {
	f.tours[tour.ID] = tour
	return nil
}

func (f *fakeTourRepo) Update(_ context.Context, tour *entity.Tour) error {
	if _, ok := f.tours[tour.ID]; !ok {
		return entity.ErrTourNotFound
	}
	f.tours[tour.ID] = tour
	return nil
}

func (f *fakeTourRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.tours[id]; !ok {
		return entity.ErrTourNotFound
	}
	delete(f.tours, id)
	return nil
}

func (f *fakeTourRepo) GetByID(_ context.Context, id string) (*entity.Tour, error) {
	t, ok := f.tours[id]
	if !ok {
		return nil, entity.ErrTourNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTourRepo) GetAll(_ context.Context) ([]*entity.Tour, error) {
	var out []*entity.Tour
	for _, t := range f.tours {
		out = append(out, t)
	}
	return out, nil
}

type fakeFeatureRepo struct {
	features map[string]*entity.Feature
}

func newFakeFeatureRepo() *fakeFeatureRepo {
	return &fakeFeatureRepo{features: make(map[string]*entity.Feature)}
}

func (f *fakeFeatureRepo) Create(_ context.Context, feature *entity.Feature) error {
	f.features[feature.ID] = feature
	return nil
}

func (f *fakeFeatureRepo) Update(_ context.Context, feature *entity.Feature) error {
	if _, ok := f.features[feature.ID]; !ok {
		return entity.ErrFeatureNotFound
	}
	f.features[feature.ID] = feature
	return nil
}

func (f *fakeFeatureRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.features[id]; !ok {
		return entity.ErrFeatureNotFound
	}
	delete(f.features, id)
	return nil
}

func (f *fakeFeatureRepo) GetByID(_ context.Context, id string) (*entity.Feature, error) {
	feat, ok := f.features[id]
	if !ok {
		return nil, entity.ErrFeatureNotFound
	}
	return feat, nil
}

func (f *fakeFeatureRepo) GetByType(_ context.Context, featureType string) ([]*entity.Feature, error) {
	var out []*entity.Feature
	for _, feat := range f.features {
		if feat.Type == featureType {
			out = append(out, feat)
		}
	}
	return out, nil
}

func (f *fakeFeatureRepo) GetByIDs(_ context.Context, ids []string) ([]entity.Feature, error) {
	out := make([]entity.Feature, 0, len(ids))
	for _, id := range ids {
		if feat, ok := f.features[id]; ok {
			out = append(out, *feat)
		}
	}
	return out, nil
}

type fakeItineraryRepo struct {
	days      map[string][]entity.ItineraryDay
	snapshots map[string][]byte
}

func newFakeItineraryRepo() *fakeItineraryRepo {
	return &fakeItineraryRepo{
		days:      make(map[string][]entity.ItineraryDay),
		snapshots: make(map[string][]byte),
	}
}

func (f *fakeItineraryRepo) Replace(_ context.Context, tourID string, days []entity.ItineraryDay, snapshot []byte) error {
	f.days[tourID] = days
	f.snapshots[tourID] = snapshot
	return nil
}

func (f *fakeItineraryRepo) GetByTourID(_ context.Context, tourID string) ([]entity.ItineraryDay, error) {
	days, ok := f.days[tourID]
	if !ok {
		return []entity.ItineraryDay{}, nil
	}
	return days, nil
}

// fakeStore records uploads and deletions in memory.
type fakeStore struct {
	uploads int
	deleted []string
}

func (f *fakeStore) Upload(_ context.Context, prefix string, _ []byte, _ string) (string, error) {
	f.uploads++
	return fmt.Sprintf("https://store.test/storage/v1/object/public/BUCKET/%s-%d", prefix, f.uploads), nil
}

func (f *fakeStore) Delete(_ context.Context, urls ...string) error {
	f.deleted = append(f.deleted, urls...)
	return nil
}

func pngUpload(t *testing.T) *FileUpload {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return &FileUpload{Name: "main.png", ContentType: "image/png", Data: buf.Bytes()}
}

func newTourServiceForTest(t *testing.T) (TourService, *fakeTourRepo, *fakeFeatureRepo, *fakeItineraryRepo, *fakeStore) {
	t.Helper()

	tourRepo := newFakeTourRepo()
	featureRepo := newFakeFeatureRepo()
	itineraryRepo := newFakeItineraryRepo()
	store := &fakeStore{}
	upload := config.UploadConfig{ThumbnailWidth: 32, ThumbnailHeight: 24, MaxImageBytes: 1 << 20}

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	svc := NewTourService(tourRepo, featureRepo, itineraryRepo, store, upload, log)
	return svc, tourRepo, featureRepo, itineraryRepo, store
}

func TestCreateTourWithMainImage(t *testing.T) {
	svc, tourRepo, _, _, store := newTourServiceForTest(t)

	tour, err := svc.CreateTour(context.Background(), &SaveTourRequest{
		Title:      "Backwaters",
		MainImage:  pngUpload(t),
		Gallery:    []FileUpload{*pngUpload(t), *pngUpload(t)},
		Amenities:  []string{"f1"},
		AdultPrice: 2500,
	})
	require.NoError(t, err)

	// main + thumbnail + two gallery shots
	assert.Equal(t, 4, store.uploads)
	assert.NotEmpty(t, tour.MainImage)
	assert.NotEmpty(t, tour.Thumbnail)
	assert.Len(t, tour.Gallery, 2)

	stored, ok := tourRepo.tours[tour.ID]
	require.True(t, ok)
	assert.Equal(t, "Backwaters", stored.Title)
}

func TestCreateTourRejectsNonImageMain(t *testing.T) {
	svc, tourRepo, _, _, _ := newTourServiceForTest(t)

	_, err := svc.CreateTour(context.Background(), &SaveTourRequest{
		Title:     "Bad",
		MainImage: &FileUpload{Name: "x.bin", ContentType: "application/octet-stream", Data: []byte("nope")},
	})
	require.Error(t, err)
	assert.Empty(t, tourRepo.tours)
}

func TestUpdateTourReplacesMainImage(t *testing.T) {
	svc, _, _, _, store := newTourServiceForTest(t)

	tour, err := svc.CreateTour(context.Background(), &SaveTourRequest{
		Title:     "Hills",
		MainImage: pngUpload(t),
	})
	require.NoError(t, err)
	oldMain, oldThumb := tour.MainImage, tour.Thumbnail

	err = svc.UpdateTour(context.Background(), tour.ID, &SaveTourRequest{
		Title:     "Hills v2",
		MainImage: pngUpload(t),
	})
	require.NoError(t, err)

	assert.Contains(t, store.deleted, oldMain)
	assert.Contains(t, store.deleted, oldThumb)
}

func TestUpdateTourMissing(t *testing.T) {
	svc, _, _, _, _ := newTourServiceForTest(t)

	err := svc.UpdateTour(context.Background(), "ghost", &SaveTourRequest{Title: "x"})
	assert.ErrorIs(t, err, entity.ErrTourNotFound)
}

func TestDeleteTourIdempotent(t *testing.T) {
	svc, tourRepo, _, _, store := newTourServiceForTest(t)

	tour, err := svc.CreateTour(context.Background(), &SaveTourRequest{
		Title:     "Doomed",
		MainImage: pngUpload(t),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTour(context.Background(), tour.ID))
	assert.Empty(t, tourRepo.tours)
	assert.Contains(t, store.deleted, tour.MainImage)

	// second delete still succeeds
	require.NoError(t, svc.DeleteTour(context.Background(), tour.ID))
}

func TestGetTourResolvesFeatures(t *testing.T) {
	svc, _, featureRepo, itineraryRepo, _ := newTourServiceForTest(t)

	require.NoError(t, featureRepo.Create(context.Background(), &entity.Feature{
		ID: "f1", Type: "amenity", Title: "WiFi",
	}))

	tour, err := svc.CreateTour(context.Background(), &SaveTourRequest{
		Title:     "Featureful",
		Amenities: []string{"f1", "missing"},
	})
	require.NoError(t, err)

	itineraryRepo.days[tour.ID] = []entity.ItineraryDay{
		{Day: 1, Activities: []entity.ItineraryActivity{{Title: "Trek"}}},
	}

	detail, err := svc.GetTour(context.Background(), tour.ID)
	require.NoError(t, err)

	require.Len(t, detail.Amenities, 1)
	assert.Equal(t, "WiFi", detail.Amenities[0].Title)
	assert.Empty(t, detail.Food)
	require.Len(t, detail.Itinerary, 1)
	assert.Equal(t, "Trek", detail.Itinerary[0].Activities[0].Title)
}

func TestSaveItineraryBuildsTreeAndSnapshot(t *testing.T) {
	itineraryRepo := newFakeItineraryRepo()
	store := &fakeStore{}
	svc := NewItineraryService(itineraryRepo, store)

	days, err := svc.SaveItinerary(context.Background(), &SaveItineraryRequest{
		TourID: "tour-1",
		Days: []ItineraryDayInput{
			{
				Day: 1,
				Activities: []ItineraryActivityInput{
					{Period: "morning", Title: "Sunrise trek", Images: []string{"https://old/img1"}},
					{Period: "evening", Title: "Boat ride"},
				},
			},
			{
				Day:        2,
				Activities: []ItineraryActivityInput{{Period: "morning", Title: "Spice market"}},
			},
		},
		Files: []FileUpload{
			{Name: "a.jpg", ContentType: "image/jpeg", Data: []byte("jpg-bytes")},
		},
	})
	require.NoError(t, err)
	require.Len(t, days, 2)

	// first activity keeps its existing URL and gains the uploaded one
	first := days[0].Activities[0]
	require.Len(t, first.Images, 2)
	assert.Equal(t, "https://old/img1", first.Images[0])
	assert.Equal(t, 1, store.uploads)

	// ids are assigned throughout the tree
	assert.NotEmpty(t, days[0].ID)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, days[0].ID, first.DayID)

	snapshot := string(itineraryRepo.snapshots["tour-1"])
	assert.Contains(t, snapshot, "Sunrise trek")
	assert.Contains(t, snapshot, `"day":1`)
	assert.NotContains(t, snapshot, days[0].ID)
}

func TestSaveItineraryRequiresTourID(t *testing.T) {
	svc := NewItineraryService(newFakeItineraryRepo(), &fakeStore{})

	_, err := svc.SaveItinerary(context.Background(), &SaveItineraryRequest{})
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestCategoryDeleteIdempotent(t *testing.T) {
	store := &fakeStore{}
	repo := &fakeCategoryRepo{categories: make(map[string]*entity.Category)}
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	svc := NewCategoryService(repo, store, log)

	category, err := svc.CreateCategory(context.Background(), "Beaches", &FileUpload{
		Name: "b.png", ContentType: "image/png", Data: []byte("png"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(category.Image, "https://store.test/"))

	require.NoError(t, svc.DeleteCategory(context.Background(), category.ID))
	require.NoError(t, svc.DeleteCategory(context.Background(), category.ID))
	assert.Contains(t, store.deleted, category.Image)
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	if _, ok := f.categories[category.ID]; !ok {
		return entity.ErrCategoryNotFound
	}
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.categories[id]; !ok {
		return entity.ErrCategoryNotFound
	}
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, entity.ErrCategoryNotFound
	}
	return c, nil
}

func (f *fakeCategoryRepo) GetAll(_ context.Context) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}
