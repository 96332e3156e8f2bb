package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ainthinai/booking-api/config"
	repository "github.com/ainthinai/booking-api/internal/database/postgres"
	"github.com/ainthinai/booking-api/internal/entity"
	"github.com/ainthinai/booking-api/pkg/images"
	"github.com/ainthinai/booking-api/pkg/objectstore"
)

// SaveTourRequest carries the multipart tour form: scalar fields, feature id
// lists and any uploaded images. Used for both create and update.
type SaveTourRequest struct {
	CategoryID   string
	Title        string
	Place        string
	State        string
	District     string
	Description  string
	Location     string
	AdultPrice   float64
	ChildPrice   float64
	Amenities    []string
	Activities   []string
	Food         []string
	ThingsToKnow []string

	MainImage *FileUpload
	Gallery   []FileUpload
}

type tourService struct {
	tourRepo      repository.TourRepository
	featureRepo   repository.FeatureRepository
	itineraryRepo repository.ItineraryRepository
	store         objectstore.Store
	upload        config.UploadConfig
	log           *logrus.Logger
}

func NewTourService(
	tourRepo repository.TourRepository,
	featureRepo repository.FeatureRepository,
	itineraryRepo repository.ItineraryRepository,
	store objectstore.Store,
	upload config.UploadConfig,
	log *logrus.Logger,
) TourService {
	return &tourService{
		tourRepo:      tourRepo,
		featureRepo:   featureRepo,
		itineraryRepo: itineraryRepo,
		store:         store,
		upload:        upload,
		log:           log,
	}
}

// uploadMainImage validates the payload as an image, stores the original
// and a Lanczos thumbnail, and returns both public URLs.
func (s *tourService) uploadMainImage(ctx context.Context, file *FileUpload) (mainURL, thumbURL string, err error) {
	img, _, err := images.Decode(file.Data)
	if err != nil {
		return "", "", err
	}

	mainURL, err = s.store.Upload(ctx, "tour", file.Data, file.ContentType)
	if err != nil {
		return "", "", err
	}

	thumbData, err := images.Thumbnail(img, s.upload.ThumbnailWidth, s.upload.ThumbnailHeight)
	if err != nil {
		return "", "", err
	}

	thumbURL, err = s.store.Upload(ctx, "tour-thumb", thumbData, "image/jpeg")
	if err != nil {
		return "", "", err
	}

	return mainURL, thumbURL, nil
}

func (s *tourService) uploadGallery(ctx context.Context, files []FileUpload) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := s.store.Upload(ctx, "tour", file.Data, file.ContentType)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (s *tourService) CreateTour(ctx context.Context, req *SaveTourRequest) (*entity.Tour, error) {
	tour := &entity.Tour{
		ID:           uuid.NewString(),
		CategoryID:   req.CategoryID,
		Title:        req.Title,
		Place:        req.Place,
		State:        req.State,
		District:     req.District,
		Description:  req.Description,
		Location:     req.Location,
		AdultPrice:   req.AdultPrice,
		ChildPrice:   req.ChildPrice,
		Gallery:      entity.StringList{},
		Amenities:    entity.StringList(req.Amenities),
		Activities:   entity.StringList(req.Activities),
		Food:         entity.StringList(req.Food),
		ThingsToKnow: entity.StringList(req.ThingsToKnow),
	}

	if req.MainImage != nil {
		mainURL, thumbURL, err := s.uploadMainImage(ctx, req.MainImage)
		if err != nil {
			return nil, err
		}
		tour.MainImage = mainURL
		tour.Thumbnail = thumbURL
	}

	gallery, err := s.uploadGallery(ctx, req.Gallery)
	if err != nil {
		return nil, err
	}
	tour.Gallery = append(tour.Gallery, gallery...)

	if err := s.tourRepo.Create(ctx, tour); err != nil {
		return nil, err
	}

	return tour, nil
}

// UpdateTour replaces scalar fields and feature lists; a new main image
// replaces the old one (old blobs removed), gallery uploads append.
func (s *tourService) UpdateTour(ctx context.Context, id string, req *SaveTourRequest) error {
	tour, err := s.tourRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	tour.CategoryID = req.CategoryID
	tour.Title = req.Title
	tour.Place = req.Place
	tour.State = req.State
	tour.District = req.District
	tour.Description = req.Description
	tour.Location = req.Location
	tour.AdultPrice = req.AdultPrice
	tour.ChildPrice = req.ChildPrice
	tour.Amenities = entity.StringList(req.Amenities)
	tour.Activities = entity.StringList(req.Activities)
	tour.Food = entity.StringList(req.Food)
	tour.ThingsToKnow = entity.StringList(req.ThingsToKnow)

	if req.MainImage != nil {
		if err := s.store.Delete(ctx, tour.MainImage, tour.Thumbnail); err != nil {
			s.log.WithError(err).Warn("failed to remove replaced tour images")
		}
		mainURL, thumbURL, err := s.uploadMainImage(ctx, req.MainImage)
		if err != nil {
			return err
		}
		tour.MainImage = mainURL
		tour.Thumbnail = thumbURL
	}

	gallery, err := s.uploadGallery(ctx, req.Gallery)
	if err != nil {
		return err
	}
	tour.Gallery = append(tour.Gallery, gallery...)

	return s.tourRepo.Update(ctx, tour)
}

// DeleteTour is idempotent: deleting a tour that does not exist succeeds.
// Blobs are cleaned up before the row; itinerary rows cascade with it.
func (s *tourService) DeleteTour(ctx context.Context, id string) error {
	tour, err := s.tourRepo.GetByID(ctx, id)
	if errors.Is(err, entity.ErrTourNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	urls := append([]string{tour.MainImage, tour.Thumbnail}, tour.Gallery...)
	if err := s.store.Delete(ctx, urls...); err != nil {
		s.log.WithError(err).Warn("failed to remove tour images")
	}

	if err := s.tourRepo.Delete(ctx, id); errors.Is(err, entity.ErrTourNotFound) {
		return nil
	} else if err != nil {
		return err
	}
	return nil
}

// GetTour resolves the stored feature id lists to feature rows and attaches
// the full itinerary tree.
func (s *tourService) GetTour(ctx context.Context, id string) (*entity.TourDetail, error) {
	tour, err := s.tourRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &entity.TourDetail{Tour: *tour}

	if detail.Amenities, err = s.featureRepo.GetByIDs(ctx, tour.Amenities); err != nil {
		return nil, err
	}
	if detail.Activities, err = s.featureRepo.GetByIDs(ctx, tour.Activities); err != nil {
		return nil, err
	}
	if detail.Food, err = s.featureRepo.GetByIDs(ctx, tour.Food); err != nil {
		return nil, err
	}
	if detail.ThingsToKnow, err = s.featureRepo.GetByIDs(ctx, tour.ThingsToKnow); err != nil {
		return nil, err
	}

	if detail.Itinerary, err = s.itineraryRepo.GetByTourID(ctx, id); err != nil {
		return nil, err
	}

	return detail, nil
}

func (s *tourService) GetAllTours(ctx context.Context) ([]*entity.Tour, error) {
	tours, err := s.tourRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if tours == nil {
		tours = []*entity.Tour{}
	}
	return tours, nil
}
