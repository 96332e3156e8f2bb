package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	repository "github.com/ainthinai/booking-api/internal/database/postgres"
	"github.com/ainthinai/booking-api/internal/entity"
	"github.com/ainthinai/booking-api/pkg/objectstore"
)

// CreateFeatureRequest carries the feature form. The image arrives base64
// encoded in the JSON body, matching the admin frontend.
type CreateFeatureRequest struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageBase64 string `json:"imageBase64"`
}

type UpdateFeatureRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageBase64 string `json:"imageBase64"`
}

type featureService struct {
	featureRepo repository.FeatureRepository
	store       objectstore.Store
	log         *logrus.Logger
}

func NewFeatureService(featureRepo repository.FeatureRepository, store objectstore.Store, log *logrus.Logger) FeatureService {
	return &featureService{featureRepo: featureRepo, store: store, log: log}
}

func (s *featureService) uploadBase64Image(ctx context.Context, encoded string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: invalid image encoding", entity.ErrValidation)
	}
	return s.store.Upload(ctx, "feature", data, "image/png")
}

func (s *featureService) CreateFeature(ctx context.Context, req *CreateFeatureRequest) (*entity.Feature, error) {
	if req.Type == "" || req.Title == "" {
		return nil, fmt.Errorf("%w: type and title are required", entity.ErrValidation)
	}

	feature := &entity.Feature{
		ID:          uuid.NewString(),
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
	}

	if req.ImageBase64 != "" {
		url, err := s.uploadBase64Image(ctx, req.ImageBase64)
		if err != nil {
			return nil, err
		}
		feature.Image = url
	}

	if err := s.featureRepo.Create(ctx, feature); err != nil {
		return nil, err
	}

	return feature, nil
}

func (s *featureService) UpdateFeature(ctx context.Context, id string, req *UpdateFeatureRequest) error {
	feature, err := s.featureRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	feature.Title = req.Title
	feature.Description = req.Description

	if req.ImageBase64 != "" {
		if feature.Image != "" {
			if err := s.store.Delete(ctx, feature.Image); err != nil {
				s.log.WithError(err).Warn("failed to remove replaced feature image")
			}
		}
		url, err := s.uploadBase64Image(ctx, req.ImageBase64)
		if err != nil {
			return err
		}
		feature.Image = url
	}

	return s.featureRepo.Update(ctx, feature)
}

// DeleteFeature is idempotent; the stored image blob is removed first.
func (s *featureService) DeleteFeature(ctx context.Context, id string) error {
	feature, err := s.featureRepo.GetByID(ctx, id)
	if errors.Is(err, entity.ErrFeatureNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if feature.Image != "" {
		if err := s.store.Delete(ctx, feature.Image); err != nil {
			s.log.WithError(err).Warn("failed to remove feature image")
		}
	}

	if err := s.featureRepo.Delete(ctx, id); errors.Is(err, entity.ErrFeatureNotFound) {
		return nil
	} else if err != nil {
		return err
	}
	return nil
}

func (s *featureService) GetFeature(ctx context.Context, id string) (*entity.Feature, error) {
	return s.featureRepo.GetByID(ctx, id)
}

func (s *featureService) GetFeaturesByType(ctx context.Context, featureType string) ([]*entity.Feature, error) {
	features, err := s.featureRepo.GetByType(ctx, featureType)
	if err != nil {
		return nil, err
	}
	if features == nil {
		features = []*entity.Feature{}
	}
	return features, nil
}
