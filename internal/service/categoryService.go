package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	repository "github.com/ainthinai/booking-api/internal/database/postgres"
	"github.com/ainthinai/booking-api/internal/entity"
	"github.com/ainthinai/booking-api/pkg/objectstore"
)

type categoryService struct {
	categoryRepo repository.CategoryRepository
	store        objectstore.Store
	log          *logrus.Logger
}

func NewCategoryService(categoryRepo repository.CategoryRepository, store objectstore.Store, log *logrus.Logger) CategoryService {
	return &categoryService{categoryRepo: categoryRepo, store: store, log: log}
}

func (s *categoryService) CreateCategory(ctx context.Context, name string, image *FileUpload) (*entity.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", entity.ErrValidation)
	}

	category := &entity.Category{
		ID:   uuid.NewString(),
		Name: name,
	}

	if image != nil {
		url, err := s.store.Upload(ctx, "category", image.Data, image.ContentType)
		if err != nil {
			return nil, err
		}
		category.Image = url
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// UpdateCategory replaces the name and, when a new image is supplied, swaps
// the stored blob for the new one.
func (s *categoryService) UpdateCategory(ctx context.Context, id, name string, image *FileUpload) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	category.Name = name

	if image != nil {
		if err := s.store.Delete(ctx, category.Image); err != nil {
			s.log.WithError(err).Warn("failed to remove replaced category image")
		}
		url, err := s.store.Upload(ctx, "category", image.Data, image.ContentType)
		if err != nil {
			return err
		}
		category.Image = url
	}

	return s.categoryRepo.Update(ctx, category)
}

// DeleteCategory is idempotent: a missing category is treated as already
// deleted.
func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if errors.Is(err, entity.ErrCategoryNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if category.Image != "" {
		if err := s.store.Delete(ctx, category.Image); err != nil {
			s.log.WithError(err).Warn("failed to remove category image")
		}
	}

	if err := s.categoryRepo.Delete(ctx, id); errors.Is(err, entity.ErrCategoryNotFound) {
		return nil
	} else if err != nil {
		return err
	}
	return nil
}

func (s *categoryService) GetAllCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []*entity.Category{}
	}
	return categories, nil
}
