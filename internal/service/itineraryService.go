package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	repository "github.com/ainthinai/booking-api/internal/database/postgres"
	"github.com/ainthinai/booking-api/internal/entity"
	"github.com/ainthinai/booking-api/pkg/objectstore"
)

type ItineraryActivityInput struct {
	Period      string   `json:"period"`
	Time        string   `json:"time"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

type ItineraryDayInput struct {
	Day        int                      `json:"day"`
	Activities []ItineraryActivityInput `json:"activities"`
}

// SaveItineraryRequest replaces a tour's whole itinerary. Files are consumed
// in order, one per activity, and appended after the activity's existing
// image URLs; the admin form uploads at most one new picture per activity.
type SaveItineraryRequest struct {
	TourID string
	Days   []ItineraryDayInput
	Files  []FileUpload
}

type itineraryService struct {
	itineraryRepo repository.ItineraryRepository
	store         objectstore.Store
}

func NewItineraryService(itineraryRepo repository.ItineraryRepository, store objectstore.Store) ItineraryService {
	return &itineraryService{itineraryRepo: itineraryRepo, store: store}
}

// SaveItinerary uploads any new activity images, builds the replacement
// tree with fresh ids and swaps it in atomically, mirroring the final tree
// into the tour's JSON snapshot.
func (s *itineraryService) SaveItinerary(ctx context.Context, req *SaveItineraryRequest) ([]entity.ItineraryDay, error) {
	if req.TourID == "" {
		return nil, fmt.Errorf("%w: tourId is required", entity.ErrValidation)
	}

	fileIndex := 0
	days := make([]entity.ItineraryDay, 0, len(req.Days))
	for _, dayIn := range req.Days {
		day := entity.ItineraryDay{
			ID:         uuid.NewString(),
			TourID:     req.TourID,
			Day:        dayIn.Day,
			Activities: make([]entity.ItineraryActivity, 0, len(dayIn.Activities)),
		}

		for _, actIn := range dayIn.Activities {
			activity := entity.ItineraryActivity{
				ID:          uuid.NewString(),
				DayID:       day.ID,
				Period:      actIn.Period,
				Time:        actIn.Time,
				Title:       actIn.Title,
				Description: actIn.Description,
				Images:      make([]string, 0, len(actIn.Images)+1),
			}
			activity.Images = append(activity.Images, actIn.Images...)

			if fileIndex < len(req.Files) {
				file := req.Files[fileIndex]
				fileIndex++

				url, err := s.store.Upload(ctx, "itinerary", file.Data, file.ContentType)
				if err != nil {
					return nil, err
				}
				activity.Images = append(activity.Images, url)
			}

			day.Activities = append(day.Activities, activity)
		}

		days = append(days, day)
	}

	snapshot, err := json.Marshal(snapshotView(days))
	if err != nil {
		return nil, fmt.Errorf("failed to encode itinerary snapshot: %w", err)
	}

	if err := s.itineraryRepo.Replace(ctx, req.TourID, days, snapshot); err != nil {
		return nil, err
	}

	return days, nil
}

func (s *itineraryService) GetItinerary(ctx context.Context, tourID string) ([]entity.ItineraryDay, error) {
	return s.itineraryRepo.GetByTourID(ctx, tourID)
}

// snapshotView strips row ids so the tours.itinerary column stores only the
// presentation tree.
func snapshotView(days []entity.ItineraryDay) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(days))
	for _, day := range days {
		activities := make([]map[string]interface{}, 0, len(day.Activities))
		for _, act := range day.Activities {
			activities = append(activities, map[string]interface{}{
				"period":      act.Period,
				"time":        act.Time,
				"title":       act.Title,
				"description": act.Description,
				"images":      act.Images,
			})
		}
		out = append(out, map[string]interface{}{
			"day":        day.Day,
			"activities": activities,
		})
	}
	return out
}
