package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ainthinai/booking-api/internal/entity"
)

type itineraryRepository struct {
	db *sql.DB
}

func NewItineraryRepository(db *sql.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

// Replace swaps the whole itinerary tree of a tour in one transaction:
// the old days, activities and images are deleted bottom-up, the new tree
// is inserted, and the JSON snapshot is mirrored into tours.itinerary.
func (r *itineraryRepository) Replace(ctx context.Context, tourID string, days []entity.ItineraryDay, snapshot []byte) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelReadCommitted,
	})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	deletes := []string{
		`DELETE FROM itinerary_images WHERE activity_id IN (
			SELECT a.id FROM itinerary_activities a
			JOIN itinerary_days d ON a.day_id = d.id
			WHERE d.tour_id = $1
		)`,
		`DELETE FROM itinerary_activities WHERE day_id IN (
			SELECT id FROM itinerary_days WHERE tour_id = $1
		)`,
		`DELETE FROM itinerary_days WHERE tour_id = $1`,
	}
	for _, query := range deletes {
		if _, err := tx.ExecContext(ctx, query, tourID); err != nil {
			return fmt.Errorf("failed to clear itinerary: %v", err)
		}
	}

	for _, day := range days {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO itinerary_days (id, tour_id, day_number) VALUES ($1, $2, $3)`,
			day.ID, tourID, day.Day,
		)
		if err != nil {
			return fmt.Errorf("failed to insert itinerary day: %v", err)
		}

		for _, activity := range day.Activities {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO itinerary_activities (id, day_id, period, time, title, description)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				activity.ID, day.ID, activity.Period, activity.Time,
				activity.Title, activity.Description,
			)
			if err != nil {
				return fmt.Errorf("failed to insert itinerary activity: %v", err)
			}

			for _, url := range activity.Images {
				_, err := tx.ExecContext(ctx,
					`INSERT INTO itinerary_images (id, activity_id, image_url) VALUES ($1, $2, $3)`,
					uuid.NewString(), activity.ID, url,
				)
				if err != nil {
					return fmt.Errorf("failed to insert itinerary image: %v", err)
				}
			}
		}
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE tours SET itinerary = $1, updated_at = $2 WHERE id = $3`,
		snapshot, time.Now(), tourID,
	)
	if err != nil {
		return fmt.Errorf("failed to update itinerary snapshot: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		return entity.ErrTourNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

// GetByTourID reads the normalized itinerary tree for a tour, days ordered
// by day number and images kept in insertion order.
func (r *itineraryRepository) GetByTourID(ctx context.Context, tourID string) ([]entity.ItineraryDay, error) {
	dayRows, err := r.db.QueryContext(ctx, `
		SELECT id, tour_id, day_number
		FROM itinerary_days
		WHERE tour_id = $1
		ORDER BY day_number`,
		tourID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query itinerary days: %v", err)
	}
	defer dayRows.Close()

	days := make([]entity.ItineraryDay, 0)
	dayIndex := make(map[string]int)
	for dayRows.Next() {
		var day entity.ItineraryDay
		if err := dayRows.Scan(&day.ID, &day.TourID, &day.Day); err != nil {
			return nil, fmt.Errorf("failed to scan itinerary day: %v", err)
		}
		day.Activities = make([]entity.ItineraryActivity, 0)
		dayIndex[day.ID] = len(days)
		days = append(days, day)
	}
	if err := dayRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating itinerary days: %v", err)
	}
	if len(days) == 0 {
		return days, nil
	}

	activityRows, err := r.db.QueryContext(ctx, `
		SELECT a.id, a.day_id, COALESCE(a.period, ''), COALESCE(a.time, ''),
			COALESCE(a.title, ''), COALESCE(a.description, '')
		FROM itinerary_activities a
		JOIN itinerary_days d ON a.day_id = d.id
		WHERE d.tour_id = $1
		ORDER BY d.day_number, a.id`,
		tourID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query itinerary activities: %v", err)
	}
	defer activityRows.Close()

	activityIndex := make(map[string]*entity.ItineraryActivity)
	activityOrder := make([]string, 0)
	for activityRows.Next() {
		var activity entity.ItineraryActivity
		err := activityRows.Scan(
			&activity.ID,
			&activity.DayID,
			&activity.Period,
			&activity.Time,
			&activity.Title,
			&activity.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan itinerary activity: %v", err)
		}
		activity.Images = make([]string, 0)
		activityIndex[activity.ID] = &activity
		activityOrder = append(activityOrder, activity.ID)
	}
	if err := activityRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating itinerary activities: %v", err)
	}

	imageRows, err := r.db.QueryContext(ctx, `
		SELECT i.activity_id, i.image_url
		FROM itinerary_images i
		JOIN itinerary_activities a ON i.activity_id = a.id
		JOIN itinerary_days d ON a.day_id = d.id
		WHERE d.tour_id = $1
		ORDER BY i.id`,
		tourID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query itinerary images: %v", err)
	}
	defer imageRows.Close()

	for imageRows.Next() {
		var activityID, url string
		if err := imageRows.Scan(&activityID, &url); err != nil {
			return nil, fmt.Errorf("failed to scan itinerary image: %v", err)
		}
		if activity, ok := activityIndex[activityID]; ok {
			activity.Images = append(activity.Images, url)
		}
	}
	if err := imageRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating itinerary images: %v", err)
	}

	for _, id := range activityOrder {
		activity := activityIndex[id]
		if idx, ok := dayIndex[activity.DayID]; ok {
			days[idx].Activities = append(days[idx].Activities, *activity)
		}
	}

	return days, nil
}
