package entity

import (
	"encoding/json"
	"time"
)

// Tour is the main catalog entity. The amenity/activity/food/things-to-know
// columns hold JSON lists of feature ids, resolved to Feature rows at read
// time; gallery_images holds object-storage URLs. The itinerary column
// mirrors the normalized itinerary tree as a JSON snapshot for fast reads.
type Tour struct {
	ID           string     `json:"id" db:"id"`
	CategoryID   string     `json:"category_id" db:"category_id"`
	CategoryName string     `json:"category_name,omitempty" db:"category_name"`
	Title        string     `json:"title" db:"title"`
	Place        string     `json:"place" db:"place"`
	State        string     `json:"state" db:"state"`
	District     string     `json:"district" db:"district"`
	Description  string     `json:"description" db:"description"`
	Location     string     `json:"location" db:"location"`
	AdultPrice   float64    `json:"adult_price" db:"adult_price"`
	ChildPrice   float64    `json:"child_price" db:"child_price"`
	MainImage    string     `json:"main_image" db:"main_image"`
	Thumbnail    string     `json:"thumbnail" db:"thumbnail"`
	Gallery      StringList `json:"gallery_images" db:"gallery_images"`

	Amenities    StringList `json:"-" db:"amenities"`
	Activities   StringList `json:"-" db:"activities"`
	Food         StringList `json:"-" db:"food"`
	ThingsToKnow StringList `json:"-" db:"things_to_know"`

	Itinerary json.RawMessage `json:"-" db:"itinerary"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TourDetail is the by-id read view: feature-id lists resolved to rows and
// the itinerary tree attached.
type TourDetail struct {
	Tour
	Amenities    []Feature      `json:"amenities"`
	Activities   []Feature      `json:"activities"`
	Food         []Feature      `json:"food"`
	ThingsToKnow []Feature      `json:"things_to_know"`
	Itinerary    []ItineraryDay `json:"itinerary"`
}

type Category struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Image     string    `json:"image" db:"image"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Feature struct {
	ID          string    `json:"id" db:"id"`
	Type        string    `json:"type" db:"type"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Image       string    `json:"image" db:"image"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type ItineraryDay struct {
	ID         string              `json:"-" db:"id"`
	TourID     string              `json:"-" db:"tour_id"`
	Day        int                 `json:"day" db:"day_number"`
	Activities []ItineraryActivity `json:"activities"`
}

type ItineraryActivity struct {
	ID          string   `json:"-" db:"id"`
	DayID       string   `json:"-" db:"day_id"`
	Period      string   `json:"period" db:"period"`
	Time        string   `json:"time" db:"time"`
	Title       string   `json:"title" db:"title"`
	Description string   `json:"description" db:"description"`
	Images      []string `json:"images"`
}
