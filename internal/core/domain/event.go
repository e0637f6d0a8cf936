package domain

import "time"

// Location describes the venue an event takes place at.
type Location struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Capacity int    `json:"capacity"`
}

// Event is a catalog entry for a live-music event.
type Event struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	ShortDescription string    `json:"short_description"`
	LongDescription  string    `json:"long_description,omitempty"`
	MusicStyle       string    `json:"music_style"`
	PhotoURL         string    `json:"photo_url,omitempty"`
	StartDate        time.Time `json:"start_date"`
	Price            float64   `json:"price"`
	Location         Location  `json:"location"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
