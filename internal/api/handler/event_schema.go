package handler

import "time"

type locationRequest struct {
	Name     string `json:"name"     validate:"required"`
	Address  string `json:"address"  validate:"required"`
	Capacity int    `json:"capacity" validate:"gte=0"`
}

type eventRequest struct {
	Name             string          `json:"name"              validate:"required"`
	ShortDescription string          `json:"short_description" validate:"required"`
	LongDescription  string          `json:"long_description"`
	MusicStyle       string          `json:"music_style"       validate:"required"`
	PhotoURL         string          `json:"photo_url"         validate:"omitempty,url"`
	StartDate        time.Time       `json:"start_date"        validate:"required"`
	Price            float64         `json:"price"             validate:"gte=0"`
	Location         locationRequest `json:"location"          validate:"required"`
}
