package model

type BaseResponse struct {
	Data    any      `json:"data,omitempty"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

type EventCreateRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ClubID      string  `json:"club_id"`
	DateISO     string  `json:"date_iso"`
	Location    string  `json:"location"`
	ImageURL    *string `json:"image_url,omitempty"`
	Image       *string `json:"image,omitempty"`
}

func (r EventCreateRequest) Input() CreateEventInput {
	return CreateEventInput{
		Title:       r.Title,
		Description: r.Description,
		ClubID:      r.ClubID,
		DateISO:     r.DateISO,
		Location:    r.Location,
		ImageURL:    r.ImageURL,
		Image:       r.Image,
	}
}

type EventRejectRequest struct {
	Note string `json:"note" validate:"required"`
}

type ClubEnabledResponse struct {
	ClubID  string `json:"club_id"`
	Enabled bool   `json:"enabled"`
}

// DenyWordCSV is one row of an uploaded denylist file.
type DenyWordCSV struct {
	Word string `csv:"word"`
}
