package request_models

type CreateClubRequest struct {
	Name        string            `json:"name" binding:"required"`
	Town        string            `json:"town" binding:"required"`
	Telephone   string            `json:"telephone" binding:"required"`
	HourlyPrice float64           `json:"hourly_price" binding:"required,gt=0"`
	Description string            `json:"description"`
	Address     string            `json:"address"`
	Website     string            `json:"website"`
	SocialMedia map[string]string `json:"social_media"`
}

type UpdateClubRequest struct {
	Name        *string            `json:"name"`
	Town        *string            `json:"town"`
	Telephone   *string            `json:"telephone"`
	HourlyPrice *float64           `json:"hourly_price" binding:"omitempty,gt=0"`
	Description *string            `json:"description"`
	Address     *string            `json:"address"`
	Website     *string            `json:"website"`
	SocialMedia *map[string]string `json:"social_media"`
}

type AddPictureRequest struct {
	PictureURL string `json:"picture_url" binding:"required"`
}

// ClubSearchFilter carries the optional query filters of the club list
// endpoint.
type ClubSearchFilter struct {
	Name     string
	Town     string
	MinPrice *float64
	MaxPrice *float64
}
