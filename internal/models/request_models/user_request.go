package request_models

type UpdateUserRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Role        *string `json:"role" binding:"omitempty,oneof=admin student club_owner coach"`
	IsActive    *bool   `json:"is_active"`
	IsClubOwner *bool   `json:"is_club_owner"`
	Password    *string `json:"password" binding:"omitempty,min=8"`
}
