package response

import "hotel-ops/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
}

type MeResponse struct {
	User *queries.AuthorizedUserView `json:"user"`
}
