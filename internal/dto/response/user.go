package response

import "cinerank-auth/internal/data/entity"

type UserResponse struct {
	ID          string   `json:"id"`
	Name        *string  `json:"name"`
	Email       *string  `json:"email"`
	Phone       *string  `json:"phone"`
	Username    *string  `json:"username"`
	AgeCategory *string  `json:"age_category"`
	Genres      []string `json:"genres"`
}

func UserToResponse(user *entity.User) *UserResponse {
	resp := &UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Phone:    user.Phone,
		Username: user.Username,
		Genres:   user.Genres,
	}
	if resp.Genres == nil {
		resp.Genres = []string{}
	}
	if user.AgeCategory != nil {
		age := string(*user.AgeCategory)
		resp.AgeCategory = &age
	}
	return resp
}
