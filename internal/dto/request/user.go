package request

import (
	"strings"

	"cinerank-auth/internal/data/entity"
)

// Profile carries the user supplied profile fields shared by upsert and
// sign-in. Blank strings mean "absent".
type Profile struct {
	Name        string   `json:"name,omitempty"`
	Email       string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string   `json:"phone,omitempty" validate:"omitempty,max=32"`
	Username    string   `json:"username,omitempty" validate:"omitempty,max=64"`
	AgeCategory string   `json:"age_category,omitempty" validate:"omitempty,oneof=under-13 13-17 18-24 25-34 35-44 45-plus"`
	Genres      []string `json:"genres,omitempty" validate:"omitempty,dive,notblank"`
}

type UpsertUserRequest struct {
	ID string `json:"id" validate:"notblank"`
	Profile
}

type SignInRequest struct {
	ID string `json:"id,omitempty"`
	Profile
}

// Trim strips surrounding whitespace from every string field and lowercases
// the email so it matches the id sign-in derives from it.
func (p *Profile) Trim() {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = entity.EmailTarget(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Username = strings.TrimSpace(p.Username)
	p.AgeCategory = strings.TrimSpace(p.AgeCategory)
}

// ToEntity builds the full replacement row for id. Blank fields become nil
// so they never collide on the unique columns.
func (p *Profile) ToEntity(id string) *entity.User {
	user := &entity.User{
		ID:       id,
		Name:     optional(p.Name),
		Email:    optional(p.Email),
		Phone:    optional(p.Phone),
		Username: optional(p.Username),
		Genres:   []string{},
	}
	if p.AgeCategory != "" {
		age := entity.AgeCategory(p.AgeCategory)
		user.AgeCategory = &age
	}
	for _, g := range p.Genres {
		user.Genres = append(user.Genres, strings.TrimSpace(g))
	}
	return user
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type LookupField string

const (
	LookupByID       LookupField = "id"
	LookupByUsername LookupField = "username"
	LookupByEmail    LookupField = "email"
)

// LookupUser is a point lookup on one key column.
type LookupUser struct {
	Field LookupField
	Value string `validate:"notblank"`
}

// NewLookupUser picks the lookup key from query values; id wins, then
// username, then email. ok is false when none is set.
func NewLookupUser(id, email, username string) (LookupUser, bool) {
	switch {
	case strings.TrimSpace(id) != "":
		return LookupUser{Field: LookupByID, Value: strings.TrimSpace(id)}, true
	case strings.TrimSpace(username) != "":
		return LookupUser{Field: LookupByUsername, Value: strings.TrimSpace(username)}, true
	case strings.TrimSpace(email) != "":
		return LookupUser{Field: LookupByEmail, Value: entity.EmailTarget(email)}, true
	default:
		return LookupUser{}, false
	}
}
