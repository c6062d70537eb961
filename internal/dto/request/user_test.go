package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLookupUser(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		email    string
		username string
		want     LookupUser
		ok       bool
	}{
		{name: "id wins", id: " u1 ", email: "a@b.co", username: "ann", want: LookupUser{Field: LookupByID, Value: "u1"}, ok: true},
		{name: "username before email", email: "a@b.co", username: "ann", want: LookupUser{Field: LookupByUsername, Value: "ann"}, ok: true},
		{name: "email is normalized", email: " Ann@Example.COM ", want: LookupUser{Field: LookupByEmail, Value: "ann@example.com"}, ok: true},
		{name: "nothing", email: "  ", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NewLookupUser(tt.id, tt.email, tt.username)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProfileTrimAndToEntity(t *testing.T) {
	p := Profile{Name: " Ann ", Email: " Ann@Example.com ", Username: "  ", AgeCategory: "18-24", Genres: []string{" Drama "}}
	p.Trim()

	assert.Equal(t, "ann@example.com", p.Email)

	user := p.ToEntity("u1")
	assert.Equal(t, "Ann", *user.Name)
	assert.Equal(t, "ann@example.com", *user.Email)
	assert.Nil(t, user.Username)
	assert.Nil(t, user.Phone)
	assert.Equal(t, "18-24", string(*user.AgeCategory))
	assert.Equal(t, []string{"Drama"}, user.Genres)
}
