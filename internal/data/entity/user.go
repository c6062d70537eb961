package entity

import "time"

type AgeCategory string

const (
	AgeUnder13 AgeCategory = "under-13"
	Age13To17  AgeCategory = "13-17"
	Age18To24  AgeCategory = "18-24"
	Age25To34  AgeCategory = "25-34"
	Age35To44  AgeCategory = "35-44"
	Age45Plus  AgeCategory = "45-plus"
)

// GuestPrefix starts every generated guest id.
const GuestPrefix = "guest_"

// User is keyed by a caller chosen id: an email, a tel: target, a username or
// a guest id. Optional columns are nil when absent.
type User struct {
	ID          string       `db:"id"`
	Name        *string      `db:"name"`
	Email       *string      `db:"email"`
	Phone       *string      `db:"phone"`
	Username    *string      `db:"username"`
	AgeCategory *AgeCategory `db:"age_category"`
	Genres      []string     `db:"genres"`
	UpdatedAt   time.Time    `db:"updated_at"`
}
