package entity

import "time"

type BaseSerial struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
