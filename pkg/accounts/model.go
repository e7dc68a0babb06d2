package accounts

import "time"

type Account struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	UUID      string    `json:"uuid"`
	CreatedAt time.Time `json:"created_at"`
}
