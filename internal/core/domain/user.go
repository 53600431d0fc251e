package domain

import "time"

// User models a registered account. Password holds the bcrypt hash and is
// never serialized.
type User struct {
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	UserEmail  string    `json:"user_email"`
	Password   string    `json:"-"`
	CreatedOn  time.Time `json:"created_on"`
	LastUpdate time.Time `json:"last_update"`
}
