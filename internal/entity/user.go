package entity

import "time"

type User struct {
	ID         int64     `json:"id" db:"id"`
	GoogleID   string    `json:"google_id,omitempty" db:"google_id"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	ProfilePic string    `json:"profile_pic" db:"profile_pic"`
	Phone      string    `json:"phone" db:"phone"`
	Role       string    `json:"role" db:"role"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Admin is a separate identity space from User, used only for
// password-based admin login.
type Admin struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password"`
	Phone        string    `json:"phone" db:"phone"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
