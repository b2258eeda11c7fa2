package model

import "time"

// SystemUserID is the hard-coded actor standing in for all users; there is no
// authentication layer in front of this service.
const SystemUserID = "00000000-0000-0000-0000-000000000000"

type User struct {
	ID        string     `db:"id" json:"id"`
	Email     string     `db:"email" json:"email"`
	Name      string     `db:"name" json:"name"`
	FullName  string     `db:"full_name" json:"fullName"`
	Role      string     `db:"role" json:"role"`
	Position  string     `db:"position" json:"position"`
	Area      string     `db:"area" json:"area"`
	IsActive  bool       `db:"is_active" json:"isActive"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
}
