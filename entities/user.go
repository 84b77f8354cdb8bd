package entities

import "time"

type User struct {
	UserID  string   `gorm:"primaryKey" json:"user_id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	AuthID  string   `json:"auth_id"` // subject id from the identity provider
	FarmIDs []string `gorm:"serializer:json" json:"farm_ids"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
