package entities

import "time"

type Labor struct {
	LaborID        string `gorm:"primaryKey" json:"labor_id"`
	FarmID         string `json:"farm_id"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	ContactInfo    string `json:"contact_info"`
	OrganizationID string `json:"organization_id"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
