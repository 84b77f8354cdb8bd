package entities

import "time"

type Farm struct {
	FarmID         string  `gorm:"primaryKey" json:"farm_id"`
	Name           string  `json:"name"`
	Location       string  `json:"location"`
	Size           float64 `json:"size"` // area, unit decided by the tenant
	OwnerID        string  `json:"owner_id"`
	OrganizationID string  `json:"organization_id" gorm:"index"`
	OrgSlug        string  `json:"org_slug,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time
}
