package entities

import (
	"fmt"
	"time"
)

type TrackingType string

const (
	TrackIndividual TrackingType = "individual"
	TrackGroup      TrackingType = "group"
)

type Livestock struct {
	LivestockID     string       `gorm:"primaryKey" json:"livestock_id"`
	FarmID          string       `json:"farm_id"`
	Name            string       `json:"name"`
	Type            string       `json:"type"` // cattle|poultry|goat|...
	TrackingType    TrackingType `json:"tracking_type"`
	Quantity        *int         `json:"quantity,omitempty"` // group tracking only
	TagID           *string      `json:"tag_id,omitempty"`   // individual tracking only
	AcquisitionDate time.Time    `json:"acquisition_date"`
	HealthStatus    string       `json:"health_status"`
	Purpose         string       `json:"purpose"`
	OrganizationID  string       `json:"organization_id"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (l *Livestock) Validate() error {
	switch l.TrackingType {
	case TrackIndividual, TrackGroup:
		return nil
	}
	return fmt.Errorf("invalid tracking type %q", l.TrackingType)
}
