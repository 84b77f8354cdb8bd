package entities

import (
	"fmt"
	"time"
)

type CropStatus string

const (
	CropSeedbed   CropStatus = "seedbed"
	CropPlanting  CropStatus = "planting"
	CropGrowing   CropStatus = "growing"
	CropHarvested CropStatus = "harvested"
	CropFailed    CropStatus = "failed"
	CropPlanned   CropStatus = "planned"
)

type Crop struct {
	CropID         string     `gorm:"primaryKey" json:"crop_id"`
	FarmID         string     `json:"farm_id"`
	Name           string     `json:"name"`
	Variety        string     `json:"variety"`
	PlantingDate   time.Time  `json:"planting_date"`
	HarvestDate    time.Time  `json:"harvest_date"`
	AreaPlanted    float64    `json:"area_planted"`
	Status         CropStatus `json:"status"`
	OrganizationID string     `json:"organization_id"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Crop) Validate() error {
	switch c.Status {
	case CropSeedbed, CropPlanting, CropGrowing, CropHarvested, CropFailed, CropPlanned:
		return nil
	}
	return fmt.Errorf("invalid crop status %q", c.Status)
}
