package service

import (
	"time"

	"gorm.io/gorm"

	"farmdash/entities"
)

// Snapshot is the dashboard aggregate for one organization. Each field comes
// from its own scan, so under concurrent writes the parts may observe the
// store at slightly different instants.
type Snapshot struct {
	PendingTasks []entities.Task        `json:"pending_tasks"`
	Livestock    []entities.Livestock   `json:"livestock"`
	ActiveCrops  []entities.Crop        `json:"active_crops"`
	Transactions []entities.Transaction `json:"transactions"` // trailing 30 days
	Labor        []entities.Labor       `json:"labor"`
}

type MetricsService interface {
	Snapshot(orgID string) (*Snapshot, error)
	// SnapshotAt runs the aggregation against a fixed reference time.
	SnapshotAt(orgID string, now time.Time) (*Snapshot, error)
}

type metricsSvc struct{ db *gorm.DB }

func New(db *gorm.DB) MetricsService { return &metricsSvc{db} }

func (s *metricsSvc) Snapshot(orgID string) (*Snapshot, error) {
	return s.SnapshotAt(orgID, time.Now())
}

func (s *metricsSvc) SnapshotAt(orgID string, now time.Time) (*Snapshot, error) {
	out := &Snapshot{
		PendingTasks: []entities.Task{},
		Livestock:    []entities.Livestock{},
		ActiveCrops:  []entities.Crop{},
		Transactions: []entities.Transaction{},
		Labor:        []entities.Labor{},
	}

	if err := s.db.
		Where("organization_id = ? AND status = ?", orgID, entities.TaskPending).
		Find(&out.PendingTasks).Error; err != nil {
		return nil, err
	}

	if err := s.db.
		Where("organization_id = ?", orgID).
		Find(&out.Livestock).Error; err != nil {
		return nil, err
	}

	// Active: not finished, harvest still ahead, planting already behind.
	if err := s.db.
		Where("organization_id = ? AND status NOT IN ? AND harvest_date > ? AND planting_date < ?",
			orgID, []entities.CropStatus{entities.CropHarvested, entities.CropFailed}, now, now).
		Find(&out.ActiveCrops).Error; err != nil {
		return nil, err
	}

	if err := s.db.
		Where("organization_id = ? AND date > ?", orgID, now.AddDate(0, 0, -30)).
		Find(&out.Transactions).Error; err != nil {
		return nil, err
	}

	if err := s.db.
		Where("organization_id = ?", orgID).
		Find(&out.Labor).Error; err != nil {
		return nil, err
	}

	return out, nil
}
