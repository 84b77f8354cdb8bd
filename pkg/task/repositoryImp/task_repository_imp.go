package repositoryImp

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"farmdash/entities"
	"farmdash/pkg/task/repository"
)

type taskRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TaskRepository { return &taskRepo{db} }

func (r *taskRepo) Create(t *entities.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.TaskID == "" {
		t.TaskID = uuid.NewString()
	}
	return r.db.Create(t).Error
}

func (r *taskRepo) FindByID(id string) (*entities.Task, error) {
	var t entities.Task
	if err := r.db.Where("task_id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *taskRepo) ListByFarm(farmID string) ([]entities.Task, error) {
	var out []entities.Task
	if err := r.db.Where("farm_id = ?", farmID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *taskRepo) ListByOrganization(orgID string) ([]entities.Task, error) {
	var out []entities.Task
	if err := r.db.Where("organization_id = ?", orgID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *taskRepo) ListPending(orgID string) ([]entities.Task, error) {
	var out []entities.Task
	if err := r.db.Where("organization_id = ? AND status = ?", orgID, entities.TaskPending).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *taskRepo) ListByAssignee(laborID string) ([]entities.Task, error) {
	var out []entities.Task
	if err := r.db.Where("assigned_to = ?", laborID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *taskRepo) UpdatePartial(id string, fields map[string]any) error {
	return r.db.Model(&entities.Task{}).Where("task_id = ?", id).Updates(fields).Error
}

func (r *taskRepo) Delete(id string) error {
	return r.db.Where("task_id = ?", id).Delete(&entities.Task{}).Error
}
