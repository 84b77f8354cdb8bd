package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"farmdash/entities"
)

type Service interface {
	Create(t *entities.Transaction) error
	Get(id string) (*entities.Transaction, error)
	ListByFarm(farmID string) ([]entities.Transaction, error)
	ListByOrganization(orgID string) ([]entities.Transaction, error)
	UpdatePartial(id string, patch TransactionPatch) (*entities.Transaction, error)
	Delete(id string) error

	AddItem(i *entities.TransactionItem) error
	ListItems(transactionID string) ([]entities.TransactionItem, error)
	DeleteItem(itemID string) error
}

type TransactionPatch struct {
	Type        *string  `json:"type"`
	TotalAmount *float64 `json:"total_amount"`
	Date        *string  `json:"date"` // 2006-01-02
	Vendor      *string  `json:"vendor"`
	Description *string  `json:"description"`
	ReceiptRef  *string  `json:"receipt_ref"`
}

type service struct{ db *gorm.DB }

func New(db *gorm.DB) Service { return &service{db: db} }

func (s *service) Create(t *entities.Transaction) error {
	if t == nil {
		return errors.New("nil transaction")
	}
	if err := t.Validate(); err != nil {
		return err
	}
	if t.TransactionID == "" {
		t.TransactionID = uuid.NewString()
	}
	return s.db.Create(t).Error
}

func (s *service) Get(id string) (*entities.Transaction, error) {
	var t entities.Transaction
	if err := s.db.Where("transaction_id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *service) ListByFarm(farmID string) ([]entities.Transaction, error) {
	var out []entities.Transaction
	if err := s.db.Where("farm_id = ?", farmID).Order("date asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) ListByOrganization(orgID string) ([]entities.Transaction, error) {
	var out []entities.Transaction
	if err := s.db.Where("organization_id = ?", orgID).Order("date asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) UpdatePartial(id string, patch TransactionPatch) (*entities.Transaction, error) {
	var t entities.Transaction
	if err := s.db.Where("transaction_id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	if patch.Type != nil {
		t.Type = entities.TransactionType(*patch.Type)
	}
	if patch.TotalAmount != nil {
		t.TotalAmount = *patch.TotalAmount
	}
	if patch.Date != nil {
		d, err := time.Parse("2006-01-02", *patch.Date)
		if err != nil {
			return nil, fmt.Errorf("bad date %q", *patch.Date)
		}
		t.Date = d
	}
	if patch.Vendor != nil {
		t.Vendor = *patch.Vendor
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.ReceiptRef != nil {
		t.ReceiptRef = patch.ReceiptRef
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := s.db.Save(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *service) Delete(id string) error {
	return s.db.Where("transaction_id = ?", id).Delete(&entities.Transaction{}).Error
}

func (s *service) AddItem(i *entities.TransactionItem) error {
	if i == nil {
		return errors.New("nil item")
	}
	if err := i.Validate(); err != nil {
		return err
	}
	if i.ItemID == "" {
		i.ItemID = uuid.NewString()
	}
	return s.db.Create(i).Error
}

func (s *service) ListItems(transactionID string) ([]entities.TransactionItem, error) {
	var out []entities.TransactionItem
	if err := s.db.Where("transaction_id = ?", transactionID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) DeleteItem(itemID string) error {
	return s.db.Where("item_id = ?", itemID).Delete(&entities.TransactionItem{}).Error
}
