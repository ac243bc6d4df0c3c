package db

import (
	"context"

	"github.com/talenthub/booking-api/models"
	"gorm.io/gorm"
)

// GormServiceStore persists services through the shared GORM handle. The
// creation workflow receives it as an interface so it can be exercised
// against a stub store.
type GormServiceStore struct {
	db *gorm.DB
}

func NewServiceStore() *GormServiceStore {
	return &GormServiceStore{db: DB}
}

func (s *GormServiceStore) CreateService(ctx context.Context, service *models.Service) error {
	return s.db.WithContext(ctx).Create(service).Error
}

func (s *GormServiceStore) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := s.db.WithContext(ctx).
		Preload("Expert.Role").
		Find(&services).Error
	return services, err
}

func (s *GormServiceStore) GetService(ctx context.Context, serviceID string) (*models.Service, error) {
	var service models.Service
	if err := s.db.WithContext(ctx).
		Preload("Expert.Role").
		Where("service_id = ?", serviceID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (s *GormServiceStore) ListExpertServices(ctx context.Context, expertID uint) ([]models.Service, error) {
	var services []models.Service
	err := s.db.WithContext(ctx).
		Where("expert_id = ?", expertID).
		Find(&services).Error
	return services, err
}

func (s *GormServiceStore) SetServiceActive(ctx context.Context, serviceID string, active bool) error {
	return s.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("service_id = ?", serviceID).
		Update("is_active", active).Error
}
