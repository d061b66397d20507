package services

import (
	"context"
	"strings"

	"github.com/yeremiapane/laundry-app/models"
	"github.com/yeremiapane/laundry-app/utils"
	"gorm.io/gorm"
)

type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

type ServiceView struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price"`
	CreatedAt   string  `json:"created_at"`
}

type ServiceInput struct {
	Name        string
	Description string
	Price       *float64
}

func (in ServiceInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || in.Price == nil {
		return validationError("Nama dan harga layanan diperlukan")
	}
	if *in.Price < 0 {
		return validationError("Harga layanan tidak boleh negatif")
	}
	return nil
}

func (s *CatalogService) List(ctx context.Context) ([]ServiceView, error) {
	var rows []models.Service
	if err := s.DB.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		utils.ErrorLogger.Errorf("list services: %v", err)
		return nil, internal("Error saat mengambil layanan", err)
	}

	views := make([]ServiceView, 0, len(rows))
	for _, r := range rows {
		views = append(views, ServiceView{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			BasePrice:   r.BasePrice,
			CreatedAt:   utils.FormatDateTime(r.CreatedAt),
		})
	}
	return views, nil
}

func (s *CatalogService) Create(ctx context.Context, in ServiceInput) (uint, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}
	svc := models.Service{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		BasePrice:   *in.Price,
	}
	if err := s.DB.WithContext(ctx).Create(&svc).Error; err != nil {
		utils.ErrorLogger.Errorf("add service: %v", err)
		return 0, internal("Error adding service", err)
	}
	return svc.ID, nil
}

// Update overwrites name, description and price, including empty description.
func (s *CatalogService) Update(ctx context.Context, id uint, in ServiceInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	res := s.DB.WithContext(ctx).Model(&models.Service{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        strings.TrimSpace(in.Name),
		"description": in.Description,
		"base_price":  *in.Price,
	})
	if res.Error != nil {
		utils.ErrorLogger.WithField("service_id", id).Errorf("update service: %v", res.Error)
		return internal("Error updating service", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("Layanan tidak ditemukan")
	}
	return nil
}

func (s *CatalogService) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Service{}, id)
	if res.Error != nil {
		utils.ErrorLogger.WithField("service_id", id).Errorf("delete service: %v", res.Error)
		return internal("Error deleting service", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("Layanan tidak ditemukan")
	}
	return nil
}
