package services

import (
	"errors"
	"time"

	"pizza-storefront-api/errs"
	"pizza-storefront-api/models"

	"gorm.io/gorm"
)

// BannerService manages promotional banners. Not part of the transactional
// core; the only rule is the active-window filter on the public listing.
type BannerService struct {
	DB *gorm.DB
}

func NewBannerService(db *gorm.DB) *BannerService {
	return &BannerService{DB: db}
}

// ListActive returns banners that are switched on and inside their optional
// date window, in carousel position order.
func (s *BannerService) ListActive(now time.Time) ([]models.Banner, error) {
	var banners []models.Banner
	err := s.DB.
		Where("is_active = ?", true).
		Where("start_date IS NULL OR start_date <= ?", now).
		Where("end_date IS NULL OR end_date >= ?", now).
		Order("position, id").
		Find(&banners).Error
	if err != nil {
		return nil, errs.Translate(err)
	}
	return banners, nil
}

// ListAll returns every banner for the admin screen, position order.
func (s *BannerService) ListAll() ([]models.Banner, error) {
	var banners []models.Banner
	if err := s.DB.Order("position, id").Find(&banners).Error; err != nil {
		return nil, errs.Translate(err)
	}
	return banners, nil
}

func (s *BannerService) GetByID(bannerID uint) (*models.Banner, error) {
	var banner models.Banner
	if err := s.DB.First(&banner, bannerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, errs.Translate(err)
	}
	return &banner, nil
}

func (s *BannerService) Create(banner *models.Banner) error {
	return errs.Translate(s.DB.Create(banner).Error)
}

func (s *BannerService) Update(banner *models.Banner) error {
	return errs.Translate(s.DB.Save(banner).Error)
}

func (s *BannerService) Delete(bannerID uint) error {
	res := s.DB.Delete(&models.Banner{}, bannerID)
	if res.Error != nil {
		return errs.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}
