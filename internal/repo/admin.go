package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/ekarimov/restoran/internal/models"
)

func (r *GormRepo) GetAdmin(ctx context.Context, id uint) (*models.Admin, error) {
	admin := models.Admin{}
	if err := r.DB.WithContext(ctx).First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *GormRepo) GetAdminByIDCard(ctx context.Context, idCard string) (*models.Admin, error) {
	admin := models.Admin{}
	if err := r.DB.WithContext(ctx).Where("id_card = ?", idCard).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *GormRepo) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	var admins []models.Admin
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *GormRepo) CountAdmins(ctx context.Context) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Admin{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *GormRepo) CreateAdmin(ctx context.Context, a *models.Admin) error {
	return r.DB.WithContext(ctx).Create(a).Error
}

func (r *GormRepo) SaveAdmin(ctx context.Context, a *models.Admin) error {
	return r.DB.WithContext(ctx).Save(a).Error
}

func (r *GormRepo) DeleteAdmin(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Admin{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
