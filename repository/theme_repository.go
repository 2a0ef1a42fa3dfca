package repository

import (
	"context"

	"blogpessoal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ThemeRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Theme, error)
	FindAll(ctx context.Context) ([]models.Theme, error)
	FindAllByDescription(ctx context.Context, description string) ([]models.Theme, error)
	Create(ctx context.Context, theme *models.Theme) error
	Save(ctx context.Context, theme *models.Theme) error
	// Delete removes the theme's posts and then the theme in one transaction.
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type themeRepository struct {
	db *gorm.DB
}

func NewThemeRepository(db *gorm.DB) ThemeRepository {
	return &themeRepository{db: db}
}

func (r *themeRepository) FindByID(ctx context.Context, id uint) (*models.Theme, error) {
	var theme models.Theme
	if err := r.db.WithContext(ctx).Preload("Posts").First(&theme, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Tema", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &theme, nil
}

func (r *themeRepository) FindAll(ctx context.Context) ([]models.Theme, error) {
	themes := []models.Theme{}
	if err := r.db.WithContext(ctx).Preload("Posts").Order("id").Find(&themes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return themes, nil
}

func (r *themeRepository) FindAllByDescription(ctx context.Context, description string) ([]models.Theme, error) {
	themes := []models.Theme{}
	if err := r.db.WithContext(ctx).
		Preload("Posts").
		Where(lowerLike("descricao"), containsPattern(description)).
		Order("id").
		Find(&themes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return themes, nil
}

func (r *themeRepository) Create(ctx context.Context, theme *models.Theme) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(theme).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *themeRepository) Save(ctx context.Context, theme *models.Theme) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(theme).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *themeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tema_id = ?", id).Delete(&models.Post{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		result := tx.Delete(&models.Theme{}, id)
		if result.Error != nil {
			return models.NewInternalError(result.Error)
		}
		if result.RowsAffected == 0 {
			return models.NewNotFoundError("Tema", id)
		}
		return nil
	})
}

func (r *themeRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Theme{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
