package services

import (
	"context"

	"blogpessoal/models"
	"blogpessoal/repository"
)

type ThemeService struct {
	themes repository.ThemeRepository
}

func NewThemeService(themes repository.ThemeRepository) *ThemeService {
	return &ThemeService{themes: themes}
}

func (s *ThemeService) GetAll(ctx context.Context) ([]models.Theme, error) {
	return s.themes.FindAll(ctx)
}

func (s *ThemeService) GetByID(ctx context.Context, id uint) (*models.Theme, error) {
	return s.themes.FindByID(ctx, id)
}

func (s *ThemeService) SearchByDescription(ctx context.Context, description string) ([]models.Theme, error) {
	return s.themes.FindAllByDescription(ctx, description)
}

func (s *ThemeService) Create(ctx context.Context, req *models.CreateThemeRequest) (*models.Theme, error) {
	theme := &models.Theme{Description: req.Description}
	if err := s.themes.Create(ctx, theme); err != nil {
		return nil, err
	}
	return theme, nil
}

func (s *ThemeService) Update(ctx context.Context, req *models.UpdateThemeRequest) (*models.Theme, error) {
	exists, err := s.themes.Exists(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Tema", req.ID)
	}

	theme := &models.Theme{ID: req.ID, Description: req.Description}
	if err := s.themes.Save(ctx, theme); err != nil {
		return nil, err
	}
	return theme, nil
}

func (s *ThemeService) Delete(ctx context.Context, id uint) error {
	return s.themes.Delete(ctx, id)
}
