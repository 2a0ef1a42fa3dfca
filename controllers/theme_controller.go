package controllers

import (
	"net/http"

	"blogpessoal/models"
	"blogpessoal/services"

	"github.com/gin-gonic/gin"
)

type ThemeController struct {
	themeService *services.ThemeService
}

func NewThemeController(themeService *services.ThemeService) *ThemeController {
	return &ThemeController{themeService: themeService}
}

func (tc *ThemeController) GetThemes(c *gin.Context) {
	themes, err := tc.themeService.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, themes)
}

func (tc *ThemeController) GetTheme(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	theme, err := tc.themeService.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, theme)
}

func (tc *ThemeController) SearchThemes(c *gin.Context) {
	themes, err := tc.themeService.SearchByDescription(c.Request.Context(), c.Param("descricao"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, themes)
}

func (tc *ThemeController) CreateTheme(c *gin.Context) {
	var req models.CreateThemeRequest
	if !bind(c, &req) {
		return
	}

	theme, err := tc.themeService.Create(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, theme)
}

func (tc *ThemeController) UpdateTheme(c *gin.Context) {
	var req models.UpdateThemeRequest
	if !bind(c, &req) {
		return
	}

	theme, err := tc.themeService.Update(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, theme)
}

// DeleteTheme removes the theme and every post filed under it.
func (tc *ThemeController) DeleteTheme(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := tc.themeService.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
