package controllers

import (
	"strconv"

	"blogpessoal/models"
	"blogpessoal/utils"

	"github.com/gin-gonic/gin"
)

// parseID reads a positive numeric path parameter.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.Error(models.NewValidationError("Invalid " + name))
		return 0, false
	}
	return uint(id), true
}

// bind decodes and validates the JSON body into req.
func bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.Error(models.NewValidationError(utils.ValidationMessage(err)))
		return false
	}
	return true
}
