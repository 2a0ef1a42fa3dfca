package controllers

import (
	"net/http"

	"blogpessoal/models"
	"blogpessoal/services"

	"github.com/gin-gonic/gin"
)

// AuthController serves the two public user endpoints.
type AuthController struct {
	userService *services.UserService
}

func NewAuthController(userService *services.UserService) *AuthController {
	return &AuthController{userService: userService}
}

// Register handles POST /usuarios/cadastrar.
func (ac *AuthController) Register(c *gin.Context) {
	var req models.CreateUserRequest
	if !bind(c, &req) {
		return
	}

	user, err := ac.userService.Register(c.Request.Context(), req.ToUser())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login handles POST /usuarios/logar and answers with the Basic token to
// send on later requests.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.UserLogin
	if !bind(c, &req) {
		return
	}

	result, err := ac.userService.Authenticate(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}
