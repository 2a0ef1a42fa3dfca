package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	"blogpessoal/config"
	"blogpessoal/logger"
	"blogpessoal/metrics"
	"blogpessoal/models"
	"blogpessoal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Keys under which AuthRequired stores the principal.
const (
	ContextUserID = "usuario_id"
	ContextLogin  = "usuario"
)

const basicRealm = `Basic realm="blogpessoal"`

// CredentialStore is the part of the user store the gate needs.
type CredentialStore interface {
	FindByLogin(ctx context.Context, login string) (*models.User, error)
}

// AuthRequired checks Basic credentials on every request. Browsers cannot set
// headers on a websocket handshake, so upgrades may carry the same token in
// the "token" query parameter instead.
func AuthRequired(users CredentialStore, hasher utils.PasswordHasher, cfg *config.Config) gin.HandlerFunc {
	log := logger.Named("auth")

	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" && websocket.IsWebSocketUpgrade(c.Request) {
			token = c.Query("token")
		}

		login, password, err := utils.DecodeBasicToken(token)
		if err != nil {
			deny(c, "Missing or malformed credentials")
			return
		}

		if cfg != nil && cfg.RootEnabled() && isRoot(cfg, login, password) {
			metrics.ObserveAuth(metrics.AuthSourceGate, true)
			c.Set(ContextUserID, uint(0))
			c.Set(ContextLogin, login)
			c.Next()
			return
		}

		user, err := users.FindByLogin(c.Request.Context(), login)
		if err != nil {
			log.Error("credential lookup failed", zap.String("login", login), zap.Error(err))
			c.Error(err)
			c.Abort()
			return
		}
		if user == nil || !hasher.Check(password, user.Password) {
			log.Debug("credentials rejected", zap.String("login", login))
			deny(c, "Invalid credentials")
			return
		}

		metrics.ObserveAuth(metrics.AuthSourceGate, true)
		c.Set(ContextUserID, user.ID)
		c.Set(ContextLogin, user.Login)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id. The root account has
// no stored user and reports false.
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok && id != 0
}

func deny(c *gin.Context, message string) {
	metrics.ObserveAuth(metrics.AuthSourceGate, false)
	c.Header("WWW-Authenticate", basicRealm)
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewErrorResponse(models.NewUnauthorizedError(message)))
}

func isRoot(cfg *config.Config, login, password string) bool {
	loginOK := subtle.ConstantTimeCompare([]byte(login), []byte(cfg.RootUser)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.RootPassword)) == 1
	return loginOK && passwordOK
}
