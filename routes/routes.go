package routes

import (
	"net/http"

	"blogpessoal/config"
	"blogpessoal/controllers"
	"blogpessoal/handlers"
	"blogpessoal/metrics"
	"blogpessoal/middleware"
	"blogpessoal/repository"
	"blogpessoal/services"
	"blogpessoal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Dependencies is everything the route table needs.
type Dependencies struct {
	Config *config.Config
	DB     *gorm.DB
	Hasher utils.PasswordHasher
	Hub    *services.HubService
}

// NewRouter builds the engine with the global middleware and every route.
func NewRouter(deps Dependencies) *gin.Engine {
	utils.MustRegisterValidations()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(deps.Config.AllowedOrigins))
	r.Use(middleware.Logger())
	r.Use(middleware.ErrorHandler())

	users := repository.NewUserRepository(deps.DB)
	themes := repository.NewThemeRepository(deps.DB)
	posts := repository.NewPostRepository(deps.DB)

	userService := services.NewUserService(users, deps.Hasher)
	themeService := services.NewThemeService(themes)
	var events services.Broadcaster
	if deps.Hub != nil {
		events = deps.Hub
	}
	postService := services.NewPostService(posts, themes, users, events)

	SetupRoutes(r,
		middleware.AuthRequired(users, deps.Hasher, deps.Config),
		controllers.NewAuthController(userService),
		controllers.NewUserController(userService),
		controllers.NewThemeController(themeService),
		controllers.NewPostController(postService),
		feedHandler(deps),
	)
	return r
}

func feedHandler(deps Dependencies) *handlers.WebSocketHandler {
	if deps.Hub == nil {
		return nil
	}
	return handlers.NewWebSocketHandler(deps.Hub, deps.Config.AllowedOrigins)
}

func SetupRoutes(
	r *gin.Engine,
	auth gin.HandlerFunc,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	themeController *controllers.ThemeController,
	postController *controllers.PostController,
	w *handlers.WebSocketHandler,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	usuarios := r.Group("/usuarios")
	{
		usuarios.POST("/logar", authController.Login)
		usuarios.POST("/cadastrar", authController.Register)

		private := usuarios.Group("", auth)
		private.GET("/all", userController.GetUsers)
		private.GET("/:id", userController.GetUser)
		private.GET("/nome/:nome", userController.SearchUsers)
		private.PUT("/atualizar", userController.UpdateUser)
		private.DELETE("/:id", userController.DeleteUser)
	}

	temas := r.Group("/temas", auth)
	{
		temas.GET("", themeController.GetThemes)
		temas.GET("/:id", themeController.GetTheme)
		temas.GET("/descricao/:descricao", themeController.SearchThemes)
		temas.POST("", themeController.CreateTheme)
		temas.PUT("", themeController.UpdateTheme)
		temas.DELETE("/:id", themeController.DeleteTheme)
	}

	postagens := r.Group("/postagens", auth)
	{
		postagens.GET("", postController.GetPosts)
		postagens.GET("/:id", postController.GetPost)
		postagens.GET("/titulo/:titulo", postController.SearchPosts)
		postagens.POST("", postController.CreatePost)
		postagens.PUT("", postController.UpdatePost)
		postagens.DELETE("/:id", postController.DeletePost)
		if w != nil {
			postagens.GET("/ws", w.HandleWebSocket)
		}
	}
}
