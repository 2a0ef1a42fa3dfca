package controllers

import (
	"net/http"

	"blogpessoal/middleware"
	"blogpessoal/models"
	"blogpessoal/services"

	"github.com/gin-gonic/gin"
)

type PostController struct {
	postService *services.PostService
}

func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

func (pc *PostController) GetPosts(c *gin.Context) {
	posts, err := pc.postService.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (pc *PostController) GetPost(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	post, err := pc.postService.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (pc *PostController) SearchPosts(c *gin.Context) {
	posts, err := pc.postService.SearchByTitle(c.Request.Context(), c.Param("titulo"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (pc *PostController) CreatePost(c *gin.Context) {
	var req models.CreatePostRequest
	if !bind(c, &req) {
		return
	}

	post := req.ToPost()
	withAuthor(c, post)

	created, err := pc.postService.Create(c.Request.Context(), post)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (pc *PostController) UpdatePost(c *gin.Context) {
	var req models.UpdatePostRequest
	if !bind(c, &req) {
		return
	}

	updated, err := pc.postService.Update(c.Request.Context(), req.ToPost())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (pc *PostController) DeletePost(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := pc.postService.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// withAuthor fills in the caller as author of a new post when the body
// names none.
func withAuthor(c *gin.Context, post *models.Post) {
	if post.UserID != 0 {
		return
	}
	if id, ok := middleware.CurrentUserID(c); ok {
		post.UserID = id
	}
}
