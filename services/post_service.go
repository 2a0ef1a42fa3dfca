package services

import (
	"context"
	"time"

	"blogpessoal/models"
	"blogpessoal/repository"
)

// Broadcaster fans post events out to feed subscribers.
type Broadcaster interface {
	BroadcastToAll(messageType string, data interface{})
}

type PostService struct {
	posts  repository.PostRepository
	themes repository.ThemeRepository
	users  repository.UserRepository
	events Broadcaster
	now    func() time.Time
}

func NewPostService(posts repository.PostRepository, themes repository.ThemeRepository, users repository.UserRepository, events Broadcaster) *PostService {
	return &PostService{
		posts:  posts,
		themes: themes,
		users:  users,
		events: events,
		now:    time.Now,
	}
}

func (s *PostService) GetAll(ctx context.Context) ([]models.Post, error) {
	return s.posts.FindAll(ctx)
}

func (s *PostService) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.posts.FindByID(ctx, id)
}

func (s *PostService) SearchByTitle(ctx context.Context, title string) ([]models.Post, error) {
	return s.posts.FindAllByTitle(ctx, title)
}

func (s *PostService) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	if err := s.checkReferences(ctx, post); err != nil {
		return nil, err
	}

	post.ID = 0
	post.Date = s.now()
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	stored, err := s.posts.FindByID(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	s.publish(models.EventPostCreated, stored)
	return stored, nil
}

// Update replaces a post. A missing post is NOT_FOUND; a missing theme or
// author is checked only after the post is known to exist. The stored author
// is kept unless the replacement names another one.
func (s *PostService) Update(ctx context.Context, post *models.Post) (*models.Post, error) {
	current, err := s.posts.FindByID(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	if post.UserID == 0 {
		post.UserID = current.UserID
	}
	if err := s.checkReferences(ctx, post); err != nil {
		return nil, err
	}

	post.Date = s.now()
	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}

	stored, err := s.posts.FindByID(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	s.publish(models.EventPostUpdated, stored)
	return stored, nil
}

func (s *PostService) Delete(ctx context.Context, id uint) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(models.EventPostDeleted, map[string]uint{"id": id})
	return nil
}

func (s *PostService) checkReferences(ctx context.Context, post *models.Post) error {
	themeOK, err := s.themes.Exists(ctx, post.ThemeID)
	if err != nil {
		return err
	}
	if !themeOK {
		return models.NewReferentialIntegrityError("Tema", post.ThemeID)
	}

	if post.UserID == 0 {
		return models.NewValidationError("Postagem requires an author")
	}
	userOK, err := s.users.Exists(ctx, post.UserID)
	if err != nil {
		return err
	}
	if !userOK {
		return models.NewReferentialIntegrityError("Usuario", post.UserID)
	}
	return nil
}

func (s *PostService) publish(event string, data interface{}) {
	if s.events != nil {
		s.events.BroadcastToAll(event, data)
	}
}
