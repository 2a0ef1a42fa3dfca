package services

import (
	"context"
	"sync"

	"blogpessoal/models"
	"blogpessoal/utils"

	"golang.org/x/crypto/bcrypt"
)

type userRepoStub struct {
	findByIDFn      func(ctx context.Context, id uint) (*models.User, error)
	findByLoginFn   func(ctx context.Context, login string) (*models.User, error)
	findAllFn       func(ctx context.Context) ([]models.User, error)
	findAllByNameFn func(ctx context.Context, name string) ([]models.User, error)
	createFn        func(ctx context.Context, user *models.User) error
	saveFn          func(ctx context.Context, user *models.User) error
	deleteFn        func(ctx context.Context, id uint) error
	existsFn        func(ctx context.Context, id uint) (bool, error)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		findByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("Usuario", id)
		},
		findByLoginFn:   func(context.Context, string) (*models.User, error) { return nil, nil },
		findAllFn:       func(context.Context) ([]models.User, error) { return []models.User{}, nil },
		findAllByNameFn: func(context.Context, string) ([]models.User, error) { return []models.User{}, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		saveFn:          func(context.Context, *models.User) error { return nil },
		deleteFn:        func(context.Context, uint) error { return nil },
		existsFn:        func(context.Context, uint) (bool, error) { return false, nil },
	}
}

func (s *userRepoStub) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return s.findByIDFn(ctx, id)
}

func (s *userRepoStub) FindByLogin(ctx context.Context, login string) (*models.User, error) {
	return s.findByLoginFn(ctx, login)
}

func (s *userRepoStub) FindAll(ctx context.Context) ([]models.User, error) {
	return s.findAllFn(ctx)
}

func (s *userRepoStub) FindAllByName(ctx context.Context, name string) ([]models.User, error) {
	return s.findAllByNameFn(ctx, name)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func (s *userRepoStub) Save(ctx context.Context, user *models.User) error {
	return s.saveFn(ctx, user)
}

func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func (s *userRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}

// memoryUsers is a tiny in-memory user store for flows that span several calls.
type memoryUsers struct {
	*userRepoStub
	mu     sync.Mutex
	nextID uint
	byID   map[uint]models.User
}

func newMemoryUsers() *memoryUsers {
	m := &memoryUsers{userRepoStub: noopUserRepo(), byID: map[uint]models.User{}}
	m.findByLoginFn = func(_ context.Context, login string) (*models.User, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		for _, u := range m.byID {
			if u.Login == login {
				found := u
				return &found, nil
			}
		}
		return nil, nil
	}
	m.findByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		u, ok := m.byID[id]
		if !ok {
			return nil, models.NewNotFoundError("Usuario", id)
		}
		return &u, nil
	}
	m.createFn = func(_ context.Context, user *models.User) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.nextID++
		user.ID = m.nextID
		m.byID[user.ID] = *user
		return nil
	}
	m.saveFn = func(_ context.Context, user *models.User) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.byID[user.ID] = *user
		return nil
	}
	m.existsFn = func(_ context.Context, id uint) (bool, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		_, ok := m.byID[id]
		return ok, nil
	}
	return m
}

type themeRepoStub struct {
	existing map[uint]bool
	err      error
}

func (s *themeRepoStub) FindByID(_ context.Context, id uint) (*models.Theme, error) {
	if !s.existing[id] {
		return nil, models.NewNotFoundError("Tema", id)
	}
	return &models.Theme{ID: id}, nil
}
func (s *themeRepoStub) FindAll(context.Context) ([]models.Theme, error) { return nil, s.err }
func (s *themeRepoStub) FindAllByDescription(context.Context, string) ([]models.Theme, error) {
	return nil, s.err
}
func (s *themeRepoStub) Create(context.Context, *models.Theme) error { return s.err }
func (s *themeRepoStub) Save(context.Context, *models.Theme) error   { return s.err }
func (s *themeRepoStub) Delete(_ context.Context, id uint) error {
	if !s.existing[id] {
		return models.NewNotFoundError("Tema", id)
	}
	return nil
}
func (s *themeRepoStub) Exists(_ context.Context, id uint) (bool, error) {
	return s.existing[id], s.err
}

type postRepoStub struct {
	posts   map[uint]models.Post
	nextID  uint
	saved   []models.Post
	deleted []uint
}

func newPostRepoStub() *postRepoStub {
	return &postRepoStub{posts: map[uint]models.Post{}}
}

func (s *postRepoStub) FindByID(_ context.Context, id uint) (*models.Post, error) {
	p, ok := s.posts[id]
	if !ok {
		return nil, models.NewNotFoundError("Postagem", id)
	}
	return &p, nil
}
func (s *postRepoStub) FindAll(context.Context) ([]models.Post, error) { return nil, nil }
func (s *postRepoStub) FindAllByTitle(context.Context, string) ([]models.Post, error) {
	return nil, nil
}
func (s *postRepoStub) Create(_ context.Context, post *models.Post) error {
	s.nextID++
	post.ID = s.nextID
	s.posts[post.ID] = *post
	return nil
}
func (s *postRepoStub) Save(_ context.Context, post *models.Post) error {
	s.posts[post.ID] = *post
	s.saved = append(s.saved, *post)
	return nil
}
func (s *postRepoStub) Delete(_ context.Context, id uint) error {
	if _, ok := s.posts[id]; !ok {
		return models.NewNotFoundError("Postagem", id)
	}
	delete(s.posts, id)
	s.deleted = append(s.deleted, id)
	return nil
}
func (s *postRepoStub) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := s.posts[id]
	return ok, nil
}

type recordedEvent struct {
	Type string
	Data interface{}
}

type broadcasterStub struct {
	events []recordedEvent
}

func (b *broadcasterStub) BroadcastToAll(messageType string, data interface{}) {
	b.events = append(b.events, recordedEvent{Type: messageType, Data: data})
}

func fastHasher() utils.PasswordHasher {
	return utils.NewBcryptHasherWithCost(bcrypt.MinCost)
}
