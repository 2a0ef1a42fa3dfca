package repository

import (
	"context"
	"testing"

	"blogpessoal/models"
	"blogpessoal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixtures struct {
	users  UserRepository
	themes ThemeRepository
	posts  PostRepository
	author *models.User
	java   *models.Theme
	golang *models.Theme
}

func newFixtures(t *testing.T) *fixtures {
	t.Helper()
	db := testutil.NewDB(t)
	f := &fixtures{
		users:  NewUserRepository(db),
		themes: NewThemeRepository(db),
		posts:  NewPostRepository(db),
		author: &models.User{Name: "Paulo Antunes", Login: "paulo@email.com.br", Password: "hash"},
		java:   &models.Theme{Description: "Java e Spring"},
		golang: &models.Theme{Description: "Go e gin"},
	}
	ctx := context.Background()
	require.NoError(t, f.users.Create(ctx, f.author))
	require.NoError(t, f.themes.Create(ctx, f.java))
	require.NoError(t, f.themes.Create(ctx, f.golang))
	return f
}

func (f *fixtures) post(t *testing.T, title string, theme *models.Theme) *models.Post {
	t.Helper()
	p := &models.Post{Title: title, Text: "Texto longo o suficiente", ThemeID: theme.ID, UserID: f.author.ID}
	require.NoError(t, f.posts.Create(context.Background(), p))
	return p
}

func TestPostRepository_FindByIDLoadsReferences(t *testing.T) {
	f := newFixtures(t)
	p := f.post(t, "Primeira postagem", f.java)

	got, err := f.posts.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Theme)
	require.NotNil(t, got.User)
	assert.Equal(t, "Java e Spring", got.Theme.Description)
	assert.Equal(t, "paulo@email.com.br", got.User.Login)
	assert.False(t, got.Date.IsZero())

	_, err = f.posts.FindByID(context.Background(), 404)
	assert.True(t, models.IsNotFound(err))
}

func TestPostRepository_FindAllByTitle(t *testing.T) {
	f := newFixtures(t)
	f.post(t, "Aprendendo Go", f.golang)
	f.post(t, "Go com gorm", f.golang)
	f.post(t, "Spring Security", f.java)

	posts, err := f.posts.FindAllByTitle(context.Background(), "go")
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "Aprendendo Go", posts[0].Title)

	posts, err = f.posts.FindAllByTitle(context.Background(), "python")
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostRepository_SaveAndDelete(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()
	p := f.post(t, "Rascunho inicial", f.java)

	p.Title = "Versão final"
	p.ThemeID = f.golang.ID
	require.NoError(t, f.posts.Save(ctx, p))

	got, err := f.posts.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Versão final", got.Title)
	assert.Equal(t, f.golang.ID, got.ThemeID)

	require.NoError(t, f.posts.Delete(ctx, p.ID))
	assert.True(t, models.IsNotFound(f.posts.Delete(ctx, p.ID)))

	ok, err := f.posts.Exists(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestThemeRepository_SearchAndCascade(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()
	f.post(t, "Anotações de Java", f.java)
	kept := f.post(t, "Anotações de Go", f.golang)

	themes, err := f.themes.FindAllByDescription(ctx, "JAVA")
	require.NoError(t, err)
	require.Len(t, themes, 1)
	assert.Len(t, themes[0].Posts, 1)

	require.NoError(t, f.themes.Delete(ctx, f.java.ID))

	_, err = f.themes.FindByID(ctx, f.java.ID)
	assert.True(t, models.IsNotFound(err))

	posts, err := f.posts.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, kept.ID, posts[0].ID)

	assert.True(t, models.IsNotFound(f.themes.Delete(ctx, f.java.ID)))
}

func TestThemeRepository_Save(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()

	require.NoError(t, f.themes.Save(ctx, &models.Theme{ID: f.java.ID, Description: "Java 21"}))

	got, err := f.themes.FindByID(ctx, f.java.ID)
	require.NoError(t, err)
	assert.Equal(t, "Java 21", got.Description)

	all, err := f.themes.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
