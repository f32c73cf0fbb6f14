package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"publisher-catalog/internal/catalog/model"
	"publisher-catalog/internal/shared/pagination"
)

func TestPublicationGetByIDBookVariant(t *testing.T) {
	env := newTestEnv()
	authorID := env.mustCreateAuthor(t, "Jules Verne")
	bookID := env.mustCreateBook(t, "Around the World", "9780140449136", authorID)

	resp, err := env.publications.GetByID(context.Background(), bookID)

	require.NoError(t, err)
	assert.Equal(t, model.TypeBook, resp.Type)
	require.NotNil(t, resp.ISBN)
	assert.Equal(t, "9780140449136", *resp.ISBN)
	require.NotNil(t, resp.Author)
	assert.Nil(t, resp.IssueNumber, "magazine fields stay empty on the book variant")
	assert.Nil(t, resp.Authors)
}

func TestPublicationGetByIDMagazineVariant(t *testing.T) {
	env := newTestEnv()
	authorID := env.mustCreateAuthor(t, "Jules Verne")
	magazineID := env.mustCreateMagazine(t, "Science Monthly", 7, authorID)

	resp, err := env.publications.GetByID(context.Background(), magazineID)

	require.NoError(t, err)
	assert.Equal(t, model.TypeMagazine, resp.Type)
	require.NotNil(t, resp.IssueNumber)
	assert.Equal(t, 7, *resp.IssueNumber)
	require.Len(t, resp.Authors, 1)
	assert.Nil(t, resp.ISBN)
	assert.Nil(t, resp.Author)
}

func TestPublicationGetByIDNotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.publications.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, model.ErrPublicationNotFound)
}

func TestPublicationListMixedTypes(t *testing.T) {
	env := newTestEnv()
	authorID := env.mustCreateAuthor(t, "Jules Verne")
	env.mustCreateBook(t, "Around the World", "9780140449136", authorID)
	env.mustCreateMagazine(t, "Science Monthly", 7, authorID)

	page, err := env.publications.List(context.Background(), pagination.Request{Size: 20, SortBy: "title"})

	require.NoError(t, err)
	require.Len(t, page.Content, 2)
	assert.Equal(t, model.TypeBook, page.Content[0].Type)
	assert.Equal(t, model.TypeMagazine, page.Content[1].Type)
}

func TestPublicationGroupedEmptyStore(t *testing.T) {
	env := newTestEnv()

	grouped, err := env.publications.GroupedByType(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, grouped.Books, "empty groups must serialize as [] not null")
	assert.NotNil(t, grouped.Magazines)
	assert.Empty(t, grouped.Books)
	assert.Empty(t, grouped.Magazines)
}

func TestPublicationGrouped(t *testing.T) {
	env := newTestEnv()
	authorID := env.mustCreateAuthor(t, "Jules Verne")
	env.mustCreateBook(t, "Around the World", "9780140449136", authorID)
	env.mustCreateMagazine(t, "Science Monthly", 7, authorID)

	grouped, err := env.publications.GroupedByType(context.Background())

	require.NoError(t, err)
	require.Len(t, grouped.Books, 1)
	require.Len(t, grouped.Magazines, 1)
	assert.Equal(t, "Around the World", grouped.Books[0].Title)
	assert.Equal(t, "Science Monthly", grouped.Magazines[0].Title)
}

func TestPublicationSearchByTitleCaseInsensitive(t *testing.T) {
	env := newTestEnv()
	authorID := env.mustCreateAuthor(t, "Jules Verne")
	env.mustCreateBook(t, "Around the World", "9780140449136", authorID)

	page, err := env.publications.SearchByTitle(context.Background(), "AROUND", pagination.Request{Size: 20, SortBy: "title"})

	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Around the World", page.Content[0].Title)
}

func TestPublicationDeleteEitherVariant(t *testing.T) {
	env := newTestEnv()
	authorID := env.mustCreateAuthor(t, "Jules Verne")
	bookID := env.mustCreateBook(t, "Around the World", "9780140449136", authorID)
	magazineID := env.mustCreateMagazine(t, "Science Monthly", 7, authorID)

	require.NoError(t, env.publications.Delete(context.Background(), bookID))
	require.NoError(t, env.publications.Delete(context.Background(), magazineID))

	err := env.publications.Delete(context.Background(), bookID)
	assert.ErrorIs(t, err, model.ErrPublicationNotFound)
}

func TestPublicationExistsByTitle(t *testing.T) {
	env := newTestEnv()
	authorID := env.mustCreateAuthor(t, "Jules Verne")
	env.mustCreateBook(t, "Around the World", "9780140449136", authorID)

	exists, err := env.publications.ExistsByTitle(context.Background(), "around the world")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = env.publications.ExistsByTitle(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, exists)
}
