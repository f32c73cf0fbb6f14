package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"publisher-catalog/internal/catalog/dto"
)

// testEnv wires every service over fakes sharing one store, mirroring
// the production dependency graph.
type testEnv struct {
	store        *memStore
	authors      AuthorService
	books        BookService
	magazines    MagazineService
	publications PublicationService
}

func newTestEnv() *testEnv {
	store := newMemStore()
	authorRepo := &fakeAuthorRepo{store: store}
	bookRepo := &fakeBookRepo{store: store}
	magazineRepo := &fakeMagazineRepo{store: store}
	publicationRepo := &fakePublicationRepo{store: store}

	return &testEnv{
		store:        store,
		authors:      NewAuthorService(authorRepo),
		books:        NewBookService(bookRepo, authorRepo),
		magazines:    NewMagazineService(magazineRepo, authorRepo),
		publications: NewPublicationService(publicationRepo),
	}
}

func testDate() dto.Date {
	return dto.NewDate(time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC))
}

func (env *testEnv) mustCreateAuthor(t *testing.T, name string) int64 {
	t.Helper()
	resp, err := env.authors.Create(context.Background(), dto.CreateAuthorRequest{Name: name})
	require.NoError(t, err)
	return resp.ID
}

func (env *testEnv) mustCreateBook(t *testing.T, title, isbn string, authorID int64) int64 {
	t.Helper()
	resp, err := env.books.Create(context.Background(), dto.CreateBookRequest{
		Title:           title,
		PublicationDate: testDate(),
		ISBN:            isbn,
		AuthorID:        authorID,
	})
	require.NoError(t, err)
	return resp.ID
}

func (env *testEnv) mustCreateMagazine(t *testing.T, title string, issue int, authorIDs ...int64) int64 {
	t.Helper()
	resp, err := env.magazines.Create(context.Background(), dto.CreateMagazineRequest{
		Title:           title,
		IssueNumber:     issue,
		PublicationDate: testDate(),
		AuthorIDs:       authorIDs,
	})
	require.NoError(t, err)
	return resp.ID
}
