package service

import (
	"context"
	"sort"
	"strings"

	"publisher-catalog/internal/catalog/model"
	"publisher-catalog/internal/shared/pagination"
)

// memStore mimics the unified publications table so the fake repositories
// share state the way the real ones share the database.
type memStore struct {
	authorSeq int64
	pubSeq    int64

	authors    map[int64]model.Author
	books      map[int64]model.Book
	magazines  map[int64]model.Magazine
	magAuthors map[int64][]int64
}

func newMemStore() *memStore {
	return &memStore{
		authors:    make(map[int64]model.Author),
		books:      make(map[int64]model.Book),
		magazines:  make(map[int64]model.Magazine),
		magAuthors: make(map[int64][]int64),
	}
}

func (s *memStore) authorRef(id int64) *model.Author {
	a, ok := s.authors[id]
	if !ok {
		return nil
	}
	a.Books, a.Magazines = nil, nil
	return &a
}

func (s *memStore) bookWithAuthor(id int64) model.Book {
	b := s.books[id]
	if b.Author != nil {
		b.Author = s.authorRef(b.Author.ID)
	}
	return b
}

func (s *memStore) magazineWithAuthors(id int64) model.Magazine {
	m := s.magazines[id]
	m.Authors = []model.Author{}
	for _, aid := range s.magAuthors[id] {
		if a, ok := s.authors[aid]; ok {
			a.Books, a.Magazines = nil, nil
			m.Authors = append(m.Authors, a)
		}
	}
	sort.Slice(m.Authors, func(i, j int) bool { return m.Authors[i].Name < m.Authors[j].Name })
	return m
}

// titleTaken mirrors the store-wide unique title constraint spanning both
// publication variants.
func (s *memStore) titleTaken(title string, excludeID int64) bool {
	for id, b := range s.books {
		if id != excludeID && b.Title == title {
			return true
		}
	}
	for id, m := range s.magazines {
		if id != excludeID && m.Title == title {
			return true
		}
	}
	return false
}

func pageSlice[T any](items []T, req pagination.Request) []T {
	start := req.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + req.Size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

type fakeAuthorRepo struct {
	store *memStore
}

func (r *fakeAuthorRepo) Create(_ context.Context, author *model.Author) (*model.Author, error) {
	for _, a := range r.store.authors {
		if strings.EqualFold(a.Name, author.Name) {
			return nil, model.ErrDuplicateAuthorName
		}
	}

	r.store.authorSeq++
	stored := *author
	stored.ID = r.store.authorSeq
	stored.Books, stored.Magazines = nil, nil
	r.store.authors[stored.ID] = stored

	created := stored
	created.Books = []model.Book{}
	created.Magazines = []model.Magazine{}
	return &created, nil
}

func (r *fakeAuthorRepo) GetByID(_ context.Context, id int64) (*model.Author, error) {
	a, ok := r.store.authors[id]
	if !ok {
		return nil, model.ErrAuthorNotFound
	}

	a.Books = []model.Book{}
	for bid, b := range r.store.books {
		if b.Author != nil && b.Author.ID == id {
			a.Books = append(a.Books, r.store.bookWithAuthor(bid))
		}
	}
	sort.Slice(a.Books, func(i, j int) bool { return a.Books[i].Title < a.Books[j].Title })

	a.Magazines = []model.Magazine{}
	for mid, aids := range r.store.magAuthors {
		for _, aid := range aids {
			if aid == id {
				a.Magazines = append(a.Magazines, r.store.magazineWithAuthors(mid))
				break
			}
		}
	}
	sort.Slice(a.Magazines, func(i, j int) bool { return a.Magazines[i].Title < a.Magazines[j].Title })

	return &a, nil
}

func (r *fakeAuthorRepo) GetManyByIDs(_ context.Context, ids []int64) ([]model.Author, error) {
	found := make([]model.Author, 0, len(ids))
	for _, id := range ids {
		if a, ok := r.store.authors[id]; ok {
			found = append(found, a)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Name < found[j].Name })
	return found, nil
}

func (r *fakeAuthorRepo) List(ctx context.Context, req pagination.Request) ([]model.Author, int64, error) {
	all := make([]model.Author, 0, len(r.store.authors))
	for id := range r.store.authors {
		a, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, 0, err
		}
		all = append(all, *a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	return pageSlice(all, req), int64(len(all)), nil
}

func (r *fakeAuthorRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.authors[id]; !ok {
		return model.ErrAuthorNotFound
	}

	for mid, aids := range r.store.magAuthors {
		kept := make([]int64, 0, len(aids))
		for _, aid := range aids {
			if aid != id {
				kept = append(kept, aid)
			}
		}
		r.store.magAuthors[mid] = kept
	}

	for bid, b := range r.store.books {
		if b.Author != nil && b.Author.ID == id {
			delete(r.store.books, bid)
		}
	}

	delete(r.store.authors, id)
	return nil
}

func (r *fakeAuthorRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.store.authors[id]
	return ok, nil
}

func (r *fakeAuthorRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, a := range r.store.authors {
		if strings.EqualFold(a.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

type fakeBookRepo struct {
	store *memStore
}

func (r *fakeBookRepo) Create(_ context.Context, book *model.Book) (*model.Book, error) {
	if r.store.titleTaken(book.Title, 0) {
		return nil, model.ErrDuplicateTitle
	}
	if book.ISBN != nil {
		for _, b := range r.store.books {
			if b.ISBN != nil && *b.ISBN == *book.ISBN {
				return nil, model.ErrDuplicateISBN
			}
		}
	}
	if book.Author != nil {
		if _, ok := r.store.authors[book.Author.ID]; !ok {
			return nil, model.ErrAuthorNotFound
		}
	}

	r.store.pubSeq++
	stored := *book
	stored.ID = r.store.pubSeq
	r.store.books[stored.ID] = stored

	result := r.store.bookWithAuthor(stored.ID)
	return &result, nil
}

func (r *fakeBookRepo) GetByID(_ context.Context, id int64) (*model.Book, error) {
	if _, ok := r.store.books[id]; !ok {
		return nil, model.ErrBookNotFound
	}
	b := r.store.bookWithAuthor(id)
	return &b, nil
}

func (r *fakeBookRepo) GetByISBN(_ context.Context, isbn string) (*model.Book, error) {
	for id, b := range r.store.books {
		if b.ISBN != nil && *b.ISBN == isbn {
			found := r.store.bookWithAuthor(id)
			return &found, nil
		}
	}
	return nil, model.ErrBookNotFound
}

func (r *fakeBookRepo) List(_ context.Context, req pagination.Request) ([]model.Book, int64, error) {
	all := make([]model.Book, 0, len(r.store.books))
	for id := range r.store.books {
		all = append(all, r.store.bookWithAuthor(id))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Title < all[j].Title })

	return pageSlice(all, req), int64(len(all)), nil
}

func (r *fakeBookRepo) ListByAuthor(_ context.Context, authorID int64, req pagination.Request) ([]model.Book, int64, error) {
	matched := make([]model.Book, 0)
	for id, b := range r.store.books {
		if b.Author != nil && b.Author.ID == authorID {
			matched = append(matched, r.store.bookWithAuthor(id))
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Title < matched[j].Title })

	return pageSlice(matched, req), int64(len(matched)), nil
}

func (r *fakeBookRepo) Update(_ context.Context, book *model.Book) (*model.Book, error) {
	if _, ok := r.store.books[book.ID]; !ok {
		return nil, model.ErrBookNotFound
	}
	if r.store.titleTaken(book.Title, book.ID) {
		return nil, model.ErrDuplicateTitle
	}
	if book.ISBN != nil {
		for id, b := range r.store.books {
			if id != book.ID && b.ISBN != nil && *b.ISBN == *book.ISBN {
				return nil, model.ErrDuplicateISBN
			}
		}
	}

	r.store.books[book.ID] = *book

	updated := r.store.bookWithAuthor(book.ID)
	return &updated, nil
}

func (r *fakeBookRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.books[id]; !ok {
		return model.ErrBookNotFound
	}
	delete(r.store.books, id)
	return nil
}

func (r *fakeBookRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.store.books[id]
	return ok, nil
}

func (r *fakeBookRepo) ExistsByISBN(_ context.Context, isbn string, excludeID *int64) (bool, error) {
	for id, b := range r.store.books {
		if excludeID != nil && id == *excludeID {
			continue
		}
		if b.ISBN != nil && *b.ISBN == isbn {
			return true, nil
		}
	}
	return false, nil
}

type fakeMagazineRepo struct {
	store *memStore
}

func (r *fakeMagazineRepo) Create(_ context.Context, magazine *model.Magazine, authorIDs []int64) (*model.Magazine, error) {
	if r.store.titleTaken(magazine.Title, 0) {
		return nil, model.ErrDuplicateTitle
	}
	for _, id := range authorIDs {
		if _, ok := r.store.authors[id]; !ok {
			return nil, model.ErrAuthorsNotFound
		}
	}

	r.store.pubSeq++
	stored := *magazine
	stored.ID = r.store.pubSeq
	stored.Authors = nil
	r.store.magazines[stored.ID] = stored
	r.store.magAuthors[stored.ID] = append([]int64(nil), authorIDs...)

	result := r.store.magazineWithAuthors(stored.ID)
	return &result, nil
}

func (r *fakeMagazineRepo) GetByID(_ context.Context, id int64) (*model.Magazine, error) {
	if _, ok := r.store.magazines[id]; !ok {
		return nil, model.ErrMagazineNotFound
	}
	m := r.store.magazineWithAuthors(id)
	return &m, nil
}

func (r *fakeMagazineRepo) List(_ context.Context, req pagination.Request) ([]model.Magazine, int64, error) {
	all := make([]model.Magazine, 0, len(r.store.magazines))
	for id := range r.store.magazines {
		all = append(all, r.store.magazineWithAuthors(id))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Title < all[j].Title })

	return pageSlice(all, req), int64(len(all)), nil
}

func (r *fakeMagazineRepo) Update(_ context.Context, magazine *model.Magazine, authorIDs []int64) (*model.Magazine, error) {
	if _, ok := r.store.magazines[magazine.ID]; !ok {
		return nil, model.ErrMagazineNotFound
	}
	if r.store.titleTaken(magazine.Title, magazine.ID) {
		return nil, model.ErrDuplicateTitle
	}
	for _, id := range authorIDs {
		if _, ok := r.store.authors[id]; !ok {
			return nil, model.ErrAuthorsNotFound
		}
	}

	stored := *magazine
	stored.Authors = nil
	r.store.magazines[stored.ID] = stored
	r.store.magAuthors[stored.ID] = append([]int64(nil), authorIDs...)

	updated := r.store.magazineWithAuthors(stored.ID)
	return &updated, nil
}

func (r *fakeMagazineRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.magazines[id]; !ok {
		return model.ErrMagazineNotFound
	}
	delete(r.store.magazines, id)
	delete(r.store.magAuthors, id)
	return nil
}

func (r *fakeMagazineRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.store.magazines[id]
	return ok, nil
}

type fakePublicationRepo struct {
	store *memStore
}

func (r *fakePublicationRepo) publication(id int64) (model.Publication, bool) {
	if b, ok := r.store.books[id]; ok {
		book := r.store.bookWithAuthor(id)
		return model.Publication{
			ID:              id,
			Type:            model.TypeBook,
			Title:           b.Title,
			PublicationDate: b.PublicationDate,
			Book:            &book,
		}, true
	}
	if m, ok := r.store.magazines[id]; ok {
		magazine := r.store.magazineWithAuthors(id)
		return model.Publication{
			ID:              id,
			Type:            model.TypeMagazine,
			Title:           m.Title,
			PublicationDate: m.PublicationDate,
			Magazine:        &magazine,
		}, true
	}
	return model.Publication{}, false
}

func (r *fakePublicationRepo) all() []model.Publication {
	publications := make([]model.Publication, 0)
	for id := range r.store.books {
		p, _ := r.publication(id)
		publications = append(publications, p)
	}
	for id := range r.store.magazines {
		p, _ := r.publication(id)
		publications = append(publications, p)
	}
	sort.Slice(publications, func(i, j int) bool { return publications[i].Title < publications[j].Title })
	return publications
}

func (r *fakePublicationRepo) GetByID(_ context.Context, id int64) (*model.Publication, error) {
	p, ok := r.publication(id)
	if !ok {
		return nil, model.ErrPublicationNotFound
	}
	return &p, nil
}

func (r *fakePublicationRepo) List(_ context.Context, req pagination.Request) ([]model.Publication, int64, error) {
	all := r.all()
	return pageSlice(all, req), int64(len(all)), nil
}

func (r *fakePublicationRepo) SearchByTitle(_ context.Context, title string, req pagination.Request) ([]model.Publication, int64, error) {
	matched := make([]model.Publication, 0)
	for _, p := range r.all() {
		if strings.Contains(strings.ToLower(p.Title), strings.ToLower(title)) {
			matched = append(matched, p)
		}
	}
	return pageSlice(matched, req), int64(len(matched)), nil
}

func (r *fakePublicationRepo) ListByType(_ context.Context, t model.PublicationType) ([]model.Publication, error) {
	matched := make([]model.Publication, 0)
	for _, p := range r.all() {
		if p.Type == t {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (r *fakePublicationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.books[id]; ok {
		delete(r.store.books, id)
		return nil
	}
	if _, ok := r.store.magazines[id]; ok {
		delete(r.store.magazines, id)
		delete(r.store.magAuthors, id)
		return nil
	}
	return model.ErrPublicationNotFound
}

func (r *fakePublicationRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.publication(id)
	return ok, nil
}

func (r *fakePublicationRepo) ExistsByTitle(_ context.Context, title string) (bool, error) {
	for _, p := range r.all() {
		if strings.EqualFold(p.Title, title) {
			return true, nil
		}
	}
	return false, nil
}
