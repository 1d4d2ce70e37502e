package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Mariha-B/nc-news/internal/apperror"
	"github.com/Mariha-B/nc-news/internal/database"
	"github.com/Mariha-B/nc-news/internal/models"
	"github.com/Mariha-B/nc-news/internal/repository"
	"github.com/lib/pq"
)

// Verify interface compliance
var (
	_ repository.TopicRepository   = (*MockTopicRepository)(nil)
	_ repository.UserRepository    = (*MockUserRepository)(nil)
	_ repository.ArticleRepository = (*MockArticleRepository)(nil)
	_ repository.CommentRepository = (*MockCommentRepository)(nil)
)

// Store is an in-memory stand-in for the nc_news schema. Foreign keys are
// enforced the way PostgreSQL does, by returning a *pq.Error with code 23503.
type Store struct {
	mu            sync.Mutex
	Topics        map[string]*models.Topic
	Users         map[string]*models.User
	Articles      map[int64]*models.Article
	Comments      map[int64]*models.Comment
	nextArticleID int64
	nextCommentID int64

	// Err, when set, is returned by every repository call
	Err error
	// Now stamps newly created comments
	Now func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		Topics:        make(map[string]*models.Topic),
		Users:         make(map[string]*models.User),
		Articles:      make(map[int64]*models.Article),
		Comments:      make(map[int64]*models.Comment),
		nextArticleID: 1,
		nextCommentID: 1,
		Now:           time.Now,
	}
}

// NewSeededStore creates a store holding the bundled development dataset
func NewSeededStore() (*Store, error) {
	data, err := database.DevelopmentSeed()
	if err != nil {
		return nil, err
	}
	s := NewStore()
	s.Load(data)
	return s, nil
}

// Load replaces the store contents. Ids are assigned in slice order starting at
// 1, matching a freshly truncated database.
func (s *Store) Load(data *database.SeedData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Topics = make(map[string]*models.Topic)
	s.Users = make(map[string]*models.User)
	s.Articles = make(map[int64]*models.Article)
	s.Comments = make(map[int64]*models.Comment)
	s.nextArticleID, s.nextCommentID = 1, 1

	for i := range data.Topics {
		t := data.Topics[i]
		s.Topics[t.Slug] = &t
	}
	for i := range data.Users {
		u := data.Users[i]
		s.Users[u.Username] = &u
	}
	for i := range data.Articles {
		a := data.Articles[i]
		a.ArticleID = s.nextArticleID
		s.nextArticleID++
		s.Articles[a.ArticleID] = &a
	}
	for i := range data.Comments {
		c := data.Comments[i]
		c.CommentID = s.nextCommentID
		s.nextCommentID++
		s.Comments[c.CommentID] = &c
	}
}

// Repositories exposes the store through the repository interfaces
func (s *Store) Repositories() *repository.Repositories {
	return &repository.Repositories{
		Topic:   &MockTopicRepository{store: s},
		User:    &MockUserRepository{store: s},
		Article: &MockArticleRepository{store: s},
		Comment: &MockCommentRepository{store: s},
	}
}

func foreignKeyViolation(constraint string) error {
	return &pq.Error{Code: "23503", Constraint: constraint, Message: "violates foreign key constraint"}
}

// lessBy compares two rows on a greenlisted column. Ties keep id order so
// results are deterministic.
func lessBy(s models.Sort, aTime, bTime time.Time, aVotes, bVotes, aCount, bCount int, aID, bID int64) bool {
	var cmp int
	switch s.Column {
	case "votes":
		cmp = aVotes - bVotes
	case "comment_count":
		cmp = aCount - bCount
	default:
		switch {
		case aTime.Before(bTime):
			cmp = -1
		case aTime.After(bTime):
			cmp = 1
		}
	}
	if cmp == 0 {
		return aID < bID
	}
	if s.Direction == models.Ascending {
		return cmp < 0
	}
	return cmp > 0
}

func checkSort(s models.Sort, sortable func(string) bool) error {
	if s.Column != "" && !sortable(s.Column) {
		return apperror.BadRequest("invalid sort_by query")
	}
	if s.Direction != "" && s.Direction != models.Ascending && s.Direction != models.Descending {
		return apperror.BadRequest("invalid order query")
	}
	return nil
}

// MockTopicRepository is a mock implementation of TopicRepository
type MockTopicRepository struct {
	store *Store
}

func (m *MockTopicRepository) List(ctx context.Context) ([]*models.Topic, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if m.store.Err != nil {
		return nil, m.store.Err
	}

	topics := make([]*models.Topic, 0, len(m.store.Topics))
	for _, t := range m.store.Topics {
		cp := *t
		topics = append(topics, &cp)
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].Slug < topics[j].Slug })
	return topics, nil
}

func (m *MockTopicRepository) Exists(ctx context.Context, slug string) (bool, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if m.store.Err != nil {
		return false, m.store.Err
	}
	_, ok := m.store.Topics[slug]
	return ok, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	store *Store
}

func (m *MockUserRepository) List(ctx context.Context) ([]*models.User, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if m.store.Err != nil {
		return nil, m.store.Err
	}

	users := make([]*models.User, 0, len(m.store.Users))
	for _, u := range m.store.Users {
		cp := *u
		users = append(users, &cp)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	store *Store
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if m.store.Err != nil {
		return nil, m.store.Err
	}

	a, ok := m.store.Articles[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (m *MockArticleRepository) List(ctx context.Context, filter models.ArticleFilter) ([]*models.ArticleSummary, error) {
	if err := checkSort(filter.Sort, repository.ArticleSortable); err != nil {
		return nil, err
	}

	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if m.store.Err != nil {
		return nil, m.store.Err
	}

	counts := make(map[int64]int)
	for _, c := range m.store.Comments {
		counts[c.ArticleID]++
	}

	articles := make([]*models.ArticleSummary, 0)
	for _, a := range m.store.Articles {
		if filter.Topic != "" && a.Topic != filter.Topic {
			continue
		}
		articles = append(articles, &models.ArticleSummary{
			ArticleID:     a.ArticleID,
			Author:        a.Author,
			Title:         a.Title,
			Topic:         a.Topic,
			CreatedAt:     a.CreatedAt,
			Votes:         a.Votes,
			ArticleImgURL: a.ArticleImgURL,
			CommentCount:  counts[a.ArticleID],
		})
	}

	sort.Slice(articles, func(i, j int) bool {
		a, b := articles[i], articles[j]
		return lessBy(filter.Sort, a.CreatedAt, b.CreatedAt, a.Votes, b.Votes,
			a.CommentCount, b.CommentCount, a.ArticleID, b.ArticleID)
	})
	return articles, nil
}

func (m *MockArticleRepository) IncrementVotes(ctx context.Context, id int64, delta int) (*models.Article, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if m.store.Err != nil {
		return nil, m.store.Err
	}

	a, ok := m.store.Articles[id]
	if !ok {
		return nil, nil
	}
	a.Votes += delta
	cp := *a
	return &cp, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	store *Store
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID int64, s models.Sort) ([]*models.Comment, error) {
	if err := checkSort(s, repository.CommentSortable); err != nil {
		return nil, err
	}

	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if m.store.Err != nil {
		return nil, m.store.Err
	}

	comments := make([]*models.Comment, 0)
	for _, c := range m.store.Comments {
		if c.ArticleID == articleID {
			cp := *c
			comments = append(comments, &cp)
		}
	}

	sort.Slice(comments, func(i, j int) bool {
		a, b := comments[i], comments[j]
		return lessBy(s, a.CreatedAt, b.CreatedAt, a.Votes, b.Votes, 0, 0, a.CommentID, b.CommentID)
	})
	return comments, nil
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.NewComment) (*models.Comment, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if m.store.Err != nil {
		return nil, m.store.Err
	}

	if _, ok := m.store.Articles[comment.ArticleID]; !ok {
		return nil, foreignKeyViolation("comments_article_id_fkey")
	}
	if _, ok := m.store.Users[comment.Author]; !ok {
		return nil, foreignKeyViolation("comments_author_fkey")
	}

	c := &models.Comment{
		CommentID: m.store.nextCommentID,
		ArticleID: comment.ArticleID,
		Author:    comment.Author,
		Body:      comment.Body,
		CreatedAt: m.store.Now(),
	}
	m.store.nextCommentID++
	m.store.Comments[c.CommentID] = c

	cp := *c
	return &cp, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if m.store.Err != nil {
		return false, m.store.Err
	}

	if _, ok := m.store.Comments[id]; !ok {
		return false, nil
	}
	delete(m.store.Comments, id)
	return true, nil
}
