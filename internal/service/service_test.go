package service_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mariha-B/nc-news/internal/apperror"
	"github.com/Mariha-B/nc-news/internal/mocks"
	"github.com/Mariha-B/nc-news/internal/models"
	"github.com/Mariha-B/nc-news/internal/service"
)

func newServices(t *testing.T) (*service.Services, *mocks.Store) {
	t.Helper()
	store, err := mocks.NewSeededStore()
	require.NoError(t, err)
	return service.NewServices(store.Repositories(), zerolog.New(io.Discard)), store
}

func TestArticleService_Get(t *testing.T) {
	svcs, _ := newServices(t)
	ctx := context.Background()

	article, err := svcs.Article.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Living in the shadow of a great man", article.Title)
	assert.Equal(t, "I find this existence challenging", article.Body)
	assert.Equal(t, 100, article.Votes)

	_, err = svcs.Article.Get(ctx, 9999)
	require.True(t, apperror.IsNotFound(err), "got %v", err)
	assert.Equal(t, "article does not exist", err.Error())
}

func TestArticleService_List(t *testing.T) {
	svcs, _ := newServices(t)
	ctx := context.Background()

	articles, err := svcs.Article.List(ctx, "", "", "")
	require.NoError(t, err)
	require.Len(t, articles, 13)
	// newest first by default
	assert.Equal(t, int64(3), articles[0].ArticleID)
	for i := 1; i < len(articles); i++ {
		assert.False(t, articles[i].CreatedAt.After(articles[i-1].CreatedAt), "articles out of order at %d", i)
	}

	counts := make(map[int64]int)
	for _, a := range articles {
		counts[a.ArticleID] = a.CommentCount
	}
	assert.Equal(t, 11, counts[1])
	assert.Equal(t, 2, counts[9])
	assert.Equal(t, 0, counts[2])
}

func TestArticleService_List_Topic(t *testing.T) {
	svcs, _ := newServices(t)
	ctx := context.Background()

	cats, err := svcs.Article.List(ctx, "cats", "", "")
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, int64(5), cats[0].ArticleID)

	paper, err := svcs.Article.List(ctx, "paper", "", "")
	require.NoError(t, err)
	assert.NotNil(t, paper)
	assert.Empty(t, paper)

	_, err = svcs.Article.List(ctx, "banana", "", "")
	require.True(t, apperror.IsNotFound(err), "got %v", err)
	assert.Equal(t, "topic does not exist", err.Error())
}

func TestArticleService_List_SortValidatedBeforeTopic(t *testing.T) {
	svcs, _ := newServices(t)

	_, err := svcs.Article.List(context.Background(), "banana", "title", "")
	require.True(t, apperror.IsBadRequest(err), "got %v", err)
	assert.Equal(t, "invalid sort_by query", err.Error())

	_, err = svcs.Article.List(context.Background(), "banana", "", "upwards")
	require.True(t, apperror.IsBadRequest(err), "got %v", err)
	assert.Equal(t, "invalid order query", err.Error())
}

func TestArticleService_List_Sorting(t *testing.T) {
	svcs, _ := newServices(t)
	ctx := context.Background()

	byVotes, err := svcs.Article.List(ctx, "", "votes", "desc")
	require.NoError(t, err)
	assert.Equal(t, int64(1), byVotes[0].ArticleID)

	byCount, err := svcs.Article.List(ctx, "", "comment_count", "ASC")
	require.NoError(t, err)
	assert.Equal(t, 0, byCount[0].CommentCount)
	assert.Equal(t, 11, byCount[len(byCount)-1].CommentCount)
}

func TestArticleService_UpdateVotes(t *testing.T) {
	svcs, _ := newServices(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		delta int
		want  int
	}{
		{"increment", 1, 101},
		{"decrement", -100, 1},
		{"zero returns current", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			article, err := svcs.Article.UpdateVotes(ctx, 1, tt.delta)
			require.NoError(t, err)
			assert.Equal(t, tt.want, article.Votes)
			assert.Equal(t, "I find this existence challenging", article.Body)
		})
	}

	_, err := svcs.Article.UpdateVotes(ctx, 9999, 1)
	assert.True(t, apperror.IsNotFound(err), "got %v", err)

	_, err = svcs.Article.UpdateVotes(ctx, 9999, 0)
	assert.True(t, apperror.IsNotFound(err), "got %v", err)
}

func TestCommentService_ListByArticle(t *testing.T) {
	svcs, _ := newServices(t)
	ctx := context.Background()

	comments, err := svcs.Comment.ListByArticle(ctx, 1, "", "")
	require.NoError(t, err)
	require.Len(t, comments, 11)
	assert.Equal(t, int64(5), comments[0].CommentID)
	for _, c := range comments {
		assert.Equal(t, int64(1), c.ArticleID)
	}

	byVotes, err := svcs.Comment.ListByArticle(ctx, 1, "votes", "asc")
	require.NoError(t, err)
	assert.Equal(t, -100, byVotes[0].Votes)

	empty, err := svcs.Comment.ListByArticle(ctx, 2, "", "")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = svcs.Comment.ListByArticle(ctx, 9999, "", "")
	require.True(t, apperror.IsNotFound(err), "got %v", err)
	assert.Equal(t, "article does not exist", err.Error())

	_, err = svcs.Comment.ListByArticle(ctx, 9999, "comment_count", "")
	assert.True(t, apperror.IsBadRequest(err), "got %v", err)
}

func TestCommentService_Create(t *testing.T) {
	svcs, store := newServices(t)
	ctx := context.Background()
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	store.Now = func() time.Time { return now }

	comment, err := svcs.Comment.Create(ctx, &models.NewComment{
		ArticleID: 2, Author: "lurker", Body: "First!",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(19), comment.CommentID)
	assert.Equal(t, int64(2), comment.ArticleID)
	assert.Equal(t, 0, comment.Votes)
	assert.Equal(t, now, comment.CreatedAt)

	comments, err := svcs.Comment.ListByArticle(ctx, 2, "", "")
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestCommentService_Create_Errors(t *testing.T) {
	svcs, _ := newServices(t)
	ctx := context.Background()

	_, err := svcs.Comment.Create(ctx, &models.NewComment{ArticleID: 1, Author: "lurker"})
	assert.True(t, apperror.IsBadRequest(err), "missing body: got %v", err)

	// foreign key violations come back as store errors for the HTTP layer to classify
	var pqErr *pq.Error

	_, err = svcs.Comment.Create(ctx, &models.NewComment{ArticleID: 9999, Author: "lurker", Body: "x"})
	require.True(t, errors.As(err, &pqErr), "got %v", err)
	assert.Equal(t, pq.ErrorCode("23503"), pqErr.Code)

	_, err = svcs.Comment.Create(ctx, &models.NewComment{ArticleID: 1, Author: "nobody", Body: "x"})
	require.True(t, errors.As(err, &pqErr), "got %v", err)
	assert.Equal(t, pq.ErrorCode("23503"), pqErr.Code)
}

func TestCommentService_Delete(t *testing.T) {
	svcs, store := newServices(t)
	ctx := context.Background()

	require.NoError(t, svcs.Comment.Delete(ctx, 1))
	assert.NotContains(t, store.Comments, int64(1))

	err := svcs.Comment.Delete(ctx, 1)
	require.True(t, apperror.IsNotFound(err), "got %v", err)
	assert.Equal(t, "comment does not exist", err.Error())
}

func TestTopicAndUserServices(t *testing.T) {
	svcs, _ := newServices(t)
	ctx := context.Background()

	topics, err := svcs.Topic.List(ctx)
	require.NoError(t, err)
	assert.Len(t, topics, 3)

	exists, err := svcs.Topic.Exists(ctx, "paper")
	require.NoError(t, err)
	assert.True(t, exists)

	users, err := svcs.User.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 4)
}

func TestServices_PropagateStoreFailure(t *testing.T) {
	svcs, store := newServices(t)
	boom := errors.New("connection refused")
	store.Err = boom

	_, err := svcs.Article.Get(context.Background(), 1)
	assert.ErrorIs(t, err, boom)

	_, err = svcs.Article.List(context.Background(), "mitch", "", "")
	assert.ErrorIs(t, err, boom)

	err = svcs.Comment.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
}
