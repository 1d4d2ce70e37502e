package api

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Mariha-B/nc-news/internal/apperror"
	"github.com/Mariha-B/nc-news/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// voteRequest is the PATCH body. A missing inc_votes leaves the article as is.
type voteRequest struct {
	IncVotes *int `json:"inc_votes"`
}

// ListArticles handles GET /api/articles
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	query, err := parseListQuery(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	articles, err := h.services.Article.List(c.Request.Context(),
		query.Get("topic"), query.Get("sort_by"), query.Get("order"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetArticle handles GET /api/articles/:article_id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := parseID(c, "article_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	article, err := h.services.Article.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// UpdateArticleVotes handles PATCH /api/articles/:article_id
func (h *ArticleHandler) UpdateArticleVotes(c *gin.Context) {
	id, err := parseID(c, "article_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.log.Debug().Err(err).Msg("Rejected vote body")
		_ = c.Error(apperror.BadRequest(msgBadRequest))
		return
	}

	delta := 0
	if req.IncVotes != nil {
		delta = *req.IncVotes
	}

	article, err := h.services.Article.UpdateVotes(c.Request.Context(), id, delta)
	if err != nil {
		_ = c.Error(err)
		return
	}
	recordVotes(delta)
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// parseID reads a numeric path parameter
func parseID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperror.BadRequest(msgBadRequest)
	}
	return id, nil
}

// parseListQuery parses the raw query string. net/url drops pairs containing
// a semicolon, so those are rejected here rather than silently ignored.
func parseListQuery(c *gin.Context) (url.Values, error) {
	raw := c.Request.URL.RawQuery
	query, err := url.ParseQuery(raw)
	if err == nil {
		return query, nil
	}

	for _, pair := range strings.Split(raw, "&") {
		if !strings.Contains(pair, ";") {
			continue
		}
		key, _, _ := strings.Cut(pair, "=")
		if k, kerr := url.QueryUnescape(key); kerr == nil {
			key = k
		}
		switch key {
		case "sort_by":
			return nil, apperror.BadRequest(msgInvalidSortBy)
		case "order":
			return nil, apperror.BadRequest(msgInvalidOrder)
		}
	}
	return nil, apperror.BadRequest(msgBadRequest)
}
