package api

import (
	"net/http"

	"github.com/Mariha-B/nc-news/internal/apperror"
	"github.com/Mariha-B/nc-news/internal/models"
	"github.com/Mariha-B/nc-news/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// ListComments handles GET /api/articles/:article_id/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	articleID, err := parseID(c, "article_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	query, err := parseListQuery(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	comments, err := h.services.Comment.ListByArticle(c.Request.Context(), articleID,
		query.Get("sort_by"), query.Get("order"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment handles POST /api/articles/:article_id/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	articleID, err := parseID(c, "article_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req models.NewComment
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("Rejected comment body")
		_ = c.Error(apperror.BadRequest(msgBadRequest))
		return
	}
	req.ArticleID = articleID

	comment, err := h.services.Comment.Create(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	commentsCreatedTotal.Inc()
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// DeleteComment handles DELETE /api/comments/:comment_id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := parseID(c, "comment_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.services.Comment.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	commentsDeletedTotal.Inc()
	c.Status(http.StatusNoContent)
}
