package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trekkit/internal/app"
	"trekkit/internal/transport/http/response"
)

type CommentHandler struct {
	commentService *app.CommentService
}

type CreateCommentRequest struct {
	PostID  uint   `json:"post_id" binding:"required,gt=0"`
	Content string `json:"content" binding:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func NewCommentHandler(commentService *app.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) ListByPost(c *gin.Context) {
	postID, ok := parseUintQuery(c, "post")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid post id")
		return
	}

	comments, err := h.commentService.ListByPost(postID)
	if err != nil {
		respondServiceError(c, err, "list comments failed")
		return
	}
	response.OK(c, comments)
}

func (h *CommentHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	comment, err := h.commentService.Create(user, req.PostID, req.Content)
	if err != nil {
		respondServiceError(c, err, "create comment failed")
		return
	}
	response.OK(c, comment)
}

func (h *CommentHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	id, ok := parseUintParam(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid comment id")
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	comment, err := h.commentService.Update(user, id, req.Content)
	if err != nil {
		respondServiceError(c, err, "update comment failed")
		return
	}
	response.OK(c, comment)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	id, ok := parseUintParam(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid comment id")
		return
	}

	if err := h.commentService.Delete(user, id); err != nil {
		respondServiceError(c, err, "delete comment failed")
		return
	}
	response.OK(c, nil)
}
