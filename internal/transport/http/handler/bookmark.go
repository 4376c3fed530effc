package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trekkit/internal/app"
	"trekkit/internal/transport/http/response"
)

type BookmarkHandler struct {
	bookmarkService *app.BookmarkService
}

type BookmarkRequest struct {
	MountainID uint `json:"mountain_id" binding:"required,gt=0"`
}

func NewBookmarkHandler(bookmarkService *app.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarkService: bookmarkService}
}

func (h *BookmarkHandler) Add(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	var req BookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	if err := h.bookmarkService.Add(user.ID, req.MountainID); err != nil {
		respondServiceError(c, err, "add bookmark failed")
		return
	}
	response.OK(c, nil)
}

func (h *BookmarkHandler) Remove(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	id, ok := parseUintParam(c, "mountainId")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid mountain id")
		return
	}

	if err := h.bookmarkService.Remove(user.ID, id); err != nil {
		respondServiceError(c, err, "remove bookmark failed")
		return
	}
	response.OK(c, nil)
}

func (h *BookmarkHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	mountains, err := h.bookmarkService.List(user.ID)
	if err != nil {
		respondServiceError(c, err, "list bookmarks failed")
		return
	}
	response.OK(c, mountains)
}

func (h *BookmarkHandler) Check(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	id, ok := parseUintQuery(c, "mountain")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid mountain id")
		return
	}

	bookmarked, err := h.bookmarkService.IsBookmarked(user.ID, id)
	if err != nil {
		respondServiceError(c, err, "check bookmark failed")
		return
	}
	response.OK(c, gin.H{"bookmarked": bookmarked})
}
