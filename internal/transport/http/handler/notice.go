package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trekkit/internal/app"
	"trekkit/internal/transport/http/response"
)

type NoticeHandler struct {
	noticeService *app.NoticeService
}

type NoticeRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
}

func NewNoticeHandler(noticeService *app.NoticeService) *NoticeHandler {
	return &NoticeHandler{noticeService: noticeService}
}

func (h *NoticeHandler) List(c *gin.Context) {
	notices, total, err := h.noticeService.List(parsePageQuery(c))
	if err != nil {
		respondServiceError(c, err, "list notices failed")
		return
	}
	response.OK(c, gin.H{"notices": notices, "total": total})
}

func (h *NoticeHandler) Get(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid notice id")
		return
	}

	notice, err := h.noticeService.Get(id)
	if err != nil {
		respondServiceError(c, err, "fetch notice failed")
		return
	}
	response.OK(c, notice)
}

func (h *NoticeHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	var req NoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	notice, err := h.noticeService.Create(user, app.NoticeInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respondServiceError(c, err, "create notice failed")
		return
	}
	response.OK(c, notice)
}

func (h *NoticeHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	id, ok := parseUintParam(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid notice id")
		return
	}

	var req NoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	notice, err := h.noticeService.Update(user, id, app.NoticeInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respondServiceError(c, err, "update notice failed")
		return
	}
	response.OK(c, notice)
}

func (h *NoticeHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	id, ok := parseUintParam(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid notice id")
		return
	}

	if err := h.noticeService.Delete(user, id); err != nil {
		respondServiceError(c, err, "delete notice failed")
		return
	}
	response.OK(c, nil)
}
