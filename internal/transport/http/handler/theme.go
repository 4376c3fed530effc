package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trekkit/internal/app"
	"trekkit/internal/transport/http/response"
)

type ThemeHandler struct {
	themeService *app.ThemeService
}

func NewThemeHandler(themeService *app.ThemeService) *ThemeHandler {
	return &ThemeHandler{themeService: themeService}
}

func (h *ThemeHandler) List(c *gin.Context) {
	themes, err := h.themeService.List()
	if err != nil {
		respondServiceError(c, err, "list themes failed")
		return
	}
	response.OK(c, themes)
}

func (h *ThemeHandler) Get(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid theme id")
		return
	}

	theme, err := h.themeService.Get(id)
	if err != nil {
		respondServiceError(c, err, "fetch theme failed")
		return
	}
	response.OK(c, theme)
}
