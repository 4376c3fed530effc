package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trekkit/internal/app"
	"trekkit/internal/transport/http/response"
)

type MountainHandler struct {
	mountainService *app.MountainService
}

func NewMountainHandler(mountainService *app.MountainService) *MountainHandler {
	return &MountainHandler{mountainService: mountainService}
}

func (h *MountainHandler) List(c *gin.Context) {
	mountains, err := h.mountainService.List(c.Request.Context(), c.Query("name"), parsePageQuery(c))
	if err != nil {
		respondServiceError(c, err, "list mountains failed")
		return
	}
	response.OK(c, mountains)
}

func (h *MountainHandler) Get(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid mountain id")
		return
	}

	mountain, err := h.mountainService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "fetch mountain failed")
		return
	}
	response.OK(c, mountain)
}

func (h *MountainHandler) ListCourses(c *gin.Context) {
	id, ok := parseUintQuery(c, "mountain")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid mountain id")
		return
	}

	courses, err := h.mountainService.ListCourses(id)
	if err != nil {
		respondServiceError(c, err, "list mountain courses failed")
		return
	}
	response.OK(c, courses)
}

func (h *MountainHandler) ListImages(c *gin.Context) {
	id, ok := parseUintQuery(c, "mountain")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid mountain id")
		return
	}

	images, err := h.mountainService.ListImages(id)
	if err != nil {
		respondServiceError(c, err, "list mountain images failed")
		return
	}
	response.OK(c, images)
}
