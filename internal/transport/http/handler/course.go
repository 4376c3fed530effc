package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"trekkit/internal/geo"
	"trekkit/internal/transport/http/response"
)

// CourseHandler proxies hiking-course lookups to the external geographic
// data API.
type CourseHandler struct {
	geoClient *geo.Client
}

func NewCourseHandler(geoClient *geo.Client) *CourseHandler {
	return &CourseHandler{geoClient: geoClient}
}

func (h *CourseHandler) Lookup(c *gin.Context) {
	box, ok := parseBoundingBox(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid bounding box")
		return
	}

	payload, err := h.geoClient.FetchCourses(c.Request.Context(), box)
	if err != nil {
		log.Error().Err(err).Msg("course api proxy failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "course lookup failed")
		return
	}

	c.Data(http.StatusOK, "application/json", payload)
}

func parseBoundingBox(c *gin.Context) (geo.BoundingBox, bool) {
	var box geo.BoundingBox
	var err error

	if box.MinLat, err = strconv.ParseFloat(c.Query("minLat"), 64); err != nil {
		return box, false
	}
	if box.MinLng, err = strconv.ParseFloat(c.Query("minLng"), 64); err != nil {
		return box, false
	}
	if box.MaxLat, err = strconv.ParseFloat(c.Query("maxLat"), 64); err != nil {
		return box, false
	}
	if box.MaxLng, err = strconv.ParseFloat(c.Query("maxLng"), 64); err != nil {
		return box, false
	}

	if box.MinLat > box.MaxLat || box.MinLng > box.MaxLng {
		return box, false
	}
	return box, true
}
