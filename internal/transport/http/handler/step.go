package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trekkit/internal/app"
	"trekkit/internal/transport/http/response"
)

type StepHandler struct {
	stepService *app.StepService
}

type SaveStepsRequest struct {
	Date       string  `json:"date" binding:"required,len=10"`
	Steps      int     `json:"steps" binding:"min=0"`
	DistanceKm float64 `json:"distance_km" binding:"min=0"`
}

func NewStepHandler(stepService *app.StepService) *StepHandler {
	return &StepHandler{stepService: stepService}
}

func (h *StepHandler) Save(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	var req SaveStepsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	record, err := h.stepService.Save(app.SaveStepsInput{
		UserID:     user.ID,
		Date:       req.Date,
		Steps:      req.Steps,
		DistanceKm: req.DistanceKm,
	})
	if err != nil {
		respondServiceError(c, err, "save steps failed")
		return
	}
	response.OK(c, record)
}

func (h *StepHandler) ListRange(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing date range")
		return
	}

	records, err := h.stepService.ListRange(user.ID, from, to)
	if err != nil {
		respondServiceError(c, err, "list steps failed")
		return
	}
	response.OK(c, records)
}
