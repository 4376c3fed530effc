package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trekkit/internal/app"
	"trekkit/internal/transport/http/response"
)

type PointHandler struct {
	pointService *app.PointService
}

type CreditPointsRequest struct {
	Amount int    `json:"amount" binding:"required,gt=0"`
	Reason string `json:"reason" binding:"max=128"`
}

func NewPointHandler(pointService *app.PointService) *PointHandler {
	return &PointHandler{pointService: pointService}
}

func (h *PointHandler) Credit(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	var req CreditPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	history, err := h.pointService.Credit(user.ID, req.Amount, req.Reason)
	if err != nil {
		respondServiceError(c, err, "credit points failed")
		return
	}
	response.OK(c, history)
}

func (h *PointHandler) History(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	history, err := h.pointService.History(user.ID)
	if err != nil {
		respondServiceError(c, err, "list point history failed")
		return
	}
	response.OK(c, history)
}
