package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"trekkit/internal/app"
	"trekkit/internal/transport/http/response"
)

type QnaHandler struct {
	qnaService *app.QnaService
}

type QuestionRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
}

type AnswerRequest struct {
	Content string `json:"content" binding:"required"`
}

func NewQnaHandler(qnaService *app.QnaService) *QnaHandler {
	return &QnaHandler{qnaService: qnaService}
}

func (h *QnaHandler) ListQuestions(c *gin.Context) {
	var solved *bool
	if raw := c.Query("solved"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid solved filter")
			return
		}
		solved = &parsed
	}

	questions, total, err := h.qnaService.ListQuestions(parsePageQuery(c), solved)
	if err != nil {
		respondServiceError(c, err, "list questions failed")
		return
	}
	response.OK(c, gin.H{"questions": questions, "total": total})
}

func (h *QnaHandler) GetQuestion(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid question id")
		return
	}

	question, err := h.qnaService.GetQuestion(id)
	if err != nil {
		respondServiceError(c, err, "fetch question failed")
		return
	}
	response.OK(c, question)
}

func (h *QnaHandler) CreateQuestion(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	question, err := h.qnaService.CreateQuestion(user, app.CreateQuestionInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respondServiceError(c, err, "create question failed")
		return
	}
	response.OK(c, question)
}

func (h *QnaHandler) UpdateQuestion(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	id, ok := parseUintParam(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid question id")
		return
	}

	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	question, err := h.qnaService.UpdateQuestion(user, id, app.CreateQuestionInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respondServiceError(c, err, "update question failed")
		return
	}
	response.OK(c, question)
}

func (h *QnaHandler) DeleteQuestion(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	id, ok := parseUintParam(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid question id")
		return
	}

	if err := h.qnaService.DeleteQuestion(user, id); err != nil {
		respondServiceError(c, err, "delete question failed")
		return
	}
	response.OK(c, nil)
}

func (h *QnaHandler) ListAnswers(c *gin.Context) {
	questionID, ok := parseUintParam(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid question id")
		return
	}

	answers, err := h.qnaService.ListAnswers(questionID)
	if err != nil {
		respondServiceError(c, err, "list answers failed")
		return
	}
	response.OK(c, answers)
}

func (h *QnaHandler) CreateAnswer(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	questionID, ok := parseUintParam(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid question id")
		return
	}

	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	answer, err := h.qnaService.CreateAnswer(user, questionID, req.Content)
	if err != nil {
		respondServiceError(c, err, "create answer failed")
		return
	}
	response.OK(c, answer)
}

func (h *QnaHandler) UpdateAnswer(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	id, ok := parseUintParam(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid answer id")
		return
	}

	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	answer, err := h.qnaService.UpdateAnswer(user, id, req.Content)
	if err != nil {
		respondServiceError(c, err, "update answer failed")
		return
	}
	response.OK(c, answer)
}

func (h *QnaHandler) DeleteAnswer(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	id, ok := parseUintParam(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid answer id")
		return
	}

	if err := h.qnaService.DeleteAnswer(user, id); err != nil {
		respondServiceError(c, err, "delete answer failed")
		return
	}
	response.OK(c, nil)
}

func (h *QnaHandler) ToggleQuestionLike(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	id, ok := parseUintParam(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid question id")
		return
	}

	result, err := h.qnaService.ToggleQuestionLike(user.ID, id)
	if err != nil {
		respondServiceError(c, err, "toggle question like failed")
		return
	}
	response.OK(c, result)
}

func (h *QnaHandler) ToggleAnswerLike(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	id, ok := parseUintParam(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid answer id")
		return
	}

	result, err := h.qnaService.ToggleAnswerLike(user.ID, id)
	if err != nil {
		respondServiceError(c, err, "toggle answer like failed")
		return
	}
	response.OK(c, result)
}

func (h *QnaHandler) AcceptAnswer(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	questionID, ok := parseUintParam(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid question id")
		return
	}
	answerID, ok := parseUintParam(c, "aid")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid answer id")
		return
	}

	if err := h.qnaService.AcceptAnswer(user, questionID, answerID); err != nil {
		if errors.Is(err, app.ErrAnswerMismatch) {
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
			return
		}
		respondServiceError(c, err, "accept answer failed")
		return
	}
	response.OK(c, nil)
}
