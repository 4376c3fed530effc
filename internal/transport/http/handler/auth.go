package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"trekkit/internal/app"
	"trekkit/internal/transport/http/response"
)

type AuthHandler struct {
	authService         *app.AuthService
	verificationService *app.VerificationService
}

type SignupRequest struct {
	UserID   string `json:"userid" binding:"required,min=4,max=20"`
	Password string `json:"password" binding:"required,min=8,max=64"`
	Nickname string `json:"nickname" binding:"required,min=2,max=20"`
	Email    string `json:"email" binding:"required,email,max=128"`
}

type LoginRequest struct {
	UserID   string `json:"userid" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SendEmailRequest struct {
	Email string `json:"email" binding:"required,email,max=128"`
}

type VerifyEmailRequest struct {
	Email string `json:"email" binding:"required,email,max=128"`
	Code  string `json:"code" binding:"required,len=6"`
}

type FindIDRequest struct {
	Email string `json:"email" binding:"required,email,max=128"`
}

type FindPasswordRequest struct {
	UserID string `json:"userid" binding:"required"`
	Email  string `json:"email" binding:"required,email,max=128"`
}

func NewAuthHandler(authService *app.AuthService, verificationService *app.VerificationService) *AuthHandler {
	return &AuthHandler{
		authService:         authService,
		verificationService: verificationService,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	user, err := h.authService.Signup(app.SignupInput{
		LoginID:  req.UserID,
		Password: req.Password,
		Nickname: req.Nickname,
		Email:    req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrLoginIDExists):
			response.Error(c, http.StatusBadRequest, response.CodeLoginIDExists, err.Error())
		case errors.Is(err, app.ErrNicknameExists):
			response.Error(c, http.StatusBadRequest, response.CodeNicknameExists, err.Error())
		case errors.Is(err, app.ErrEmailExists):
			response.Error(c, http.StatusBadRequest, response.CodeEmailExists, err.Error())
		case errors.Is(err, app.ErrEmailNotVerified):
			response.Error(c, http.StatusBadRequest, response.CodeEmailNotVerified, err.Error())
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "signup failed")
		}
		return
	}

	response.OK(c, gin.H{
		"id":       user.ID,
		"userid":   user.LoginID,
		"nickname": user.Nickname,
	})
}

func (h *AuthHandler) CheckLoginID(c *gin.Context) {
	h.checkAvailability(c, c.Query("userid"), h.authService.IsLoginIDAvailable)
}

func (h *AuthHandler) CheckNickname(c *gin.Context) {
	h.checkAvailability(c, c.Query("nickname"), h.authService.IsNicknameAvailable)
}

func (h *AuthHandler) CheckEmail(c *gin.Context) {
	h.checkAvailability(c, c.Query("email"), h.authService.IsEmailAvailable)
}

func (h *AuthHandler) checkAvailability(c *gin.Context, value string, check func(string) (bool, error)) {
	if value == "" {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing query value")
		return
	}

	available, err := check(value)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "availability check failed")
		return
	}
	response.OK(c, gin.H{"available": available})
}

func (h *AuthHandler) SendEmail(c *gin.Context) {
	var req SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	if err := h.verificationService.SendCode(c.Request.Context(), req.Email); err != nil {
		respondServiceError(c, err, "send verification code failed")
		return
	}
	response.OK(c, nil)
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	if err := h.verificationService.VerifyCode(req.Email, req.Code); err != nil {
		if errors.Is(err, app.ErrCodeMismatch) {
			response.Error(c, http.StatusBadRequest, response.CodeCodeMismatch, err.Error())
			return
		}
		respondServiceError(c, err, "verify email failed")
		return
	}
	response.OK(c, nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	result, err := h.authService.Login(app.LoginInput{
		LoginID:  req.UserID,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrInvalidCredential):
			response.Error(c, http.StatusUnauthorized, response.CodeInvalidCredentials, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "login failed")
		}
		return
	}

	response.OK(c, gin.H{
		"token":    result.Token,
		"nickname": result.User.Nickname,
		"profile":  result.User.ProfileImage,
	})
}

func (h *AuthHandler) FindID(c *gin.Context) {
	var req FindIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	if err := h.authService.FindLoginID(c.Request.Context(), req.Email); err != nil {
		respondServiceError(c, err, "account lookup failed")
		return
	}
	response.OK(c, nil)
}

func (h *AuthHandler) FindPassword(c *gin.Context) {
	var req FindPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req.UserID, req.Email); err != nil {
		respondServiceError(c, err, "password reset failed")
		return
	}
	response.OK(c, nil)
}
