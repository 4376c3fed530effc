package handler

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"trekkit/internal/app"
	"trekkit/internal/config"
	"trekkit/internal/transport/http/response"
)

type ProfileHandler struct {
	authService *app.AuthService
	upload      config.UploadConfig
}

type UpdateProfileRequest struct {
	Nickname        string `json:"nickname" binding:"omitempty,min=2,max=20"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password" binding:"omitempty,min=8,max=64"`
}

func NewProfileHandler(authService *app.AuthService, upload config.UploadConfig) *ProfileHandler {
	return &ProfileHandler{
		authService: authService,
		upload:      upload,
	}
}

func (h *ProfileHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	updated, err := h.authService.UpdateProfile(app.UpdateProfileInput{
		UserID:          user.ID,
		Nickname:        req.Nickname,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrNicknameExists):
			response.Error(c, http.StatusBadRequest, response.CodeNicknameExists, err.Error())
		case errors.Is(err, app.ErrInvalidCredential):
			response.Error(c, http.StatusUnauthorized, response.CodeInvalidCredentials, err.Error())
		default:
			respondServiceError(c, err, "profile update failed")
		}
		return
	}

	response.OK(c, gin.H{
		"nickname": updated.Nickname,
		"profile":  updated.ProfileImage,
	})
}

func (h *ProfileHandler) UploadImage(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	imageURL, err := saveUploadedImage(c, h.upload)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		return
	}

	updated, err := h.authService.UpdateProfileImage(user.ID, imageURL)
	if err != nil {
		respondServiceError(c, err, "profile image update failed")
		return
	}

	response.OK(c, gin.H{"profile": updated.ProfileImage})
}

func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	if err := h.authService.DeleteAccount(user.ID); err != nil {
		respondServiceError(c, err, "account deletion failed")
		return
	}
	response.OK(c, nil)
}

// saveUploadedImage stores the "image" form file under the upload dir with a
// random name and returns its public URL.
func saveUploadedImage(c *gin.Context, upload config.UploadConfig) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", fmt.Errorf("missing image file")
	}

	if upload.MaxSizeMB > 0 && file.Size > int64(upload.MaxSizeMB)<<20 {
		return "", fmt.Errorf("image exceeds %dMB limit", upload.MaxSizeMB)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		return "", fmt.Errorf("unsupported image type %q", ext)
	}

	filename := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(upload.Dir, filename)); err != nil {
		return "", fmt.Errorf("store image failed")
	}

	return upload.URLPrefix + "/" + filename, nil
}
