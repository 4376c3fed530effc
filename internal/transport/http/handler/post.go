package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trekkit/internal/app"
	"trekkit/internal/config"
	"trekkit/internal/transport/http/response"
)

type PostHandler struct {
	postService *app.PostService
	upload      config.UploadConfig
}

type CreatePostRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Content  string `json:"content" binding:"required"`
	ImageURL string `json:"image_url" binding:"omitempty,max=255"`
}

type UpdatePostRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
}

func NewPostHandler(postService *app.PostService, upload config.UploadConfig) *PostHandler {
	return &PostHandler{postService: postService, upload: upload}
}

func (h *PostHandler) List(c *gin.Context) {
	posts, total, err := h.postService.List(parsePageQuery(c))
	if err != nil {
		respondServiceError(c, err, "list posts failed")
		return
	}
	response.OK(c, gin.H{"posts": posts, "total": total})
}

func (h *PostHandler) Get(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid post id")
		return
	}

	post, err := h.postService.Get(id)
	if err != nil {
		respondServiceError(c, err, "fetch post failed")
		return
	}
	response.OK(c, post)
}

func (h *PostHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	post, err := h.postService.Create(user, app.CreatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		respondServiceError(c, err, "create post failed")
		return
	}
	response.OK(c, post)
}

func (h *PostHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	id, ok := parseUintParam(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid post id")
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	post, err := h.postService.Update(user, id, app.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respondServiceError(c, err, "update post failed")
		return
	}
	response.OK(c, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	id, ok := parseUintParam(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid post id")
		return
	}

	if err := h.postService.Delete(user, id); err != nil {
		respondServiceError(c, err, "delete post failed")
		return
	}
	response.OK(c, nil)
}

// UploadImage stores a post image and returns its public URL; the client
// sends the URL back in the create/update payload.
func (h *PostHandler) UploadImage(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	imageURL, err := saveUploadedImage(c, h.upload)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		return
	}
	response.OK(c, gin.H{"image_url": imageURL})
}
