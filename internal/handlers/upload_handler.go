package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"helperbee_backend/internal/services"
	"helperbee_backend/internal/storage"
	"helperbee_backend/pkg/apperrors"
)

const maxAvatarSize = 5 << 20 // 5 MiB

var allowedImageExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// UploadHandler serves avatar uploads.
type UploadHandler struct {
	*BaseHandler
	storage     storage.Storage
	userService *services.UserService
}

func NewUploadHandler(base *BaseHandler, store storage.Storage, userService *services.UserService) *UploadHandler {
	return &UploadHandler{
		BaseHandler: base,
		storage:     store,
		userService: userService,
	}
}

func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/uploads/avatar", authMW, h.UploadAvatar)
}

func (h *UploadHandler) UploadAvatar(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Missing file field"))
		return
	}
	if fileHeader.Size > maxAvatarSize {
		h.HandleServiceError(c, apperrors.NewBadRequestError("File too large (max 5 MB)"))
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType, ok := allowedImageExts[ext]
	if !ok {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Unsupported image type"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer f.Close()

	key := fmt.Sprintf("avatars/%s/%s%s", userID, uuid.NewString(), ext)
	url, err := h.storage.Upload(c.Request.Context(), key, contentType, f)
	if err != nil {
		h.HandleServiceError(c, apperrors.UpstreamError(err, "Failed to store file"))
		return
	}

	user, err := h.userService.SetAvatar(c.Request.Context(), userID, url)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "avatarUrl": url})
}
