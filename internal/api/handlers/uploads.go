package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rohits-web03/quick4lio/internal/utils"
)

const presignExpiry = 15 * time.Minute

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

var uploadKinds = map[string]bool{
	"posts":    true,
	"avatars":  true,
	"projects": true,
}

// POST /api/v1/uploads/presign
// PresignUpload godoc
// @Summary Generate presigned upload URL
// @Description Returns a presigned PUT URL for an image and the public URL it will be served from once uploaded.
// @Tags Uploads
// @Accept json
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Failure 503 {object} utils.Payload "Media storage not configured"
// @Router /api/v1/uploads/presign [post]
func (h *Handler) PresignUpload(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(w, r)
	if user == nil {
		return
	}
	if h.Media == nil {
		utils.JSONError(w, http.StatusServiceUnavailable, "Media storage is not configured")
		return
	}

	var req struct {
		Kind        string `json:"kind"`
		ContentType string `json:"contentType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !uploadKinds[req.Kind] {
		utils.JSONError(w, http.StatusBadRequest, "Unknown upload kind")
		return
	}
	ext, ok := imageExtensions[req.ContentType]
	if !ok {
		utils.JSONError(w, http.StatusBadRequest, "Only JPEG, PNG, GIF and WebP images are allowed")
		return
	}

	key, err := utils.ObjectKey(req.Kind, user.ID, ext)
	if err != nil {
		h.writeError(w, err)
		return
	}

	uploadURL, err := h.Media.PresignPut(r.Context(), key, req.ContentType, presignExpiry)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Presigned URL generated",
		Data: map[string]any{
			"uploadUrl": uploadURL,
			"publicUrl": h.Media.PublicURL(key),
			"expiresIn": int(presignExpiry.Seconds()),
		},
	})
}
