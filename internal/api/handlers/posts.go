package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rohits-web03/quick4lio/internal/models"
	"github.com/rohits-web03/quick4lio/internal/utils"
)

var (
	errMediaMissing    = errors.New("uploaded image not found")
	errImageURLTooLong = fmt.Errorf("image URL must be at most %d characters", models.MaxImageURLLength)
)

// POST /api/v1/posts
// CreatePost godoc
// @Summary Publish a post
// @Description Creates a post for the logged-in user. Images uploaded through /uploads/presign must exist in the bucket.
// @Tags Posts
// @Accept json
// @Produce json
// @Success 201 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Router /api/v1/posts [post]
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(w, r)
	if user == nil {
		return
	}

	var input struct {
		ContentText  string `json:"contentText"`
		ContentImage string `json:"contentImage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	text := strings.TrimSpace(input.ContentText)
	if text == "" {
		utils.JSONError(w, http.StatusBadRequest, "Post content cannot be empty")
		return
	}
	if !h.mediaUsable(w, r, input.ContentImage) {
		return
	}

	post := &models.Post{
		UserID:       user.ID,
		ContentText:  text,
		ContentImage: input.ContentImage,
	}
	if err := h.Posts.Create(r.Context(), post); err != nil {
		h.writeError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Post created successfully!",
		Data:    newFeedPost(*post, user.Username),
	})
}

// mediaUsable accepts empty and foreign image URLs that fit the image
// columns. URLs pointing into our bucket must name an uploaded object. On
// false the response is written.
func (h *Handler) mediaUsable(w http.ResponseWriter, r *http.Request, url string) bool {
	if len(url) > models.MaxImageURLLength {
		utils.JSONError(w, http.StatusBadRequest, errImageURLTooLong.Error())
		return false
	}
	if url == "" || h.Media == nil {
		return true
	}
	key, ours := h.Media.KeyFromPublicURL(url)
	if !ours {
		return true
	}
	exists, err := h.Media.Exists(r.Context(), key)
	if err != nil {
		h.writeError(w, err)
		return false
	}
	if !exists {
		utils.JSONError(w, http.StatusBadRequest, errMediaMissing.Error())
		return false
	}
	return true
}
