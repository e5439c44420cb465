package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rohits-web03/quick4lio/internal/portfolio"
	"github.com/rohits-web03/quick4lio/internal/utils"
)

// GET /api/v1/me
// Me godoc
// @Summary Current account
// @Tags Users
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Router /api/v1/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(w, r)
	if user == nil {
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "User retrieved successfully",
		Data: map[string]any{
			"user":        user,
			"socialLinks": portfolio.ParseSocialLinks(user.SocialLinks),
		},
	})
}

// PUT /api/v1/me/profile
// UpdateProfile godoc
// @Summary Edit profile
// @Description Replaces profile photo, bio and social links. An empty photo restores the default.
// @Tags Users
// @Accept json
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Router /api/v1/me/profile [put]
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(w, r)
	if user == nil {
		return
	}

	var input struct {
		ProfilePhoto string            `json:"profilePhoto"`
		Bio          string            `json:"bio"`
		SocialLinks  map[string]string `json:"socialLinks"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	photo := strings.TrimSpace(input.ProfilePhoto)
	if !h.mediaUsable(w, r, photo) {
		return
	}

	if err := h.Accounts.UpdateProfile(r.Context(), user, photo, strings.TrimSpace(input.Bio), input.SocialLinks); err != nil {
		h.writeError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Profile updated successfully!",
		Data: map[string]any{
			"user":        user,
			"socialLinks": portfolio.ParseSocialLinks(user.SocialLinks),
		},
	})
}
