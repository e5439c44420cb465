package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rohits-web03/quick4lio/internal/models"
	"github.com/rohits-web03/quick4lio/internal/portfolio"
	"github.com/rohits-web03/quick4lio/internal/repositories"
	"github.com/rohits-web03/quick4lio/internal/utils"
)

// publicProfile is what anonymous visitors see of an account.
type publicProfile struct {
	Username     string            `json:"username"`
	ProfilePhoto string            `json:"profilePhoto"`
	Bio          string            `json:"bio"`
	SocialLinks  map[string]string `json:"socialLinks"`
}

func newPublicProfile(u *models.User) publicProfile {
	return publicProfile{
		Username:     u.Username,
		ProfilePhoto: u.ProfilePhoto,
		Bio:          u.Bio,
		SocialLinks:  portfolio.ParseSocialLinks(u.SocialLinks),
	}
}

type feedPost struct {
	ID           string `json:"id"`
	Author       string `json:"author"`
	ContentText  string `json:"contentText"`
	ContentImage string `json:"contentImage,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

func newFeedPost(p models.Post, author string) feedPost {
	if p.Author != nil {
		author = p.Author.Username
	}
	return feedPost{
		ID:           p.ID.String(),
		Author:       author,
		ContentText:  p.ContentText,
		ContentImage: p.ContentImage,
		CreatedAt:    p.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// GET /feed
// Feed godoc
// @Summary Post feed
// @Description Newest posts of all users.
// @Tags Posts
// @Produce json
// @Param limit query int false "Maximum number of posts"
// @Success 200 {object} utils.Payload
// @Router /feed [get]
func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	posts, err := h.Posts.Feed(r.Context(), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	out := make([]feedPost, 0, len(posts))
	for _, p := range posts {
		out = append(out, newFeedPost(p, ""))
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Feed retrieved successfully",
		Data:    map[string]any{"posts": out},
	})
}

// GET /user/{username}
// UserProfile godoc
// @Summary Public profile
// @Description Profile metadata and posts of a user, newest first.
// @Tags Users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /user/{username} [get]
func (h *Handler) UserProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.Accounts.GetByUsername(r.Context(), r.PathValue("username"))
	if errors.Is(err, repositories.ErrNotFound) {
		utils.JSONError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.writeError(w, err)
		return
	}

	posts, err := h.Posts.ByUser(r.Context(), user.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]feedPost, 0, len(posts))
	for _, p := range posts {
		out = append(out, newFeedPost(p, user.Username))
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Profile retrieved successfully",
		Data: map[string]any{
			"user":  newPublicProfile(user),
			"posts": out,
		},
	})
}

// GET /p/{username}
// PublicPortfolio godoc
// @Summary Public portfolio page
// @Description Returns the view to render (free_portfolio, paid_portfolio, premium_portfolio or no_portfolio) with the sections visible at the portfolio tier.
// @Tags Portfolio
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /p/{username} [get]
func (h *Handler) PublicPortfolio(w http.ResponseWriter, r *http.Request) {
	page, err := h.Portfolios.Public(r.Context(), r.PathValue("username"))
	if errors.Is(err, repositories.ErrNotFound) {
		utils.JSONError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.writeError(w, err)
		return
	}

	data := map[string]any{
		"view":         page.View,
		"user":         newPublicProfile(page.User),
		"portfolio":    nil,
		"sectionsData": nil,
	}
	if page.Portfolio != nil {
		data["portfolio"] = page.Portfolio
		data["sectionsData"] = page.Sections
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Portfolio retrieved successfully",
		Data:    data,
	})
}
