package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rohits-web03/quick4lio/internal/api/middleware"
	"github.com/rohits-web03/quick4lio/internal/api/services"
	"github.com/rohits-web03/quick4lio/internal/models"
	"github.com/rohits-web03/quick4lio/internal/repositories"
	"github.com/rohits-web03/quick4lio/internal/utils"
	"go.uber.org/zap"
)

const stateCookie = "oauth_state"

// POST /api/v1/auth/sign-up
// RegisterUser godoc
// @Summary Register a new account
// @Description Creates an account on the Free plan. Username and email must be unused.
// @Tags Auth
// @Accept json
// @Produce json
// @Success 201 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Failure 409 {object} utils.Payload "Username or email already exists"
// @Router /api/v1/auth/sign-up [post]
func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	user, err := h.Accounts.Register(r.Context(), input.Username, input.Email, input.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Account created successfully! You can now log in.",
		Data:    user,
	})
}

// POST /api/v1/auth/login
// LoginUser godoc
// @Summary Log in
// @Description Checks the credentials and sets the session cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Router /api/v1/auth/login [post]
func (h *Handler) LoginUser(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	user, err := h.Accounts.Authenticate(r.Context(), input.Username, input.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.setSession(w, user); err != nil {
		h.Log.Error("failed to create token", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "Failed to create token")
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Logged in successfully.",
	})
}

// POST /api/v1/auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	// Delete the token cookie
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1, // maxAge < 0 deletes the cookie
		Secure:   h.isProd(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "You have been logged out.",
	})
}

// GET /api/v1/auth/google/login
func (h *Handler) HandleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	state, err := newOAuthState(r.URL.Query().Get("redirect"))
	if err != nil {
		http.Error(w, "Failed to generate OAuth state", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/api/v1/auth/google",
		MaxAge:   int((10 * time.Minute).Seconds()),
		Secure:   h.isProd(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	url := h.OAuth.AuthCodeURL(state)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// GET /api/v1/auth/google/callback
func (h *Handler) HandleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	state := r.FormValue("state")
	cookie, err := r.Cookie(stateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != state {
		http.Error(w, "Invalid OAuth state", http.StatusBadRequest)
		return
	}
	flowType, err := stateFlow(state)
	if err != nil {
		http.Error(w, "Invalid OAuth state", http.StatusBadRequest)
		return
	}

	gu, err := services.FetchGoogleUser(r.Context(), h.OAuth, r.FormValue("code"))
	if err != nil {
		h.Log.Warn("google sign-in failed", zap.Error(err))
		http.Error(w, "Code exchange failed", http.StatusInternalServerError)
		return
	}

	user, err := h.Accounts.GoogleSignIn(r.Context(), flowType, gu)
	switch {
	case err == nil:
	case errors.Is(err, repositories.ErrDuplicateIdentity):
		http.Redirect(w, r, h.Config.PublicBaseURL+"/login?error=user_already_exists", http.StatusTemporaryRedirect)
		return
	case errors.Is(err, repositories.ErrNotFound):
		http.Redirect(w, r, h.Config.PublicBaseURL+"/register?error=user_not_found", http.StatusTemporaryRedirect)
		return
	default:
		h.Log.Error("google sign-in failed", zap.Error(err))
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	if err := h.setSession(w, user); err != nil {
		http.Error(w, "Failed to create JWT", http.StatusInternalServerError)
		return
	}

	redirectURL := h.Config.PublicBaseURL + "/dashboard?status=success_login"
	if flowType == flowRegister {
		redirectURL = h.Config.PublicBaseURL + "/dashboard?status=success_register"
	}
	http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
}

func (h *Handler) setSession(w http.ResponseWriter, user *models.User) error {
	now := time.Now()
	tokenString, expiration, err := services.IssueToken(h.Config.JWTSecret, user, now)
	if err != nil {
		return err
	}

	// SameSite cookie policy
	sameSite := http.SameSiteLaxMode
	if h.isProd() {
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    tokenString,
		Path:     "/",
		MaxAge:   int(expiration.Sub(now).Seconds()),
		Secure:   h.isProd(),
		HttpOnly: true,
		SameSite: sameSite,
	})
	return nil
}

func (h *Handler) isProd() bool {
	return h.Config.Environment == "production"
}
