package handlers

import (
	"errors"
	"net/http"

	"github.com/rohits-web03/quick4lio/internal/portfolio"
	"github.com/rohits-web03/quick4lio/internal/utils"
)

// GET /api/v1/portfolio
// EditPortfolio godoc
// @Summary Portfolio editor
// @Description Creates the portfolio on first visit and returns the stored sections with the editor view of the account plan.
// @Tags Portfolio
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 409 {object} utils.Payload "Account has no valid plan"
// @Router /api/v1/portfolio [get]
func (h *Handler) EditPortfolio(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(w, r)
	if user == nil {
		return
	}

	form, err := h.Portfolios.EditForm(r.Context(), user)
	if errors.Is(err, portfolio.ErrInvalidTier) {
		utils.JSONError(w, http.StatusConflict, "Please select a plan first.")
		return
	}
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Portfolio retrieved successfully",
		Data:    form,
	})
}

// POST /api/v1/portfolio
// SavePortfolio godoc
// @Summary Save portfolio
// @Description Builds the sections for portfolio_type from the submitted form fields and replaces the stored record.
// @Tags Portfolio
// @Accept x-www-form-urlencoded
// @Produce json
// @Param portfolio_type formData string false "Free, Paid or Premium (default Free)"
// @Param name formData string false "Header name"
// @Param contact_email formData string false "Contact email"
// @Param skills formData string false "Comma separated skills"
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Router /api/v1/portfolio [post]
func (h *Handler) SavePortfolio(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(w, r)
	if user == nil {
		return
	}

	if err := r.ParseForm(); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid form")
		return
	}

	p, sections, err := h.Portfolios.Save(r.Context(), user, portfolio.FieldsFromForm(r.PostForm))
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Portfolio saved successfully!",
		Data: map[string]any{
			"portfolio":    p,
			"sectionsData": sections,
			"publicUrl":    h.Config.PublicBaseURL + "/p/" + user.Username,
		},
	})
}

// GET /api/v1/plans
// PlanDetails godoc
// @Summary Plans
// @Description Current plan of the account and the sections each plan unlocks.
// @Tags Plans
// @Produce json
// @Success 200 {object} utils.Payload
// @Router /api/v1/plans [get]
func (h *Handler) PlanDetails(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(w, r)
	if user == nil {
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Plans retrieved successfully",
		Data:    h.Portfolios.PlanDetails(user),
	})
}

// POST /api/v1/plans/{plan}
// SelectPlan godoc
// @Summary Select plan
// @Description Moves the account, and its portfolio if any, to plan.
// @Tags Plans
// @Produce json
// @Param plan path string true "Free, Paid or Premium"
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload "Invalid plan selected"
// @Router /api/v1/plans/{plan} [post]
func (h *Handler) SelectPlan(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(w, r)
	if user == nil {
		return
	}

	tier, err := h.Portfolios.ChangePlan(r.Context(), user, r.PathValue("plan"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "You have successfully selected the " + tier.String() + " plan!",
		Data:    map[string]any{"currentPlan": tier},
	})
}
