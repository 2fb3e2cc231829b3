package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	g "maragu.dev/gomponents"

	"foundhex-site/pkg/middleware"
	"foundhex-site/pkg/models"
	"foundhex-site/pkg/pages"
	"foundhex-site/pkg/services"
	"foundhex-site/pkg/signup"
)

// SignupCookie holds the signup session id of the server-rendered wizard
const SignupCookie = "repx_signup"

// Handlers contains all HTTP handlers for the site
type Handlers struct {
	signupService services.SignupService
	demoService   services.DemoBookingService
	sessionTTL    time.Duration
}

// NewHandlers creates a new Handlers instance
func NewHandlers(signupService services.SignupService, demoService services.DemoBookingService, sessionTTL time.Duration) *Handlers {
	return &Handlers{
		signupService: signupService,
		demoService:   demoService,
		sessionTTL:    sessionTTL,
	}
}

type sessionResponse struct {
	ID    string       `json:"id"`
	State signup.State `json:"state"`
}

type planRequest struct {
	Plan string `json:"plan" binding:"required"`
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Catalog lists the choices the signup and demo forms offer
func (h *Handlers) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"industries":     models.Industries(),
		"plans":          models.Plans(),
		"demoIndustries": models.DemoIndustries(),
		"locationRanges": models.LocationRanges,
	})
}

func (h *Handlers) StartSignup(c *gin.Context) {
	id, state := h.signupService.Start()
	c.JSON(http.StatusCreated, sessionResponse{ID: id, State: state})
}

func (h *Handlers) GetSignup(c *gin.Context) {
	id := c.Param("id")
	state, err := h.signupService.Get(id)
	h.respondSignup(c, id, state, err)
}

func (h *Handlers) UpdateSignupFields(c *gin.Context) {
	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil || len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}
	id := c.Param("id")
	state, err := h.signupService.UpdateFields(id, fields)
	h.respondSignup(c, id, state, err)
}

func (h *Handlers) AdvanceSignup(c *gin.Context) {
	id := c.Param("id")
	state, err := h.signupService.Advance(id)
	h.respondSignup(c, id, state, err)
}

func (h *Handlers) RetreatSignup(c *gin.Context) {
	id := c.Param("id")
	state, err := h.signupService.Retreat(id)
	h.respondSignup(c, id, state, err)
}

func (h *Handlers) SelectSignupPlan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}
	id := c.Param("id")
	state, err := h.signupService.SelectPlan(id, req.Plan)
	h.respondSignup(c, id, state, err)
}

func (h *Handlers) SubmitSignup(c *gin.Context) {
	id := c.Param("id")
	state, err := h.signupService.Submit(c.Request.Context(), id)
	h.respondSignup(c, id, state, err)
}

// respondSignup writes the session state, or the error with the status it maps to
func (h *Handlers) respondSignup(c *gin.Context, id string, state signup.State, err error) {
	if err == nil {
		c.JSON(http.StatusOK, sessionResponse{ID: id, State: state})
		return
	}

	status := signupErrorStatus(err)
	if status == http.StatusNotFound {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	if status == http.StatusInternalServerError {
		slog.Error("signup request failed", "session", id, "error", err, "request_id", c.GetString(middleware.RequestIDKey))
	}
	c.JSON(status, gin.H{
		"error": err.Error(),
		"state": sessionResponse{ID: id, State: state},
	})
}

func signupErrorStatus(err error) int {
	var submitErr *signup.SubmitError
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, signup.ErrRequiredFields):
		return http.StatusUnprocessableEntity
	case errors.Is(err, signup.ErrUnknownField), errors.Is(err, signup.ErrInvalidPlan):
		return http.StatusBadRequest
	case errors.Is(err, signup.ErrNoNextStep),
		errors.Is(err, signup.ErrNoPreviousStep),
		errors.Is(err, signup.ErrStepUnavailable),
		errors.Is(err, signup.ErrSubmitInFlight),
		errors.Is(err, signup.ErrCompleted):
		return http.StatusConflict
	case errors.As(err, &submitErr):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// BookDemo accepts a demo request as JSON
func (h *Handlers) BookDemo(c *gin.Context) {
	var data models.DemoBookingData
	if err := c.ShouldBindJSON(&data); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": services.MsgMissingDemoFields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	result, err := h.demoService.Book(c.Request.Context(), data)
	if err != nil {
		if errors.Is(err, services.ErrMissingDemoFields) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": services.MsgMissingDemoFields})
			return
		}
		slog.Error("demo booking failed", "error", err, "request_id", c.GetString(middleware.RequestIDKey))
		c.JSON(http.StatusBadGateway, gin.H{"error": signup.MsgGenericFailure})
		return
	}
	c.JSON(http.StatusCreated, result)
}

// render writes a gomponents node as an HTML response
func render(c *gin.Context, status int, node g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := node.Render(c.Writer); err != nil {
		slog.Error("error rendering page", "path", c.Request.URL.Path, "error", err)
	}
}

func (h *Handlers) HomePage(c *gin.Context) {
	render(c, http.StatusOK, pages.Home())
}

func (h *Handlers) RepXPage(c *gin.Context) {
	render(c, http.StatusOK, pages.RepXLanding())
}

func (h *Handlers) LogosPage(c *gin.Context) {
	render(c, http.StatusOK, pages.LogoShowcase())
}

// signupSession returns the wizard bound to the visitor's cookie, starting a
// new one when there is none or it expired. The cookie is re-issued on every
// call so its lifetime slides with the server-side session.
func (h *Handlers) signupSession(c *gin.Context) (string, signup.State) {
	if id, err := c.Cookie(SignupCookie); err == nil && id != "" {
		if state, err := h.signupService.Get(id); err == nil {
			h.setSignupCookie(c, id)
			return id, state
		}
	}

	id, state := h.signupService.Start()
	h.setSignupCookie(c, id)
	return id, state
}

func (h *Handlers) setSignupCookie(c *gin.Context, id string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SignupCookie, id, int(h.sessionTTL.Seconds()), "/", "", c.Request.TLS != nil, true)
}

// SignupPage shows the current step of the visitor's wizard
func (h *Handlers) SignupPage(c *gin.Context) {
	_, state := h.signupSession(c)
	render(c, http.StatusOK, pages.SignupPage(state))
}

// SignupAction applies a posted wizard step and redirects back to the page
func (h *Handlers) SignupAction(c *gin.Context) {
	id, _ := h.signupSession(c)

	fields := make(map[string]string)
	for _, group := range [][]string{models.OrganizationFields, models.LocationFields} {
		for _, name := range group {
			if value, ok := c.GetPostForm(name); ok {
				fields[name] = value
			}
		}
	}

	var err error
	if len(fields) > 0 {
		_, err = h.signupService.UpdateFields(id, fields)
	}
	if plan, ok := c.GetPostForm(models.FieldSubscriptionPlan); ok && err == nil {
		_, err = h.signupService.SelectPlan(id, plan)
	}

	if err == nil {
		switch c.PostForm("action") {
		case pages.ActionNext:
			_, err = h.signupService.Advance(id)
		case pages.ActionBack:
			_, err = h.signupService.Retreat(id)
		case pages.ActionSubmit:
			_, err = h.signupService.Submit(c.Request.Context(), id)
		}
	}

	// Validation and submission failures are kept in the wizard state and shown
	// after the redirect.
	var submitErr *signup.SubmitError
	if err != nil && !errors.Is(err, signup.ErrRequiredFields) && !errors.As(err, &submitErr) {
		slog.Debug("signup form action ignored", "session", id, "action", c.PostForm("action"), "error", err)
	}
	c.Redirect(http.StatusSeeOther, pages.SignupPath)
}

// DemoAction handles the demo form post
func (h *Handlers) DemoAction(c *gin.Context) {
	var data models.DemoBookingData
	if err := c.ShouldBind(&data); err != nil {
		render(c, http.StatusUnprocessableEntity, pages.DemoPage(data, services.MsgMissingDemoFields))
		return
	}

	result, err := h.demoService.Book(c.Request.Context(), data)
	if err != nil {
		msg := signup.MsgGenericFailure
		status := http.StatusBadGateway
		if errors.Is(err, services.ErrMissingDemoFields) {
			msg = services.MsgMissingDemoFields
			status = http.StatusUnprocessableEntity
		} else {
			slog.Error("demo booking failed", "error", err, "request_id", c.GetString(middleware.RequestIDKey))
		}
		render(c, status, pages.DemoPage(data, msg))
		return
	}
	render(c, http.StatusOK, pages.DemoConfirmation(result))
}
