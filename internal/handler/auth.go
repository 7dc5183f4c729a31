package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/liyedanpdx/WEB602-Project-2/internal/model"
	"github.com/liyedanpdx/WEB602-Project-2/internal/service"
	"github.com/liyedanpdx/WEB602-Project-2/internal/session"
	"github.com/liyedanpdx/WEB602-Project-2/internal/transport/http/middleware"
	"github.com/liyedanpdx/WEB602-Project-2/internal/view"
)

const (
	registerLimitedMsg = "Too many registration requests, please try again after 15 minutes."
	loginLimitedMsg    = "Too many login attempts, please try again after 5 minutes."
)

// AuthHandler serves the registration and login forms and the logout
// route.
type AuthHandler struct {
	auth     *service.AuthService
	renderer *view.Renderer
	logger   *logrus.Logger
}

func NewAuthHandler(auth *service.AuthService, renderer *view.Renderer, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, renderer: renderer, logger: logger}
}

// ShowRegister renders the registration form.
// GET /register
func (h *AuthHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, view.PageRegister, view.Data{
		Title: "Registration Page",
		Form:  map[string]string{},
	})
}

// Register creates a new user from the form. Validation problems,
// duplicate accounts, and throttling all re-render the form inline; a
// successful registration logs the user in and redirects to /thankyou.
// POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if middleware.Limited(r.Context()) {
		h.renderer.Render(w, http.StatusOK, view.PageRegister, view.Data{
			Title:  "Registration Page",
			Errors: []string{registerLimitedMsg},
			Form:   map[string]string{},
		})
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderer.RenderError(w, http.StatusBadRequest, "Invalid form submission.", err)
		return
	}

	req := &model.RegisterRequest{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Phone:    r.PostFormValue("phone"),
		Password: r.PostFormValue("password"),
	}
	form := map[string]string{
		"username": req.Username,
		"email":    req.Email,
		"phone":    req.Phone,
	}

	user, fieldErrs, err := h.auth.Register(r.Context(), req)
	if err != nil {
		h.logger.WithError(err).Error("registration failed")
		h.renderer.RenderError(w, http.StatusInternalServerError, "Sorry! Something went wrong.", err)
		return
	}
	if !fieldErrs.Empty() {
		h.renderer.Render(w, http.StatusOK, view.PageRegister, view.Data{
			Title:  "Registration Page",
			Errors: fieldErrs.Messages(),
			Form:   form,
		})
		return
	}

	// The original logs a fresh registrant straight in.
	value, err := h.auth.IssueSession(r.Context(), user.ID)
	if err != nil {
		h.logger.WithError(err).Error("failed to issue session after registration")
		h.renderer.RenderError(w, http.StatusInternalServerError, "Sorry! Something went wrong.", err)
		return
	}

	http.SetCookie(w, h.auth.NewSessionCookie(value))
	http.Redirect(w, r, "/thankyou", http.StatusFound)
}

// ShowLogin renders the login form; a throttled client sees the inline
// message instead of the bare form.
// GET /login
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	data := view.Data{Title: "Login", Form: map[string]string{}}
	if middleware.Limited(r.Context()) {
		data.Errors = []string{loginLimitedMsg}
	}
	h.renderer.Render(w, http.StatusOK, view.PageLogin, data)
}

// Login authenticates the form credentials. Failure re-renders the form
// with one generic message (HTTP 200, no redirect) so the response never
// reveals whether the username exists.
// POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if middleware.Limited(r.Context()) {
		h.renderer.Render(w, http.StatusOK, view.PageLogin, view.Data{
			Title:  "Login",
			Errors: []string{loginLimitedMsg},
			Form:   map[string]string{},
		})
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderer.RenderError(w, http.StatusBadRequest, "Invalid form submission.", err)
		return
	}

	req := &model.LoginRequest{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	user, err := h.auth.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			h.renderer.Render(w, http.StatusOK, view.PageLogin, view.Data{
				Title:  "Login",
				Errors: []string{"Invalid username or password"},
				Form:   map[string]string{"username": req.Username},
			})
			return
		}
		h.logger.WithError(err).Error("login failed")
		h.renderer.RenderError(w, http.StatusInternalServerError, "Sorry! Something went wrong.", err)
		return
	}

	value, err := h.auth.IssueSession(r.Context(), user.ID)
	if err != nil {
		h.logger.WithError(err).Error("failed to issue session")
		h.renderer.RenderError(w, http.StatusInternalServerError, "Sorry! Something went wrong.", err)
		return
	}

	http.SetCookie(w, h.auth.NewSessionCookie(value))
	http.Redirect(w, r, "/blog", http.StatusFound)
}

// Logout destroys the session and clears the cookie. Safe to hit twice.
// GET /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		if err := h.auth.Logout(r.Context(), cookie.Value); err != nil {
			h.logger.WithError(err).Warn("failed to destroy session")
		}
	}

	http.SetCookie(w, h.auth.ExpiredSessionCookie())
	http.Redirect(w, r, "/home", http.StatusFound)
}
