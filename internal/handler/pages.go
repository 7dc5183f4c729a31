package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/liyedanpdx/WEB602-Project-2/internal/service"
	"github.com/liyedanpdx/WEB602-Project-2/internal/transport/http/middleware"
	"github.com/liyedanpdx/WEB602-Project-2/internal/view"
)

// PagesHandler serves the pages with no blog logic of their own: the
// landing page, the registration confirmation, and the admin listing.
type PagesHandler struct {
	auth     *service.AuthService
	renderer *view.Renderer
	logger   *logrus.Logger
}

func NewPagesHandler(auth *service.AuthService, renderer *view.Renderer, logger *logrus.Logger) *PagesHandler {
	return &PagesHandler{auth: auth, renderer: renderer, logger: logger}
}

// Home is the landing page for a logged-in user.
// GET /home
func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())
	h.renderer.Render(w, http.StatusOK, view.PageHome, view.Data{
		Title:         "Home",
		Username:      user.Username,
		Authenticated: true,
	})
}

// ThankYou is the static confirmation page after registering.
// GET /thankyou
func (h *PagesHandler) ThankYou(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, view.PageThankYou, view.Data{
		Title: "Thank You",
	})
}

// Registrations lists all users. The template never touches the
// password hash.
// GET /registrations
func (h *PagesHandler) Registrations(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	users, err := h.auth.ListUsers(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to list registrations")
		h.renderer.RenderError(w, http.StatusInternalServerError, "Sorry! Something went wrong.", err)
		return
	}

	h.renderer.Render(w, http.StatusOK, view.PageRegistrants, view.Data{
		Title:         "Listing registrations",
		Username:      user.Username,
		Authenticated: true,
		Users:         users,
	})
}
