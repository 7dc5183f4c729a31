// Package view renders the HTML pages. Templates are embedded so the
// binary carries them; each page is parsed together with the shared
// layout.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/liyedanpdx/WEB602-Project-2/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// Pages the renderer knows about.
const (
	PageHome        = "home"
	PageRegister    = "register"
	PageLogin       = "login"
	PageThankYou    = "thankyou"
	PageBlog        = "blog"
	PageBlogPost    = "blog_post"
	PageRegistrants = "registrants"
	PageError       = "error"
)

var pageNames = []string{
	PageHome, PageRegister, PageLogin, PageThankYou,
	PageBlog, PageBlogPost, PageRegistrants, PageError,
}

// Data is the payload handed to a page template. Only the fields the
// page uses need to be set.
type Data struct {
	Title         string
	Username      string
	Authenticated bool

	// Form feedback: inline messages and the submitted values so the
	// user does not retype everything.
	Errors []string
	Form   map[string]string

	Posts []model.Post
	Post  *model.Post
	Users []model.User

	// Message is the user-facing text on the error page.
	Message string
}

// Renderer executes page templates and owns the error page fallback.
type Renderer struct {
	pages  map[string]*template.Template
	logger *logrus.Logger

	// devMode leaks error detail onto the error page. Never set in
	// production.
	devMode bool
}

func NewRenderer(logger *logrus.Logger, devMode bool) (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages, logger: logger, devMode: devMode}, nil
}

// Render executes the page into a buffer first so a template failure
// can still produce a clean 500 instead of a half-written body.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data Data) {
	tmpl, ok := r.pages[page]
	if !ok {
		r.logger.WithField("page", page).Error("unknown template")
		r.RenderError(w, http.StatusInternalServerError, "Sorry! Something went wrong.", nil)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		r.logger.WithField("page", page).WithError(err).Error("template execution failed")
		r.RenderError(w, http.StatusInternalServerError, "Sorry! Something went wrong.", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// RenderError writes the generic failure page. Internal detail is shown
// only in development mode.
func (r *Renderer) RenderError(w http.ResponseWriter, status int, message string, detail error) {
	data := Data{Title: "Error", Message: message}
	if r.devMode && detail != nil {
		data.Message = fmt.Sprintf("%s (%v)", message, detail)
	}

	tmpl, ok := r.pages[PageError]
	if !ok {
		http.Error(w, message, status)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		http.Error(w, message, status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
