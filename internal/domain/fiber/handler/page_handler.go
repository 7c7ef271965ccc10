package handler

import (
	"log"
	"time"

	"github.com/fadilmartias/interview-prep/internal/middleware"
	"github.com/fadilmartias/interview-prep/internal/navigation"
	"github.com/fadilmartias/interview-prep/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/fiber/v2/utils"
)

type PageHandler struct {
	auth    *usecase.AuthUsecase
	prep    *usecase.PreparationUsecase
	store   *session.Store
	appName string
}

func NewPageHandler(auth *usecase.AuthUsecase, prep *usecase.PreparationUsecase, store *session.Store, appName string) *PageHandler {
	return &PageHandler{auth: auth, prep: prep, store: store, appName: appName}
}

func (h *PageHandler) RegisterRoutes(app *fiber.App) {
	load := middleware.LoadSession(h.store)

	app.Get("/", load, h.Show)
	app.Post("/login", load, h.Login)
	app.Post("/signup", load, h.Signup)
	app.Post("/goto-signup", load, h.action(navigation.GoToSignup))
	app.Post("/back-to-login", load, h.action(navigation.BackToLogin))
	app.Post("/logout", load, h.action(navigation.Logout))
	app.Post("/generate", middleware.RateLimiter(5, time.Minute), load, h.Generate)
	app.Post("/api/generate", middleware.RateLimiter(5, time.Minute), load, middleware.RequireAuth(), h.GenerateJSON)
}

// Show is the render step: it resolves the stored state, consumes the pending
// notice and renders the matching screen.
func (h *PageHandler) Show(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	st := navigation.Resolve(sess.State())
	sess.SetState(st)

	data := h.newPageData(st, sess.Username(), sess.TakeNotice())
	if err := sess.Save(); err != nil {
		return err
	}
	return render(c, fiber.StatusOK, data)
}

func (h *PageHandler) Login(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	username := utils.CopyString(c.FormValue("username"))

	prev := sess.State()
	next, notice, err := h.auth.Login(c.UserContext(), prev, username, c.FormValue("password"))
	if err != nil {
		log.Printf("Login attempt for %q: %v", username, err)
	}
	if next.Authenticated && !navigation.Resolve(prev).Authenticated {
		if err := sess.Regenerate(); err != nil {
			return err
		}
		sess.SetUsername(username)
	}
	return h.commit(c, sess, next, notice)
}

func (h *PageHandler) Signup(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	username := utils.CopyString(c.FormValue("username"))

	next, notice, err := h.auth.Signup(c.UserContext(), sess.State(), username, c.FormValue("password"), c.FormValue("confirm_password"))
	if err != nil {
		log.Printf("Signup attempt for %q: %v", username, err)
	}
	return h.commit(c, sess, next, notice)
}

// action handles the navigation buttons that need no external call.
func (h *PageHandler) action(kind navigation.ActionKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.CurrentSession(c)
		next, notice := navigation.Transition(sess.State(), navigation.Action{Kind: kind})
		return h.commit(c, sess, next, notice)
	}
}

// commit stores the new state and notice and sends the browser back to the render step.
func (h *PageHandler) commit(c *fiber.Ctx, sess *middleware.Session, next navigation.State, notice navigation.Notice) error {
	sess.SetState(next)
	sess.Flash(notice)
	if err := sess.Save(); err != nil {
		return err
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}
