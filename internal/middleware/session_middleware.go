package middleware

import (
	"log"

	"github.com/fadilmartias/interview-prep/internal/navigation"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	keyAuthenticated = "authenticated"
	keyScreen        = "screen"
	keyUsername      = "username"
	keyNoticeLevel   = "notice_level"
	keyNoticeMessage = "notice_message"

	localsSession = "prep_session"
)

// Session is the per-browser record: navigation state, the logged-in user
// and a one-shot notice for the next render.
type Session struct {
	raw *session.Session
}

// LoadSession attaches the fiber session to the request.
func LoadSession(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return err
		}
		c.Locals(localsSession, &Session{raw: sess})
		return c.Next()
	}
}

// CurrentSession returns the session attached by LoadSession.
func CurrentSession(c *fiber.Ctx) *Session {
	s, _ := c.Locals(localsSession).(*Session)
	return s
}

func (s *Session) ID() string {
	return s.raw.ID()
}

func (s *Session) State() navigation.State {
	authenticated, _ := s.raw.Get(keyAuthenticated).(bool)
	screen, _ := s.raw.Get(keyScreen).(string)
	if screen == "" && !authenticated {
		return navigation.Initial()
	}
	return navigation.State{Authenticated: authenticated, Screen: navigation.ParseScreen(screen)}
}

func (s *Session) SetState(st navigation.State) {
	s.raw.Set(keyAuthenticated, st.Authenticated)
	s.raw.Set(keyScreen, string(st.Screen))
	if !st.Authenticated {
		s.raw.Delete(keyUsername)
	}
}

func (s *Session) Username() string {
	name, _ := s.raw.Get(keyUsername).(string)
	return name
}

func (s *Session) SetUsername(name string) {
	s.raw.Set(keyUsername, name)
}

func (s *Session) Flash(n navigation.Notice) {
	if n.Empty() {
		return
	}
	s.raw.Set(keyNoticeLevel, string(n.Level))
	s.raw.Set(keyNoticeMessage, n.Message)
}

// TakeNotice returns and clears the pending notice.
func (s *Session) TakeNotice() navigation.Notice {
	level, _ := s.raw.Get(keyNoticeLevel).(string)
	msg, _ := s.raw.Get(keyNoticeMessage).(string)
	s.raw.Delete(keyNoticeLevel)
	s.raw.Delete(keyNoticeMessage)
	return navigation.Notice{Level: navigation.Level(level), Message: msg}
}

func (s *Session) Save() error {
	if err := s.raw.Save(); err != nil {
		log.Printf("Could not save session: %v", err)
		return err
	}
	return nil
}

// RequireAuth rejects API calls from sessions that are not logged in.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := CurrentSession(c)
		if s == nil || !navigation.Resolve(s.State()).Authenticated {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Please log in first",
			})
		}
		return c.Next()
	}
}

// Regenerate issues a new session id, keeping the data. Called on login.
func (s *Session) Regenerate() error {
	return s.raw.Regenerate()
}
