// Package navigation holds the screen state machine of a browser session.
//
// Transitions are pure: Transition maps a State and an Action to the next
// State plus an optional Notice for the user. Resolve is applied before every
// render so the displayed screen always matches the authentication flag.
package navigation

type Screen string

const (
	ScreenLogin  Screen = "login"
	ScreenSignup Screen = "signup"
	ScreenMain   Screen = "main"
)

type State struct {
	Authenticated bool
	Screen        Screen
}

// Initial is the state of a fresh session.
func Initial() State {
	return State{Authenticated: false, Screen: ScreenLogin}
}

type ActionKind int

const (
	LoginSucceeded ActionKind = iota + 1
	LoginFailed
	GoToSignup
	SignupSucceeded
	SignupPasswordMismatch
	SignupFailed
	BackToLogin
	Navigate
	Logout
)

type Action struct {
	Kind ActionKind
	// Target is only read by Navigate.
	Target Screen
}

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
)

type Notice struct {
	Level   Level
	Message string
}

func (n Notice) Empty() bool {
	return n.Message == ""
}

const (
	MsgInvalidCredentials = "Invalid username or password"
	MsgSignupSucceeded    = "Signup successful! Please log in."
	MsgPasswordMismatch   = "Passwords do not match."
	MsgSignupFailed       = "Signup failed. Username might already exist."
)

// Transition applies a to s. Actions that do not belong to the current screen
// leave the state untouched.
func Transition(s State, a Action) (State, Notice) {
	s = Resolve(s)

	switch a.Kind {
	case LoginSucceeded:
		if s.Authenticated || s.Screen != ScreenLogin {
			return s, Notice{}
		}
		return State{Authenticated: true, Screen: ScreenMain}, Notice{}
	case LoginFailed:
		if s.Screen != ScreenLogin {
			return s, Notice{}
		}
		return s, Notice{Level: LevelError, Message: MsgInvalidCredentials}
	case GoToSignup:
		if s.Screen != ScreenLogin {
			return s, Notice{}
		}
		return State{Screen: ScreenSignup}, Notice{}
	case SignupSucceeded:
		if s.Screen != ScreenSignup {
			return s, Notice{}
		}
		return State{Screen: ScreenLogin}, Notice{Level: LevelSuccess, Message: MsgSignupSucceeded}
	case SignupPasswordMismatch:
		if s.Screen != ScreenSignup {
			return s, Notice{}
		}
		return s, Notice{Level: LevelError, Message: MsgPasswordMismatch}
	case SignupFailed:
		if s.Screen != ScreenSignup {
			return s, Notice{}
		}
		return s, Notice{Level: LevelError, Message: MsgSignupFailed}
	case BackToLogin:
		if s.Screen != ScreenSignup {
			return s, Notice{}
		}
		return State{Screen: ScreenLogin}, Notice{}
	case Navigate:
		return Resolve(State{Authenticated: s.Authenticated, Screen: a.Target}), Notice{}
	case Logout:
		return Initial(), Notice{}
	}
	return s, Notice{}
}

// Resolve corrects a state before rendering. An authenticated session always
// shows Main; an unauthenticated one may only show Login or Signup.
func Resolve(s State) State {
	if s.Authenticated {
		return State{Authenticated: true, Screen: ScreenMain}
	}
	switch s.Screen {
	case ScreenLogin, ScreenSignup:
		return s
	default:
		return State{Authenticated: false, Screen: ScreenLogin}
	}
}

// ParseScreen maps a stored screen name back to a Screen. Unknown names map
// to the empty Screen, which Resolve sends to Login.
func ParseScreen(name string) Screen {
	switch Screen(name) {
	case ScreenLogin, ScreenSignup, ScreenMain:
		return Screen(name)
	}
	return ""
}
