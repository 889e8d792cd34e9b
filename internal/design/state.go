package design

import (
	"context"
	"net/http"
	"time"
)

// CookieName holds the last-selected variant in the browser.
const CookieName = "tg_design"

const cookieMaxAge = 365 * 24 * time.Hour

// Store issues per-request Sessions backed by a browser cookie. Nothing is
// kept on the server.
type Store struct {
	secure bool
}

// NewStore returns a Store. secure marks the cookie HTTPS-only.
func NewStore(secure bool) *Store {
	return &Store{secure: secure}
}

// Session is the design state of one browser for the duration of a request.
type Session struct {
	w       http.ResponseWriter
	secure  bool
	current Variant
}

// Load reads the stored variant from r. Unknown or missing values leave
// the session at Default.
func (s *Store) Load(w http.ResponseWriter, r *http.Request) *Session {
	sess := &Session{w: w, secure: s.secure, current: Default}
	if c, err := r.Cookie(CookieName); err == nil {
		if v, ok := ParseVariant(c.Value); ok {
			sess.current = v
		}
	}
	return sess
}

// Current returns the active variant. It never fails.
func (s *Session) Current() Variant {
	if s == nil || s.current == "" {
		return Default
	}
	return s.current
}

// Set makes v the active variant and persists it. Values outside the closed
// set are rejected and the prior value is kept; the return value reports
// whether v was accepted.
func (s *Session) Set(v Variant) bool {
	if _, ok := ParseVariant(string(v)); !ok {
		return false
	}
	s.current = v
	if s.w != nil {
		http.SetCookie(s.w, &http.Cookie{
			Name:     CookieName,
			Value:    string(v),
			Path:     "/",
			MaxAge:   int(cookieMaxAge.Seconds()),
			HttpOnly: true,
			Secure:   s.secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return true
}

type ctxKey struct{}

// WithSession returns a copy of ctx carrying sess.
func WithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

// SessionFromCtx returns the session stored by Middleware, or nil.
func SessionFromCtx(ctx context.Context) *Session {
	sess, _ := ctx.Value(ctxKey{}).(*Session)
	return sess
}

// FromCtx returns the active variant for the request, Default when no
// session is present.
func FromCtx(ctx context.Context) Variant {
	return SessionFromCtx(ctx).Current()
}

// Middleware loads the design session for every request. On a themed home
// route the route's variant is forced into the session, so following a
// link to /home-b switches the whole site to the industrial design.
func (s *Store) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := s.Load(w, r)
		if v, ok := ResolveFromPath(r.URL.Path); ok && v != sess.Current() {
			sess.Set(v)
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
	})
}
