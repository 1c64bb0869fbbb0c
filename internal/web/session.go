package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/errx"
)

type sessionKey struct{}

type CookieConfig struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// sessionFrom returns the request's session. withSession guarantees it is set.
func sessionFrom(ctx context.Context) *domain.Session {
	sess, _ := ctx.Value(sessionKey{}).(*domain.Session)
	return sess
}

// withSession loads the session named by the cookie, or starts a fresh unsaved one.
func (h *Handler) withSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := h.loadSession(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey{}, &sess)
		next(w, r.WithContext(ctx))
	}
}

func (h *Handler) loadSession(r *http.Request) (domain.Session, error) {
	cookie, err := r.Cookie(h.cookie.Name)
	if err != nil || cookie.Value == "" {
		return domain.NewSession(h.newID()), nil
	}

	sess, err := h.sessions.Get(r.Context(), cookie.Value)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewSession(h.newID()), nil
		}
		return domain.Session{}, err
	}

	return sess, nil
}

func (h *Handler) saveSession(w http.ResponseWriter, r *http.Request, sess *domain.Session) error {
	if err := h.sessions.Save(r.Context(), *sess); err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    sess.ID,
		Path:     "/",
		MaxAge:   int(h.cookie.TTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

func (h *Handler) expireCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func requireUser(sess *domain.Session) error {
	if !sess.Authenticated() {
		return errx.New(domain.ErrNotAuthenticated, http.StatusUnauthorized, "please log in")
	}
	return nil
}
