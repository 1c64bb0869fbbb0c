// Package web exposes the storefront over HTTP with JSON bodies and a session cookie.
package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/errx"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/service"
	"github.com/nikolayk812/storefront/internal/session"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

type Handler struct {
	svc      *service.Storefront
	sessions port.SessionStore
	cookie   CookieConfig
	checks   map[string]HealthCheck
	newID    func() string
}

type Option func(*Handler)

func WithHealthCheck(name string, check HealthCheck) Option {
	return func(h *Handler) {
		h.checks[name] = check
	}
}

// WithIDGenerator replaces the session id generator.
func WithIDGenerator(newID func() string) Option {
	return func(h *Handler) {
		h.newID = newID
	}
}

func New(svc *service.Storefront, sessions port.SessionStore, cookie CookieConfig, opts ...Option) *Handler {
	if cookie.Name == "" {
		cookie.Name = "sid"
	}
	if cookie.TTL <= 0 {
		cookie.TTL = 24 * time.Hour
	}

	h := &Handler{
		svc:      svc,
		sessions: sessions,
		cookie:   cookie,
		checks:   map[string]HealthCheck{},
		newID:    session.NewID,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Routes returns the router wrapped in request logging.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /products", h.withSession(h.listProducts))
	mux.HandleFunc("POST /register", h.register)
	mux.HandleFunc("POST /login", h.withSession(h.login))
	mux.HandleFunc("POST /logout", h.withSession(h.logout))
	mux.HandleFunc("GET /cart", h.withSession(h.getCart))
	mux.HandleFunc("POST /cart/items/{id}", h.withSession(h.addToCart))
	mux.HandleFunc("DELETE /cart/items/{id}", h.withSession(h.removeFromCart))
	mux.HandleFunc("POST /checkout", h.withSession(h.checkout))
	mux.HandleFunc("GET /orders", h.withSession(h.listOrders))
	mux.HandleFunc("GET /orders/{id}", h.getOrder)
	mux.HandleFunc("GET /healthz", h.health)

	var handler http.Handler = mux
	handler = hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	})(handler)
	handler = hlog.NewHandler(log.Logger)(handler)

	return handler
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	if err := requireUser(sess); err != nil {
		h.writeError(w, r, err)
		return
	}

	sort := port.ParseSortKey(r.URL.Query().Get("sort"))
	products := h.svc.Products(sort)

	writeJSON(w, http.StatusOK, productListResponse{
		User:      sess.User,
		Sort:      string(sort),
		CartCount: len(sess.Cart),
		Products:  toProductResponses(products),
	})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	creds, err := decodeCredentials(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	account, err := h.svc.Register(r.Context(), creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			err = errx.New(err, http.StatusBadRequest, "username and password are required")
		}
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, accountResponse{ID: account.ID, Username: account.Username})
}

// login binds the user to a new session id so a pre-login cookie cannot be reused.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())

	creds, err := decodeCredentials(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	next := domain.NewSession(h.newID())
	if err := h.svc.Login(r.Context(), &next, creds.Username, creds.Password); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.saveSession(w, r, &next); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.sessions.Delete(r.Context(), sess.ID); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("failed to drop previous session")
	}

	writeJSON(w, http.StatusOK, accountResponse{Username: next.User})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())

	if err := h.sessions.Delete(r.Context(), sess.ID); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.svc.Logout(sess)
	h.expireCookie(w)

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	h.writeCart(w, r, sessionFrom(r.Context()))
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())

	id, err := productIDFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if h.svc.AddToCart(sess, id) {
		if err := h.saveSession(w, r, sess); err != nil {
			h.writeError(w, r, err)
			return
		}
	}

	h.writeCart(w, r, sess)
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())

	id, err := productIDFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if h.svc.RemoveFromCart(sess, id) {
		if err := h.saveSession(w, r, sess); err != nil {
			h.writeError(w, r, err)
			return
		}
	}

	h.writeCart(w, r, sess)
}

func (h *Handler) writeCart(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	cart, err := h.svc.Cart(sess)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCartResponse(cart))
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	if err := requireUser(sess); err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.svc.CheckoutSession(r.Context(), sess.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := toOrderResponse(result.Order)
	if !result.CartSaved {
		hlog.FromRequest(r).Warn().Int64("orderID", result.Order.ID).Msg("order placed with stale cart")
		resp.CartStale = true
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.Orders(r.Context(), sessionFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.writeError(w, r, errx.New(err, http.StatusNotFound, "not found"))
		return
	}

	order, err := h.svc.Order(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(order))
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	result := make(map[string]string, len(h.checks))

	for name, check := range h.checks {
		if err := check(r.Context()); err != nil {
			hlog.FromRequest(r).Error().Err(err).Str("dependency", name).Msg("health check failed")
			result[name] = "down"
			status = http.StatusServiceUnavailable
			continue
		}
		result[name] = "up"
	}

	writeJSON(w, status, result)
}

func productIDFrom(r *http.Request) (domain.ProductID, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, errx.New(errors.Join(domain.ErrInvalidInput, err), http.StatusBadRequest, "invalid product id")
	}

	return domain.ProductID(id), nil
}
