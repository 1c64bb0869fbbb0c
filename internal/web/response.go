package web

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/errx"
	"github.com/rs/zerolog/hlog"
)

const maxBodyBytes = 1 << 16

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type accountResponse struct {
	ID       int64  `json:"id,omitempty"`
	Username string `json:"username"`
}

type productResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Price      string    `json:"price"`
	Currency   string    `json:"currency"`
	Image      string    `json:"image"`
	Popularity int       `json:"popularity"`
	CreatedAt  time.Time `json:"created_at"`
}

type productListResponse struct {
	User      string            `json:"user"`
	Sort      string            `json:"sort"`
	CartCount int               `json:"cart_count"`
	Products  []productResponse `json:"products"`
}

type cartResponse struct {
	User     string            `json:"user,omitempty"`
	Items    []productResponse `json:"items"`
	Count    int               `json:"count"`
	Total    string            `json:"total"`
	Currency string            `json:"currency"`
}

type orderResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Total     string    `json:"total"`
	Currency  string    `json:"currency"`
	Items     string    `json:"items"`
	CreatedAt time.Time `json:"created_at"`
	CartStale bool      `json:"cart_stale,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:         int64(p.ID),
		Name:       p.Name,
		Price:      p.Price.Amount.String(),
		Currency:   p.Price.Currency.String(),
		Image:      p.Image,
		Popularity: p.Popularity,
		CreatedAt:  p.CreatedAt,
	}
}

func toProductResponses(products []domain.Product) []productResponse {
	resp := make([]productResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}
	return resp
}

func toCartResponse(cart domain.Cart) cartResponse {
	return cartResponse{
		User:     cart.OwnerID,
		Items:    toProductResponses(cart.Products),
		Count:    len(cart.Products),
		Total:    cart.Total.Amount.String(),
		Currency: cart.Total.Currency.String(),
	}
}

func toOrderResponse(o domain.Order) orderResponse {
	return orderResponse{
		ID:        o.ID,
		Username:  o.Username,
		Total:     o.Total.Amount.String(),
		Currency:  o.Total.Currency.String(),
		Items:     o.Items,
		CreatedAt: o.CreatedAt,
	}
}

// decodeCredentials accepts a JSON body or a classic form post.
func decodeCredentials(w http.ResponseWriter, r *http.Request) (credentials, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var creds credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			return credentials{}, errx.New(errors.Join(domain.ErrInvalidInput, err), http.StatusBadRequest, "malformed request body")
		}
		return creds, nil
	}

	if err := r.ParseForm(); err != nil {
		return credentials{}, errx.New(errors.Join(domain.ErrInvalidInput, err), http.StatusBadRequest, "malformed form")
	}

	return credentials{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// the status line is already written, an encode failure cannot be reported
	_ = json.NewEncoder(w).Encode(body)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := errx.From(err)

	event := hlog.FromRequest(r).Debug()
	if appErr.Status >= http.StatusInternalServerError {
		event = hlog.FromRequest(r).Error()
	}
	event.Err(err).Int("status", appErr.Status).Msg("request failed")

	writeJSON(w, appErr.Status, errorResponse{Error: appErr.Message})
}
