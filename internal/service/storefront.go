// Package service implements the storefront use cases on top of the catalog,
// the account and order repositories and the session store.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	logx "github.com/nikolayk812/storefront/pkg/logger"
	"golang.org/x/text/currency"
)

const (
	defaultLockTTL = 10 * time.Second
	saveAttempts   = 2
)

type Storefront struct {
	catalog  port.Catalog
	accounts port.AccountRepository
	orders   port.OrderRepository
	sessions port.SessionStore
	locker   port.Locker

	lockTTL  time.Duration
	currency currency.Unit
}

type Option func(*Storefront)

// WithLocker serialises checkouts of the same session.
func WithLocker(locker port.Locker, ttl time.Duration) Option {
	return func(s *Storefront) {
		s.locker = locker
		if ttl > 0 {
			s.lockTTL = ttl
		}
	}
}

// WithCurrency sets the currency of an empty cart total.
func WithCurrency(unit currency.Unit) Option {
	return func(s *Storefront) {
		s.currency = unit
	}
}

func New(
	catalog port.Catalog,
	accounts port.AccountRepository,
	orders port.OrderRepository,
	sessions port.SessionStore,
	opts ...Option,
) *Storefront {
	s := &Storefront{
		catalog:  catalog,
		accounts: accounts,
		orders:   orders,
		sessions: sessions,
		lockTTL:  defaultLockTTL,
		currency: currency.INR,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// asStorage classifies err as domain.ErrStorage unless it already carries a domain error kind.
func asStorage(err error) error {
	for _, kind := range []error{
		domain.ErrStorage,
		domain.ErrInvalidInput,
		domain.ErrDuplicateUsername,
		domain.ErrNotFound,
	} {
		if errors.Is(err, kind) {
			return err
		}
	}

	return fmt.Errorf("%w: %w", domain.ErrStorage, err)
}

func (s *Storefront) Register(ctx context.Context, username, password string) (domain.Account, error) {
	account, err := s.accounts.Register(ctx, username, password)
	if err != nil {
		err = asStorage(err)
		if errors.Is(err, domain.ErrStorage) {
			logx.Error().Err(err).Str("username", username).Msg("failed to register account")
		}
		return domain.Account{}, fmt.Errorf("accounts.Register: %w", err)
	}

	logx.Info().Int64("accountID", account.ID).Str("username", account.Username).Msg("account registered")

	return account, nil
}

// Login binds the account to sess and empties its cart.
func (s *Storefront) Login(ctx context.Context, sess *domain.Session, username, password string) error {
	account, ok, err := s.accounts.Authenticate(ctx, username, password)
	if err != nil {
		return fmt.Errorf("accounts.Authenticate: %w", asStorage(err))
	}
	if !ok {
		logx.Debug().Str("username", username).Msg("login rejected")
		return domain.ErrInvalidCredentials
	}

	sess.Login(account.Username)

	return nil
}

func (s *Storefront) Logout(sess *domain.Session) {
	sess.Logout()
}

func (s *Storefront) Products(sort port.SortKey) []domain.Product {
	return s.catalog.List(sort)
}

func (s *Storefront) Product(id domain.ProductID) (domain.Product, error) {
	p, ok := s.catalog.Get(id)
	if !ok {
		return domain.Product{}, fmt.Errorf("product[%d]: %w", id, domain.ErrNotFound)
	}

	return p, nil
}

// AddToCart appends id when the catalog knows it and reports whether it did.
func (s *Storefront) AddToCart(sess *domain.Session, id domain.ProductID) bool {
	if !s.catalog.Exists(id) {
		return false
	}

	sess.AddToCart(id)
	return true
}

func (s *Storefront) RemoveFromCart(sess *domain.Session, id domain.ProductID) bool {
	return sess.RemoveFromCart(id)
}

// Cart resolves the session cart against the catalog, skipping stale ids.
func (s *Storefront) Cart(sess *domain.Session) (domain.Cart, error) {
	products := s.catalog.GetMany(sess.CartIDs())

	total, err := domain.Total(products)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("domain.Total: %w", err)
	}
	if len(products) == 0 {
		total = domain.NewMoney(0, s.currency)
	}

	return domain.Cart{
		OwnerID:  sess.User,
		Products: products,
		Total:    total,
	}, nil
}

// Checkout turns the cart into a stored order and empties the cart.
// On any error the cart is left as it was.
func (s *Storefront) Checkout(ctx context.Context, sess *domain.Session) (domain.Order, error) {
	if !sess.Authenticated() {
		return domain.Order{}, domain.ErrNotAuthenticated
	}

	products := s.catalog.GetMany(sess.CartIDs())
	if len(products) == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}

	order, err := domain.NewOrder(sess.User, products)
	if err != nil {
		return domain.Order{}, fmt.Errorf("domain.NewOrder: %w", err)
	}

	stored, err := s.orders.Append(ctx, order)
	if err != nil {
		err = asStorage(err)
		logx.Error().Err(err).Str("username", sess.User).Msg("failed to place order")
		return domain.Order{}, fmt.Errorf("orders.Append: %w", err)
	}

	sess.ClearCart()

	logx.Info().
		Int64("orderID", stored.ID).
		Str("username", stored.Username).
		Stringer("total", stored.Total).
		Int("items", len(products)).
		Msg("order placed")

	return stored, nil
}

// CheckoutResult is the outcome of CheckoutSession.
type CheckoutResult struct {
	Session domain.Session
	Order   domain.Order
	// CartSaved is false when the order was placed but the emptied cart could not be
	// persisted, so the stored session still holds the ordered items.
	CartSaved bool
}

// CheckoutSession runs Checkout on the stored session identified by sessionID while
// holding the session's checkout lock, then persists the emptied cart.
// A concurrent checkout of the same session fails with domain.ErrCheckoutInProgress.
func (s *Storefront) CheckoutSession(ctx context.Context, sessionID string) (CheckoutResult, error) {
	if s.locker != nil {
		unlock, err := s.locker.Lock(ctx, "checkout:"+sessionID, s.lockTTL)
		if err != nil {
			if errors.Is(err, port.ErrLockHeld) {
				return CheckoutResult{}, domain.ErrCheckoutInProgress
			}
			return CheckoutResult{}, fmt.Errorf("locker.Lock: %w: %w", domain.ErrStorage, err)
		}
		defer func() {
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				logx.Warn().Err(err).Str("sessionID", sessionID).Msg("failed to release checkout lock")
			}
		}()
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return CheckoutResult{}, domain.ErrNotAuthenticated
		}
		return CheckoutResult{}, fmt.Errorf("sessions.Get: %w: %w", domain.ErrStorage, err)
	}

	order, err := s.Checkout(ctx, &sess)
	if err != nil {
		return CheckoutResult{Session: sess}, err
	}

	// the order is durable at this point, so the save is retried once and then reported
	result := CheckoutResult{Session: sess, Order: order, CartSaved: true}
	for attempt := 1; ; attempt++ {
		err := s.sessions.Save(ctx, sess)
		if err == nil {
			break
		}

		logx.Error().Err(err).
			Int("attempt", attempt).
			Int64("orderID", order.ID).
			Str("sessionID", sessionID).
			Msg("failed to clear cart after checkout")

		if attempt == saveAttempts {
			result.CartSaved = false
			break
		}
	}

	return result, nil
}

func (s *Storefront) Order(ctx context.Context, orderID int64) (domain.Order, error) {
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders.Get: %w", err)
	}

	return order, nil
}

// Orders lists the signed-in user's orders, newest first.
func (s *Storefront) Orders(ctx context.Context, sess *domain.Session) ([]domain.Order, error) {
	if !sess.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}

	orders, err := s.orders.ListByUsername(ctx, sess.User)
	if err != nil {
		return nil, fmt.Errorf("orders.ListByUsername: %w", err)
	}

	return orders, nil
}
