// Package porttest provides in-memory implementations of the storefront ports for tests.
package porttest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

// Accounts mirrors the postgres account rules: trimmed unique usernames, non-blank passwords.
type Accounts struct {
	mu       sync.Mutex
	accounts map[string]domain.Account
	err      error
}

func NewAccounts() *Accounts {
	return &Accounts{accounts: map[string]domain.Account{}}
}

// SetErr makes every following call fail with err until reset with nil.
func (a *Accounts) SetErr(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.err = err
}

func (a *Accounts) Count() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return len(a.accounts)
}

func (a *Accounts) Register(_ context.Context, username, password string) (domain.Account, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return domain.Account{}, fmt.Errorf("username or password is empty: %w", domain.ErrInvalidInput)
	}
	if a.err != nil {
		return domain.Account{}, a.err
	}
	if _, ok := a.accounts[username]; ok {
		return domain.Account{}, fmt.Errorf("username[%s]: %w", username, domain.ErrDuplicateUsername)
	}

	account := domain.Account{ID: int64(len(a.accounts) + 1), Username: username, Password: password}
	a.accounts[username] = account

	return account, nil
}

func (a *Accounts) Authenticate(_ context.Context, username, password string) (domain.Account, bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.err != nil {
		return domain.Account{}, false, a.err
	}

	account, ok := a.accounts[username]
	if !ok || account.Password != password {
		return domain.Account{}, false, nil
	}

	return account, true, nil
}

type Orders struct {
	mu     sync.Mutex
	orders []domain.Order
	err    error
}

func NewOrders() *Orders {
	return &Orders{}
}

// SetErr makes Append fail with err until reset with nil.
func (o *Orders) SetErr(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.err = err
}

func (o *Orders) Count() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return len(o.orders)
}

func (o *Orders) Append(_ context.Context, order domain.Order) (domain.Order, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.err != nil {
		return domain.Order{}, o.err
	}

	order.ID = int64(len(o.orders) + 1)
	order.CreatedAt = time.Now().UTC()
	o.orders = append(o.orders, order)

	return order, nil
}

func (o *Orders) Get(_ context.Context, orderID int64) (domain.Order, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, order := range o.orders {
		if order.ID == orderID {
			return order, nil
		}
	}

	return domain.Order{}, fmt.Errorf("order[%d]: %w", orderID, domain.ErrNotFound)
}

func (o *Orders) ListByUsername(_ context.Context, username string) ([]domain.Order, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	var result []domain.Order
	for i := len(o.orders) - 1; i >= 0; i-- {
		if o.orders[i].Username == username {
			result = append(result, o.orders[i])
		}
	}

	return result, nil
}

type Sessions struct {
	mu           sync.Mutex
	sessions     map[string]domain.Session
	getErr       error
	saveErr      error
	saveFailures int
}

func NewSessions() *Sessions {
	return &Sessions{sessions: map[string]domain.Session{}}
}

func (s *Sessions) SetGetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.getErr = err
}

// FailSaves makes the next n saves fail with err. Negative n fails every save.
func (s *Sessions) FailSaves(n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saveFailures = n
	s.saveErr = err
}

func (s *Sessions) Get(_ context.Context, id string) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.getErr != nil {
		return domain.Session{}, s.getErr
	}

	sess, ok := s.sessions[id]
	if !ok {
		return domain.Session{}, fmt.Errorf("session[%s]: %w", id, domain.ErrNotFound)
	}
	sess.Cart = append([]domain.ProductID{}, sess.Cart...)

	return sess, nil
}

func (s *Sessions) Save(_ context.Context, sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saveFailures != 0 {
		if s.saveFailures > 0 {
			s.saveFailures--
		}
		return s.saveErr
	}

	sess.Cart = append([]domain.ProductID{}, sess.Cart...)
	s.sessions[sess.ID] = sess

	return nil
}

func (s *Sessions) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

type Locker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewLocker() *Locker {
	return &Locker{held: map[string]struct{}{}}
}

func (l *Locker) Lock(_ context.Context, key string, _ time.Duration) (port.UnlockFunc, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.held[key]; ok {
		return nil, fmt.Errorf("key[%s]: %w", key, port.ErrLockHeld)
	}
	l.held[key] = struct{}{}

	return func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()

		delete(l.held, key)
		return nil
	}, nil
}

var (
	_ port.AccountRepository = (*Accounts)(nil)
	_ port.OrderRepository   = (*Orders)(nil)
	_ port.SessionStore      = (*Sessions)(nil)
	_ port.Locker            = (*Locker)(nil)
)
