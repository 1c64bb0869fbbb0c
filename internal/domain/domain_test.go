package domain_test

import (
	"testing"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestMoneyAdd(t *testing.T) {
	sum, err := domain.NewMoney(999, currency.INR).Add(domain.NewMoney(1299, currency.INR))
	require.NoError(t, err)
	assert.True(t, sum.Equal(domain.NewMoney(2298, currency.INR)))
	assert.Equal(t, "INR 2298", sum.String())

	_, err = domain.NewMoney(1, currency.INR).Add(domain.NewMoney(1, currency.EUR))
	require.EqualError(t, err, "currency mismatch: INR != EUR")
}

func TestNewOrder(t *testing.T) {
	products := []domain.Product{
		{ID: 2, Name: "Formal Shirt", Price: domain.NewMoney(999, currency.INR)},
		{ID: 3, Name: "Denim Jeans", Price: domain.NewMoney(1299, currency.INR)},
		{ID: 2, Name: "Formal Shirt", Price: domain.NewMoney(999, currency.INR)},
	}

	order, err := domain.NewOrder("alice", products)
	require.NoError(t, err)

	assert.Equal(t, "alice", order.Username)
	assert.True(t, order.Total.Equal(domain.NewMoney(3297, currency.INR)))
	assert.Equal(t, "Formal Shirt (INR 999), Denim Jeans (INR 1299), Formal Shirt (INR 999)", order.Items)
	assert.Zero(t, order.ID)
}

func TestNewOrderErrors(t *testing.T) {
	_, err := domain.NewOrder("alice", nil)
	require.ErrorIs(t, err, domain.ErrEmptyCart)

	_, err = domain.NewOrder("alice", []domain.Product{
		{ID: 1, Price: domain.NewMoney(1, currency.INR)},
		{ID: 2, Price: domain.NewMoney(1, currency.USD)},
	})
	require.Error(t, err)
}

func TestSessionLifecycle(t *testing.T) {
	sess := domain.NewSession("sid")
	assert.False(t, sess.Authenticated())
	assert.NotNil(t, sess.Cart)

	sess.AddToCart(1)
	sess.Login("alice")
	assert.True(t, sess.Authenticated())
	assert.Empty(t, sess.Cart, "login resets the cart")

	sess.AddToCart(3)
	sess.AddToCart(3)
	sess.AddToCart(5)
	assert.Equal(t, []domain.ProductID{3, 3, 5}, sess.CartIDs())

	assert.True(t, sess.RemoveFromCart(3))
	assert.Equal(t, []domain.ProductID{3, 5}, sess.Cart)
	assert.False(t, sess.RemoveFromCart(9))

	sess.ClearCart()
	assert.Empty(t, sess.Cart)
	assert.Equal(t, "alice", sess.User)

	sess.AddToCart(1)
	sess.Logout()
	assert.False(t, sess.Authenticated())
	assert.Empty(t, sess.Cart)
	assert.Equal(t, "sid", sess.ID)
}

func TestCartIDsIsCopy(t *testing.T) {
	sess := domain.NewSession("sid")
	sess.AddToCart(1)

	ids := sess.CartIDs()
	ids[0] = 42

	assert.Equal(t, []domain.ProductID{1}, sess.Cart)
}

func TestRemoveFromCartDoesNotAliasOldSlice(t *testing.T) {
	sess := domain.NewSession("sid")
	sess.Cart = []domain.ProductID{1, 2, 3}
	before := sess.Cart

	require.True(t, sess.RemoveFromCart(1))

	assert.Equal(t, []domain.ProductID{2, 3}, sess.Cart)
	assert.Equal(t, []domain.ProductID{1, 2, 3}, before)
}
