package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartRecalculate(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{Price: 20.00, Quantity: 2},
			{Price: 5.99, Quantity: 3},
		},
	}
	cart.Recalculate()
	assert.Equal(t, 57.97, cart.TotalPrice)

	cart.Items = nil
	cart.Recalculate()
	assert.Zero(t, cart.TotalPrice)
}

func TestOrderStatusValid(t *testing.T) {
	for _, status := range []OrderStatus{OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled} {
		assert.True(t, status.Valid(), "status %q", status)
	}
	assert.False(t, OrderStatus("teleported").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestUserIsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleUser}).IsAdmin())
	assert.False(t, (&User{}).IsAdmin())
}
