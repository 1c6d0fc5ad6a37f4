package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotal(t *testing.T) {
	items := []CartLine{
		{ProductID: "p1", Price: 1000, Quantity: 2},
		{ProductID: "p2", Price: 500, Quantity: 1},
	}

	assert.Equal(t, 2500.0, CalculateTotal(items))
	assert.Equal(t, 0.0, CalculateTotal(nil))
	assert.Equal(t, 0.0, CalculateTotal([]CartLine{}))
}

func TestCountItems(t *testing.T) {
	items := []CartLine{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 3},
	}

	assert.Equal(t, 5, CountItems(items))
	assert.Equal(t, 0, CountItems(nil))
}

func TestSubtotal(t *testing.T) {
	line := CartLine{Price: 19.99, Quantity: 3}
	assert.InDelta(t, 59.97, line.Subtotal(), 1e-9)
}
