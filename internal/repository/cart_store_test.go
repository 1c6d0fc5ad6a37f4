package repository

import (
	"encoding/json"
	"testing"

	"github.com/YOBOUEARNAUD/e-commerce/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCartRoundTrip(t *testing.T) {
	cart := &model.Cart{
		UserID: "u1",
		Items: []model.CartLine{
			{ProductID: "p1", Name: "a", Price: 1000, Quantity: 2, Image: "a.jpg"},
		},
	}
	data, err := json.Marshal(cart)
	require.NoError(t, err)

	decoded := decodeCart("u1", data)
	assert.Equal(t, cart.Items, decoded.Items)
	assert.Equal(t, "u1", decoded.UserID)
}

func TestDecodeCartCorruptPayload(t *testing.T) {
	decoded := decodeCart("u1", []byte("{not json"))

	// a broken payload degrades to an empty cart, it never fails the session
	assert.Equal(t, "u1", decoded.UserID)
	assert.NotNil(t, decoded.Items)
	assert.Empty(t, decoded.Items)
}

func TestDecodeCartNilItems(t *testing.T) {
	decoded := decodeCart("u1", []byte(`{"userId":"u1"}`))
	assert.NotNil(t, decoded.Items)
}

func TestCartKey(t *testing.T) {
	assert.Equal(t, "cart:u1", cartKey("u1"))
}
