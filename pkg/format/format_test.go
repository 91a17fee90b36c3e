package format_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/battery-supply-chain/pkg/format"
)

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "In Transit", format.StatusLabel("in_transit"))
	assert.Equal(t, "Out For Delivery", format.StatusLabel("out_for_delivery"))
	assert.Equal(t, "Delivered", format.StatusLabel("delivered"))
	assert.Equal(t, "Low Stock", format.StatusLabel("low_stock"))
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "$4,499.50", format.Money(decimal.RequireFromString("4499.5")))
	assert.Equal(t, "$19.99", format.Money(decimal.RequireFromString("19.99")))
}

func TestCompactMoney(t *testing.T) {
	assert.Equal(t, "$50K", format.CompactMoney(decimal.RequireFromString("49742.50")))
	assert.Equal(t, "$0K", format.CompactMoney(decimal.Zero))
}
