package orders_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/battery-supply-chain/internal/application/dto"
	"github.com/jhoicas/battery-supply-chain/internal/application/orders"
	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
	"github.com/jhoicas/battery-supply-chain/internal/infrastructure/sampledata"
)

func ids(items []dto.OrderDTO) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestSeller_Pestanas(t *testing.T) {
	uc := orders.NewUseCase(sampledata.NewCatalog())

	source := uc.Seller(dto.SellerOrdersRequest{})
	assert.Equal(t, orders.TabSource, source.Tab)
	assert.Equal(t, []string{"ord001", "ord002", "ord003"}, ids(source.Items))
	assert.Equal(t, 4, source.TotalOrders)
	assert.Equal(t, 3, source.ActiveOrders)
	assert.Equal(t, 1, source.CompletedOrders)

	received := uc.Seller(dto.SellerOrdersRequest{Tab: orders.TabReceived})
	assert.Equal(t, []string{"ord004"}, ids(received.Items))
	assert.Equal(t, "2025-12-28", received.Items[0].OrderDate)
}

func TestManufacturer_Filtros(t *testing.T) {
	uc := orders.NewUseCase(sampledata.NewCatalog())

	tests := []struct {
		filter string
		want   []string
	}{
		{"", []string{"ord001", "ord002", "ord003", "ord004"}},
		{orders.FilterReceived, []string{"ord001", "ord002", "ord003", "ord004"}},
		{orders.FilterAccepted, []string{"ord001", "ord002", "ord003"}},
		{orders.FilterInTransit, []string{"ord002"}},
		{orders.FilterMoreInfo, []string{"ord004"}},
	}
	for _, tt := range tests {
		t.Run("filtro_"+tt.filter, func(t *testing.T) {
			got := uc.Manufacturer(dto.ManufacturerOrdersRequest{Status: tt.filter})
			assert.Equal(t, tt.want, ids(got.Items))
			assert.Equal(t, 4, got.Received)
			assert.Equal(t, 3, got.Accepted)
			assert.Equal(t, 1, got.InTransit)
			assert.Equal(t, 1, got.NeedsInfo)
		})
	}
}

func TestLogistics_SoloPedidosAsignados(t *testing.T) {
	uc := orders.NewUseCase(sampledata.NewCatalog())

	got := uc.Logistics(entity.User{Company: "FastShip Logistics"})

	assert.Equal(t, "FastShip Logistics", got.Provider)
	require.Len(t, got.Items, 3)
	assert.NotContains(t, ids(got.Items), "ord004")

	none := uc.Logistics(entity.User{})
	assert.Empty(t, none.Items, "una empresa vacía no coincide con pedidos sin operador")
}
