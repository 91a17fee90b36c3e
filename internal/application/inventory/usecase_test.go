package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/battery-supply-chain/internal/application/dto"
	"github.com/jhoicas/battery-supply-chain/internal/application/inventory"
	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
	"github.com/jhoicas/battery-supply-chain/internal/infrastructure/sampledata"
)

// ── Vendedor ────────────────────────────────────────────────────────────────

func TestSeller_SinFiltro(t *testing.T) {
	uc := inventory.NewUseCase(sampledata.NewCatalog())

	got := uc.Seller(dto.SellerInventoryRequest{})

	assert.Equal(t, 5, got.TotalItems)
	assert.Equal(t, 3, got.Available)
	assert.Equal(t, 1, got.LowStock)
	assert.Len(t, got.Items, 5)
}

func TestSeller_BusquedaPorTipoSinMayusculas(t *testing.T) {
	uc := inventory.NewUseCase(sampledata.NewCatalog())

	got := uc.Seller(dto.SellerInventoryRequest{Query: "LITHIUM"})

	assert.Equal(t, 5, got.TotalItems, "los contadores no dependen del filtro")
	require.Len(t, got.Items, 3)
	assert.Equal(t, "bat001", got.Items[0].ID)
	assert.Equal(t, "bat003", got.Items[2].ID)
}

// ── Fabricante ──────────────────────────────────────────────────────────────

func TestManufacturer_EnriquecePorPosicion(t *testing.T) {
	uc := inventory.NewUseCase(sampledata.NewCatalog())

	got := uc.Manufacturer(dto.ManufacturerInventoryRequest{})

	assert.Equal(t, 750, got.TotalUnits)
	assert.Equal(t, 1, got.LowStock)
	assert.Equal(t, 1, got.OutOfStock)
	assert.Equal(t, "$49,742.50", got.TotalValueLabel)
	assert.Equal(t, "all", got.Filters.Status)
	require.Len(t, got.Items, 5)
	assert.Equal(t, "Mumbai", got.Items[0].Location)
	assert.Equal(t, "+91 9000000000", got.Items[0].Contact)
	assert.Equal(t, "Pune", got.Items[4].Location)
	assert.Equal(t, "+91 9000444444", got.Items[4].Contact)
}

func TestManufacturer_Filtros(t *testing.T) {
	uc := inventory.NewUseCase(sampledata.NewCatalog())

	tests := []struct {
		name string
		req  dto.ManufacturerInventoryRequest
		want []string
	}{
		{"busqueda por ubicacion", dto.ManufacturerInventoryRequest{Query: "delhi"}, []string{"bat003"}},
		{"estado", dto.ManufacturerInventoryRequest{Status: "out_of_stock"}, []string{"bat005"}},
		{"ubicacion exacta", dto.ManufacturerInventoryRequest{Location: "Bangalore"}, []string{"bat002"}},
		{"combinados sin resultado", dto.ManufacturerInventoryRequest{Status: "available", Location: "Delhi"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := uc.Manufacturer(tt.req)
			var ids []string
			for _, it := range got.Items {
				ids = append(ids, it.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

// ── Logística ───────────────────────────────────────────────────────────────

func TestCargo_SoloEnviosNoEntregadosDeLaEmpresa(t *testing.T) {
	uc := inventory.NewUseCase(sampledata.NewCatalog())

	got := uc.Cargo(entity.User{Company: "FastShip Logistics"})

	require.Len(t, got.Items, 2)
	assert.Equal(t, "shp002", got.Items[0].ShipmentID)
	assert.Equal(t, "Picked Up", got.Items[1].StatusLabel)
	assert.Equal(t, 40, got.TotalUnits)

	none := uc.Cargo(entity.User{Company: "Acme"})
	assert.Empty(t, none.Items)
	assert.Zero(t, none.TotalUnits)
}
