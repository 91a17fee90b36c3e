package analytics_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/battery-supply-chain/internal/application/analytics"
	"github.com/jhoicas/battery-supply-chain/internal/application/dto"
	"github.com/jhoicas/battery-supply-chain/internal/domain"
	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
	"github.com/jhoicas/battery-supply-chain/internal/infrastructure/sampledata"
)

type fakeGenerator struct {
	report   *dto.RevenueReportDTO
	issuedTo entity.User
	err      error
}

func (f *fakeGenerator) GenerateRevenuePDF(_ context.Context, report *dto.RevenueReportDTO, issuedTo entity.User, _ time.Time) ([]byte, error) {
	f.report = report
	f.issuedTo = issuedTo
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRevenue_Seller(t *testing.T) {
	uc := analytics.NewRevenueUseCase(sampledata.NewCatalog(), nil)

	got := uc.Seller("")

	assert.Equal(t, analytics.DefaultPeriod, got.Period)
	assert.True(t, dec("16998.10").Equal(got.TotalRevenue))
	assert.Equal(t, 1, got.PaidOrders)
	assert.Equal(t, 3, got.PendingPayments)
	assert.Equal(t, 4, got.TotalOrders)
	assert.True(t, dec("4499.50").Equal(got.Breakdown.Delivered))
	assert.True(t, dec("10499.60").Equal(got.Breakdown.Processing))
	assert.True(t, dec("1999.00").Equal(got.Breakdown.Pending))

	require.Len(t, got.TopProducts, 5)
	ids := make([]string, 0, 5)
	for _, p := range got.TopProducts {
		ids = append(ids, p.BatteryID)
	}
	assert.Equal(t, []string{"bat003", "bat002", "bat001", "bat004", "bat005"}, ids)
	assert.Equal(t, 10, got.TopProducts[0].Quantity)
	assert.Equal(t, 1, got.TopProducts[0].OrderCount)
	assert.Zero(t, got.TopProducts[4].OrderCount)
}

func TestRevenue_Seller_CanceladosNoSonPagosPendientes(t *testing.T) {
	catalog := sampledata.NewCatalogWith(nil, []entity.Order{
		{ID: "o1", TotalPrice: dec("10"), Status: entity.OrderCancelled},
		{ID: "o2", TotalPrice: dec("5"), Status: entity.OrderPending},
	}, nil)
	uc := analytics.NewRevenueUseCase(catalog, nil)

	got := uc.Seller("week")

	assert.Equal(t, "week", got.Period)
	assert.Equal(t, 1, got.PendingPayments)
	assert.Zero(t, got.PaidOrders)
	assert.True(t, dec("15").Equal(got.TotalRevenue))
}

func TestRevenue_ExportSellerPDF(t *testing.T) {
	gen := &fakeGenerator{}
	uc := analytics.NewRevenueUseCase(sampledata.NewCatalog(), gen)
	user := demoUser(t, entity.RoleSeller)

	data, filename, err := uc.ExportSellerPDF(context.Background(), user, "year")

	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(data))
	assert.True(t, strings.HasPrefix(filename, "revenue-year-"), filename)
	assert.True(t, strings.HasSuffix(filename, ".pdf"))
	require.NotNil(t, gen.report)
	assert.Equal(t, "year", gen.report.Period)
	assert.Equal(t, user.ID, gen.issuedTo.ID)
}

func TestRevenue_ExportSellerPDF_Errores(t *testing.T) {
	user := demoUser(t, entity.RoleSeller)

	_, _, err := analytics.NewRevenueUseCase(sampledata.NewCatalog(), nil).ExportSellerPDF(context.Background(), user, "")
	assert.ErrorIs(t, err, domain.ErrExportUnavailable)

	boom := errors.New("boom")
	_, _, err = analytics.NewRevenueUseCase(sampledata.NewCatalog(), &fakeGenerator{err: boom}).ExportSellerPDF(context.Background(), user, "")
	assert.ErrorIs(t, err, boom)
}

func TestRevenue_Manufacturer(t *testing.T) {
	uc := analytics.NewRevenueUseCase(sampledata.NewCatalog(), nil)

	got := uc.Manufacturer(demoUser(t, entity.RoleManufacturer))

	assert.True(t, dec("16998.10").Equal(got.OrdersValue))
	assert.Equal(t, "$49,742.50", got.InventoryValueLabel)
	require.NotEmpty(t, got.TopProducts)
	assert.Equal(t, "bat003", got.TopProducts[0].BatteryID)
}

func TestRevenue_Logistics(t *testing.T) {
	uc := analytics.NewRevenueUseCase(sampledata.NewCatalog(), nil)

	got := uc.Logistics(demoUser(t, entity.RoleLogistics))

	assert.True(t, dec("14999.10").Equal(got.TotalValue), got.TotalValue.String())
	require.Len(t, got.ByStatus, 4)
	assert.Equal(t, "picked_up", got.ByStatus[0].Status)
	assert.Equal(t, 1, got.ByStatus[0].Shipments)
	assert.True(t, dec("5999.90").Equal(got.ByStatus[0].Value))
	assert.Equal(t, "Out For Delivery", got.ByStatus[2].StatusLabel)
	assert.Zero(t, got.ByStatus[2].Shipments)

	other := uc.Logistics(entity.User{Company: "Acme"})
	assert.True(t, other.TotalValue.IsZero())
}
