package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/battery-supply-chain/internal/application/analytics"
	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
	"github.com/jhoicas/battery-supply-chain/internal/infrastructure/pdf"
	"github.com/jhoicas/battery-supply-chain/internal/infrastructure/sampledata"
)

func TestGenerateRevenuePDF(t *testing.T) {
	report := analytics.NewRevenueUseCase(sampledata.NewCatalog(), nil).Seller("month")
	user := entity.User{ID: "1", Name: "John Smith", Company: "Battery Retailers Inc.", Role: entity.RoleSeller}

	got, err := pdf.NewMarotoRevenueReport().GenerateRevenuePDF(context.Background(), report, user, time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(got, []byte("%PDF")))
}

func TestGenerateRevenuePDF_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := analytics.NewRevenueUseCase(sampledata.NewCatalog(), nil).Seller("")
	_, err := pdf.NewMarotoRevenueReport().GenerateRevenuePDF(ctx, report, entity.User{}, time.Now())

	assert.ErrorIs(t, err, context.Canceled)
}
