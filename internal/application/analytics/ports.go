package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/battery-supply-chain/internal/application/dto"
	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
)

// RevenueReportGenerator renderiza el reporte de ingresos (implementación: infrastructure/pdf).
type RevenueReportGenerator interface {
	GenerateRevenuePDF(ctx context.Context, report *dto.RevenueReportDTO, issuedTo entity.User, issuedAt time.Time) ([]byte, error)
}
