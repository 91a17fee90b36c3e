package dto

import (
	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
	"github.com/jhoicas/battery-supply-chain/pkg/format"
)

// ShipmentDTO envío con el nombre de la batería del pedido asociado.
type ShipmentDTO struct {
	ID                string `json:"id"`
	OrderID           string `json:"order_id"`
	BatteryName       string `json:"battery_name"`
	Origin            string `json:"origin"`
	Destination       string `json:"destination"`
	Status            string `json:"status"`
	StatusLabel       string `json:"status_label"`
	TrackingNumber    string `json:"tracking_number"`
	EstimatedDelivery string `json:"estimated_delivery"`
	CurrentLocation   string `json:"current_location,omitempty"`
}

// ToShipmentDTO convierte un envío; batteryName lo resuelve el llamador.
func ToShipmentDTO(s entity.Shipment, batteryName string) ShipmentDTO {
	return ShipmentDTO{
		ID:                s.ID,
		OrderID:           s.OrderID,
		BatteryName:       batteryName,
		Origin:            s.Origin,
		Destination:       s.Destination,
		Status:            string(s.Status),
		StatusLabel:       format.StatusLabel(string(s.Status)),
		TrackingNumber:    s.TrackingNumber,
		EstimatedDelivery: s.EstimatedDelivery.Format("2006-01-02"),
		CurrentLocation:   s.CurrentLocation,
	}
}
