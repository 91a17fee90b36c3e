package entity

import "time"

// ShipmentStatus etapa de un envío.
type ShipmentStatus string

const (
	ShipmentPickedUp       ShipmentStatus = "picked_up"
	ShipmentInTransit      ShipmentStatus = "in_transit"
	ShipmentOutForDelivery ShipmentStatus = "out_for_delivery"
	ShipmentDelivered      ShipmentStatus = "delivered"
)

// Shipment envío físico asociado a un pedido.
type Shipment struct {
	ID                string
	OrderID           string
	Origin            string
	Destination       string
	Status            ShipmentStatus
	TrackingNumber    string
	EstimatedDelivery time.Time
	CurrentLocation   string
}
