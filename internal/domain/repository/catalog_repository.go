package repository

import "github.com/jhoicas/battery-supply-chain/internal/domain/entity"

// CatalogRepository puerto de lectura de los datos de muestra de la cadena de suministro.
// Las implementaciones devuelven copias: el llamador puede modificarlas sin afectar la fuente.
type CatalogRepository interface {
	Batteries() []entity.Battery
	Orders() []entity.Order
	Shipments() []entity.Shipment
}
