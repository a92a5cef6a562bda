package orderflow

import "github.com/ANAVHEOBA/africgo-frontend/internal/entities"

// Preview is the informational price breakdown shown before
// submission. The backend recomputes the authoritative price when the
// order is placed.
type Preview struct {
	Subtotal      float64 `json:"subtotal"`
	DeliveryPrice float64 `json:"deliveryPrice"`
	Total         float64 `json:"total"`
}

// PricePreview derives the displayed total from a unit price, a
// quantity and the selected zone's delivery price.
func PricePreview(unitPrice float64, quantity int, zone entities.DeliveryZone) Preview {
	subtotal := unitPrice * float64(quantity)
	return Preview{
		Subtotal:      subtotal,
		DeliveryPrice: zone.DeliveryPrice,
		Total:         subtotal + zone.DeliveryPrice,
	}
}
