package api

import (
	"context"
	"net/http"

	"github.com/ANAVHEOBA/africgo-frontend/internal/entities"
)

// DeliveryZones fetches the read-only zone reference data.
func (c *Client) DeliveryZones(ctx context.Context) ([]entities.DeliveryZone, error) {
	var zones []entities.DeliveryZone
	err := c.read(ctx, request{
		name:     "zones.list",
		method:   http.MethodGet,
		path:     "/api/zones",
		fallback: "failed to fetch delivery zones",
	}, &zones)
	return zones, err
}
