package models

import (
	"gorm.io/gorm"
)

// Route represents a service path between two cities with its pricing.
// A (origin, destination) pair is unique; the reverse direction is a
// separate route.
type Route struct {
	gorm.Model

	OriginID      uint `json:"origin_id" gorm:"uniqueIndex:idx_route_pair"`
	DestinationID uint `json:"destination_id" gorm:"uniqueIndex:idx_route_pair"`
	Origin        City `gorm:"foreignKey:OriginID" json:"origin,omitempty"`
	Destination   City `gorm:"foreignKey:DestinationID" json:"destination,omitempty"`

	Distance  float64 `json:"distance"`
	BasePrice float64 `json:"base_price"`
	VipPrice  float64 `json:"vip_price"`
	IsActive  bool    `json:"is_active" gorm:"default:true"`

	// Path of the route stored as a WKB LINESTRING (SRID 4326).
	// Handlers accept and emit GeoJSON.
	Geometry []byte `gorm:"type:bytea" json:"-"`

	Trips []Trip `gorm:"foreignKey:RouteID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"trips,omitempty"`
}

// PriceFor returns the per-seat price for a service type.
func (r Route) PriceFor(serviceType string) float64 {
	if serviceType == ServiceVIP {
		return r.VipPrice
	}
	return r.BasePrice
}
