package models

import (
	"gorm.io/gorm"
)

// City is a town inside a region. Routes reference cities as origin and
// destination endpoints.
type City struct {
	gorm.Model
	Name     string `json:"name" binding:"required"`
	Slug     string `json:"slug" gorm:"uniqueIndex"`
	RegionID uint   `json:"region_id" gorm:"index"`
	Region   Region `gorm:"foreignKey:RegionID" json:"region,omitempty"`
	Abbr     string `json:"abbr"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}

// UpsertCity reactivates an existing city within a region or creates it.
func UpsertCity(db *gorm.DB, name string, regionID uint, abbr string) (City, error) {
	var city City
	err := db.Where(City{Name: name, RegionID: regionID}).
		Attrs(City{Slug: Slugify(name), Abbr: abbr, IsActive: true}).
		FirstOrCreate(&city).Error
	if err != nil {
		return city, err
	}
	if !city.IsActive {
		city.IsActive = true
		err = db.Save(&city).Error
	}
	return city, err
}
