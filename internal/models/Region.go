package models

import (
	"gorm.io/gorm"
)

// Region represents a geographical region the company operates in.
// Reference data: rows are upserted by name and deactivated, never deleted.
type Region struct {
	gorm.Model
	Name     string `json:"name" binding:"required" gorm:"uniqueIndex"`
	Slug     string `json:"slug" gorm:"uniqueIndex"`
	IsActive bool   `json:"is_active" gorm:"default:true"`

	Cities []City `gorm:"foreignKey:RegionID" json:"cities,omitempty"`
}

// UpsertRegion reactivates an existing region by name or creates it.
func UpsertRegion(db *gorm.DB, name string) (Region, error) {
	var region Region
	err := db.Where(Region{Name: name}).
		Attrs(Region{Slug: Slugify(name), IsActive: true}).
		FirstOrCreate(&region).Error
	if err != nil {
		return region, err
	}
	if !region.IsActive {
		region.IsActive = true
		err = db.Save(&region).Error
	}
	return region, err
}
