// Package dishrepo provides the GORM-backed dish repository and its data
// transfer objects, implementing the same ports contract as the in-memory
// adapter so storage can be swapped by configuration.
package dishrepo

import (
	"grubdash/internal/core/domain/model/dish"
)

// DishDTO represents the database structure for persisting dishes.
// Seq is a serial column used to reproduce insertion order for All.
type DishDTO struct {
	ID          string `gorm:"primaryKey"`
	Seq         int64  `gorm:"autoIncrement;uniqueIndex"`
	Name        string
	Description string
	Price       int
	ImageURL    string `gorm:"column:image_url"`
}

// TableName specifies the database table name for dish records.
func (DishDTO) TableName() string {
	return "dishes"
}

func fromDomain(d *dish.Dish) DishDTO {
	return DishDTO{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		ImageURL:    d.ImageURL,
	}
}

func toDomain(dto DishDTO) *dish.Dish {
	return &dish.Dish{
		ID:          dto.ID,
		Name:        dto.Name,
		Description: dto.Description,
		Price:       dto.Price,
		ImageURL:    dto.ImageURL,
	}
}
