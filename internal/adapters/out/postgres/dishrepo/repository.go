package dishrepo

import (
	"context"
	"errors"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDishRepository implements ports.DishRepository using GORM.
type GormDishRepository struct {
	db *gorm.DB
}

// NewGormDishRepository creates a new GORM dish repository.
func NewGormDishRepository(db *gorm.DB) *GormDishRepository {
	return &GormDishRepository{db: db}
}

// FindByID retrieves a dish by id.
func (r *GormDishRepository) FindByID(ctx context.Context, id string) (*dish.Dish, error) {
	var dto DishDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dishId", id)
		}
		return nil, err
	}
	return toDomain(dto), nil
}

// Append saves a new dish to the database.
func (r *GormDishRepository) Append(ctx context.Context, d *dish.Dish) error {
	dto := fromDomain(d)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves a full replace of an existing dish.
func (r *GormDishRepository) Update(ctx context.Context, d *dish.Dish) error {
	dto := fromDomain(d)
	result := r.db.WithContext(ctx).Model(&DishDTO{}).Where("id = ?", dto.ID).
		Select("Name", "Description", "Price", "ImageURL").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dishId", d.ID)
	}
	return nil
}

// All retrieves the full collection in insertion order.
func (r *GormDishRepository) All(ctx context.Context) ([]*dish.Dish, error) {
	var dtos []DishDTO
	if err := r.db.WithContext(ctx).Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	dishes := make([]*dish.Dish, 0, len(dtos))
	for _, dto := range dtos {
		dishes = append(dishes, toDomain(dto))
	}
	return dishes, nil
}
