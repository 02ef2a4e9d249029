package cartrepo

import (
	"context"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves the customer's cart. A customer with no stored lines gets
// an empty cart, not an error.
func (r *GormCartRepository) Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "customer_id = ?", customerID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomain(customerID, dtos)
}

// Save replaces the customer's stored cart with the given aggregate. The
// lines are rewritten wholesale; the cart has no row of its own.
func (r *GormCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Delete(&ItemDTO{}, "customer_id = ?", aggregate.CustomerID().Bytes()).Error; err != nil {
		return err
	}

	if dtos := fromDomain(aggregate); len(dtos) > 0 {
		if err := db.Create(&dtos).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.CustomerID(), aggregate)
	return nil
}
