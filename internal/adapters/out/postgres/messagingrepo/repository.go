package messagingrepo

import (
	"context"

	"storefront/internal/core/domain/model/messaging"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMessagingRepository implements MessagingRepository using GORM.
type GormMessagingRepository struct {
	db *gorm.DB
}

// NewGormMessagingRepository creates a new GORM messaging repository.
func NewGormMessagingRepository(db *gorm.DB) *GormMessagingRepository {
	return &GormMessagingRepository{db: db}
}

// AddContactMessage saves a contact form submission.
func (r *GormMessagingRepository) AddContactMessage(ctx context.Context, aggregate *messaging.ContactMessage) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := contactMessageFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AddSubscription saves a newsletter signup. An email that is already
// subscribed is left untouched.
func (r *GormMessagingRepository) AddSubscription(ctx context.Context, aggregate *messaging.Subscription) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := subscriptionFromDomain(aggregate)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(&dto).Error
}
