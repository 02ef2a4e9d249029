// Package messagingrepo provides data transfer objects and mapping
// functions for contact messages and newsletter subscriptions.
package messagingrepo

import (
	"time"

	"github.com/google/uuid"

	"storefront/internal/core/domain/model/messaging"
)

// ContactMessageDTO represents the database structure for contact form
// submissions.
type ContactMessageDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	Email      string
	Subject    string
	Body       string
	ReceivedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for contact messages.
func (ContactMessageDTO) TableName() string {
	return "contact_messages"
}

// SubscriptionDTO represents the database structure for newsletter
// signups. The email column is unique; repeat signups are ignored.
type SubscriptionDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex"`
	SubscribedAt time.Time
}

// TableName specifies the database table name for subscriptions.
func (SubscriptionDTO) TableName() string {
	return "newsletter_subscriptions"
}

func contactMessageFromDomain(aggregate *messaging.ContactMessage) ContactMessageDTO {
	return ContactMessageDTO{
		ID:         aggregate.ID().Bytes(),
		Name:       aggregate.Name(),
		Email:      aggregate.Email(),
		Subject:    aggregate.Subject(),
		Body:       aggregate.Body(),
		ReceivedAt: aggregate.ReceivedAt(),
	}
}

func subscriptionFromDomain(aggregate *messaging.Subscription) SubscriptionDTO {
	return SubscriptionDTO{
		ID:           aggregate.ID().Bytes(),
		Email:        aggregate.Email(),
		SubscribedAt: aggregate.SubscribedAt(),
	}
}
