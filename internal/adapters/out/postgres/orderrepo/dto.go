// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Order lines live in their own table; the shipping snapshot, tracking
// reference and return request are embedded as nullable column groups.
type OrderDTO struct {
	ID               uuid.UUID          `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID          `gorm:"type:uuid;index"`
	Status           int                `gorm:"index"`
	PlacedAt         time.Time          `gorm:"index"`
	DeliveredAt      *time.Time
	Total            int64
	PaymentMethod    string
	Shipping         ShippingAddressDTO `gorm:"embedded;embeddedPrefix:shipping_"`
	TrackingProvider *string
	TrackingNumber   *string
	Return           ReturnRequestDTO   `gorm:"embedded;embeddedPrefix:return_"`
	Items            []ItemDTO          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ShippingAddressDTO represents the embedded destination snapshot within the
// order table.
type ShippingAddressDTO struct {
	Recipient string
	Phone     string
	Line      string
}

// ReturnRequestDTO represents the embedded return request columns. All
// fields are nil until the customer requests a return.
type ReturnRequestDTO struct {
	Reason      *string
	Comments    *string
	RequestDate *time.Time
	Status      *int
}

// ItemDTO represents one purchased line in the order_items table. Lines are
// written once at checkout and never updated.
type ItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Name      string
	Price     int64
	Image     string
	Quantity  int
	Size      string
}

// TableName specifies the database table name for order lines.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		Status:        int(aggregate.Status()),
		PlacedAt:      aggregate.PlacedAt(),
		DeliveredAt:   aggregate.DeliveredAt(),
		Total:         aggregate.Total(),
		PaymentMethod: string(aggregate.PaymentMethod()),
		Shipping: ShippingAddressDTO{
			Recipient: aggregate.ShippingAddress().Recipient(),
			Phone:     aggregate.ShippingAddress().Phone(),
			Line:      aggregate.ShippingAddress().Address(),
		},
	}

	if tracking := aggregate.Tracking(); tracking != nil {
		provider := tracking.Provider()
		number := tracking.Number()
		dto.TrackingProvider = &provider
		dto.TrackingNumber = &number
	}

	if request := aggregate.ReturnRequest(); request != nil {
		reason := request.Reason()
		comments := request.Comments()
		requestDate := request.RequestDate()
		status := int(request.Status())
		dto.Return = ReturnRequestDTO{
			Reason:      &reason,
			Comments:    &comments,
			RequestDate: &requestDate,
			Status:      &status,
		}
	}

	for _, item := range aggregate.Items() {
		dto.Items = append(dto.Items, ItemDTO{
			ID:        uuid.New(),
			OrderID:   dto.ID,
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			Price:     item.Price(),
			Image:     item.Image(),
			Quantity:  item.Quantity(),
			Size:      item.Size(),
		})
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the optional tracking and
// return request using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, idErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}

		item, itemErr := order.NewItem(
			productID, itemDTO.Name, itemDTO.Price, itemDTO.Image, itemDTO.Quantity, itemDTO.Size,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	address, err := order.NewShippingAddress(dto.Shipping.Recipient, dto.Shipping.Phone, dto.Shipping.Line)
	if err != nil {
		return nil, err
	}

	var tracking *order.Tracking
	if dto.TrackingProvider != nil && dto.TrackingNumber != nil {
		t, trackErr := order.NewTracking(*dto.TrackingProvider, *dto.TrackingNumber)
		if trackErr != nil {
			return nil, trackErr
		}
		tracking = &t
	}

	var returnRequest *order.ReturnRequest
	if dto.Return.Reason != nil && dto.Return.RequestDate != nil && dto.Return.Status != nil {
		comments := ""
		if dto.Return.Comments != nil {
			comments = *dto.Return.Comments
		}

		r, returnErr := order.RestoreReturnRequest(
			*dto.Return.Reason, comments, *dto.Return.RequestDate, order.ReturnStatus(*dto.Return.Status),
		)
		if returnErr != nil {
			return nil, returnErr
		}
		returnRequest = &r
	}

	return order.RestoreOrder(
		id,
		customerID,
		order.Status(dto.Status),
		dto.PlacedAt,
		dto.DeliveredAt,
		dto.Total,
		items,
		address,
		order.PaymentMethod(dto.PaymentMethod),
		tracking,
		returnRequest,
	)
}
