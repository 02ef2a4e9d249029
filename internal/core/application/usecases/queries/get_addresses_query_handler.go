package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/core/domain/model/kernel"
)

// GetAddressesQueryHandler reads the customer's saved addresses from the
// database.
type GetAddressesQueryHandler struct {
	db *gorm.DB
}

// NewGetAddressesQueryHandler creates a handler for address book queries.
func NewGetAddressesQueryHandler(db *gorm.DB) GetAddressesQueryHandler {
	return GetAddressesQueryHandler{db: db}
}

// Handle executes the address book query, default address first.
func (h GetAddressesQueryHandler) Handle(ctx context.Context, query GetAddressesQuery) ([]AddressResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			label,
			recipient,
			line,
			phone,
			is_default
		FROM addresses
		WHERE customer_id = ?
		ORDER BY is_default DESC, label
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := make([]AddressResponse, 0)
	for rows.Next() {
		var (
			id   uuid.UUID
			resp AddressResponse
		)

		err = rows.Scan(&id, &resp.Label, &resp.Recipient, &resp.Line, &resp.Phone, &resp.IsDefault)
		if err != nil {
			return nil, err
		}

		addressID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = addressID
		addresses = append(addresses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return addresses, nil
}
