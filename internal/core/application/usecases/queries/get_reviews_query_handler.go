package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/core/domain/model/kernel"
)

// GetReviewsQueryHandler reads a product's reviews from the database.
type GetReviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetReviewsQueryHandler creates a handler for review listing queries.
func NewGetReviewsQueryHandler(db *gorm.DB) GetReviewsQueryHandler {
	return GetReviewsQueryHandler{db: db}
}

// Handle executes the listing query, newest reviews first.
func (h GetReviewsQueryHandler) Handle(ctx context.Context, query GetReviewsQuery) ([]ReviewResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			author_id,
			author,
			rating,
			comment,
			created_at
		FROM reviews
		WHERE product_id = ?
		ORDER BY created_at DESC
	`, query.ProductID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]ReviewResponse, 0)
	for rows.Next() {
		var (
			id       uuid.UUID
			authorID uuid.UUID
			resp     ReviewResponse
		)

		err = rows.Scan(&id, &authorID, &resp.Author, &resp.Rating, &resp.Comment, &resp.CreatedAt)
		if err != nil {
			return nil, err
		}

		reviewID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		reviewAuthorID, idErr := kernel.UUIDFromBytes(authorID[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = reviewID
		resp.AuthorID = reviewAuthorID
		reviews = append(reviews, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
