package repository

import (
    "context"
    "database/sql"

    "github.com/wedspace/wedspace-api/internal/model"
)

// ReviewRepo provides persistence for venue reviews.  Inserts run in a
// caller-owned transaction because they are always paired with the
// venue rating recomputation.
type ReviewRepo struct {
    db *sql.DB
}

// NewReviewRepo returns a new ReviewRepo bound to the given database.
func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{db: db} }

// CreateTx inserts a review within the scope of an existing
// transaction and populates the generated ID on the record.
func (r *ReviewRepo) CreateTx(ctx context.Context, tx *sql.Tx, rev *model.Review) error {
    const q = `INSERT INTO reviews (user_id, venue_id, rating, comment) VALUES (?, ?, ?, ?)`
    result, err := tx.ExecContext(ctx, q, rev.UserID, rev.VenueID, rev.Rating, rev.Comment)
    if err != nil {
        return err
    }
    id, err := result.LastInsertId()
    if err != nil {
        return err
    }
    rev.ID = uint64(id)
    return nil
}

// ListByVenue returns all reviews for a venue annotated with each
// reviewer's username, ordered by creation time descending.
func (r *ReviewRepo) ListByVenue(ctx context.Context, venueID uint64) ([]model.ReviewWithUser, error) {
    const q = `SELECT r.id, r.user_id, r.venue_id, r.rating, r.comment, r.created_at, u.username
               FROM reviews r
               JOIN users u ON u.id = r.user_id
               WHERE r.venue_id = ?
               ORDER BY r.created_at DESC`
    rows, err := r.db.QueryContext(ctx, q, venueID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    reviews := make([]model.ReviewWithUser, 0)
    for rows.Next() {
        var rev model.ReviewWithUser
        var comment sql.NullString
        if err := rows.Scan(&rev.ID, &rev.UserID, &rev.VenueID, &rev.Rating, &comment, &rev.CreatedAt, &rev.Username); err != nil {
            return nil, err
        }
        rev.Comment = comment.String
        reviews = append(reviews, rev)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return reviews, nil
}
