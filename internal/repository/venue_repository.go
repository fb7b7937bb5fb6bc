package repository

import (
    "context"
    "database/sql"

    "github.com/shopspring/decimal"

    "github.com/wedspace/wedspace-api/internal/model"
    "github.com/wedspace/wedspace-api/internal/utils"
)

// VenueRepo provides read access to venues plus the two mutations this
// service performs on them: flipping is_booked during a booking and
// recomputing the aggregate rating during a review insert.  Both
// mutations run inside a caller-owned transaction.
type VenueRepo struct {
    db *sql.DB
}

// NewVenueRepo returns a new VenueRepo bound to the given database.
func NewVenueRepo(db *sql.DB) *VenueRepo { return &VenueRepo{db: db} }

// DB exposes the underlying handle so handlers can begin transactions
// spanning multiple repositories.
func (r *VenueRepo) DB() *sql.DB { return r.db }

// VenueFilter carries the optional listing filters.  Nil / empty
// fields are skipped; present fields combine conjunctively.
type VenueFilter struct {
    MinPrice    *decimal.Decimal // price >= MinPrice
    MaxPrice    *decimal.Decimal // price <= MaxPrice
    MinCapacity *uint32          // capacity >= MinCapacity
    Location    string           // location LIKE %Location% (collation makes it case-insensitive)
}

const venueColumns = `id, name, price, capacity, location, rating, facilities, image_url, is_booked`

// List returns venues matching the filter, ordered by rating
// descending.  Facilities are decoded from their stored text form.
func (r *VenueRepo) List(ctx context.Context, f VenueFilter) ([]model.Venue, error) {
    query := `SELECT ` + venueColumns + ` FROM venues WHERE 1=1`
    args := make([]interface{}, 0, 4)
    if f.MinPrice != nil {
        query += " AND price >= ?"
        args = append(args, *f.MinPrice)
    }
    if f.MaxPrice != nil {
        query += " AND price <= ?"
        args = append(args, *f.MaxPrice)
    }
    if f.MinCapacity != nil {
        query += " AND capacity >= ?"
        args = append(args, *f.MinCapacity)
    }
    if f.Location != "" {
        query += " AND location LIKE ?"
        args = append(args, "%"+f.Location+"%")
    }
    query += " ORDER BY rating DESC"

    rows, err := r.db.QueryContext(ctx, query, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    venues := make([]model.Venue, 0)
    for rows.Next() {
        v, err := scanVenue(rows)
        if err != nil {
            return nil, err
        }
        venues = append(venues, v)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return venues, nil
}

// GetByID returns a single venue.  ErrVenueNotFound is returned when
// the id does not exist.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (model.Venue, error) {
    row := r.db.QueryRowContext(ctx, `SELECT `+venueColumns+` FROM venues WHERE id = ?`, id)
    v, err := scanVenue(row)
    if err == sql.ErrNoRows {
        return model.Venue{}, ErrVenueNotFound
    }
    return v, err
}

// GetForBookingTx reads the fields the booking flow needs (name, price
// and availability) within the booking transaction.  ErrVenueNotFound
// is returned when the venue does not exist.
func (r *VenueRepo) GetForBookingTx(ctx context.Context, tx *sql.Tx, id uint64) (name string, price decimal.Decimal, isBooked bool, err error) {
    err = tx.QueryRowContext(ctx,
        `SELECT name, price, is_booked FROM venues WHERE id = ?`, id).
        Scan(&name, &price, &isBooked)
    if err == sql.ErrNoRows {
        err = ErrVenueNotFound
    }
    return
}

// MarkBookedTx flips is_booked to true with an affected-row guard:
// when two transactions race for the same venue, the second one
// matches zero rows and gets ErrVenueBooked, so at most one booking
// can succeed regardless of what the earlier availability read saw.
func (r *VenueRepo) MarkBookedTx(ctx context.Context, tx *sql.Tx, id uint64) error {
    res, err := tx.ExecContext(ctx,
        `UPDATE venues SET is_booked = TRUE WHERE id = ? AND is_booked = FALSE`, id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrVenueBooked
    }
    return nil
}

// RecomputeRatingTx overwrites the venue's rating with the mean of all
// its review ratings.  It must run in the same transaction as the
// review insert so the aggregate never drifts from the review rows.
func (r *VenueRepo) RecomputeRatingTx(ctx context.Context, tx *sql.Tx, venueID uint64) error {
    const q = `UPDATE venues
               SET rating = (SELECT AVG(rating) FROM reviews WHERE venue_id = ?)
               WHERE id = ?`
    _, err := tx.ExecContext(ctx, q, venueID, venueID)
    return err
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
    Scan(dest ...interface{}) error
}

func scanVenue(s rowScanner) (model.Venue, error) {
    var v model.Venue
    var rating decimal.NullDecimal
    var facilities, imageURL sql.NullString
    err := s.Scan(&v.ID, &v.Name, &v.Price, &v.Capacity, &v.Location,
        &rating, &facilities, &imageURL, &v.IsBooked)
    if err != nil {
        return model.Venue{}, err
    }
    if rating.Valid {
        v.Rating = rating.Decimal
    }
    v.Facilities = utils.DecodeFacilities(facilities.String)
    v.ImageURL = imageURL.String
    return v, nil
}
