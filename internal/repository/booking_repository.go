package repository

import (
    "context"
    "database/sql"

    "github.com/wedspace/wedspace-api/internal/model"
)

// BookingRepo provides persistence for bookings.  The create path runs
// inside a caller-owned transaction because it is always paired with
// the venue availability flip; listing runs on the plain handle.
type BookingRepo struct {
    db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying handle so handlers can begin transactions
// spanning multiple repositories.
func (r *BookingRepo) DB() *sql.DB { return r.db }

// CreateTx inserts a new booking within the scope of an existing
// transaction.  It populates the generated ID and timestamps on the
// provided record by querying the row back.  The caller must commit or
// rollback the transaction.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
    const q = `INSERT INTO bookings (user_id, venue_id, booking_date, total_price, dp_amount, booking_status)
               VALUES (?, ?, ?, ?, ?, ?)`
    result, err := tx.ExecContext(ctx, q, b.UserID, b.VenueID, b.BookingDate, b.TotalPrice, b.DPAmount, b.Status)
    if err != nil {
        return err
    }
    id, err := result.LastInsertId()
    if err != nil {
        return err
    }
    b.ID = uint64(id)
    // Query back the full row to populate timestamps and defaults
    const sel = `SELECT id, user_id, venue_id, booking_date, total_price, dp_amount, booking_status, qris_image_url, created_at
                 FROM bookings WHERE id = ?`
    var qris sql.NullString
    err = tx.QueryRowContext(ctx, sel, b.ID).Scan(
        &b.ID, &b.UserID, &b.VenueID, &b.BookingDate,
        &b.TotalPrice, &b.DPAmount, &b.Status, &qris, &b.CreatedAt,
    )
    if err != nil {
        return err
    }
    if qris.Valid {
        u := qris.String
        b.QRISImageURL = &u
    }
    return nil
}

// SetQRISURLTx stores the generated down-payment QR link on the
// booking row inside the same transaction that created it.
func (r *BookingRepo) SetQRISURLTx(ctx context.Context, tx *sql.Tx, id uint64, url string) error {
    _, err := tx.ExecContext(ctx, `UPDATE bookings SET qris_image_url = ? WHERE id = ?`, url, id)
    return err
}

// HasCompletedTx reports whether the user holds a completed booking
// for the venue, which is the review eligibility rule.  It runs inside
// the review transaction so the check and the insert see one snapshot.
func (r *BookingRepo) HasCompletedTx(ctx context.Context, tx *sql.Tx, userID, venueID uint64) (bool, error) {
    const q = `SELECT id FROM bookings
               WHERE user_id = ? AND venue_id = ? AND booking_status = ?
               LIMIT 1`
    var id uint64
    err := tx.QueryRowContext(ctx, q, userID, venueID, model.BookingStatusCompleted).Scan(&id)
    if err == sql.ErrNoRows {
        return false, nil
    }
    if err != nil {
        return false, err
    }
    return true, nil
}

// ListByUser returns all bookings for the given user annotated with
// the venue's name and image, ordered by creation time descending
// (newest first).  An unknown user simply yields an empty slice.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.BookingWithVenue, error) {
    const q = `SELECT b.id, b.user_id, b.venue_id, b.booking_date, b.total_price, b.dp_amount,
                      b.booking_status, b.qris_image_url, b.created_at,
                      v.name, v.image_url
               FROM bookings b
               JOIN venues v ON v.id = b.venue_id
               WHERE b.user_id = ?
               ORDER BY b.created_at DESC`
    rows, err := r.db.QueryContext(ctx, q, userID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    bookings := make([]model.BookingWithVenue, 0)
    for rows.Next() {
        var b model.BookingWithVenue
        var qris, image sql.NullString
        if err := rows.Scan(
            &b.ID, &b.UserID, &b.VenueID, &b.BookingDate, &b.TotalPrice, &b.DPAmount,
            &b.Status, &qris, &b.CreatedAt,
            &b.VenueName, &image,
        ); err != nil {
            return nil, err
        }
        if qris.Valid {
            u := qris.String
            b.QRISImageURL = &u
        }
        b.VenueImage = image.String
        bookings = append(bookings, b)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return bookings, nil
}
