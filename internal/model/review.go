package model

import "time"

// Review mirrors the `reviews` table.  A review may only be created by
// a user holding a completed booking for the venue; inserting one
// recomputes the venue's aggregate rating in the same transaction.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – reviewing user.
//  VenueID   – reviewed venue.
//  Rating    – integer score between 1 and 5.
//  Comment   – optional free text.
//  CreatedAt – creation timestamp.
type Review struct {
    ID        uint64    `json:"id"`         // reviews.id
    UserID    uint64    `json:"user_id"`    // reviews.user_id
    VenueID   uint64    `json:"venue_id"`   // reviews.venue_id
    Rating    int       `json:"rating"`     // reviews.rating
    Comment   string    `json:"comment"`    // reviews.comment
    CreatedAt time.Time `json:"created_at"` // reviews.created_at
}

// ReviewWithUser is a review annotated with the reviewer's username,
// as shown on the venue detail page.
type ReviewWithUser struct {
    Review
    Username string `json:"username"`
}
