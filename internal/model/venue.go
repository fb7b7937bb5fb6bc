package model

import "github.com/shopspring/decimal"

// Venue mirrors the `venues` table.  Price and Rating are DECIMAL
// columns and stay fixed-point all the way to the JSON response so the
// 50% deposit never picks up floating-point drift.  Facilities is
// persisted as a JSON array in a TEXT column and decoded on read; a
// malformed value decodes to an empty list rather than an error.
//
// Fields:
//  ID         – primary key identifier.
//  Name       – display name of the venue.
//  Price      – full rental price.
//  Capacity   – maximum number of guests.
//  Location   – free-text location, filtered by substring match.
//  Rating     – mean of all review ratings, recomputed on review insert.
//  Facilities – tags such as "parkir", "AC", "catering".
//  ImageURL   – photo shown in listings.
//  IsBooked   – set once on the first successful booking, never reset here.
type Venue struct {
    ID         uint64          `json:"id"`         // venues.id
    Name       string          `json:"name"`       // venues.name
    Price      decimal.Decimal `json:"price"`      // venues.price
    Capacity   uint32          `json:"capacity"`   // venues.capacity
    Location   string          `json:"location"`   // venues.location
    Rating     decimal.Decimal `json:"rating"`     // venues.rating (0 until first review)
    Facilities []string        `json:"facilities"` // venues.facilities (JSON text)
    ImageURL   string          `json:"image_url"`  // venues.image_url
    IsBooked   bool            `json:"is_booked"`  // venues.is_booked
}

// VenueDetail is a venue together with all of its reviews, used by the
// venue detail endpoint.
type VenueDetail struct {
    Venue
    Reviews []ReviewWithUser `json:"reviews"`
}
