package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"

	"github.com/wedspace/wedspace-api/internal/model"
	"github.com/wedspace/wedspace-api/internal/repository"
)

func newVenueHandler(t *testing.T) (*VenueHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewVenueHandler(repository.NewVenueRepo(db), repository.NewReviewRepo(db)), mock
}

var venueCols = []string{"id", "name", "price", "capacity", "location", "rating", "facilities", "image_url", "is_booked"}

func TestListVenuesUnfiltered(t *testing.T) {
	h, mock := newVenueHandler(t)
	mock.ExpectQuery("FROM venues WHERE 1=1 ORDER BY rating DESC").
		WillReturnRows(sqlmock.NewRows(venueCols).
			AddRow(1, "Gedung Mawar", "150000000.00", 500, "Jakarta Selatan", "4.50", `["AC","parkir"]`, "https://img.example/1.jpg", false).
			AddRow(2, "Balai Melati", "80000000.00", 300, "Bandung", nil, "oops not json", nil, true))

	c, rec := newJSONContext(t, http.MethodGet, "/api/venues", "")
	if err := h.ListVenues(c); err != nil {
		t.Fatalf("ListVenues returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	var venues []model.Venue
	if err := json.Unmarshal(rec.Body.Bytes(), &venues); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(venues) != 2 {
		t.Fatalf("len(venues) = %d, want 2", len(venues))
	}
	if venues[0].Name != "Gedung Mawar" || venues[1].Name != "Balai Melati" {
		t.Errorf("order = %q, %q; want Gedung Mawar first", venues[0].Name, venues[1].Name)
	}
	if len(venues[0].Facilities) != 2 || venues[0].Facilities[0] != "AC" {
		t.Errorf("facilities = %v, want [AC parkir]", venues[0].Facilities)
	}
	// malformed facilities text degrades to an empty list
	if len(venues[1].Facilities) != 0 {
		t.Errorf("malformed facilities = %v, want []", venues[1].Facilities)
	}
	if !venues[0].Price.Equal(decimal.RequireFromString("150000000")) {
		t.Errorf("price = %s, want 150000000", venues[0].Price)
	}
	requireMet(t, mock)
}

func TestListVenuesFiltered(t *testing.T) {
	h, mock := newVenueHandler(t)
	want := `SELECT id, name, price, capacity, location, rating, facilities, image_url, is_booked FROM venues WHERE 1=1 AND price >= ? AND price <= ? AND capacity >= ? AND location LIKE ? ORDER BY rating DESC`
	mock.ExpectQuery(regexp.QuoteMeta(want)).
		WithArgs("50000000", "200000000", int64(250), "%jakarta%").
		WillReturnRows(sqlmock.NewRows(venueCols).
			AddRow(1, "Gedung Mawar", "150000000.00", 500, "Jakarta Selatan", "4.50", `[]`, "", false))

	c, rec := newJSONContext(t, http.MethodGet,
		"/api/venues?min_price=50000000&max_price=200000000&min_capacity=250&location=jakarta", "")
	if err := h.ListVenues(c); err != nil {
		t.Fatalf("ListVenues returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	var venues []model.Venue
	if err := json.Unmarshal(rec.Body.Bytes(), &venues); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(venues) != 1 || venues[0].ID != 1 {
		t.Errorf("venues = %+v, want single venue id=1", venues)
	}
	requireMet(t, mock)
}

func TestListVenuesBadFilter(t *testing.T) {
	h, mock := newVenueHandler(t)
	c, rec := newJSONContext(t, http.MethodGet, "/api/venues?min_price=abc", "")
	if err := h.ListVenues(c); err != nil {
		t.Fatalf("ListVenues returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	requireMet(t, mock)
}

func TestGetVenueDetail(t *testing.T) {
	h, mock := newVenueHandler(t)
	mock.ExpectQuery("FROM venues WHERE id").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(venueCols).
			AddRow(1, "Gedung Mawar", "150000000.00", 500, "Jakarta Selatan", "4.50", `["AC"]`, "", true))
	mock.ExpectQuery("FROM reviews r").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "venue_id", "rating", "comment", "created_at", "username"}).
			AddRow(12, 7, 1, 5, "Tempatnya bagus", time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC), "budi").
			AddRow(11, 8, 1, 4, nil, time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC), "sari"))

	c, rec := newJSONContext(t, http.MethodGet, "/api/venues/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.GetVenueDetail(c); err != nil {
		t.Fatalf("GetVenueDetail returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	var detail model.VenueDetail
	if err := json.Unmarshal(rec.Body.Bytes(), &detail); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if detail.ID != 1 || !detail.IsBooked {
		t.Errorf("venue = %+v, want id=1 is_booked=true", detail.Venue)
	}
	if len(detail.Reviews) != 2 {
		t.Fatalf("len(reviews) = %d, want 2", len(detail.Reviews))
	}
	if detail.Reviews[0].Username != "budi" || detail.Reviews[0].Rating != 5 {
		t.Errorf("first review = %+v, want budi with rating 5", detail.Reviews[0])
	}
	if detail.Reviews[1].Comment != "" {
		t.Errorf("null comment = %q, want empty string", detail.Reviews[1].Comment)
	}
	requireMet(t, mock)
}

func TestGetVenueDetailNotFound(t *testing.T) {
	h, mock := newVenueHandler(t)
	mock.ExpectQuery("FROM venues WHERE id").
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	c, rec := newJSONContext(t, http.MethodGet, "/api/venues/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")
	if err := h.GetVenueDetail(c); err != nil {
		t.Fatalf("GetVenueDetail returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body["error"] != "Venue tidak ditemukan" {
		t.Errorf("error = %q, want %q", body["error"], "Venue tidak ditemukan")
	}
	requireMet(t, mock)
}
