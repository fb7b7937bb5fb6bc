package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/wedspace/wedspace-api/internal/model"
	"github.com/wedspace/wedspace-api/internal/repository"
)

func newReviewHandler(t *testing.T) (*ReviewHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewReviewHandler(
		repository.NewVenueRepo(db),
		repository.NewBookingRepo(db),
		repository.NewReviewRepo(db),
	), mock
}

func postReview(t *testing.T, h *ReviewHandler, body string) (int, map[string]string) {
	t.Helper()
	c, rec := newJSONContext(t, http.MethodPost, "/api/reviews", body)
	if err := h.CreateReview(c); err != nil {
		t.Fatalf("CreateReview returned error: %v", err)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return rec.Code, resp
}

func TestCreateReviewMissingFields(t *testing.T) {
	h, mock := newReviewHandler(t)
	for _, body := range []string{
		`{"venue_id":2,"rating":4}`,
		`{"user_id":3,"rating":4}`,
		`{"user_id":3,"venue_id":2}`,
	} {
		code, resp := postReview(t, h, body)
		if code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want %d", body, code, http.StatusBadRequest)
		}
		if resp["error"] != "User, venue, dan rating harus diisi" {
			t.Errorf("body %s: error = %q, want %q", body, resp["error"], "User, venue, dan rating harus diisi")
		}
	}
	requireMet(t, mock)
}

func TestCreateReviewRatingOutOfRange(t *testing.T) {
	h, mock := newReviewHandler(t)
	for _, body := range []string{
		`{"user_id":3,"venue_id":2,"rating":6}`,
		`{"user_id":3,"venue_id":2,"rating":-1}`,
	} {
		code, resp := postReview(t, h, body)
		if code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want %d", body, code, http.StatusBadRequest)
		}
		if resp["error"] != "Rating harus antara 1-5" {
			t.Errorf("body %s: error = %q, want %q", body, resp["error"], "Rating harus antara 1-5")
		}
	}
	requireMet(t, mock)
}

func TestCreateReviewNotEligible(t *testing.T) {
	h, mock := newReviewHandler(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM bookings").
		WithArgs(3, 2, model.BookingStatusCompleted).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	code, resp := postReview(t, h, `{"user_id":3,"venue_id":2,"rating":4,"comment":"Bagus"}`)
	if code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", code, http.StatusBadRequest)
	}
	if resp["error"] != "Hanya bisa mereview venue yang sudah digunakan" {
		t.Errorf("error = %q, want %q", resp["error"], "Hanya bisa mereview venue yang sudah digunakan")
	}
	requireMet(t, mock)
}

func TestCreateReviewSuccess(t *testing.T) {
	h, mock := newReviewHandler(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM bookings").
		WithArgs(3, 2, model.BookingStatusCompleted).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec("INSERT INTO reviews").
		WithArgs(3, 2, 5, "Tempatnya luas dan bersih").
		WillReturnResult(sqlmock.NewResult(12, 1))
	mock.ExpectExec("UPDATE venues").
		WithArgs(2, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	code, resp := postReview(t, h,
		`{"user_id":3,"venue_id":2,"rating":5,"comment":"  Tempatnya luas dan bersih  "}`)
	if code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, resp %v", code, http.StatusCreated, resp)
	}
	if resp["message"] != "Review berhasil ditambahkan" {
		t.Errorf("message = %q, want %q", resp["message"], "Review berhasil ditambahkan")
	}
	requireMet(t, mock)
}
