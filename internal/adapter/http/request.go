package httpadapter

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"adpilot/internal/core/domain"
)

type userKey struct{}

// requireUser reads the caller id from X-User-ID. Requests without a valid
// id are rejected with 401.
func (h *Handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.Header.Get("X-User-ID"), 10, 64)
		if err != nil || id <= 0 {
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: "missing or invalid X-User-ID header"}, h.logger)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey{}, id)))
	})
}

// requireAdmin checks the Authorization header against the admin token.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	want := []byte("Bearer " + h.adminToken)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if subtle.ConstantTimeCompare([]byte(r.Header.Get("Authorization")), want) != 1 {
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: "missing or invalid admin token"}, h.logger)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func userID(r *http.Request) int64 {
	id, _ := r.Context().Value(userKey{}).(int64)
	return id
}

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", domain.ErrInvalidInput, chi.URLParam(r, "id"))
	}
	return id, nil
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: invalid JSON: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// maxWindowDays bounds the days parameter to about ten years.
const maxWindowDays = 3650

// queryDays parses the optional days parameter. Zero means the default
// window.
func queryDays(r *http.Request) (int, error) {
	s := r.URL.Query().Get("days")
	if s == "" {
		return 0, nil
	}
	days, err := strconv.Atoi(s)
	if err != nil || days <= 0 {
		return 0, fmt.Errorf("%w: days must be a positive integer", domain.ErrInvalidInput)
	}
	if days > maxWindowDays {
		return 0, fmt.Errorf("%w: days must not exceed %d", domain.ErrInvalidInput, maxWindowDays)
	}
	return days, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", domain.ErrInvalidInput, s)
	}
	return t, nil
}

// queryRange parses start and end. Missing bounds default to the trailing
// 30 days ending today.
func (h *Handler) queryRange(r *http.Request) (start, end time.Time, err error) {
	y, m, d := h.now().UTC().Date()
	end = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	start = end.AddDate(0, 0, -30)

	q := r.URL.Query()
	if s := q.Get("start"); s != "" {
		if start, err = parseDate(s); err != nil {
			return
		}
	}
	if s := q.Get("end"); s != "" {
		if end, err = parseDate(s); err != nil {
			return
		}
	}
	return start, end, nil
}

// optionalDate parses a nullable YYYY-MM-DD body field.
func optionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
