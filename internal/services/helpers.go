package services

import (
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/LLEndaya/LeaseUp/internal/dtos"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

var errInvalidDate = errors.New("invalid date")

var dateLayouts = []string{
	utils.DateLayout,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// parseDate accepts an ISO calendar date, or an ISO timestamp whose date
// part is kept.
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOnly(t), nil
		}
	}
	return time.Time{}, errInvalidDate
}

// parseOptionalDate returns nil for an empty string.
func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func parseID(v dtos.FormValue, field string) (int64, error) {
	id, err := v.Int64()
	if err != nil || id <= 0 {
		return 0, utils.NewBadRequest("Invalid " + field)
	}
	return id, nil
}

func internalErr(err error) error {
	if err == nil {
		return nil
	}
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &utils.AppError{
		StatusCode: http.StatusInternalServerError,
		Code:       utils.ErrCodeInternal,
		Message:    "An unexpected error occurred",
		Err:        err,
	}
}

// notFoundOr maps pgx.ErrNoRows from an update/delete to a 404.
func notFoundOr(err error, msg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return utils.NewNotFound(msg)
	}
	return internalErr(err)
}
