package controllers

import (
	"errors"
	"net/http"

	"github.com/expense-tracker/backend/internal/auth"
	"github.com/expense-tracker/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no expense matching your query"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, auth.ErrUnauthorized) {
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}
