package http

import (
	"errors"
	"net/http"

	"github.com/avdonin/minifeed/internal/service"
	"github.com/avdonin/minifeed/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusUnauthorized,
	service.ErrTokenIsExpired:      http.StatusUnauthorized,
	service.ErrTokenIsMalformed:    http.StatusUnauthorized,
	service.ErrUnknownLikeType:     http.StatusBadRequest,
	service.ErrUnknownLikeAction:   http.StatusBadRequest,

	store.ErrUsernameTaken:      http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrPostNotSaved:       http.StatusInternalServerError,
	store.ErrSavingProfileImage: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
