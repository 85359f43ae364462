package http

import (
	"errors"
	"net/http"

	"github.com/bkdev/go-blog-api/internal/service"
	"github.com/bkdev/go-blog-api/internal/store"
)

// errorStatusMap translates service and store sentinel errors into HTTP
// status codes.
//
// Conventions:
//   - Validation failures, uniqueness conflicts, and storage failures all map
//     to 400. Conflicts deliberately do not use 409.
//   - Missing records map to 404. Ownership mismatches and malformed ids are
//     folded into the same not-found sentinels upstream, so a requester can
//     never distinguish "does not exist" from "not yours".
//   - Token failures map to 401.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusBadRequest,
	service.ErrUnknownCategory:         http.StatusBadRequest,
	service.ErrTokenCreationFailed:     http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:     http.StatusBadRequest,
	store.ErrArticleNotFound:    http.StatusNotFound,
	store.ErrCategoryNotFound:   http.StatusNotFound,
	store.ErrCategoryNameTaken:  http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusBadRequest,
	store.ErrExecutingQuery:   http.StatusBadRequest,
	store.ErrScanningRow:      http.StatusBadRequest,
	store.ErrScanningRows:     http.StatusBadRequest,
}

// statusFromError resolves err to an HTTP status code. Unknown errors fall
// back to 400: every unclassified failure at this depth is a storage-level
// one, and storage failures surface as Bad Request in this API.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusBadRequest
}
