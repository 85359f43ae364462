package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set. The token-membership lookup
	// returns it both for an unknown user and for a revoked session, so the
	// two cases are indistinguishable to callers.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrArticleNotFound is returned when a query or mutation targets an
	// article that does not exist or, for owner-scoped operations, is not
	// owned by the requester. Ownership misses are deliberately not
	// distinguishable from missing records.
	ErrArticleNotFound = errors.New("article was not found")

	// ErrCategoryNotFound is returned when a lookup targets a category id
	// with no matching record.
	ErrCategoryNotFound = errors.New("category was not found")

	// ErrCategoryNameTaken is returned when creating a category whose name
	// collides with an existing one.
	ErrCategoryNameTaken = errors.New("category name already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. no updatable fields resolved to a malformed statement).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
