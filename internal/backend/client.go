// Package backend talks to the hosted Supabase-compatible service: the
// PostgREST data API, the GoTrue auth API and the object storage API.
// A disabled implementation keeps the site functional without credentials.
package backend

import (
	"context"
	"errors"
	"time"
)

// ErrNotConfigured is returned by operations that require a configured
// backend when none is available.
var ErrNotConfigured = errors.New("backend not configured")

// SelectOptions shapes a read against a collection.
type SelectOptions struct {
	// Filter holds equality filters, field name to value.
	Filter map[string]string
	// OrderBy is the primary sort field. Empty means server default order.
	OrderBy    string
	Descending bool
	// SecondaryOrderBy breaks ties on the primary sort.
	SecondaryOrderBy    string
	SecondaryDescending bool
	// Limit caps the number of rows. Zero means no limit.
	Limit int
	// Embed lists related collections to include, as
	// "collection(field,field)" select expressions.
	Embed []string
}

// Session is an authenticated session issued by the auth API.
type Session struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Principal identifies an authenticated user.
type Principal struct {
	ID    string
	Email string
}

// AuthClient exposes the auth API operations the admin area needs.
type AuthClient interface {
	// SignIn exchanges credentials for a session.
	SignIn(ctx context.Context, email, password string) (Session, error)
	// SignOut revokes the session behind the given access token.
	SignOut(ctx context.Context, accessToken string) error
	// Principal resolves the user behind an access token.
	Principal(ctx context.Context, accessToken string) (Principal, error)
}

// StorageClient exposes object storage operations.
type StorageClient interface {
	// Upload stores an object and returns its public URL.
	Upload(ctx context.Context, bucket, path string, data []byte, contentType string) (string, error)
	// PublicURL returns the public URL for an object without uploading.
	PublicURL(bucket, path string) string
	// Remove deletes objects from a bucket.
	Remove(ctx context.Context, bucket string, paths []string) error
}

// Client is the interface the rest of the application depends on.
type Client interface {
	// Select reads rows from a collection into dest, which must be a
	// pointer to a slice of structs with json tags.
	Select(ctx context.Context, collection string, opts SelectOptions, dest any) error
	// Count returns the exact number of rows matching the filters.
	Count(ctx context.Context, collection string, filter map[string]string) (int, error)
	// Insert creates a row from record and decodes the created row into
	// dest when dest is non-nil.
	Insert(ctx context.Context, collection string, record any, dest any) error
	// Update patches the row with the given id.
	Update(ctx context.Context, collection, id string, record any) error
	// Delete removes the row with the given id.
	Delete(ctx context.Context, collection, id string) error

	Auth() AuthClient
	Storage() StorageClient

	// CheckConnection reports whether the backend answers.
	CheckConnection(ctx context.Context) error
	// InvalidateCache drops any cached read results.
	InvalidateCache()
	// Shutdown releases background resources.
	Shutdown()
}
