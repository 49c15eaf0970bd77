// Package services contains the typed per-domain clients of the HisabKitab
// backend. Each service is a thin layer over the API gateway: it shapes
// requests, decodes responses, and nothing else. Loading and error
// presentation belong to the callers.
package services

import (
	"context"
	"net/url"
)

// Gateway is the verb surface of the API client the services depend on.
// *api.Client satisfies it; tests substitute fakes.
type Gateway interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body any, out any) error
	Put(ctx context.Context, path string, body any, out any) error
	Delete(ctx context.Context, path string) error
	PostForm(ctx context.Context, path string, form url.Values, out any) error
	Download(ctx context.Context, path string) ([]byte, error)
}
