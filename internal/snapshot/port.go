// Package snapshot persists the serialized state of client-owned stores
// (cart, wishlist) keyed by namespace and browser session.
package snapshot

import (
	"context"
	"errors"
	"strings"
)

// Namespaces used by the storefront stores.
const (
	NamespaceCart     = "modeststyle-cart"
	NamespaceWishlist = "modeststyle-wishlist"
)

// ErrMissingKey is returned when namespace or owner is blank.
var ErrMissingKey = errors.New("snapshot namespace and owner are required")

// Port reads and writes opaque snapshot blobs. Load reports found=false for
// unknown keys rather than an error.
type Port interface {
	Load(ctx context.Context, namespace, owner string) (payload []byte, found bool, err error)
	Save(ctx context.Context, namespace, owner string, payload []byte) error
	Delete(ctx context.Context, namespace, owner string) error
}

func validateKey(namespace, owner string) error {
	if strings.TrimSpace(namespace) == "" || strings.TrimSpace(owner) == "" {
		return ErrMissingKey
	}
	return nil
}
