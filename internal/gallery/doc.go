// Package gallery provides an HTTP client for the art catalog API.
//
// # Overview
//
// The catalog is a read-only JSON API with two endpoints:
//
//   - GET /Assignment: every product in the catalog
//   - GET /Assignment/{id}: the products whose id matches (still an array)
//
// Only HTTP 200 counts as success. Any other status is reported as an error
// wrapping ErrUnexpectedStatus, so callers can tell a reachable-but-unhappy
// API apart from transport failures:
//
//	products, err := client.FetchProducts(ctx)
//	if errors.Is(err, gallery.ErrUnexpectedStatus) {
//		// API answered, but not with 200
//	}
//
// # Base URL
//
// NewClient accepts a host:port or a full URL. Unlike most local daemons the
// public mock catalog lives under a path prefix, so the path is kept and a
// trailing slash is enforced before endpoints are resolved against it:
//
//   - "127.0.0.1:7488" -> http://127.0.0.1:7488/
//   - "https://example.mockapi.io/api/v1" -> https://example.mockapi.io/api/v1/
//
// # Types
//
// Product mirrors the wire format of the mockapi catalog (artName, image,
// limitedTimeDeal, glassSurface). Products are treated as immutable values;
// CloneProducts produces deep copies for holders that hand snapshots out.
//
// # Design Rationale
//
// No caching, no retries, no mutations. The caller decides when to fetch
// (artshelf fetches whenever the catalog view is activated) and what to do on
// failure (keep the previous snapshot).
package gallery
