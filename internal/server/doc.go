// Package server implements catalogd, a small HTTP server that answers the
// catalog API artshelf consumes from a YAML or JSON seed file. It exists so
// the browser can be developed and tested without the hosted mock API.
package server
