// Package catalog holds the client-side catalog state: the product snapshot,
// the brand and search filter, and the favorite set.
//
// Reduce is the pure core. Every command returns a state whose Filtered and
// BrandOptions fields are already rebuilt, plus an Event telling the caller
// whether a favorite was added, removed or cleared. Machine wraps Reduce with
// inline persistence for synchronous hosts; event-loop hosts call Reduce and
// Refocus directly and persist on their own schedule.
package catalog
