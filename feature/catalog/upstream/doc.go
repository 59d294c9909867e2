// Package upstream retrieves catalog collections from the point-of-sale API.
//
// # Pagination
//
// Every collection is cursor paginated: the client requests `limit` records and
// follows the `cursor` returned in each page until it is empty. Records are
// returned as raw JSON in upstream order; Catalog decodes them into models.
//
// # Delta Fetches
//
// Items and variants accept an updated-since filter (`updated_at_min`). Requesting
// it for categories or inventory returns ErrUnsupportedFilter.
//
// # Caching
//
// CachedFetcher is a read-through decorator keyed by collection name, plus the
// watermark for delta fetches. Entries are stored through a cache.Store backend
// with their write time so an optional max age can be enforced on read.
package upstream
