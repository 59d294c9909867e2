// Package reconcile joins upstream catalog records into flattened products.
//
// # Join
//
// Flatten builds three lookups per call (category id to name, item id to item,
// variant id to summed inventory) and walks the variants once. A variant whose
// item is unknown is reported as an orphan and dropped. Inventory for variants
// that never appear contributes to the lookup and is otherwise ignored.
//
// # Keys
//
// The product key is the variant SKU, or the variant id when the SKU is empty.
// When two variants share a key, the later one wins and takes the position of
// the first. Every such collision is reported.
//
// # Incremental Repair
//
// A delta fetch may return variants whose item did not change. MissingItemRefs
// finds those item ids and FillItems merges them in from a full item fetch.
package reconcile
