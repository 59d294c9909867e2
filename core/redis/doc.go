// Package redis wraps go-redis for the two shared-state concerns of catalog-sync:
// the distributed sync lease (Locker) that keeps concurrent instances from
// running overlapping passes, and the redis response cache backend.
//
// Every key is namespaced with the configured prefix.
package redis
