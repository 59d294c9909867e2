// Package auth protects routes with a shared API key sent in X-API-Key.
package auth
