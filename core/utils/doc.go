// Package utils provides small helpers shared by the HTTP and CLI layers,
// such as parsing user-supplied boolean flags.
package utils
