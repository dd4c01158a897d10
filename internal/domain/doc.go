// Package domain holds the shared data types of the analytics backend.
// It has no dependencies on storage or transport.
package domain
