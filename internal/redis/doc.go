// Package redis implements the Redis-backed stores: ranked collections with
// snapshots and bounded histories, capped JSON feeds, and wallet tracking.
package redis
