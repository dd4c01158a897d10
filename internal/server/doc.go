// Package server implements the HTTP API using the Echo framework.
//
// Routes: trending (coins/topics/fallen wallets), tweets (feed + ingestion),
// coins (upsert/history/anomalies), wallets (track/untrack/overview), X
// posting, and health/metrics. Handlers split by domain: handlers_tweets.go,
// handlers_trending.go, handlers_wallets.go, handlers_xpost.go.
//
// Successful responses use the {success, data} envelope; empty reads are
// served from the static mockdata payloads so the frontend always has
// content to render.
package server
