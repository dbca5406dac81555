// Package api provides a thin client for the market-data vendor REST API:
// quotes, symbol directories, company profiles, insider transactions, and
// the economic calendar.
//
// The client is deliberately dumb: no caching, no freshness logic. Callers
// that need to shield the vendor from redundant calls go through
// internal/marketdata instead.
package api
