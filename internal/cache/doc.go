// Package cache provides a process-wide TTL cache used in front of the
// market-data vendor (quotes, logos, symbol lists).
//
// The cache is a pure freshness shield, not a bounded LRU: entries expire
// but are never evicted for capacity. Callers own key cardinality — the key
// space here is the finite universe of tracked tickers.
package cache
