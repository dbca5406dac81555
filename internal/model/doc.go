// Package model defines the core domain types shared across packages:
// vendor market data (quotes, symbols, logos), macro/filing events, and
// insider transaction records with their aggregated summaries.
package model
