// Package marketdata serves vendor market data through the TTL cache so
// request handlers and orchestrator workers never hit the vendor for data
// that is still fresh.
package marketdata
