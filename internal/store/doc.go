// Package store persists analyzed events and orchestration stamps in
// Postgres.
//
// Event writes implement the identity-key/content-hash dedup contract: an
// incoming event whose content hash matches the persisted hash for the same
// identity key is a no-op beyond touching its last-checked timestamp.
package store
