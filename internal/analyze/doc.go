// Package analyze produces the per-ticker analyzed report the orchestrator
// asks for: it pulls the ticker's recent insider transactions, folds them
// into a ranked flow summary, persists the summary, and upserts a filing
// event whose content hash tells the caller whether anything changed.
package analyze
