// Package dedup derives stable identifiers for macro/filing events.
//
// Two independent digests are computed per event:
//   - identity key: source + title + date + span end — which logical event
//     a record refers to
//   - content hash: the displayed fields — whether a re-ingested event
//     actually changed
//
// Callers compare the new content hash against the one persisted under the
// same identity key: equal means no-op, different means update. Volatile
// bookkeeping fields (last-checked timestamps) are excluded from both so
// re-ingesting an unchanged event is always a no-op.
package dedup
