// Package insider folds streams of insider transaction records into
// per-insider summary rows ranked by net share flow.
package insider
