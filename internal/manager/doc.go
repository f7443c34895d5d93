// Package manager owns the process-wide model handle and runs predictions
// against it. It is structured into small files by concern:
//
//   - manager.go: core Manager type, constructor, simple getters.
//   - config.go: ManagerConfig and package defaults; NewWithConfig applies defaults.
//   - types.go: lifecycle state, Predictor and Result.
//   - errors.go: error types and helpers (IsModelUnavailable, IsInvalidInput, IsPredictionFailed).
//   - load.go: one-shot artifact and metadata loading.
//   - predict.go: the per-submission prediction path.
//   - status_report.go: Status/Snapshot/Info reporting helpers.
//   - sanity.go: preflight checks on artifact files.
//   - events.go, eventpub_*.go: lifecycle event publishing.
//
// The model is loaded once and never mutated afterwards; callers may invoke
// Predict concurrently. A failed load leaves the manager in StateError and
// every prediction returns a model-unavailable error.
package manager
