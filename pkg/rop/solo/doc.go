// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. These functions form the core building blocks for error-aware
// pipelines.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Bind: run the next step on success, pass a failure through untouched
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - Tee/DoubleTee: side-effect helpers
// - WrapFailure/OrElse/Retry: step combinators for context, fallback and retry
// - Finally: reduce to a concrete value via success/failure handlers
package solo
