// Package op defines the canonical instruction record produced by decoding.
//
// This package contains type definitions and canonical-form helpers only.
// All other internal packages import op; op imports nothing internal. This
// keeps the record the foundational layer with no circular dependencies.
//
// An Op is built once during decode and never mutated afterwards. Decoders
// hand a fully-validated record to the caller or fail; no partially
// populated Op is ever observable.
package op
