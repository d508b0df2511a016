// Package decode converts loosely-typed instruction descriptions into
// validated op.Op records.
//
// The entry points are Decode (any instruction, unknown names fall through
// to the generic parametrized-gate decoder) and DecodeObservable (observable
// kinds only). Each decoder is a pure function from a structured Value to a
// fully-validated record; on any violated invariant it fails with
// *InvalidInstructionError and never returns a partial record.
//
// Decoding is synchronous and stateless. Calls on independent inputs may run
// concurrently with no coordination.
package decode
