// Package curry turns multi-argument step functions into rop.Step values by
// binding configuration arguments ahead of pipeline assembly.
//
// The pipeline value is always the last argument. Configuration can be bound
// one argument at a time (Curry2..Curry4) or all at once (Partial2..Partial4).
// Arguments are evaluated when bound; pointer and interface arguments, such as
// a repository, stay shared by reference.
package curry
