// Package batch runs one assembled Step over many inputs on a fixed number of
// worker lines and returns the results in input order.
//
// Steps stay synchronous; batch only spreads independent invocations across
// goroutines. Any capability shared by those invocations, such as a
// repository, must be safe for concurrent use on its own.
package batch
