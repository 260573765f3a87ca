// Package heapless provides shared plumbing for the fixed-capacity containers
// in this module: the error sentinels each container reports, alignment and
// power-of-two helpers, pool statistics aggregation, and debug-build validation
// hooks that are active only when built with the debug_heapless build tag.
//
// The containers themselves live in the bounded and blockpool packages. All of
// them allocate their full backing storage once, at construction, and never
// again: every operation that cannot complete within the fixed capacity
// reports one of the sentinel errors in this package instead of growing,
// reallocating, or panicking. None of the containers synchronize internally;
// callers sharing a container across goroutines or interrupt-like contexts
// must wrap access in their own critical section.
package heapless
