// Package bounded provides fixed-capacity sequence containers: Vector, an
// ordered buffer of values, and String, a UTF-8 byte buffer. Both allocate
// their full backing storage at construction and reject growth beyond it with
// the sentinel errors in the heapless package.
package bounded
