package heapless

import "github.com/pkg/errors"

// ErrFull is the error returned from bounded.Vector.Push when the vector is at capacity
var ErrFull error = errors.New("vector is full")

// ErrWouldOverflow is the error returned from bounded.String appends when the appended
// fragment does not fit in the remaining capacity
var ErrWouldOverflow error = errors.New("append would overflow capacity")

// ErrInvalidUTF8 is the error returned from bounded.String appends when the appended
// fragment is not valid UTF-8
var ErrInvalidUTF8 error = errors.New("fragment is not valid utf-8")

// ErrExhausted is the error returned from blockpool.Pool.Acquire when every block in
// the pool is currently acquired
var ErrExhausted error = errors.New("all blocks are in use")

// PowerOfTwoError is the error returned from CheckPow2 or other methods if the number being tested is not a power of two
var PowerOfTwoError error = errors.New("number must be a power of two")
