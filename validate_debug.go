//go:build debug_heapless

package heapless

import "fmt"

// DebugValidate will call Validate on the provided object and panics if any errors are returned. This
// method no-ops unless the debug_heapless build tag is present
func DebugValidate(validatable Validatable) {
	err := validatable.Validate()
	if err != nil {
		panic(err)
	}
}

// DebugCheckPow2 will verify that the numerical value passed in is a power of two, and panics if it is not.
// This method no-ops unless the debug_heapless build tag is present.
func DebugCheckPow2[T Number](value T, name string) {
	err := CheckPow2[T](value, name)
	if err != nil {
		panic(err)
	}
}

// DebugCheckZeroed verifies that every byte of the provided buffer is zero, and panics if any is not.
// Released pool blocks are required to stay zeroed until reacquired, so this is used to catch writes
// through stale block views. This method no-ops unless the debug_heapless build tag is present.
func DebugCheckZeroed(buf []byte, name string) {
	for i, b := range buf {
		if b != 0 {
			panic(fmt.Sprintf("%s: byte %d is 0x%02x, expected the buffer to be zeroed", name, i, b))
		}
	}
}
