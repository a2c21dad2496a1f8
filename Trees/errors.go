package Trees

import "fmt"

// EmptyTreeError is the panic value of operations that require a non-empty tree,
// like Min, Max and RemoveRoot. Callers are expected to check IsEmpty first.
type EmptyTreeError struct {
	Op string
}

func (e *EmptyTreeError) Error() string {
	return "Tree is Empty: cannot " + e.Op + "."
}

// InvalidSliceError is the panic value of Build in safe mode when the given slice
// isn't strictly ascending: Prev is found right before Next but Prev>=Next.
type InvalidSliceError struct {
	Prev, Next any
	At         int
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("slice is not strictly ascending at %d: %v followed by %v", e.At, e.Prev, e.Next)
}
