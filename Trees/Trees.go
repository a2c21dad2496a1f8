package Trees

// Tree represents a binary search tree like structure implemented using nodes.
// Receivers that have a bool as a second return value indicate whether
// the first return value is defined. For example, Retrieve on a value that isn't
// in the tree returns (x T, false bool); x is then the zero value of T and
// shouldn't be used.
// Operations that require a non-empty tree, like Min and Max, panic with
// *EmptyTreeError instead; callers are expected to check IsEmpty first.
// Methods implemented recursively are noted, otherwise they are implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if successful, false if v is already present.
	Insert(v T) bool
	//Delete v from the Tree. Returning true if successful, false if v isn't present.
	Delete(v T) bool
	//Retrieve the element equal to key.
	Retrieve(key T) (T, bool)
	//Contains element v.
	Contains(v T) bool
	//Min element of the tree.
	Min() T
	//Max element of the tree.
	Max() T
	//Parent returns the element held by the parent of key.
	Parent(key T) (T, bool)
	//Size of the tree.
	Size() uint
	//IsEmpty is Size()==0.
	IsEmpty() bool
	//Height of the tree in edges.
	Height() int
	//Inorder returns the elements in ascending order.
	Inorder() []T
	//LevelOrder returns A closure function f acting like an iterator. f
	//gives elements in level order. Calling f is like calling "Next()" of
	//iterators: val, valid=f(). val is meaningful only if valid is true.
	//When valid==false, then f is exhausted. valid can't turn true after it
	//first became false. The tree must not be modified during the iteration of f.
	LevelOrder() func() (T, bool)
	//IsValid returns whether every node satisfies the ordering with its children.
	//This is to be distinguished from whether the tree is balanced or not.
	IsValid() bool
}

var _ Tree[int] = (*BST[int])(nil)
