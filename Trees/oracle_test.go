package Trees

import (
	"slices"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/google/btree"
)

// TestBST_AgainstBTree replays the same random operations on a BST and on a
// google/btree and compares the outcome of every operation.
func TestBST_AgainstBTree(t *testing.T) {
	tree, ref := New[int](), btree.NewOrderedG[int](8)
	for i := 0; i < tAddN*2; i++ {
		v := rg.Intn(tAddValRange / 8)
		if i%3 == 2 {
			_, had := ref.Delete(v)
			if got := tree.Delete(v); got != had {
				t.Fatalf("Delete(%d) is %v, btree says %v", v, got, had)
			}
		} else {
			_, had := ref.ReplaceOrInsert(v)
			if got := tree.Insert(v); got == had {
				t.Fatalf("Insert(%d) is %v, btree had it: %v", v, got, had)
			}
		}
	}
	if int(tree.Size()) != ref.Len() {
		t.Fatalf("tree size is %d, btree has %d", tree.Size(), ref.Len())
	}
	want := make([]int, 0, ref.Len())
	ref.Ascend(func(v int) bool {
		want = append(want, v)
		return true
	})
	if !slices.Equal(tree.Inorder(), want) {
		t.Errorf("inorder differs from btree ascend")
	}
	if m, _ := ref.Min(); len(want) > 0 && m != tree.Min() {
		t.Errorf("min is %d, btree says %d", tree.Min(), m)
	}
	if m, _ := ref.Max(); len(want) > 0 && m != tree.Max() {
		t.Errorf("max is %d, btree says %d", tree.Max(), m)
	}
}

// TestBST_AgainstRedBlackTree compares membership and bounds with the gods red-black tree.
func TestBST_AgainstRedBlackTree(t *testing.T) {
	tree, ref := New[int](), redblacktree.NewWithIntComparator()
	for _i := 0; _i < tAddN; _i++ {
		v := rg.Intn(tAddValRange)
		tree.Insert(v)
		ref.Put(v, struct{}{})
	}
	for _i := 0; _i < tAddN/2; _i++ {
		v := rg.Intn(tAddValRange)
		tree.Delete(v)
		ref.Remove(v)
	}
	if int(tree.Size()) != ref.Size() {
		t.Fatalf("tree size is %d, red-black tree has %d", tree.Size(), ref.Size())
	}
	keys := ref.Keys()
	got := tree.Inorder()
	for i, k := range keys {
		if got[i] != k.(int) {
			t.Fatalf("inorder[%d] is %d, red-black tree has %d", i, got[i], k)
		}
	}
	for _i := 0; _i < tAddN; _i++ {
		v := rg.Intn(tAddValRange)
		_, found := ref.Get(v)
		if tree.Contains(v) != found {
			t.Errorf("Contains(%d) is %v, red-black tree says %v", v, !found, found)
		}
	}
	if ref.Size() > 0 {
		if l := ref.Left(); utils.IntComparator(l.Key, tree.Min()) != 0 {
			t.Errorf("min is %d, red-black tree says %v", tree.Min(), l.Key)
		}
		if r := ref.Right(); utils.IntComparator(r.Key, tree.Max()) != 0 {
			t.Errorf("max is %d, red-black tree says %v", tree.Max(), r.Key)
		}
	}
}
