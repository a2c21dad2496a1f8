package Trees

import (
	"testing"
)

var (
	bAddN = 1 << 15
	bQryN = bAddN / 2
)

var sideEff *Node[int]

func create(b *testing.B) (*BST[int], []int) {
	b.Helper()
	all := rg.Perm(bAddN)
	tree := New[int]()
	for _, v := range all {
		tree.Insert(v)
	}
	return tree, all
}

func BenchmarkInsert(b *testing.B) {
	for _i := 0; _i < b.N; _i++ {
		tree := New[int]()
		for _i := 0; _i < bAddN; _i++ {
			tree.Insert(rg.Int())
		}
	}
}

func BenchmarkDelete(b *testing.B) {
	for _i := 0; _i < b.N; _i++ {
		b.StopTimer()
		tree, all := create(b)
		b.StartTimer()
		for _, v := range all {
			tree.Delete(v)
		}
	}
}

func BenchmarkFind(b *testing.B) {
	tree, all := create(b)
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		for _, v := range all[:bQryN] {
			sideEff = tree.Find(v)
		}
	}
}

func BenchmarkFindR(b *testing.B) {
	tree, all := create(b)
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		for _, v := range all[:bQryN] {
			sideEff = tree.FindR(v)
		}
	}
}

func BenchmarkPreorder(b *testing.B) {
	tree, _ := create(b)
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		tree.Preorder()
	}
}

func BenchmarkPreorderI(b *testing.B) {
	tree, _ := create(b)
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		tree.PreorderI()
	}
}

func BenchmarkLevelorder(b *testing.B) {
	tree, _ := create(b)
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		tree.Levelorder()
	}
}
