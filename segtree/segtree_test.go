package segtree

import (
	"errors"
	"math/rand"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/aggtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type sumSet struct{}

func (sumSet) Identity() int64                 { return 0 }
func (sumSet) Combine(left, right int64) int64 { return left + right }
func (sumSet) Apply(_, u int64) int64          { return u }

// concatSet is a non-commutative operation: order of combination matters.
type concatSet struct{}

func (concatSet) Identity() string                  { return "" }
func (concatSet) Combine(left, right string) string { return left + right }
func (concatSet) Apply(_, u string) string          { return u }

func eqInt(a, b int64) bool { return a == b }

var sample = []int64{2, 1, 4, 3, 6, 5, 8, 7, 10, 9}

func TestQuery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aggtree")
	defer teardown()
	//
	tree, err := New[int64, int64](sumSet{}, 10, slices.Values(sample))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s, _ := tree.Query(0, 4); s != 10 {
		t.Errorf("expected Query(0,4) = 10, is %d", s)
	}
	if s, _ := tree.Query(3, 10); s != 48 {
		t.Errorf("expected Query(3,10) = 48, is %d", s)
	}
	if s, _ := tree.Query(0, 10); s != 55 {
		t.Errorf("expected Query(0,10) = 55, is %d", s)
	}
}

func TestModify(t *testing.T) {
	tree, err := FromSlice[int64, int64](sumSet{}, sample)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if err := tree.Modify(5, 2); err != nil {
		t.Fatalf("Modify failed: %v", err)
	}
	want := []int64{0, 52, 37, 15, 34, 3, 7, 8, 15, 19, 2, 1, 4, 3, 6, 2, 8, 7, 10, 9}
	if diff := cmp.Diff(want, tree.val); diff != "" {
		t.Errorf("unexpected node layout (-want +got):\n%s", diff)
	}
	if s, _ := tree.Query(0, 10); s != 52 {
		t.Errorf("expected Query(0,10) = 52, is %d", s)
	}
	if v, _ := tree.At(5); v != 2 {
		t.Errorf("expected At(5) = 2, is %d", v)
	}
	if err := tree.Check(eqInt); err != nil {
		t.Error(err)
	}
}

func TestModifyThenPointQuery(t *testing.T) {
	tree, _ := FromSlice[int64, int64](sumSet{}, sample)
	for i := range sample {
		u := int64(100 + i)
		if err := tree.Modify(i, u); err != nil {
			t.Fatalf("Modify(%d) failed: %v", i, err)
		}
		if v, _ := tree.Query(i, i+1); v != u {
			t.Errorf("Query(%d,%d) after Modify: expected %d, is %d", i, i+1, u, v)
		}
	}
}

func TestEmptyRangeYieldsIdentity(t *testing.T) {
	tree, _ := FromSlice[int64, int64](sumSet{}, sample)
	before := slices.Clone(tree.val)
	for i := 0; i <= len(sample); i++ {
		if v, err := tree.Query(i, i); err != nil || v != 0 {
			t.Errorf("Query(%d,%d): expected identity, got %d, %v", i, i, v, err)
		}
	}
	if diff := cmp.Diff(before, tree.val); diff != "" {
		t.Errorf("empty queries changed the tree:\n%s", diff)
	}
}

func TestPaddingAndTruncation(t *testing.T) {
	tree, err := New[int64, int64](sumSet{}, 6, slices.Values([]int64{1, 2, 3}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if diff := cmp.Diff([]int64{1, 2, 3, 0, 0, 0}, tree.Values()); diff != "" {
		t.Errorf("short input not padded with identity:\n%s", diff)
	}
	tree, err = New[int64, int64](sumSet{}, 3, slices.Values([]int64{5, 6, 7, 8}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if diff := cmp.Diff([]int64{5, 6, 7}, tree.Values()); diff != "" {
		t.Errorf("long input not truncated:\n%s", diff)
	}
	if s, _ := tree.Query(0, 3); s != 18 {
		t.Errorf("expected sum 18, is %d", s)
	}
	tree, err = New[int64, int64](sumSet{}, 4, nil)
	if err != nil {
		t.Fatalf("New with nil values failed: %v", err)
	}
	if s, _ := tree.Query(0, 4); s != 0 {
		t.Errorf("expected identity for empty initialization, is %d", s)
	}
}

func TestPreconditions(t *testing.T) {
	tree, _ := FromSlice[int64, int64](sumSet{}, sample)
	if err := tree.Modify(10, 1); !errors.Is(err, aggtree.ErrIndexOutOfRange) {
		t.Errorf("Modify(10): expected ErrIndexOutOfRange, got %v", err)
	}
	if err := tree.Modify(-1, 1); !errors.Is(err, aggtree.ErrIndexOutOfRange) {
		t.Errorf("Modify(-1): expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := tree.Query(3, 11); !errors.Is(err, aggtree.ErrIndexOutOfRange) {
		t.Errorf("Query(3,11): expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := tree.Query(5, 3); !errors.Is(err, aggtree.ErrInvalidRange) {
		t.Errorf("Query(5,3): expected ErrInvalidRange, got %v", err)
	}
	if _, err := tree.At(10); !errors.Is(err, aggtree.ErrIndexOutOfRange) {
		t.Errorf("At(10): expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := New[int64, int64](nil, 3, nil); !errors.Is(err, aggtree.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for nil operation, got %v", err)
	}
	if err := tree.Check(nil); !errors.Is(err, aggtree.ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for nil equality, got %v", err)
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree, _ := FromSlice[int64, int64](sumSet{}, sample)
	tree.val[3]++
	if err := tree.Check(eqInt); !errors.Is(err, aggtree.ErrInconsistentTree) {
		t.Errorf("expected ErrInconsistentTree, got %v", err)
	}
}

func TestNonCommutativeOrder(t *testing.T) {
	letters := strings.Split("abcde", "")
	tree, _ := FromSlice[string, string](concatSet{}, letters)
	// node 2 aggregates leaves of different depths and is never part of an answer
	if tree.val[2] != "dea" {
		t.Errorf("expected node 2 to be %q, is %q", "dea", tree.val[2])
	}
	for l := 0; l <= len(letters); l++ {
		for r := l; r <= len(letters); r++ {
			s, err := tree.Query(l, r)
			if err != nil {
				t.Fatalf("Query(%d,%d) failed: %v", l, r, err)
			}
			if want := strings.Join(letters[l:r], ""); s != want {
				t.Errorf("Query(%d,%d): expected %q, is %q", l, r, want, s)
			}
		}
	}
}

func TestEmptyTree(t *testing.T) {
	tree, err := New[int64, int64](sumSet{}, 0, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s, err := tree.Query(0, 0); err != nil || s != 0 {
		t.Errorf("expected identity, got %d, %v", s, err)
	}
	if err := tree.Modify(0, 1); !errors.Is(err, aggtree.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func randomLetter(r *rand.Rand) string {
	return string(rune('a' + r.Intn(26)))
}

func runRandomSegtreeSequence(t *testing.T, seed int64, n, steps int) {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	model := make([]string, n)
	for i := range model {
		model[i] = randomLetter(r)
	}
	tree, err := FromSlice[string, string](concatSet{}, model)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	for step := 0; step < steps; step++ {
		if r.Intn(3) == 0 {
			i, u := r.Intn(n), randomLetter(r)
			if err := tree.Modify(i, u); err != nil {
				t.Fatalf("Modify(%d) failed: %v", i, err)
			}
			model[i] = u
			continue
		}
		l := r.Intn(n + 1)
		rr := l + r.Intn(n-l+1)
		got, err := tree.Query(l, rr)
		if err != nil {
			t.Fatalf("Query(%d,%d) failed: %v", l, rr, err)
		}
		if want := strings.Join(model[l:rr], ""); got != want {
			t.Fatalf("step %d: Query(%d,%d) = %q, model says %q", step, l, rr, got, want)
		}
	}
	if err := tree.Check(func(a, b string) bool { return a == b }); err != nil {
		t.Fatal(err)
	}
}

func TestRandomizedAgainstModel(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 7, 42, 99, 31337, 123456789} {
		t.Run("seed_"+strconv.FormatInt(seed, 10), func(t *testing.T) {
			runRandomSegtreeSequence(t, seed, int(seed%41)+1, 250)
		})
	}
}

func FuzzRandomizedAgainstModel(f *testing.F) {
	f.Add(int64(1), uint8(5))
	f.Add(int64(7), uint8(1))
	f.Add(int64(42), uint8(77))
	f.Fuzz(func(t *testing.T, seed int64, n uint8) {
		runRandomSegtreeSequence(t, seed, int(n%120)+1, 200)
	})
}

func BenchmarkQuery(b *testing.B) {
	values := make([]int64, 1<<20)
	for i := range values {
		values[i] = int64(i)
	}
	tree, _ := FromSlice[int64, int64](sumSet{}, values)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l := i % len(values)
		tree.Query(l/2, l)
	}
	b.ReportAllocs()
}
