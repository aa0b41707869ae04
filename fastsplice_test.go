package fastsplice

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplice(t *testing.T) {
	testCases := []struct {
		name        string
		start       Arg
		deleteCount Arg
		inserts     []int
		wantSlice   []int
		wantRemoved []int
	}{
		{ // 只传入切片，什么都不做
			name:        "only sequence",
			start:       Omitted,
			deleteCount: Omitted,
			wantSlice:   []int{1, 2, 3, 4, 5},
			wantRemoved: []int{},
		},
		{ // 没有传 deleteCount，删除到末尾
			name:        "start only",
			start:       Provided(3),
			deleteCount: Omitted,
			wantSlice:   []int{1, 2, 3},
			wantRemoved: []int{4, 5},
		},
		{
			name:        "negative start only",
			start:       Provided(-1),
			deleteCount: Omitted,
			wantSlice:   []int{1, 2, 3, 4},
			wantRemoved: []int{5},
		},
		{ // nil 转换为 0
			name:        "nil start deletes everything",
			start:       Provided(nil),
			deleteCount: Omitted,
			wantSlice:   []int{},
			wantRemoved: []int{1, 2, 3, 4, 5},
		},
		{
			name:        "delete head",
			start:       Provided(0),
			deleteCount: Provided(2),
			wantSlice:   []int{3, 4, 5},
			wantRemoved: []int{1, 2},
		},
		{ // 传了 deleteCount，nil 转换为 0，什么都不删
			name:        "nil delete count deletes nothing",
			start:       Provided(3),
			deleteCount: Provided(nil),
			wantSlice:   []int{1, 2, 3, 4, 5},
			wantRemoved: []int{},
		},
		{
			name:        "prepend",
			start:       Provided(0),
			deleteCount: Provided(0),
			inserts:     []int{6, 7},
			wantSlice:   []int{6, 7, 1, 2, 3, 4, 5},
			wantRemoved: []int{},
		},
		{ // deleteCount 超过剩余长度时截断
			name:        "replace tail",
			start:       Provided(-2),
			deleteCount: Provided(5),
			inserts:     []int{6, 7},
			wantSlice:   []int{1, 2, 3, 6, 7},
			wantRemoved: []int{4, 5},
		},
		{
			name:        "replace three with two",
			start:       Provided(-3),
			deleteCount: Provided(5),
			inserts:     []int{6, 7},
			wantSlice:   []int{1, 2, 6, 7},
			wantRemoved: []int{3, 4, 5},
		},
		{ // 字符串按数字解析并向零截断
			name:        "string arguments",
			start:       Provided("1.7"),
			deleteCount: Provided(" 2 "),
			inserts:     []int{9},
			wantSlice:   []int{1, 9, 4, 5},
			wantRemoved: []int{2, 3},
		},
		{
			name:        "garbage delete count",
			start:       Provided(1),
			deleteCount: Provided("many"),
			inserts:     []int{9},
			wantSlice:   []int{1, 9, 2, 3, 4, 5},
			wantRemoved: []int{},
		},
		{ // inf 不是数字字面量，转换为 0
			name:        "inf string start deletes everything",
			start:       Provided("inf"),
			deleteCount: Omitted,
			wantSlice:   []int{},
			wantRemoved: []int{1, 2, 3, 4, 5},
		},
		{
			name:        "infinite start appends",
			start:       Provided(math.Inf(1)),
			deleteCount: Provided(math.MaxInt),
			inserts:     []int{6},
			wantSlice:   []int{1, 2, 3, 4, 5, 6},
			wantRemoved: []int{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			seq := []int{1, 2, 3, 4, 5}
			removed, err := Splice(&seq, tc.start, tc.deleteCount, tc.inserts...)
			require.NoError(t, err)
			assert.Equal(t, tc.wantSlice, seq)
			assert.Equal(t, tc.wantRemoved, removed)
		})
	}
}

func TestSplice_nilSequence(t *testing.T) {
	removed, err := Splice[int](nil, Provided(0), Omitted)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Nil(t, removed)
}

// nativeSplice 直接按照 splice 的定义重新分配拼接结果，用作对照
func nativeSplice(seq []int, start, deleteCount Arg, inserts []int) ([]int, []int) {
	if !start.IsProvided() {
		return seq, []int{}
	}
	length := len(seq)
	s := ToInteger(start.Value())
	if s < 0 {
		s += length
	}
	s = min(max(s, 0), length)
	end := length
	if deleteCount.IsProvided() {
		if dc := ToInteger(deleteCount.Value()); dc < length-s {
			end = s + max(dc, 0)
		}
	}
	res := append(append(append([]int{}, seq[:s]...), inserts...), seq[end:]...)
	return res, append([]int{}, seq[s:end]...)
}

// TestSplice_matrix 覆盖各种 start、deleteCount 与插入长度的组合
func TestSplice_matrix(t *testing.T) {
	starts := []Arg{Omitted, Provided(0), Provided(3), Provided(5), Provided(6),
		Provided(-1), Provided(-2), Provided(-6), Provided(nil), Provided(2.9)}
	deleteCounts := []Arg{Omitted, Provided(0), Provided(1), Provided(2), Provided(5),
		Provided(-1), Provided(nil), Provided("3")}
	inserts := [][]int{{}, {6, 7}, {6, 7, 8, 9, 10}, {6, 7, 8, 9, 10, 11, 12}}

	for _, start := range starts {
		for _, deleteCount := range deleteCounts {
			for _, ins := range inserts {
				name := fmt.Sprintf("start=%v/delete=%v/insert=%d", start, deleteCount, len(ins))
				t.Run(name, func(t *testing.T) {
					want, wantRemoved := nativeSplice([]int{1, 2, 3, 4, 5}, start, deleteCount, ins)

					seq := make([]int, 5, 6)
					copy(seq, []int{1, 2, 3, 4, 5})
					removed, err := Splice(&seq, start, deleteCount, ins...)
					require.NoError(t, err)
					if diff := cmp.Diff(want, seq); diff != "" {
						t.Errorf("sequence mismatch (-want +got):\n%s", diff)
					}
					if diff := cmp.Diff(wantRemoved, removed); diff != "" {
						t.Errorf("removed mismatch (-want +got):\n%s", diff)
					}
				})
			}
		}
	}
}

func TestSpliceAny(t *testing.T) {
	t.Run("any slice fast path", func(t *testing.T) {
		seq := []any{1, "two", 3.0}
		removed, err := SpliceAny(&seq, Provided(1), Provided(1), []any{"x", "y"})
		require.NoError(t, err)
		assert.Equal(t, []any{1, "x", "y", 3.0}, seq)
		assert.Equal(t, []any{"two"}, removed)
	})

	t.Run("typed slice", func(t *testing.T) {
		seq := []string{"a", "b", "c"}
		removed, err := SpliceAny(&seq, Provided(-1), Omitted, [2]string{"y", "z"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "y", "z"}, seq)
		assert.Equal(t, []string{"c"}, removed)
	})

	t.Run("nil inserts", func(t *testing.T) {
		seq := []int{1, 2, 3}
		removed, err := SpliceAny(&seq, Provided(0), Provided(1), nil)
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3}, seq)
		assert.Equal(t, []int{1}, removed)
	})

	t.Run("noop", func(t *testing.T) {
		seq := []int{1, 2, 3}
		removed, err := SpliceAny(&seq, Omitted, Omitted, []int{4})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, seq)
		assert.Equal(t, []int{}, removed)
	})

	t.Run("interface elements", func(t *testing.T) {
		seq := []fmt.Stringer{}
		_, err := SpliceAny(&seq, Provided(0), Omitted, []Arg{Provided(1)})
		require.NoError(t, err)
		assert.Equal(t, []fmt.Stringer{Provided(1)}, seq)
	})
}

func TestSpliceAny_invalidArgument(t *testing.T) {
	seq := []int{1, 2, 3}
	var nilSeq *[]int
	testCases := []struct {
		name    string
		seq     any
		inserts any
	}{
		{name: "nil", seq: nil},
		{name: "slice value", seq: seq},
		{name: "nil pointer", seq: nilSeq},
		{name: "pointer to non slice", seq: new(int)},
		{name: "string", seq: "abc"},
		{name: "inserts not a sequence", seq: &seq, inserts: 4},
		{name: "inserts string", seq: &seq, inserts: "45"},
		{name: "inserts wrong element type", seq: &seq, inserts: []string{"4"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			removed, err := SpliceAny(tc.seq, Provided(0), Omitted, tc.inserts)
			assert.True(t, errors.Is(err, ErrInvalidArgument), "err = %v", err)
			assert.Nil(t, removed)
			assert.Equal(t, []int{1, 2, 3}, seq)
		})
	}
}

func TestArg(t *testing.T) {
	assert.False(t, Omitted.IsProvided())
	assert.Nil(t, Omitted.Value())
	assert.Equal(t, "<omitted>", Omitted.String())

	a := Provided(nil)
	assert.True(t, a.IsProvided())
	assert.Nil(t, a.Value())
	assert.Equal(t, "-3", Provided(-3).String())
}
