package seqs_test

import (
	"cmp"
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"monadic/seqs"
)

// counting wraps s and records how many elements were pulled from it.
func counting[T any](s []T, pulled *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			*pulled++
			if !yield(v) {
				return
			}
		}
	}
}

func TestFilterMap(t *testing.T) {
	input := slices.Values([]int{1, 2, 3, 4, 5, 6})
	evens := seqs.Filter(input, func(x int) bool { return x%2 == 0 })
	assert.Equal(t, []int{2, 4, 6}, slices.Collect(evens))

	doubled := seqs.Map(evens, func(x int) int { return x * 2 })
	assert.Equal(t, []int{4, 8, 12}, slices.Collect(doubled))
	// restartable input gives a restartable result
	assert.Equal(t, []int{4, 8, 12}, slices.Collect(doubled))
}

func TestReduce(t *testing.T) {
	sum := seqs.Reduce(slices.Values([]int{1, 2, 3, 4}), 0, func(acc, v int) int { return acc + v })
	assert.Equal(t, 10, sum)
}

func TestTakeStopsPulling(t *testing.T) {
	pulled := 0
	got := slices.Collect(seqs.Take(counting([]int{1, 2, 3, 4, 5}, &pulled), 2))
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 2, pulled)

	pulled = 0
	got = slices.Collect(seqs.TakeWhile(counting([]int{1, 2, 3, 4, 5}, &pulled), func(v int) bool { return v < 3 }))
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 3, pulled, "TakeWhile reads the first failing element and nothing after it")
}

func TestFlowControl(t *testing.T) {
	input := slices.Values([]int{1, 2, 3, 4})
	lt3 := func(v int) bool { return v < 3 }

	tests := []struct {
		name string
		seq  iter.Seq[int]
		want []int
	}{
		{"Take", seqs.Take(input, 2), []int{1, 2}},
		{"TakeAll", seqs.Take(input, 10), []int{1, 2, 3, 4}},
		{"TakeZero", seqs.Take(input, 0), nil},
		{"Skip", seqs.Skip(input, 2), []int{3, 4}},
		{"SkipAll", seqs.Skip(input, 10), nil},
		{"TakeWhile", seqs.TakeWhile(input, lt3), []int{1, 2}},
		{"DropWhile", seqs.DropWhile(input, lt3), []int{3, 4}},
		{"Stride2", seqs.Stride(input, 2), []int{1, 3}},
		{"Stride3", seqs.Stride(input, 3), []int{1, 4}},
		{"StrideZero", seqs.Stride(input, 0), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slices.Collect(tt.seq))
		})
	}
}

func TestWindows(t *testing.T) {
	input := slices.Values([]int{0, 1, 2, 3, 4})

	assert.Equal(t, [][]int{{0, 1}, {2, 3}, {4}}, slices.Collect(seqs.Chunk(input, 2)))
	assert.Equal(t, [][]int{{0, 1, 2}, {1, 2, 3}, {2, 3, 4}}, slices.Collect(seqs.Window(input, 3, 1)))
	assert.Equal(t, [][]int{{0, 1}, {3, 4}}, slices.Collect(seqs.Window(input, 2, 3)))
	assert.Empty(t, slices.Collect(seqs.Window(input, 6, 1)))
}

func TestWindowOutputIsIndependent(t *testing.T) {
	var kept [][]int
	for w := range seqs.Window(slices.Values([]int{1, 2, 3, 4}), 2, 1) {
		kept = append(kept, w)
	}
	assert.Equal(t, [][]int{{1, 2}, {2, 3}, {3, 4}}, kept)
}

func TestChunkBy(t *testing.T) {
	less := func(a, b int) bool { return a < b }
	lessEq := func(a, b int) bool { return a <= b }

	tests := []struct {
		name  string
		input []int
		pred  func(a, b int) bool
		want  [][]int
	}{
		{"Less/Rise_Fall", []int{1, 2, 3, 2, 1}, less, [][]int{{1, 2, 3}, {2}, {1}}},
		{"Less/Plateau_Splits", []int{1, 2, 2, 3}, less, [][]int{{1, 2}, {2, 3}}},
		{"LessEq/Plateau_Joins", []int{1, 2, 2, 3}, lessEq, [][]int{{1, 2, 2, 3}}},
		{"Less/Two_Runs", []int{0, 1, 0, 3}, less, [][]int{{0, 1}, {0, 3}}},
		{"Less/Single", []int{7}, less, [][]int{{7}}},
		{"Less/Empty", nil, less, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slices.Collect(seqs.ChunkBy(slices.Values(tt.input), tt.pred)))
		})
	}
}

func TestZip(t *testing.T) {
	got := slices.Collect(seqs.Zip(slices.Values([]int{0, 1, 2, 3}), slices.Values([]rune("ABCDE"))))
	assert.Equal(t, []seqs.Pair[int, rune]{{0, 'A'}, {1, 'B'}, {2, 'C'}, {3, 'D'}}, got)

	got3 := slices.Collect(seqs.Zip3(
		slices.Values([]int{1, 2}),
		slices.Values([]string{"a", "b", "c"}),
		slices.Values([]bool{true, false}),
	))
	assert.Equal(t, []seqs.Triple[int, string, bool]{{1, "a", true}, {2, "b", false}}, got3)
}

func TestEnumerate(t *testing.T) {
	var idx []int
	var vals []string
	for i, v := range seqs.Enumerate(slices.Values([]string{"a", "b", "c"})) {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []string{"a", "b", "c"}, vals)
}

func TestCartesianProduct(t *testing.T) {
	got := slices.Collect(seqs.CartesianProduct(slices.Values([]int{0, 1}), slices.Values([]rune("AB"))))
	assert.Equal(t, []seqs.Pair[int, rune]{{0, 'A'}, {0, 'B'}, {1, 'A'}, {1, 'B'}}, got)
}

func TestJoin(t *testing.T) {
	nested := slices.Values([]iter.Seq[int]{
		slices.Values([]int{1, 2}),
		slices.Values([]int{}),
		slices.Values([]int{3, 4}),
	})
	assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(seqs.Flatten(nested)))
	assert.Equal(t, []int{1, 2, 9, 9, 3, 4}, slices.Collect(seqs.JoinWith(nested, 9)))
	assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(seqs.Concat(slices.Values([]int{1, 2}), slices.Values([]int{3, 4}))))
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  [][]int
	}{
		{"Leading_And_Inner", []int{0, 1, 0, 2, 3, 0, 4, 5, 6}, [][]int{{}, {1}, {2, 3}, {4, 5, 6}}},
		{"Trailing", []int{1, 0}, [][]int{{1}, {}}},
		{"Consecutive", []int{1, 0, 0, 2}, [][]int{{1}, {}, {2}}},
		{"Only_Delimiter", []int{0}, [][]int{{}, {}}},
		{"No_Delimiter", []int{1, 2}, [][]int{{1, 2}}},
		{"Empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slices.Collect(seqs.Split(slices.Values(tt.input), 0)))
		})
	}
}

func TestLazySplit(t *testing.T) {
	t.Run("Roundtrip_JoinWith", func(t *testing.T) {
		input := []int{0, 1, 0, 2, 3, 0, 0, 4}
		joined := seqs.JoinWith(seqs.LazySplit(slices.Values(input), 0), 0)
		assert.Equal(t, input, slices.Collect(joined))
	})

	t.Run("Unread_Segments_Are_Skipped", func(t *testing.T) {
		var firsts []int
		for seg := range seqs.LazySplit(slices.Values([]int{1, 2, 0, 3, 4, 0, 5}), 0) {
			for v := range seg {
				firsts = append(firsts, v)
				break
			}
		}
		assert.Equal(t, []int{1, 3, 5}, firsts)
	})

	t.Run("Segment_Is_Single_Pass", func(t *testing.T) {
		for seg := range seqs.LazySplit(slices.Values([]int{1, 2, 0, 3}), 0) {
			assert.NotEmpty(t, slices.Collect(seg))
			assert.Empty(t, slices.Collect(seg))
		}
	})

	t.Run("Lazy", func(t *testing.T) {
		pulled := 0
		for seg := range seqs.LazySplit(counting([]int{1, 0, 2, 0, 3}, &pulled), 0) {
			assert.Equal(t, []int{1}, slices.Collect(seg))
			break
		}
		assert.Equal(t, 2, pulled)
	})
}

func TestSinks(t *testing.T) {
	input := slices.Values([]int{3, 1, 2})

	first, ok := seqs.First(input)
	assert.True(t, ok)
	assert.Equal(t, 3, first)

	last, ok := seqs.Last(input)
	assert.True(t, ok)
	assert.Equal(t, 2, last)

	_, ok = seqs.First(slices.Values([]int{}))
	assert.False(t, ok)

	assert.Equal(t, 3, seqs.Count(input))
	assert.Equal(t, 6, seqs.Sum(input))

	lo, ok := seqs.Min(input)
	assert.True(t, ok)
	assert.Equal(t, 1, lo)
	hi, ok := seqs.Max(input)
	assert.True(t, ok)
	assert.Equal(t, 3, hi)
	_, ok = seqs.Max(slices.Values([]float64{}))
	assert.False(t, ok)
}

func TestEqual(t *testing.T) {
	assert.True(t, seqs.Equal(slices.Values([]int{1, 2}), slices.Values([]int{1, 2})))
	assert.False(t, seqs.Equal(slices.Values([]int{1, 2}), slices.Values([]int{1, 2, 3})))
	assert.False(t, seqs.Equal(slices.Values([]int{1, 2, 3}), slices.Values([]int{1, 2})))
	assert.False(t, seqs.Equal(slices.Values([]int{1, 3}), slices.Values([]int{1, 2})))
	assert.True(t, seqs.Equal(slices.Values([]int{}), slices.Values([]int(nil))))

	lenEq := func(a string, b int) bool { return len(a) == b }
	assert.True(t, seqs.EqualFunc(slices.Values([]string{"a", "bb"}), slices.Values([]int{1, 2}), lenEq))
}

func TestSorted(t *testing.T) {
	input := slices.Values([]rune("edcba"))
	assert.Equal(t, []rune("abcde"), slices.Collect(seqs.SortedFunc(input, cmp.Compare[rune])))

	type kv struct {
		k int
		v string
	}
	stable := seqs.SortedFunc(slices.Values([]kv{{2, "x"}, {1, "a"}, {2, "y"}}), func(a, b kv) int {
		return cmp.Compare(a.k, b.k)
	})
	assert.Equal(t, []kv{{1, "a"}, {2, "x"}, {2, "y"}}, slices.Collect(stable))
}

func TestGenerate(t *testing.T) {
	assert.Equal(t, []int{0, 2, 4}, slices.Collect(seqs.Range(0, 5, 2)))
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(seqs.Range(3, 0, -1)))
	assert.Empty(t, slices.Collect(seqs.Range(0, 5, 0)))
	assert.Equal(t, []uint8{250, 251, 252}, slices.Collect(seqs.Take(seqs.Iota[uint8](250), 3)))
	assert.Equal(t, []string{"x", "x"}, slices.Collect(seqs.Repeat("x", 2)))
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(seqs.Backward([]int{1, 2, 3})))
}

func TestPeek(t *testing.T) {
	var seen []int
	got := slices.Collect(seqs.Take(seqs.Peek(slices.Values([]int{1, 2, 3}), func(v int) { seen = append(seen, v) }), 2))
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, []int{1, 2}, seen)
}

func TestValues(t *testing.T) {
	assert.Equal(t, []string{"c", "b", "a"}, slices.Collect(seqs.Values(slices.Backward([]string{"a", "b", "c"}))))
}
