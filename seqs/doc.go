/*
Package seqs provides the sequence primitives for Go 1.23+ iterators (iter.Seq).

Every function here is a lazy adaptor or a terminal sink over [iter.Seq]. Nothing is
read from the input until the returned sequence is ranged over, and every adaptor
stops pulling from its input as soon as the consumer stops.

  - **Functional Transformations**: [Map], [Filter], [Reduce], [FlatMap], [Zip], [Enumerate], [SortedFunc].
  - **Flow Control**: [Take], [Skip], [TakeWhile], [DropWhile], [Stride].
  - **Windowing**: [Window], [Chunk], [ChunkBy].
  - **Structure**: [Concat], [Flatten], [JoinWith], [Split], [LazySplit], [CartesianProduct].
  - **Sinks**: [Count], [First], [Last], [Equal], [EqualFunc], [Sum], [Min], [Max].

Package monad builds its chaining wrapper on top of these functions.

# Passes

Most sequences produced here can be ranged over more than once if their input can.
The exception is [LazySplit]: its segments share a single pull over the input and
are only valid until the outer sequence advances.

	// Example of composing primitives
	evens := seqs.Filter(slices.Values(xs), func(v int) bool { return v%2 == 0 })
	for w := range seqs.Window(evens, 2, 1) {
		fmt.Println(w)
	}
*/
package seqs
