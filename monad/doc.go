/*
Package monad wraps any iterable collection in a chainable, lazily evaluated
sequence, [Monad].

	evens := monad.Of(1, 2, 3, 4).
		Filter(func(v int) bool { return v%2 == 0 }).
		Take(10)
	fmt.Println(evens.ToSlice()) // [2 4]

Adaptors that keep the element type are methods ([Monad.Filter], [Monad.Take],
[Monad.Reverse], ...). Adaptors that change it are functions, because Go methods
cannot introduce type parameters ([Transform], [Zip], [Enumerate], [Chunk],
[LazySplit], ...). Every adaptor returns a new Monad and leaves its input
untouched, so a partial chain can be stored and extended more than once.

# Laziness

No element is read until the chain is traversed, either by ranging over
[Monad.All] or by a terminal operation: [Equal], [Monad.Distance],
[Monad.ToSlice], [Into], [Reduce] and friends. [Monad.Take] and
[Monad.TakeWhile] stop pulling from upstream as soon as they are satisfied.

# Capabilities

Each Monad carries a [Capability] set describing how it can be traversed:
more than once, backwards, with a known length, by index. Sources set it,
adaptors narrow it. An adaptor that needs a capability the chain lacks, such
as [Monad.Reverse] on a forward-only sequence or [CartesianProduct] with a
single-pass second operand, panics with a [CapabilityError] while the chain is
being built, before any element is read. Use [Monad.Supports] to check first.

# Sources

[Owned] captures a slice as it is at construction. [Borrowed] reads the
caller's slice variable on every traversal and sees later writes to it. Both
are random access. [FromSeq] assumes a restartable iter.Seq; wrap one-shot
producers with [Once] or [FromChan] so that adaptors needing several passes
reject them.

A Monad is not safe for concurrent use.
*/
package monad
