package seqs

import "iter"

// Chunk splits the input sequence into chunks of the specified size.
// The last chunk may be smaller if there are not enough elements.
func Chunk[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if size <= 0 {
			return
		}

		batch := make([]T, 0, size)

		for v := range seq {
			batch = append(batch, v)
			if len(batch) == size {
				if !yield(batch) {
					return
				}
				batch = make([]T, 0, size)
			}
		}
		if len(batch) > 0 {
			yield(batch)
		}
	}
}

// Window creates a sliding window over the input sequence.
// size: window size.
// step: step size for each slide.
//
// Scenario 1 (step < size): overlapping windows. For example, [1,2,3], [2,3,4] (size=3, step=1)
// Scenario 2 (step == size): equivalent to Chunk, except that a short tail is dropped.
// Scenario 3 (step > size): gapped windows (some data is skipped in between).
//
// Every yielded window is a fresh slice the consumer may keep.
func Window[T any](seq iter.Seq[T], size, step int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if size <= 0 || step <= 0 {
			return
		}

		buffer := make([]T, 0, size)

		// when step > size, we need to skip some elements after yielding
		skipCount := 0

		for v := range seq {
			// 1. in skip mode
			if skipCount > 0 {
				skipCount--
				continue
			}

			// 2. collect data
			buffer = append(buffer, v)

			// 3. window not full, continue collecting
			if len(buffer) < size {
				continue
			}

			// 4. window full, yield it
			output := make([]T, size)
			copy(output, buffer)

			if !yield(output) {
				return
			}

			// 5. slide window
			if step < size {
				// overlapping mode: keep the latter part
				// e.g. [1,2,3,4,5], step=2 => copy([1...], [3,4,5]) => [3,4,5,4,5]
				copy(buffer, buffer[step:])
				buffer = buffer[:size-step]
			} else {
				// gap mode: clear and set skip count
				buffer = buffer[:0]
				skipCount = step - size
			}
		}
	}
}

// ChunkBy groups consecutive elements into maximal runs.
// A run continues while pred(previous, current) holds; the first pair for which
// pred is false starts a new run. With a "less than" predicate the runs are
// strictly increasing.
func ChunkBy[T any](seq iter.Seq[T], pred func(prev, cur T) bool) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		var run []T
		for v := range seq {
			if len(run) > 0 && !pred(run[len(run)-1], v) {
				if !yield(run) {
					return
				}
				run = nil
			}
			run = append(run, v)
		}
		if len(run) > 0 {
			yield(run)
		}
	}
}
