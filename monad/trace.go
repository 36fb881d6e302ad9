package monad

import (
	"iter"

	"github.com/rs/zerolog"
)

// Trace logs every element that flows through this point of the chain at
// debug level, tagged with label, followed by a summary event when the
// traversal ends. Random access is dropped so that every read is logged.
func (m Monad[T]) Trace(logger zerolog.Logger, label string) Monad[T] {
	out := Monad[T]{seq: traced(m.All(), logger, label, "forward"), size: m.size, once: m.once}
	if m.back != nil {
		out.back = traced(m.back, logger, label, "backward")
	}
	return out
}

func traced[T any](seq iter.Seq[T], logger zerolog.Logger, label, direction string) iter.Seq[T] {
	return func(yield func(T) bool) {
		count, stopped := 0, false
		for v := range seq {
			logger.Debug().
				Str("chain", label).
				Str("direction", direction).
				Int("index", count).
				Interface("value", v).
				Msg("element")
			count++
			if !yield(v) {
				stopped = true
				break
			}
		}
		logger.Debug().
			Str("chain", label).
			Str("direction", direction).
			Int("count", count).
			Bool("stopped", stopped).
			Msg("traversal finished")
	}
}
