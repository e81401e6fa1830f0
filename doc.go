// Package flows provides lazy, replayable asynchronous sequences.
//
// A Flow is a recipe for producing an asynchronous sequence: nothing runs
// until the resulting sequence is iterated, and every iteration of an
// unshared Flow re-runs the whole upstream chain from scratch. Composition
// operators (Map, Filter, FlatMap, Tap, Take) build new Flows without
// executing anything.
//
// Share pins a Flow to a single upstream iteration backed by a replay
// buffer. Any number of forks can then drain the shared flow independently
// while upstream side effects happen exactly once per element.
//
// Below is an example of sharing one expensive source between two consumers:
//
//	package yourflow
//
//	import (
//		"context"
//		"log/slog"
//
//		"github.com/elastiflow/flows"
//		"github.com/elastiflow/flows/sequences"
//	)
//
//	func Run(ctx context.Context) {
//		squares := flows.Map( // Build a lazy chain; nothing runs yet
//			sequences.FromSlice([]int{1, 2, 3, 4, 5}),
//			func(v int) (int, error) { return v * v, nil },
//		)
//
//		shared := squares.Share(ctx) // One upstream iteration for all forks
//
//		evens, odds := shared.Branch(func(v int) bool { return v%2 == 0 })
//
//		sum, err := flows.Fold(ctx, evens, 0, func(acc, v int) (int, error) {
//			return acc + v, nil
//		})
//		if err != nil {
//			slog.Error("fold failed: " + err.Error())
//			return
//		}
//		slog.Info("sum of even squares", slog.Int("sum", sum))
//
//		for v := range odds.Emit(ctx, nil) { // Channel bridge for the other side
//			slog.Info("odd square", slog.Int("out", v))
//		}
//	}
package flows
