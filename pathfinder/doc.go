// Package pathfinder finds the exit closest to the entrance of a tree-shaped
// labyrinth with a fixed pool of worker goroutines that prune branches
// cooperatively once an exit distance is known (branch-and-bound).
//
// What
//
//   - One shared Search State (exit found?, best distance) behind a RWMutex.
//   - One unbounded FIFO of visit tasks (room, parent distance) and an atomic
//     pending counter: incremented before a task is enqueued, decremented
//     after the task, including every child it enqueued, is finished.
//   - N workers (errgroup) pull tasks; any worker may run any task.
//   - When the pending counter reaches zero the queue closes, the workers
//     return, and the observer registered with RegisterObserver is invoked
//     exactly once.
//
// Per task (room, parentDistance):
//
//	admission: exit known && parentDistance >= best   → discard
//	invariant: room.distance <= parentDistance (or NaN)  → ErrMalformedGraph, abort run
//	exit:      tryImprove(room.distance)                  (strict <, first writer wins ties)
//	otherwise: expand corridors iff no exit known || room.distance < best
//
// The entrance is seeded with parent distance -Inf so admission never rejects it.
//
// Completion
//
//	Run is asynchronous: it validates, schedules the entrance and returns.
//	The observer is a plain func() with no payload; read ExitFound,
//	ShortestDistanceToExit and Err from it or after it. Done() is closed
//	right after the observer returns, for callers that prefer to select on a
//	channel with their own timeout. The package itself offers no
//	cancellation: on a finite labyrinth a run always completes.
//
// Race window
//
//	A worker reads the best distance for admission and again before
//	expanding. Another worker may lower the best distance in between, so a
//	branch that can no longer win may still be expanded. This costs extra
//	work, never correctness: tryImprove is the only writer and is atomic, and
//	the children of a stale expansion are filtered by their own admission
//	check. The final distance is always the minimum over every exit visited.
//
// Failure
//
//	A corridor that does not lead strictly farther from the entrance aborts
//	the whole run: remaining tasks are discarded (but still counted down),
//	the observer still fires, and Err returns the wrapped ErrMalformedGraph.
//	From the abort on, ExitFound is false and ShortestDistanceToExit is
//	NoExit, even if some exit had been reached before.
//
// Observability
//
//	Every run gets a uuid run id, a "pathfinder.Run" OpenTelemetry span and
//	run/visit/prune counters plus a duration histogram on the global
//	MeterProvider installed when the run starts. Lifecycle records go to the
//	slog.Logger set by WithLogger.
//
// Usage
//
//	pf := pathfinder.New(pathfinder.WithLogger(logger))
//	if err := pf.Configure(4); err != nil { ... }
//	done := make(chan struct{})
//	pf.RegisterObserver(func() { close(done) })
//	if err := pf.Run(entrance); err != nil { ... }
//	<-done
//	if err := pf.Err(); err != nil { ... }
//	fmt.Println(pf.ExitFound(), pf.ShortestDistanceToExit())
//
// Errors
//
//   - ErrInvalidConfiguration  Configure with maxWorkers <= 0.
//   - ErrInvalidArgument       Run with a nil entrance or entrance distance != 0.
//   - ErrNotConfigured         Run before a successful Configure.
//   - ErrNoObserver            Run without a registered observer.
//   - ErrRunInProgress         Run or Configure while a run is active.
//   - ErrOptionViolation       an invalid Option was passed to New.
//   - ErrMalformedGraph        reported by Err after an aborted run.
package pathfinder
