package executor

// executionFrontier is the FIFO set of node ids ready to run. Pushing an id
// that is already queued collapses to the existing entry, so one trigger
// cycle never enqueues the same destination twice.
//
// The frontier is owned by the run loop goroutine and needs no locking.
type executionFrontier struct {
	queue  []string
	queued map[string]struct{}
}

func newExecutionFrontier() *executionFrontier {
	return &executionFrontier{
		queue:  []string{},
		queued: map[string]struct{}{},
	}
}

// Push enqueues a node id, returning false when the id was already queued.
func (f *executionFrontier) Push(nodeID string) bool {
	if _, exists := f.queued[nodeID]; exists {
		return false
	}

	f.queue = append(f.queue, nodeID)
	f.queued[nodeID] = struct{}{}

	return true
}

func (f *executionFrontier) Pop() (string, bool) {
	if len(f.queue) == 0 {
		return "", false
	}

	nodeID := f.queue[0]
	f.queue = f.queue[1:]

	delete(f.queued, nodeID)

	return nodeID, true
}

func (f *executionFrontier) Len() int {
	return len(f.queue)
}

func (f *executionFrontier) Clear() {
	f.queue = []string{}
	f.queued = map[string]struct{}{}
}
