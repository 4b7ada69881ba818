package executor

import (
	"context"
	"sync"
	"time"

	"github.com/nodecanvas/nodecanvas/pkg/domain"
)

// HistoryRecorder subscribes to the execution observer and keeps an ordered
// record of every behavior invocation, including failures. Re-executions of
// the same node (loop bodies) append new entries; the host reads the whole
// history after the run.
type HistoryRecorder struct {
	mutex   sync.Mutex
	entries []domain.NodeExecutionEntry
}

func NewHistoryRecorder() *HistoryRecorder {
	return &HistoryRecorder{
		entries: []domain.NodeExecutionEntry{},
	}
}

func (r *HistoryRecorder) HandleEvent(ctx context.Context, event domain.ExecutionEvent) error {
	switch e := event.(type) {
	case NodeExecutionCompletedEvent:
		r.append(domain.NodeExecutionEntry{
			NodeID:         e.NodeID,
			NodeType:       e.NodeType,
			Inputs:         e.Inputs,
			Outputs:        e.Outputs,
			ExecTrigger:    e.ExecTrigger,
			ExecutionOrder: e.ExecutionOrder,
			StartedAt:      e.StartedAt,
			EndedAt:        e.EndedAt,
		})
	case NodeExecutionFailedEvent:
		r.append(domain.NodeExecutionEntry{
			NodeID:    e.NodeID,
			NodeType:  e.NodeType,
			Inputs:    e.Inputs,
			Error:     e.Error.Error(),
			StartedAt: e.Timestamp,
			EndedAt:   time.Now(),
		})
	}

	return nil
}

func (r *HistoryRecorder) append(entry domain.NodeExecutionEntry) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.entries = append(r.entries, entry)
}

func (r *HistoryRecorder) GetHistoryEntries() []domain.NodeExecutionEntry {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	entries := make([]domain.NodeExecutionEntry, len(r.entries))
	copy(entries, r.entries)

	return entries
}
