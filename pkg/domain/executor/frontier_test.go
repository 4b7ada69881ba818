package executor

import "testing"

func TestExecutionFrontierFIFOOrder(t *testing.T) {
	frontier := newExecutionFrontier()

	frontier.Push("a")
	frontier.Push("b")
	frontier.Push("c")

	for _, expected := range []string{"a", "b", "c"} {
		nodeID, ok := frontier.Pop()
		if !ok {
			t.Fatal("expected a queued node id")
		}

		if nodeID != expected {
			t.Errorf("popped %q, want %q", nodeID, expected)
		}
	}

	if _, ok := frontier.Pop(); ok {
		t.Error("expected empty frontier")
	}
}

func TestExecutionFrontierCollapsesDuplicates(t *testing.T) {
	frontier := newExecutionFrontier()

	if !frontier.Push("a") {
		t.Error("first push should enqueue")
	}

	if frontier.Push("a") {
		t.Error("duplicate push should collapse")
	}

	if frontier.Len() != 1 {
		t.Errorf("len = %d, want 1", frontier.Len())
	}

	// Once popped, the id may be enqueued again (loop re-entry).
	frontier.Pop()

	if !frontier.Push("a") {
		t.Error("push after pop should enqueue")
	}
}

func TestExecutionFrontierClear(t *testing.T) {
	frontier := newExecutionFrontier()

	frontier.Push("a")
	frontier.Push("b")
	frontier.Clear()

	if frontier.Len() != 0 {
		t.Errorf("len = %d, want 0", frontier.Len())
	}

	if !frontier.Push("a") {
		t.Error("push after clear should enqueue")
	}
}
