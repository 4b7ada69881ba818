package executor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nodecanvas/nodecanvas/pkg/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrExecutionAlreadyStarted = errors.New("workflow execution already started")
)

// DefaultMaxNodeExecutions bounds how often a single node may run in one
// workflow execution. Authored loop cycles re-enqueue their loop node on
// every iteration; a condition that never turns false would otherwise spin
// forever.
const DefaultMaxNodeExecutions = 1000

type command any

type pauseCommand struct{}

type resumeCommand struct{}

type stopCommand struct{}

type completionCommand struct {
	notification domain.CompletionNotification
}

// WorkflowExecution drives one run of one workflow. The run loop executes
// on its own goroutine and owns all run state: the frontier, node outputs,
// the pending and processing sets. Control commands and completion
// notifications arrive from other goroutines as messages on the command
// mailbox, never as direct mutation, so the loop needs no locking around
// its state.
type WorkflowExecution struct {
	executionID string
	workflow    domain.Workflow
	registry    domain.NodeRegistry

	frontier *executionFrontier

	// outputsByNodeID holds the last-computed value per (node, output port);
	// re-executions overwrite their own prior outputs.
	outputsByNodeID map[string]map[string]any

	// pendingCorrelationByNodeID holds parked nodes and the correlation id
	// each one is waiting on. A pending node is never also in the frontier
	// or in processing.
	pendingCorrelationByNodeID map[string]string

	// stagedPayloadByNodeID holds completion payloads for resumed nodes
	// until their next invocation consumes them.
	stagedPayloadByNodeID map[string]map[string]any

	processingNodeIDs map[string]struct{}

	behaviorsByNodeID      map[string]domain.NodeBehavior
	executionCountByNodeID map[string]int
	maxNodeExecutions      int

	entryNodeIDs  map[string]struct{}
	initialInputs map[string]any

	executionOrder int64
	startedAt      time.Time

	state      domain.RunState
	started    bool
	stateMutex sync.RWMutex

	commands chan command
	done     chan struct{}

	observer        *ExecutionObserver
	historyRecorder *HistoryRecorder
}

type WorkflowExecutionDeps struct {
	Workflow domain.Workflow
	Registry domain.NodeRegistry

	// EventHandlers are subscribed to the run's observer in addition to the
	// built-in history recorder and event logger.
	EventHandlers []domain.ExecutionEventHandler

	// MaxNodeExecutions overrides DefaultMaxNodeExecutions when positive.
	MaxNodeExecutions int
}

func NewWorkflowExecution(deps WorkflowExecutionDeps) *WorkflowExecution {
	executionID := uuid.NewString()

	observer := NewExecutionObserver()
	historyRecorder := NewHistoryRecorder()

	observer.Subscribe(historyRecorder)
	observer.Subscribe(NewEventLogger(deps.Workflow.ID, executionID))

	for _, handler := range deps.EventHandlers {
		observer.Subscribe(handler)
	}

	maxNodeExecutions := deps.MaxNodeExecutions
	if maxNodeExecutions <= 0 {
		maxNodeExecutions = DefaultMaxNodeExecutions
	}

	return &WorkflowExecution{
		executionID:                executionID,
		workflow:                   deps.Workflow,
		registry:                   deps.Registry,
		frontier:                   newExecutionFrontier(),
		outputsByNodeID:            map[string]map[string]any{},
		pendingCorrelationByNodeID: map[string]string{},
		stagedPayloadByNodeID:      map[string]map[string]any{},
		processingNodeIDs:          map[string]struct{}{},
		behaviorsByNodeID:          map[string]domain.NodeBehavior{},
		executionCountByNodeID:     map[string]int{},
		maxNodeExecutions:          maxNodeExecutions,
		entryNodeIDs:               map[string]struct{}{},
		state:                      domain.RunStateIdle,
		commands:                   make(chan command, 16),
		done:                       make(chan struct{}),
		observer:                   observer,
		historyRecorder:            historyRecorder,
	}
}

func (e *WorkflowExecution) ExecutionID() string {
	return e.executionID
}

func (e *WorkflowExecution) State() domain.RunState {
	e.stateMutex.RLock()
	defer e.stateMutex.RUnlock()

	return e.state
}

func (e *WorkflowExecution) setState(state domain.RunState) {
	e.stateMutex.Lock()
	defer e.stateMutex.Unlock()

	e.state = state
}

// Done is closed when the run loop exits, whether the run completed,
// stopped, or exceeded the node execution bound.
func (e *WorkflowExecution) Done() <-chan struct{} {
	return e.done
}

// HistoryEntries returns the ordered execution history recorded so far.
func (e *WorkflowExecution) HistoryEntries() []domain.NodeExecutionEntry {
	return e.historyRecorder.GetHistoryEntries()
}

// Start validates the workflow, seeds the frontier with every entry node,
// and launches the run loop on its own goroutine. Entry nodes are the nodes
// with no control input port, plus nodes whose control input has no incoming
// exec connection. The caller returns immediately; progress is reported
// through the observer.
func (e *WorkflowExecution) Start(ctx context.Context, initialInputs map[string]any) error {
	e.stateMutex.Lock()
	if e.started {
		e.stateMutex.Unlock()
		return ErrExecutionAlreadyStarted
	}
	e.stateMutex.Unlock()

	if err := ValidateWorkflow(e.workflow, e.registry); err != nil {
		return err
	}

	e.initialInputs = initialInputs
	e.startedAt = time.Now()

	for _, node := range e.workflow.Nodes {
		definition, _ := e.registry.GetDefinition(node.Type)

		if definition.ExecInput && e.workflow.HasIncomingExecConnection(node.ID) {
			continue
		}

		e.frontier.Push(node.ID)
		e.entryNodeIDs[node.ID] = struct{}{}
	}

	e.stateMutex.Lock()
	e.started = true
	e.state = domain.RunStateRunning
	e.stateMutex.Unlock()

	log.Info().
		Str("workflow_id", e.workflow.ID).
		Str("execution_id", e.executionID).
		Int("entry_nodes", e.frontier.Len()).
		Msg("Starting workflow execution")

	go e.run(ctx)

	return nil
}

func (e *WorkflowExecution) Pause() {
	e.send(pauseCommand{})
}

func (e *WorkflowExecution) Resume() {
	e.send(resumeCommand{})
}

func (e *WorkflowExecution) Stop() {
	e.send(stopCommand{})
}

// NotifyCompletion is the inbound side of the async completion bridge. It
// may be called from any goroutine. Returns false when the notification was
// dropped because the run already finished; in-run staleness (unknown node,
// mismatched correlation id) is checked on the loop and also dropped.
func (e *WorkflowExecution) NotifyCompletion(notification domain.CompletionNotification) bool {
	delivered := e.send(completionCommand{notification: notification})
	if !delivered {
		log.Warn().
			Str("execution_id", e.executionID).
			Str("node_id", notification.NodeID).
			Str("correlation_id", notification.CorrelationID).
			Msg("Dropping completion notification for finished execution")
	}

	return delivered
}

func (e *WorkflowExecution) send(cmd command) bool {
	select {
	case <-e.done:
		return false
	default:
	}

	select {
	case e.commands <- cmd:
		return true
	case <-e.done:
		return false
	}
}

func (e *WorkflowExecution) run(ctx context.Context) {
	defer close(e.done)

	for {
		state := e.State()

		if state == domain.RunStateStopped {
			return
		}

		if state != domain.RunStateRunning || e.frontier.Len() == 0 {
			if state == domain.RunStateRunning && e.frontier.Len() == 0 && len(e.pendingCorrelationByNodeID) == 0 {
				e.complete(ctx)
				return
			}

			// Nothing runnable: idle on the mailbox without consuming the
			// frontier. A run with parked nodes stays here until a
			// completion or stop arrives.
			select {
			case cmd := <-e.commands:
				e.handleCommand(ctx, cmd)
			case <-ctx.Done():
				e.stop(ctx, "context canceled")
				return
			}

			continue
		}

		// Commands queued behind the frontier drain take priority over the
		// next node so pause and stop take effect promptly.
		select {
		case cmd := <-e.commands:
			e.handleCommand(ctx, cmd)
			continue
		case <-ctx.Done():
			e.stop(ctx, "context canceled")
			return
		default:
		}

		e.step(ctx)
	}
}

func (e *WorkflowExecution) handleCommand(ctx context.Context, cmd command) {
	switch c := cmd.(type) {
	case pauseCommand:
		if e.State() == domain.RunStateRunning {
			e.setState(domain.RunStatePaused)

			log.Info().Str("execution_id", e.executionID).Msg("Workflow execution paused")
		}
	case resumeCommand:
		if e.State() == domain.RunStatePaused {
			e.setState(domain.RunStateRunning)

			log.Info().Str("execution_id", e.executionID).Msg("Workflow execution resumed")
		}
	case stopCommand:
		e.stop(ctx, "stop requested")
	case completionCommand:
		e.handleCompletion(c.notification)
	}
}

// handleCompletion re-enqueues a parked node when the notification matches
// the correlation id it parked with. Anything else is stale and dropped.
func (e *WorkflowExecution) handleCompletion(notification domain.CompletionNotification) {
	correlationID, pending := e.pendingCorrelationByNodeID[notification.NodeID]
	if !pending || correlationID != notification.CorrelationID {
		log.Warn().
			Str("execution_id", e.executionID).
			Str("node_id", notification.NodeID).
			Str("correlation_id", notification.CorrelationID).
			Msg("Dropping stale completion notification")

		return
	}

	delete(e.pendingCorrelationByNodeID, notification.NodeID)
	e.stagedPayloadByNodeID[notification.NodeID] = notification.Payload
	e.frontier.Push(notification.NodeID)

	log.Debug().
		Str("execution_id", e.executionID).
		Str("node_id", notification.NodeID).
		Msg("Parked node re-enqueued by completion notification")
}

// step dequeues and executes exactly one node.
func (e *WorkflowExecution) step(ctx context.Context) {
	nodeID, ok := e.frontier.Pop()
	if !ok {
		return
	}

	if _, processing := e.processingNodeIDs[nodeID]; processing {
		// Re-entrancy guard: the node was pushed again before its previous
		// invocation finished. Dropping it is normal loop-node semantics,
		// not an error.
		log.Debug().
			Str("execution_id", e.executionID).
			Str("node_id", nodeID).
			Msg("Skipping re-entrant node execution")

		return
	}

	e.executionCountByNodeID[nodeID]++

	if e.executionCountByNodeID[nodeID] > e.maxNodeExecutions {
		log.Error().
			Str("execution_id", e.executionID).
			Str("node_id", nodeID).
			Int("max_node_executions", e.maxNodeExecutions).
			Msg("Node exceeded execution bound, stopping run")

		e.stop(ctx, fmt.Sprintf("node %s executed more than %d times", nodeID, e.maxNodeExecutions))

		return
	}

	e.processingNodeIDs[nodeID] = struct{}{}
	defer delete(e.processingNodeIDs, nodeID)

	if err := e.executeNode(ctx, nodeID); err != nil {
		log.Error().
			Err(err).
			Str("execution_id", e.executionID).
			Str("node_id", nodeID).
			Msg("Error executing node")
	}
}

// executeNode resolves the node's inputs, invokes its behavior, and
// interprets the result: record outputs, then either propagate the exec
// trigger downstream, park the node, or finish it.
func (e *WorkflowExecution) executeNode(ctx context.Context, nodeID string) error {
	node, exists := e.workflow.GetNodeByID(nodeID)
	if !exists {
		return fmt.Errorf("%w: %s", domain.ErrNodeNotFound, nodeID)
	}

	definition, _ := e.registry.GetDefinition(node.Type)

	inputs := e.resolveInputs(node, definition)

	behavior, err := e.behaviorFor(ctx, node)
	if err != nil {
		return e.failNode(ctx, node, inputs, err)
	}

	startedAt := time.Now()

	if err := e.observer.Notify(ctx, NodeExecutionStartedEvent{
		NodeID:    node.ID,
		NodeType:  node.Type,
		Timestamp: startedAt,
	}); err != nil {
		log.Error().Err(err).Msg("Failed to notify node execution started")
	}

	result, err := behavior.Execute(ctx, domain.NodeInput{
		NodeID:     node.ID,
		WorkflowID: e.workflow.ID,
		Inputs:     inputs,
		Properties: node.Properties,
	})
	if err != nil {
		// No exec trigger is honored on failure; the branch below this
		// node is simply not enqueued.
		return e.failNode(ctx, node, inputs, err)
	}

	e.outputsByNodeID[node.ID] = result.Outputs

	if result.ExecTrigger == "" && len(definition.ExecOutputs) > 0 {
		e.parkNode(ctx, node, result)
		return nil
	}

	if result.ExecTrigger != "" {
		if !definition.HasExecOutput(result.ExecTrigger) {
			err := fmt.Errorf("node triggered undeclared exec output %q", result.ExecTrigger)
			return e.failNode(ctx, node, inputs, err)
		}

		for _, connection := range e.workflow.ConnectionsFrom(node.ID, result.ExecTrigger) {
			if connection.Kind != domain.PortKindExec {
				continue
			}

			e.enqueueDownstream(connection.TargetNodeID)
		}
	}

	e.executionOrder++

	endedAt := time.Now()

	if err := e.observer.Notify(ctx, NodeExecutionCompletedEvent{
		NodeID:         node.ID,
		NodeType:       node.Type,
		Inputs:         inputs,
		Outputs:        result.Outputs,
		ExecTrigger:    result.ExecTrigger,
		ExecutionOrder: e.executionOrder,
		StartedAt:      startedAt,
		EndedAt:        endedAt,
		Timestamp:      endedAt,
	}); err != nil {
		log.Error().Err(err).Msg("Failed to notify node execution completed")
	}

	return nil
}

func (e *WorkflowExecution) enqueueDownstream(nodeID string) {
	if _, pending := e.pendingCorrelationByNodeID[nodeID]; pending {
		// A pending node is resumed only by its completion notification;
		// triggering it again while it waits would double-dispatch.
		log.Warn().
			Str("execution_id", e.executionID).
			Str("node_id", nodeID).
			Msg("Ignoring exec trigger into pending node")

		return
	}

	e.frontier.Push(nodeID)
}

func (e *WorkflowExecution) parkNode(ctx context.Context, node domain.WorkflowNode, result domain.NodeResult) {
	e.pendingCorrelationByNodeID[node.ID] = result.CorrelationID

	if err := e.observer.Notify(ctx, NodeParkedEvent{
		NodeID:        node.ID,
		NodeType:      node.Type,
		CorrelationID: result.CorrelationID,
		Timestamp:     time.Now(),
	}); err != nil {
		log.Error().Err(err).Msg("Failed to notify node parked")
	}
}

func (e *WorkflowExecution) failNode(ctx context.Context, node domain.WorkflowNode, inputs map[string]any, cause error) error {
	executionErr := &domain.NodeExecutionError{
		NodeID: node.ID,
		Err:    cause,
	}

	if err := e.observer.Notify(ctx, NodeExecutionFailedEvent{
		NodeID:    node.ID,
		NodeType:  node.Type,
		Inputs:    inputs,
		Error:     executionErr,
		Timestamp: time.Now(),
	}); err != nil {
		log.Error().Err(err).Msg("Failed to notify node execution failed")
	}

	return executionErr
}

// resolveInputs builds the inputs map for one invocation. For each declared
// data input: a connected port reads the latest upstream output, falling
// back to the port default when the upstream has not produced a value yet;
// an unconnected port reads the node property of the same name, falling
// back to the port default. Entry nodes additionally receive the run's
// initial inputs, and a resumed node receives its staged completion payload
// for this invocation only.
func (e *WorkflowExecution) resolveInputs(node domain.WorkflowNode, definition domain.NodeDefinition) map[string]any {
	inputs := map[string]any{}

	for _, port := range definition.DataInputs {
		connections := e.workflow.ConnectionsTo(node.ID, port.Name)

		dataConnections := []domain.Connection{}
		for _, connection := range connections {
			if connection.Kind == domain.PortKindData {
				dataConnections = append(dataConnections, connection)
			}
		}

		if len(dataConnections) == 0 {
			if value, ok := node.Properties[port.Name]; ok {
				inputs[port.Name] = value
			} else if port.Default != nil {
				inputs[port.Name] = port.Default
			}

			continue
		}

		connection := dataConnections[0]

		upstreamOutputs, executed := e.outputsByNodeID[connection.SourceNodeID]
		if !executed {
			if port.Default != nil {
				inputs[port.Name] = port.Default
			}

			continue
		}

		value, ok := upstreamOutputs[connection.SourcePort]
		if !ok {
			if port.Default != nil {
				inputs[port.Name] = port.Default
			}

			continue
		}

		inputs[port.Name] = value
	}

	if _, isEntry := e.entryNodeIDs[node.ID]; isEntry {
		for key, value := range e.initialInputs {
			inputs[key] = value
		}
	}

	if payload, staged := e.stagedPayloadByNodeID[node.ID]; staged {
		for key, value := range payload {
			inputs[key] = value
		}

		delete(e.stagedPayloadByNodeID, node.ID)
	}

	return inputs
}

func (e *WorkflowExecution) behaviorFor(ctx context.Context, node domain.WorkflowNode) (domain.NodeBehavior, error) {
	if behavior, exists := e.behaviorsByNodeID[node.ID]; exists {
		return behavior, nil
	}

	creator, err := e.registry.SelectCreator(ctx, domain.SelectNodeParams{
		NodeType: node.Type,
	})
	if err != nil {
		return nil, err
	}

	behavior, err := creator.CreateNode(ctx, domain.CreateNodeParams{
		WorkflowID: e.workflow.ID,
		NodeID:     node.ID,
	})
	if err != nil {
		return nil, err
	}

	e.behaviorsByNodeID[node.ID] = behavior

	return behavior, nil
}

func (e *WorkflowExecution) complete(ctx context.Context) {
	e.setState(domain.RunStateIdle)

	if err := e.observer.Notify(ctx, WorkflowExecutionCompletedEvent{
		Timestamp: time.Now(),
	}); err != nil {
		log.Error().Err(err).Msg("Failed to notify workflow execution completed")
	}

	log.Info().
		Str("workflow_id", e.workflow.ID).
		Str("execution_id", e.executionID).
		Dur("duration", time.Since(e.startedAt)).
		Msg("Frontier drained, workflow execution finished")
}

// stop clears all engine-side run state. Already-dispatched external
// operations are not cancelled; their late completions will be dropped as
// stale.
func (e *WorkflowExecution) stop(ctx context.Context, reason string) {
	e.setState(domain.RunStateStopped)

	e.frontier.Clear()
	e.pendingCorrelationByNodeID = map[string]string{}
	e.stagedPayloadByNodeID = map[string]map[string]any{}
	e.processingNodeIDs = map[string]struct{}{}

	if err := e.observer.Notify(ctx, WorkflowExecutionStoppedEvent{
		Reason:    reason,
		Timestamp: time.Now(),
	}); err != nil {
		log.Error().Err(err).Msg("Failed to notify workflow execution stopped")
	}
}
