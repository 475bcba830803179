package travis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/trvs-io/travis-client/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrUnsupportedBatchAction   = errors.New("unsupported batch action")
	ErrUnsupportedBatchResource = errors.New("unsupported batch resource")
)

// Batch actions and resources.
const (
	BatchActionRestart = "restart"
	BatchActionCancel  = "cancel"

	BatchResourceBuild = "build"
	BatchResourceJob   = "job"
)

// BatchOperation describes one state change in a batch: restarting or
// canceling a build or a job.
type BatchOperation struct {
	ID         string
	Action     string
	Resource   string
	ResourceID int64
	Callback   func(result *BatchResult)
}

// BatchResult represents the result of a batch operation.
type BatchResult struct {
	ID string
	// Success reports whether the service accepted the state change.
	Success bool
	// StateChange is the acknowledged verb ("restart", "cancel") on
	// success.
	StateChange string
	Error       error
	Duration    time.Duration
}

// BatchExecutor runs state-change operations concurrently against one
// client. Acceptance is per operation; a rejected restart does not stop the
// rest of the batch.
type BatchExecutor struct {
	client      Client
	concurrency int
	timeout     time.Duration
}

// NewBatchExecutor creates a new batch executor.
func NewBatchExecutor(client Client, concurrency int) *BatchExecutor {
	if concurrency <= 0 {
		concurrency = 5
	}

	return &BatchExecutor{
		client:      client,
		concurrency: concurrency,
		timeout:     constants.DefaultHTTPTimeout,
	}
}

// SetTimeout sets the per-operation timeout.
func (b *BatchExecutor) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
}

// Execute runs a batch of operations. Results are returned in operation
// order regardless of completion order.
func (b *BatchExecutor) Execute(ctx context.Context, operations []BatchOperation) ([]BatchResult, error) {
	results := make([]BatchResult, len(operations))

	var waitGroup sync.WaitGroup

	semaphore := make(chan struct{}, b.concurrency)

	for index, operation := range operations {
		waitGroup.Add(1)

		go func(index int, operation BatchOperation) {
			defer waitGroup.Done()

			semaphore <- struct{}{}

			defer func() { <-semaphore }()

			opCtx, cancel := context.WithTimeout(ctx, b.timeout)
			defer cancel()

			start := time.Now()
			result := b.executeOperation(opCtx, operation)
			result.Duration = time.Since(start)
			results[index] = *result

			if operation.Callback != nil {
				operation.Callback(result)
			}
		}(index, operation)
	}

	waitGroup.Wait()

	return results, nil
}

func (b *BatchExecutor) executeOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	result := &BatchResult{ID: operation.ID}

	switch operation.Resource {
	case BatchResourceBuild:
		change, err := b.executeBuildAction(ctx, operation)
		if err != nil {
			result.Error = err

			return result
		}

		result.Success = true
		result.StateChange = change.StateChange
	case BatchResourceJob:
		change, err := b.executeJobAction(ctx, operation)
		if err != nil {
			result.Error = err

			return result
		}

		result.Success = true
		result.StateChange = change.StateChange
	default:
		result.Error = fmt.Errorf("%w: %s", ErrUnsupportedBatchResource, operation.Resource)
	}

	return result
}

func (b *BatchExecutor) executeBuildAction(ctx context.Context, operation BatchOperation) (*BuildStateChange, error) {
	switch operation.Action {
	case BatchActionRestart:
		return b.client.Builds().Restart(ctx, operation.ResourceID)
	case BatchActionCancel:
		return b.client.Builds().Cancel(ctx, operation.ResourceID)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBatchAction, operation.Action)
	}
}

func (b *BatchExecutor) executeJobAction(ctx context.Context, operation BatchOperation) (*JobStateChange, error) {
	switch operation.Action {
	case BatchActionRestart:
		return b.client.Jobs().Restart(ctx, operation.ResourceID)
	case BatchActionCancel:
		return b.client.Jobs().Cancel(ctx, operation.ResourceID)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBatchAction, operation.Action)
	}
}

// BatchBuilder assembles batch operations fluently.
type BatchBuilder struct {
	operations []BatchOperation
}

// NewBatchBuilder creates a new batch builder.
func NewBatchBuilder() *BatchBuilder {
	return &BatchBuilder{operations: []BatchOperation{}}
}

// AddRestartBuild adds a build restart to the batch.
func (b *BatchBuilder) AddRestartBuild(id string, buildID int64) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:         id,
		Action:     BatchActionRestart,
		Resource:   BatchResourceBuild,
		ResourceID: buildID,
	})

	return b
}

// AddCancelBuild adds a build cancel to the batch.
func (b *BatchBuilder) AddCancelBuild(id string, buildID int64) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:         id,
		Action:     BatchActionCancel,
		Resource:   BatchResourceBuild,
		ResourceID: buildID,
	})

	return b
}

// AddRestartJob adds a job restart to the batch.
func (b *BatchBuilder) AddRestartJob(id string, jobID int64) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:         id,
		Action:     BatchActionRestart,
		Resource:   BatchResourceJob,
		ResourceID: jobID,
	})

	return b
}

// AddCancelJob adds a job cancel to the batch.
func (b *BatchBuilder) AddCancelJob(id string, jobID int64) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:         id,
		Action:     BatchActionCancel,
		Resource:   BatchResourceJob,
		ResourceID: jobID,
	})

	return b
}

// AddOperation adds a prebuilt operation to the batch.
func (b *BatchBuilder) AddOperation(operation BatchOperation) *BatchBuilder {
	b.operations = append(b.operations, operation)

	return b
}

// Build returns the assembled operations.
func (b *BatchBuilder) Build() []BatchOperation {
	return b.operations
}
