package client

import (
	"context"
	"fmt"

	"github.com/trvs-io/travis-client/internal/http"
	"github.com/trvs-io/travis-client/pkg/travis"
)

// JobsClient implements travis.JobsClient.
type JobsClient struct {
	httpClient *http.Client
}

// NewJobsClient creates a new jobs client.
func NewJobsClient(httpClient *http.Client) *JobsClient {
	return &JobsClient{httpClient: httpClient}
}

// ListByBuild implements travis.JobsClient.ListByBuild.
func (c *JobsClient) ListByBuild(ctx context.Context, buildID int64) (*travis.JobList, error) {
	return getList[travis.Job](ctx, c.httpClient, fmt.Sprintf("/build/%d/jobs", buildID), nil, "jobs")
}

// Get implements travis.JobsClient.Get.
func (c *JobsClient) Get(ctx context.Context, jobID int64) (*travis.Job, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/job/%d", jobID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting job: %w", err)
	}

	return decodeResource[travis.Job](resp, "job")
}

// Restart implements travis.JobsClient.Restart.
func (c *JobsClient) Restart(ctx context.Context, jobID int64) (*travis.JobStateChange, error) {
	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/job/%d/restart", jobID), nil)
	if err != nil {
		return nil, fmt.Errorf("restarting job: %w", err)
	}

	return decodeResource[travis.JobStateChange](resp, "job state change")
}

// Cancel implements travis.JobsClient.Cancel.
func (c *JobsClient) Cancel(ctx context.Context, jobID int64) (*travis.JobStateChange, error) {
	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/job/%d/cancel", jobID), nil)
	if err != nil {
		return nil, fmt.Errorf("canceling job: %w", err)
	}

	return decodeResource[travis.JobStateChange](resp, "job state change")
}

// GetLog implements travis.JobsClient.GetLog.
func (c *JobsClient) GetLog(ctx context.Context, jobID int64) (*travis.Log, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/job/%d/log", jobID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting job log: %w", err)
	}

	return decodeResource[travis.Log](resp, "log")
}

// DeleteLog implements travis.JobsClient.DeleteLog.
func (c *JobsClient) DeleteLog(ctx context.Context, jobID int64) (*travis.Log, error) {
	resp, err := c.httpClient.Delete(ctx, fmt.Sprintf("/job/%d/log", jobID), nil)
	if err != nil {
		return nil, fmt.Errorf("deleting job log: %w", err)
	}

	return decodeResource[travis.Log](resp, "log")
}
