package travis

import (
	"context"
)

// RepositoriesClient provides access to repository endpoints.
type RepositoriesClient interface {
	// List returns the repositories of the authenticated account.
	List(ctx context.Context, opts *RepositoryListOptions) (*RepositoryList, error)
	// ListWithRequest fetches a repository collection window described by a
	// followed link.
	ListWithRequest(ctx context.Context, req *Request) (*RepositoryList, error)
	// Get fetches a repository by numeric id or by "owner/name" slug.
	Get(ctx context.Context, slugOrID string) (*Repository, error)
	Activate(ctx context.Context, slugOrID string) (*Repository, error)
	Deactivate(ctx context.Context, slugOrID string) (*Repository, error)
	Star(ctx context.Context, slugOrID string) (*Repository, error)
	Unstar(ctx context.Context, slugOrID string) (*Repository, error)
}

// BuildsClient provides access to build endpoints.
type BuildsClient interface {
	// List returns the builds of the authenticated account.
	List(ctx context.Context, opts *BuildListOptions) (*BuildList, error)
	// ListByRepo returns the builds of one repository.
	ListByRepo(ctx context.Context, slugOrID string, opts *BuildListOptions) (*BuildList, error)
	ListWithRequest(ctx context.Context, req *Request) (*BuildList, error)
	Get(ctx context.Context, buildID int64) (*Build, error)
	// Restart asks for the build to run again; the service acknowledges
	// with 202 before any state actually changes.
	Restart(ctx context.Context, buildID int64) (*BuildStateChange, error)
	Cancel(ctx context.Context, buildID int64) (*BuildStateChange, error)
}

// JobsClient provides access to job and job log endpoints.
type JobsClient interface {
	ListByBuild(ctx context.Context, buildID int64) (*JobList, error)
	Get(ctx context.Context, jobID int64) (*Job, error)
	Restart(ctx context.Context, jobID int64) (*JobStateChange, error)
	Cancel(ctx context.Context, jobID int64) (*JobStateChange, error)
	// GetLog fetches the accumulated log of a job.
	GetLog(ctx context.Context, jobID int64) (*Log, error)
	// DeleteLog removes the log of a completed job and returns the scrubbed
	// remainder.
	DeleteLog(ctx context.Context, jobID int64) (*Log, error)
}

// BranchesClient provides access to branch endpoints.
type BranchesClient interface {
	List(ctx context.Context, slugOrID string, opts *BranchListOptions) (*BranchList, error)
	Get(ctx context.Context, slugOrID string, branch string) (*Branch, error)
}

// RequestsClient provides access to build request endpoints.
type RequestsClient interface {
	List(ctx context.Context, slugOrID string, opts *ListOptions) (*BuildRequestList, error)
	ListWithRequest(ctx context.Context, req *Request) (*BuildRequestList, error)
	Get(ctx context.Context, slugOrID string, requestID int64) (*BuildRequest, error)
	// Create triggers a build. The service answers 202 with an
	// acknowledgement rather than the created resources.
	Create(ctx context.Context, slugOrID string, request *BuildRequestCreate) (*BuildRequestResult, error)
}

// OwnersClient provides access to owner endpoints.
type OwnersClient interface {
	Get(ctx context.Context, login string) (*Owner, error)
	// Active returns the currently running and queued builds of an owner.
	Active(ctx context.Context, login string) (*ActiveBuilds, error)
}

// UsersClient provides access to user endpoints.
type UsersClient interface {
	// Current returns the authenticated user.
	Current(ctx context.Context) (*User, error)
	Get(ctx context.Context, userID int64) (*User, error)
	// Sync triggers a synchronization with the upstream VCS provider.
	Sync(ctx context.Context, userID int64) (*User, error)
}

// OrganizationsClient provides access to organization endpoints.
type OrganizationsClient interface {
	List(ctx context.Context, opts *ListOptions) (*OrganizationList, error)
	ListWithRequest(ctx context.Context, req *Request) (*OrganizationList, error)
	Get(ctx context.Context, orgID int64) (*Organization, error)
}

// EnvVarsClient provides access to repository environment variables.
type EnvVarsClient interface {
	List(ctx context.Context, slugOrID string) (*EnvVarList, error)
	Get(ctx context.Context, slugOrID string, envVarID string) (*EnvVar, error)
	Create(ctx context.Context, slugOrID string, request *EnvVarRequest) (*EnvVar, error)
	Update(ctx context.Context, slugOrID string, envVarID string, request *EnvVarRequest) (*EnvVar, error)
	Delete(ctx context.Context, slugOrID string, envVarID string) error
}

// SettingsClient provides access to repository settings.
type SettingsClient interface {
	List(ctx context.Context, slugOrID string) (*SettingList, error)
	Get(ctx context.Context, slugOrID string, name string) (*Setting, error)
	Update(ctx context.Context, slugOrID string, name string, value any) (*Setting, error)
}

// CronsClient provides access to cron endpoints.
type CronsClient interface {
	ListByRepo(ctx context.Context, slugOrID string, opts *ListOptions) (*CronList, error)
	Get(ctx context.Context, cronID int64) (*Cron, error)
	GetByBranch(ctx context.Context, slugOrID string, branch string) (*Cron, error)
	// Create schedules recurring builds for one branch, replacing any
	// existing cron for that branch.
	Create(ctx context.Context, slugOrID string, branch string, request *CronRequest) (*Cron, error)
	Delete(ctx context.Context, cronID int64) error
}

// CachesClient provides access to build cache endpoints.
type CachesClient interface {
	List(ctx context.Context, slugOrID string, opts *CacheListOptions) (*BuildCacheList, error)
	// Delete removes the caches matching opts, or all caches when opts is
	// nil, and returns the deleted set.
	Delete(ctx context.Context, slugOrID string, opts *CacheListOptions) (*BuildCacheList, error)
}

// StagesClient provides access to build stage endpoints.
type StagesClient interface {
	ListByBuild(ctx context.Context, buildID int64) (*StageList, error)
}

// BroadcastsClient provides access to broadcast endpoints.
type BroadcastsClient interface {
	List(ctx context.Context) (*BroadcastList, error)
}

// PreferencesClient provides access to account preference endpoints.
type PreferencesClient interface {
	List(ctx context.Context) (*PreferenceList, error)
	Get(ctx context.Context, name string) (*Preference, error)
	Update(ctx context.Context, name string, value any) (*Preference, error)
}

// LintClient validates build configuration without running it.
type LintClient interface {
	// Lint submits raw build configuration (.travis.yml content) and
	// returns the warnings the service found.
	Lint(ctx context.Context, content []byte) (*LintResult, error)
}

// Client provides access to all resource-specific clients.
type Client interface {
	Repositories() RepositoriesClient
	Builds() BuildsClient
	Jobs() JobsClient
	Branches() BranchesClient
	Requests() RequestsClient
	Owners() OwnersClient
	Users() UsersClient
	Organizations() OrganizationsClient
	EnvVars() EnvVarsClient
	Settings() SettingsClient
	Crons() CronsClient
	Caches() CachesClient
	Stages() StagesClient
	Broadcasts() BroadcastsClient
	Preferences() PreferencesClient
	Lint() LintClient
}
