package travis

import (
	"time"
)

// Repository represents a repository known to the service. Embedded
// repositories (on builds, branches, crons) arrive at minimal
// representation: id, name and slug only.
type Repository struct {
	Metadata `yaml:",inline"`

	ID             int64       `json:"id"                        yaml:"id"`
	Name           string      `json:"name"                      yaml:"name"`
	Slug           string      `json:"slug"                      yaml:"slug"`
	Description    string      `json:"description,omitempty"     yaml:"description,omitempty"`
	GithubID       int64       `json:"github_id,omitempty"       yaml:"github_id,omitempty"`
	GithubLanguage string      `json:"github_language,omitempty" yaml:"github_language,omitempty"`
	Active         bool        `json:"active"                    yaml:"active"`
	Private        bool        `json:"private"                   yaml:"private"`
	Starred        bool        `json:"starred"                   yaml:"starred"`
	ManagedByApp   bool        `json:"managed_by_installation,omitempty" yaml:"managed_by_installation,omitempty"`
	Owner          *Owner      `json:"owner,omitempty"           yaml:"owner,omitempty"`
	DefaultBranch  *Branch     `json:"default_branch,omitempty"  yaml:"default_branch,omitempty"`
	EnvVars        []EnvVar    `json:"env_vars,omitempty"        yaml:"env_vars,omitempty"`
}

// Owner is the account (user or organization) a repository belongs to.
type Owner struct {
	Metadata `yaml:",inline"`

	ID        int64  `json:"id"                   yaml:"id"`
	Login     string `json:"login"                yaml:"login"`
	Name      string `json:"name,omitempty"       yaml:"name,omitempty"`
	GithubID  int64  `json:"github_id,omitempty"  yaml:"github_id,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty"`
	Education bool   `json:"education,omitempty"  yaml:"education,omitempty"`
}

// User represents an account that can authenticate against the service.
type User struct {
	Metadata `yaml:",inline"`

	ID           int64      `json:"id"                      yaml:"id"`
	Login        string     `json:"login"                   yaml:"login"`
	Name         string     `json:"name,omitempty"          yaml:"name,omitempty"`
	GithubID     int64      `json:"github_id,omitempty"     yaml:"github_id,omitempty"`
	AvatarURL    string     `json:"avatar_url,omitempty"    yaml:"avatar_url,omitempty"`
	Education    bool       `json:"education,omitempty"     yaml:"education,omitempty"`
	IsSyncing    bool       `json:"is_syncing"              yaml:"is_syncing"`
	SyncedAt     *time.Time `json:"synced_at,omitempty"     yaml:"synced_at,omitempty"`
	RecentlyArchived *bool  `json:"recently_archived,omitempty" yaml:"recently_archived,omitempty"`
}

// Organization represents an organization account.
type Organization struct {
	Metadata `yaml:",inline"`

	ID        int64  `json:"id"                   yaml:"id"`
	Login     string `json:"login"                yaml:"login"`
	Name      string `json:"name,omitempty"       yaml:"name,omitempty"`
	GithubID  int64  `json:"github_id,omitempty"  yaml:"github_id,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty"`
	Education bool   `json:"education,omitempty"  yaml:"education,omitempty"`
}

// Build represents one run of a repository's configuration.
type Build struct {
	Metadata `yaml:",inline"`

	ID                int64       `json:"id"                            yaml:"id"`
	Number            string      `json:"number"                        yaml:"number"`
	State             string      `json:"state"                         yaml:"state"`
	Duration          int         `json:"duration,omitempty"            yaml:"duration,omitempty"`
	EventType         string      `json:"event_type,omitempty"          yaml:"event_type,omitempty"`
	PreviousState     string      `json:"previous_state,omitempty"      yaml:"previous_state,omitempty"`
	PullRequestTitle  string      `json:"pull_request_title,omitempty"  yaml:"pull_request_title,omitempty"`
	PullRequestNumber int         `json:"pull_request_number,omitempty" yaml:"pull_request_number,omitempty"`
	StartedAt         *time.Time  `json:"started_at,omitempty"          yaml:"started_at,omitempty"`
	FinishedAt        *time.Time  `json:"finished_at,omitempty"         yaml:"finished_at,omitempty"`
	Private           bool        `json:"private,omitempty"             yaml:"private,omitempty"`
	Repository        *Repository `json:"repository,omitempty"          yaml:"repository,omitempty"`
	Branch            *Branch     `json:"branch,omitempty"              yaml:"branch,omitempty"`
	Tag               *Tag        `json:"tag,omitempty"                 yaml:"tag,omitempty"`
	Commit            *Commit     `json:"commit,omitempty"              yaml:"commit,omitempty"`
	Jobs              []Job       `json:"jobs,omitempty"                yaml:"jobs,omitempty"`
	Stages            []Stage     `json:"stages,omitempty"              yaml:"stages,omitempty"`
	CreatedBy         *Owner      `json:"created_by,omitempty"          yaml:"created_by,omitempty"`
	UpdatedAt         *time.Time  `json:"updated_at,omitempty"          yaml:"updated_at,omitempty"`
}

// Job represents one unit of work within a build.
type Job struct {
	Metadata `yaml:",inline"`

	ID           int64       `json:"id"                     yaml:"id"`
	Number       string      `json:"number,omitempty"       yaml:"number,omitempty"`
	State        string      `json:"state,omitempty"        yaml:"state,omitempty"`
	AllowFailure bool        `json:"allow_failure,omitempty" yaml:"allow_failure,omitempty"`
	StartedAt    *time.Time  `json:"started_at,omitempty"   yaml:"started_at,omitempty"`
	FinishedAt   *time.Time  `json:"finished_at,omitempty"  yaml:"finished_at,omitempty"`
	Queue        string      `json:"queue,omitempty"        yaml:"queue,omitempty"`
	Build        *Build      `json:"build,omitempty"        yaml:"build,omitempty"`
	Stage        *Stage      `json:"stage,omitempty"        yaml:"stage,omitempty"`
	Repository   *Repository `json:"repository,omitempty"   yaml:"repository,omitempty"`
	Commit       *Commit     `json:"commit,omitempty"       yaml:"commit,omitempty"`
	Owner        *Owner      `json:"owner,omitempty"        yaml:"owner,omitempty"`
	CreatedAt    *time.Time  `json:"created_at,omitempty"   yaml:"created_at,omitempty"`
	UpdatedAt    *time.Time  `json:"updated_at,omitempty"   yaml:"updated_at,omitempty"`
}

// BuildStateChange acknowledges an accepted restart or cancel of a build.
// The document is tagged "pending" with the affected build embedded at
// minimal representation.
type BuildStateChange struct {
	Metadata `yaml:",inline"`

	StateChange string `json:"state_change"     yaml:"state_change"`
	Build       *Build `json:"build,omitempty"  yaml:"build,omitempty"`
}

// JobStateChange acknowledges an accepted restart or cancel of a job.
type JobStateChange struct {
	Metadata `yaml:",inline"`

	StateChange string `json:"state_change"   yaml:"state_change"`
	Job         *Job   `json:"job,omitempty"  yaml:"job,omitempty"`
}

// Stage groups jobs that run in parallel within a build.
type Stage struct {
	Metadata `yaml:",inline"`

	ID         int64      `json:"id"                    yaml:"id"`
	Number     int        `json:"number"                yaml:"number"`
	Name       string     `json:"name"                  yaml:"name"`
	State      string     `json:"state,omitempty"       yaml:"state,omitempty"`
	StartedAt  *time.Time `json:"started_at,omitempty"  yaml:"started_at,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty" yaml:"finished_at,omitempty"`
	Jobs       []Job      `json:"jobs,omitempty"        yaml:"jobs,omitempty"`
}

// Branch represents a repository branch and its last build.
type Branch struct {
	Metadata `yaml:",inline"`

	Name           string      `json:"name"                      yaml:"name"`
	DefaultBranch  bool        `json:"default_branch,omitempty"  yaml:"default_branch,omitempty"`
	ExistsOnGithub bool        `json:"exists_on_github,omitempty" yaml:"exists_on_github,omitempty"`
	Repository     *Repository `json:"repository,omitempty"      yaml:"repository,omitempty"`
	LastBuild      *Build      `json:"last_build,omitempty"      yaml:"last_build,omitempty"`
}

// Tag represents a git tag a build ran against.
type Tag struct {
	Metadata `yaml:",inline"`

	RepositoryID int64  `json:"repository_id,omitempty" yaml:"repository_id,omitempty"`
	Name         string `json:"name"                    yaml:"name"`
	LastBuildID  int64  `json:"last_build_id,omitempty" yaml:"last_build_id,omitempty"`
}

// Commit represents the commit a build ran against. Commits fabricated for
// API-triggered builds carry no href and cannot be followed.
type Commit struct {
	Metadata `yaml:",inline"`

	ID          int64      `json:"id"                     yaml:"id"`
	SHA         string     `json:"sha"                    yaml:"sha"`
	Ref         string     `json:"ref,omitempty"          yaml:"ref,omitempty"`
	Message     string     `json:"message,omitempty"      yaml:"message,omitempty"`
	CompareURL  string     `json:"compare_url,omitempty"  yaml:"compare_url,omitempty"`
	CommittedAt *time.Time `json:"committed_at,omitempty" yaml:"committed_at,omitempty"`
	Author      *CommitRef `json:"author,omitempty"       yaml:"author,omitempty"`
	Committer   *CommitRef `json:"committer,omitempty"    yaml:"committer,omitempty"`
}

// CommitRef identifies the author or committer of a commit.
type CommitRef struct {
	Name      string `json:"name,omitempty"       yaml:"name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty"`
}

// BuildRequest represents an inspected incoming request (webhook or API
// trigger) and what the service decided to do with it.
type BuildRequest struct {
	Metadata `yaml:",inline"`

	ID         int64       `json:"id"                   yaml:"id"`
	State      string      `json:"state,omitempty"      yaml:"state,omitempty"`
	Result     string      `json:"result,omitempty"     yaml:"result,omitempty"`
	Message    string      `json:"message,omitempty"    yaml:"message,omitempty"`
	EventType  string      `json:"event_type,omitempty" yaml:"event_type,omitempty"`
	BranchName string      `json:"branch_name,omitempty" yaml:"branch_name,omitempty"`
	PullRequestMergeable string `json:"pull_request_mergeable,omitempty" yaml:"pull_request_mergeable,omitempty"`
	Repository *Repository `json:"repository,omitempty" yaml:"repository,omitempty"`
	Commit     *Commit     `json:"commit,omitempty"     yaml:"commit,omitempty"`
	Owner      *Owner      `json:"owner,omitempty"      yaml:"owner,omitempty"`
	Builds     []Build     `json:"builds,omitempty"     yaml:"builds,omitempty"`
	CreatedAt  *time.Time  `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// BuildRequestCreate is the payload that triggers a build.
type BuildRequestCreate struct {
	// Branch is the branch (or tag) to build. Required.
	Branch string `json:"branch"`
	// Message replaces the commit message in listings.
	Message string `json:"message,omitempty"`
	// Config merges into (or replaces) the repository's build
	// configuration for this one request.
	Config map[string]any `json:"config,omitempty"`
}

// BuildRequestResult acknowledges a triggered build. The service replies
// with 202 and a summary of what was enqueued.
type BuildRequestResult struct {
	Metadata `yaml:",inline"`

	RemainingRequests int           `json:"remaining_requests" yaml:"remaining_requests"`
	Repository        *Repository   `json:"repository,omitempty" yaml:"repository,omitempty"`
	Request           *BuildRequest `json:"request,omitempty"  yaml:"request,omitempty"`
}

// Log is the textual output of a job.
type Log struct {
	Metadata `yaml:",inline"`

	ID      int64     `json:"id"              yaml:"id"`
	Content string    `json:"content"         yaml:"content"`
	Parts   []LogPart `json:"log_parts,omitempty" yaml:"log_parts,omitempty"`
}

// LogPart is one chunk of a streamed job log.
type LogPart struct {
	Content string `json:"content"         yaml:"content"`
	Final   bool   `json:"final"           yaml:"final"`
	Number  int    `json:"number"          yaml:"number"`
}

// EnvVar represents an environment variable injected into a repository's
// build environment. Values of non-public variables are never echoed back.
type EnvVar struct {
	Metadata `yaml:",inline"`

	ID     string `json:"id"              yaml:"id"`
	Name   string `json:"name"            yaml:"name"`
	Value  string `json:"value,omitempty" yaml:"value,omitempty"`
	Public bool   `json:"public"          yaml:"public"`
	Branch string `json:"branch,omitempty" yaml:"branch,omitempty"`
}

// EnvVarRequest is the dotted-key payload for creating or updating an
// environment variable.
type EnvVarRequest struct {
	Name   string `json:"env_var.name,omitempty"`
	Value  string `json:"env_var.value,omitempty"`
	Public *bool  `json:"env_var.public,omitempty"`
	Branch string `json:"env_var.branch,omitempty"`
}

// Setting is one repository setting. Values are booleans or integers
// depending on the setting name.
type Setting struct {
	Metadata `yaml:",inline"`

	Name  string `json:"name"  yaml:"name"`
	Value any    `json:"value" yaml:"value"`
}

// Cron schedules recurring builds for one branch.
type Cron struct {
	Metadata `yaml:",inline"`

	ID                          int64       `json:"id"                    yaml:"id"`
	Interval                    string      `json:"interval"              yaml:"interval"`
	DontRunIfRecentBuildExists  bool        `json:"dont_run_if_recent_build_exists" yaml:"dont_run_if_recent_build_exists"`
	LastRun                     *time.Time  `json:"last_run,omitempty"    yaml:"last_run,omitempty"`
	NextRun                     *time.Time  `json:"next_run,omitempty"    yaml:"next_run,omitempty"`
	CreatedAt                   *time.Time  `json:"created_at,omitempty"  yaml:"created_at,omitempty"`
	Active                      bool        `json:"active"                yaml:"active"`
	Repository                  *Repository `json:"repository,omitempty"  yaml:"repository,omitempty"`
	Branch                      *Branch     `json:"branch,omitempty"      yaml:"branch,omitempty"`
}

// CronRequest is the dotted-key payload for creating a cron.
type CronRequest struct {
	Interval                   string `json:"cron.interval"`
	DontRunIfRecentBuildExists *bool  `json:"cron.dont_run_if_recent_build_exists,omitempty"`
}

// BuildCache is one cache archive stored for a repository.
type BuildCache struct {
	RepositoryID int64      `json:"repository_id,omitempty" yaml:"repository_id,omitempty"`
	Size         int64      `json:"size,omitempty"          yaml:"size,omitempty"`
	Name         string     `json:"name"                    yaml:"name"`
	Branch       string     `json:"branch,omitempty"        yaml:"branch,omitempty"`
	LastModified *time.Time `json:"last_modified,omitempty" yaml:"last_modified,omitempty"`
}

// Broadcast is a service-wide or targeted announcement.
type Broadcast struct {
	Metadata `yaml:",inline"`

	ID        int64      `json:"id"                   yaml:"id"`
	Message   string     `json:"message"              yaml:"message"`
	Category  string     `json:"category,omitempty"   yaml:"category,omitempty"`
	Active    bool       `json:"active"               yaml:"active"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// Preference is one account-level preference.
type Preference struct {
	Metadata `yaml:",inline"`

	Name  string `json:"name"  yaml:"name"`
	Value any    `json:"value" yaml:"value"`
}

// ActiveBuilds is the set of currently running or queued builds for an
// owner. The document is tagged "active" but carries its payload under
// "builds", so it decodes through the single-resource path.
type ActiveBuilds struct {
	Metadata `yaml:",inline"`

	Builds []Build `json:"builds" yaml:"builds"`
}

// LintWarning flags one problem in a submitted build configuration.
type LintWarning struct {
	Key     []string `json:"key"     yaml:"key"`
	Message string   `json:"message" yaml:"message"`
}

// LintResult is the outcome of linting a build configuration.
type LintResult struct {
	Warnings []LintWarning `json:"warnings" yaml:"warnings"`
}

// List aliases: collection envelopes returned by List endpoints.
type (
	// RepositoryList is a paged collection of repositories.
	RepositoryList = Envelope[[]Repository]
	// BuildList is a paged collection of builds.
	BuildList = Envelope[[]Build]
	// JobList is the set of jobs of one build.
	JobList = Envelope[[]Job]
	// BranchList is a paged collection of branches.
	BranchList = Envelope[[]Branch]
	// BuildRequestList is a paged collection of inspected requests.
	BuildRequestList = Envelope[[]BuildRequest]
	// OrganizationList is a paged collection of organizations.
	OrganizationList = Envelope[[]Organization]
	// EnvVarList is the set of environment variables of one repository.
	EnvVarList = Envelope[[]EnvVar]
	// SettingList is the set of settings of one repository.
	SettingList = Envelope[[]Setting]
	// CronList is a paged collection of crons.
	CronList = Envelope[[]Cron]
	// BuildCacheList is the set of cache archives of one repository.
	BuildCacheList = Envelope[[]BuildCache]
	// StageList is the set of stages of one build.
	StageList = Envelope[[]Stage]
	// BroadcastList is the set of active broadcasts.
	BroadcastList = Envelope[[]Broadcast]
	// PreferenceList is the set of account preferences.
	PreferenceList = Envelope[[]Preference]
)
