package travis

import (
	"net/url"
	"time"
)

// Representation levels reported via the @representation metadata key. The
// service embeds related resources as "minimal" stubs; the "standard"
// representation carries the complete field set and is fetched separately
// via the resource's href.
const (
	RepresentationMinimal  = "minimal"
	RepresentationStandard = "standard"
)

// Metadata holds the common resource metadata keys of the v3 wire format.
// It is embedded in every model so a decoded value keeps its kind, canonical
// href, and representation level.
type Metadata struct {
	Type           string `json:"@type,omitempty"           yaml:"type,omitempty"`
	Href           string `json:"@href,omitempty"           yaml:"href,omitempty"`
	Representation string `json:"@representation,omitempty" yaml:"representation,omitempty"`
}

// ResourceHref returns the canonical href of the resource. It satisfies the
// Minimal interface used by FollowMinimal.
func (m Metadata) ResourceHref() string {
	return m.Href
}

// IsMinimal reports whether the value is a minimal embedded stub rather than
// a full representation.
func (m Metadata) IsMinimal() bool {
	return m.Representation == RepresentationMinimal
}

// PaginationLink points at another window of a paged collection.
type PaginationLink struct {
	Href   string `json:"@href"  yaml:"href"`
	Offset int    `json:"offset" yaml:"offset"`
	Limit  int    `json:"limit"  yaml:"limit"`
}

// Pagination describes the window a collection response covers. Optional
// links are nil when the server omits them (e.g. no next page).
type Pagination struct {
	Limit   int             `json:"limit"          yaml:"limit"`
	Offset  int             `json:"offset"         yaml:"offset"`
	Count   int             `json:"count"          yaml:"count"`
	IsFirst bool            `json:"is_first"       yaml:"is_first"`
	IsLast  bool            `json:"is_last"        yaml:"is_last"`
	Next    *PaginationLink `json:"next,omitempty" yaml:"next,omitempty"`
	Prev    *PaginationLink `json:"prev,omitempty" yaml:"prev,omitempty"`
	First   *PaginationLink `json:"first,omitempty" yaml:"first,omitempty"`
	Last    *PaginationLink `json:"last,omitempty"  yaml:"last,omitempty"`
}

// Request describes one API call to be issued by the transport layer. It is
// a pure value: building one performs no I/O.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	// Body is marshaled as JSON, except []byte which is sent verbatim
	// (used by the lint endpoint, which takes raw build configuration).
	Body any
}

// Response is the raw outcome of an executed Request.
type Response struct {
	StatusCode int
	Headers    map[string][]string
	Body       []byte
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a travis.Client.
//
// Authentication uses a static API token sent as "Authorization: token <t>";
// requests without a token are sent unauthenticated and only reach public
// resources. Per-request timeouts should be controlled via the context
// passed to client methods. Retry behavior applies to transport-level
// failures only (connection errors, 5xx, 429); decode failures and API
// errors are never retried.
type Config struct {
	// BaseURL is the API endpoint, e.g. "https://api.travis-ci.com".
	// travisclient.New normalizes this value by trimming a trailing slash
	// and adding "https://" if no scheme is present.
	BaseURL string

	// Token is the API token used for the Authorization header.
	Token string

	// RetryMax is the maximum number of retries for transient failures.
	// If 0, a sensible default is used by the transport.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header sent by the client.
	UserAgent string

	// Cache configures the optional GET response cache. Nil disables
	// caching.
	Cache *CacheConfig
	// CacheTTL bounds how long cached GET responses are served. Zero means
	// the cache default.
	CacheTTL time.Duration
}
