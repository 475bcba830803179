package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/trvs-io/travis-client/internal/http"
)

// NewTestClient creates a client wired to a test server base URL. No token
// provider is attached, which is fine for httptest servers.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, nil)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}

// NotFoundBody is the canonical error document the API returns for a
// missing resource.
func NotFoundBody() map[string]interface{} {
	return map[string]interface{}{
		"@type":         "error",
		"error_type":    "not_found",
		"error_message": "resource not found (or insufficient access)",
	}
}

// ListEnvelope builds a collection document with the payload nested under
// the key named by the discriminator.
func ListEnvelope(resourceType, href string, items interface{}) map[string]interface{} {
	return map[string]interface{}{
		"@type":           resourceType,
		"@href":           href,
		"@representation": "standard",
		"@pagination": map[string]interface{}{
			"limit":    25,
			"offset":   0,
			"count":    2,
			"is_first": true,
			"is_last":  true,
		},
		resourceType: items,
	}
}

// TestGetOperation represents a generic get operation test case.
type TestGetOperation struct {
	Name         string
	ExpectedPath string
	StatusCode   int
	Response     interface{}
	WantErr      bool
	ErrMessage   string
}

// RunGetTests runs a series of get operation tests. The getFunc closure
// binds the resource identifier so IDs of any type work.
func RunGetTests(
	t *testing.T,
	tests []TestGetOperation,
	getFunc func(*Client) func(context.Context) (interface{}, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, "GET", request.Method)
				writer.Header().Set("Content-Type", "application/json")
				writer.WriteHeader(testCase.StatusCode)

				if testCase.Response != nil {
					_ = json.NewEncoder(writer).Encode(testCase.Response)
				}
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			result, err := getFunc(client)(context.Background())

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}
		})
	}
}

// TestActionOperation represents a POST action test case, for endpoints
// like restart, cancel, star and sync.
type TestActionOperation struct {
	Name         string
	ExpectedPath string
	StatusCode   int
	Response     interface{}
	WantErr      bool
	ErrMessage   string
}

// RunActionTests runs a series of POST action tests.
func RunActionTests(
	t *testing.T,
	tests []TestActionOperation,
	actionFunc func(*Client) func(context.Context) (interface{}, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, "POST", request.Method)
				writer.Header().Set("Content-Type", "application/json")
				writer.WriteHeader(testCase.StatusCode)

				if testCase.Response != nil {
					_ = json.NewEncoder(writer).Encode(testCase.Response)
				}
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			result, err := actionFunc(client)(context.Background())

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}
		})
	}
}
