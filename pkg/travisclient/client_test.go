package travisclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trvs-io/travis-client/pkg/travis"
	"github.com/trvs-io/travis-client/pkg/travisclient"
)

func TestNew_RequiresConfig(t *testing.T) {
	t.Parallel()

	_, err := travisclient.New(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, travisclient.ErrConfigRequired)
}

func TestNew_NormalizesEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		baseURL  string
		expected string
	}{
		{name: "empty selects hosted endpoint", baseURL: "", expected: "https://api.travis-ci.com"},
		{name: "trailing slash trimmed", baseURL: "https://api.example.org/", expected: "https://api.example.org"},
		{name: "scheme added", baseURL: "api.example.org", expected: "https://api.example.org"},
		{name: "http kept", baseURL: "http://localhost:8080", expected: "http://localhost:8080"},
	}

	for _, testCase := range tests {
		testCase := testCase

		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			config := &travis.Config{BaseURL: testCase.baseURL, Token: "t"}

			_, err := travisclient.New(config)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, config.BaseURL)
		})
	}
}

func TestNew_EndToEnd(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/user", request.URL.Path)
		assert.Equal(t, "token secret", request.Header.Get("Authorization"))
		assert.Equal(t, "3", request.Header.Get("Travis-API-Version"))

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"@type": "user",
			"@href": "/user/1",
			"id":    1,
			"login": "alice",
		})
	}))
	defer server.Close()

	client, err := travisclient.New(&travis.Config{BaseURL: server.URL, Token: "secret"})
	require.NoError(t, err)

	user, err := client.Users().Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Login)
}
