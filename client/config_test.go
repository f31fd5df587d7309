package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLocalMode(t *testing.T) {
	t.Parallel()

	provisioned := AppConfig{
		APIBaseURL:    "https://abc123.execute-api.ap-northeast-1.amazonaws.com/prod",
		CognitoDomain: "notebook.auth.ap-northeast-1.amazoncognito.com",
		ClientID:      "4f2a9c8e7b6d5a3f1e0c9b8a7d6e5f4a",
	}

	tests := []struct {
		name string
		cfg  *AppConfig
		want bool
	}{
		{
			name: "nil config",
			cfg:  nil,
			want: true,
		},
		{
			name: "fully provisioned",
			cfg:  &provisioned,
			want: false,
		},
		{
			name: "placeholder api id",
			cfg: func() *AppConfig {
				c := provisioned
				c.APIBaseURL = "https://your-api-id.execute-api.ap-northeast-1.amazonaws.com/prod"
				return &c
			}(),
			want: true,
		},
		{
			name: "placeholder cognito domain",
			cfg: func() *AppConfig {
				c := provisioned
				c.CognitoDomain = "your-domain.auth.ap-northeast-1.amazoncognito.com"
				return &c
			}(),
			want: true,
		},
		{
			name: "placeholder client id",
			cfg: func() *AppConfig {
				c := provisioned
				c.ClientID = "your-client-id"
				return &c
			}(),
			want: true,
		},
		{
			name: "generic placeholder marker",
			cfg: func() *AppConfig {
				c := provisioned
				c.ClientID = "PLACEHOLDER"
				return &c
			}(),
			want: true,
		},
		{
			name: "empty api base url",
			cfg: func() *AppConfig {
				c := provisioned
				c.APIBaseURL = ""
				return &c
			}(),
			want: true,
		},
		{
			name: "empty cognito domain",
			cfg: func() *AppConfig {
				c := provisioned
				c.CognitoDomain = ""
				return &c
			}(),
			want: true,
		},
		{
			name: "empty client id",
			cfg: func() *AppConfig {
				c := provisioned
				c.ClientID = ""
				return &c
			}(),
			want: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsLocalMode(tt.cfg))
		})
	}
}

func TestFileConfigLoader(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("reads config", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"apiBaseUrl":"https://api.example.com","cognitoDomain":"d","clientId":"c"}`), 0o644))

		cfg, err := FileConfigLoader{Path: path}.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	})

	t.Run("missing file selects local mode", func(t *testing.T) {
		t.Parallel()
		cfg, err := FileConfigLoader{Path: filepath.Join(t.TempDir(), "absent.json")}.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

		_, err := FileConfigLoader{Path: path}.Load(ctx)
		assert.Error(t, err)
	})
}

func TestHTTPConfigLoader(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("fetches config", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"apiBaseUrl":"https://api.example.com"}`))
		}))
		defer srv.Close()

		cfg, err := HTTPConfigLoader{URL: srv.URL + "/config.json"}.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	})

	t.Run("404 selects local mode", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		cfg, err := HTTPConfigLoader{URL: srv.URL + "/config.json"}.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("unreachable server is a network error", func(t *testing.T) {
		t.Parallel()
		_, err := HTTPConfigLoader{URL: "http://127.0.0.1:1/config.json"}.Load(ctx)
		require.Error(t, err)
		var netErr *NetworkError
		assert.ErrorAs(t, err, &netErr)
	})

	t.Run("server failure is an error", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := HTTPConfigLoader{URL: srv.URL + "/config.json"}.Load(ctx)
		assert.Error(t, err)
	})
}
