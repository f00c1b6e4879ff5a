package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withArgs replaces os.Args for the duration of the test.
func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"duo"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "duo.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseJson_OverlaysPresentMembers(t *testing.T) {
	path := writeConfigFile(t, `{
		"server_endpoint_addr": "sync.example:9000",
		"online_check_interval": "10s",
		"sweep_interval": "30m",
		"message_ttl": 43200000000000,
		"log_level": "debug"
	}`)

	for _, flag := range []string{"-c", "-config"} {
		t.Run(flag, func(t *testing.T) {
			withArgs(t, flag, path)

			cfg := &Config{DebounceInterval: time.Second}
			parseJson(cfg)

			want := Config{
				ServerEndpointAddr:  "sync.example:9000",
				OnlineCheckInterval: 10 * time.Second,
				DebounceInterval:    time.Second,
				SweepInterval:       30 * time.Minute,
				MessageTTL:          12 * time.Hour,
				LogLevel:            "debug",
			}
			assert.Equal(t, want, *cfg)
		})
	}
}

func TestParseJson_NoFileLeavesConfig(t *testing.T) {
	withArgs(t)

	cfg := &Config{ServerEndpointAddr: "defaults:1234", MessageTTL: 24 * time.Hour}
	parseJson(cfg)

	assert.Equal(t, Config{ServerEndpointAddr: "defaults:1234", MessageTTL: 24 * time.Hour}, *cfg)
}

func TestParseJson_BadFilePanics(t *testing.T) {
	cases := map[string]string{
		"missing": filepath.Join(t.TempDir(), "nope.json"),
		"invalid": writeConfigFile(t, `{ "log_level": `),
		"bad ttl": writeConfigFile(t, `{ "message_ttl": "forever" }`),
	}
	for name, path := range cases {
		t.Run(name, func(t *testing.T) {
			withArgs(t, "-config", path)
			assert.Panics(t, func() { parseJson(&Config{}) })
		})
	}
}
