package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Accounts, 4)
	assert.Equal(t, 10, cfg.Tweets)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
accounts:
  - name: ann
    liker: true
  - name: ben
tweets: 3
log_level: debug
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []Account{{Name: "ann", Liker: true}, {Name: "ben"}}, cfg.Accounts)
	assert.Equal(t, 3, cfg.Tweets)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tweets: 2\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Accounts, 4)
	assert.Equal(t, 2, cfg.Tweets)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := map[string]Config{
		"no accounts": {Tweets: 1},
		"zero tweets": {Accounts: []Account{{Name: "a"}}},
		"empty name":  {Accounts: []Account{{Name: ""}}, Tweets: 1},
		"duplicate":   {Accounts: []Account{{Name: "a"}, {Name: "a"}}, Tweets: 1},
	}
	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	cfg := Default()
	assert.Error(t, Parse([]byte("tweets: [1"), &cfg))
}
