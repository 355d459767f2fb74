package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTempJSON writes content to a temp file and returns its path.
func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.Empty(t, b.configs)
	assert.NoError(t, b.err)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	b := newConfigBuilder()
	_, err := b.build()
	// an empty merge result fails validation (no sign key, no DSN)
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Auth: Auth{TokenSignKey: "secret"}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://x"}}},
	)
	b = b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "postgres://x", cfg.Storage.DB.DSN)
	// untouched fields come from defaults
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 280, cfg.Rules.MessageMaxLength)
}

func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Auth:    Auth{TokenSignKey: "from-env", TokenDuration: time.Hour},
			Storage: Storage{DB: DB{DSN: "postgres://env"}},
		},
		&StructuredConfig{
			Auth:    Auth{TokenSignKey: "from-json"},
			Storage: Storage{DB: DB{DSN: "postgres://json"}},
		},
	)
	b = b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Auth.TokenSignKey)
	assert.Equal(t, "postgres://env", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
}

func TestWithDefaults_FillsEveryAmbientField(t *testing.T) {
	cfg := defaultConfig()

	assert.Equal(t, "tweetline", cfg.Auth.TokenIssuer)
	assert.Equal(t, 604800*time.Second, cfg.Auth.TokenDuration)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 280, cfg.Rules.MessageMaxLength)
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "env-secret")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env-host/db")

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-secret", b.configs[0].Auth.TokenSignKey)
	assert.Equal(t, "postgres://env-host/db", b.configs[0].Storage.DB.DSN)
}

func TestWithEnv_NoErrorOnEmptyEnv(t *testing.T) {
	b := newConfigBuilder().withEnv()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b = b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSON(t, `{"auth":{"token_sign_key":"json-secret","token_duration":"1h"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b = b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-secret", b.configs[1].Auth.TokenSignKey)
	assert.Equal(t, time.Hour, b.configs[1].Auth.TokenDuration)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b = b.withJSON()
	assert.Error(t, b.err)
}

func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"auth": not-json`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b = b.withJSON()
	assert.Error(t, b.err)
}

func TestValidate_TableTest(t *testing.T) {
	valid := func() *StructuredConfig {
		cfg := defaultConfig()
		cfg.Auth.TokenSignKey = "secret"
		cfg.Storage.DB.DSN = "postgres://localhost/tweetline"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid config",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.TokenSignKey = "" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "zero token duration",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.TokenDuration = 0 },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "missing DSN",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "oracle" },
			wantErr: ErrUnsupportedDBDriver,
		},
		{
			name:    "missing listen address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "non-positive message limit",
			mutate:  func(cfg *StructuredConfig) { cfg.Rules.MessageMaxLength = 0 },
			wantErr: ErrInvalidRulesConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
