package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()

	require.NotNil(t, b)
	assert.Empty(t, b.configs)
	assert.NoError(t, b.err)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("boom")

	cfg, err := b.build()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "boom")
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Server: Server{HTTPAddress: "localhost:8080"},
			Auth:   Auth{TokenSignKey: "key"},
		},
		&StructuredConfig{
			Auth:    Auth{TokenIssuer: "linkboard", TokenDuration: time.Hour},
			Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}},
		},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	// fields from both sources survive the merge
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "key", cfg.Auth.TokenSignKey)
	assert.Equal(t, "linkboard", cfg.Auth.TokenIssuer)
	assert.Equal(t, "postgres://localhost/db", cfg.Storage.DB.DSN)
}

func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Server:  Server{HTTPAddress: "from-env:1111"},
			Auth:    Auth{TokenSignKey: "key", TokenIssuer: "iss", TokenDuration: time.Hour},
			Storage: Storage{DB: DB{DSN: "dsn"}},
		},
		&StructuredConfig{Server: Server{HTTPAddress: "from-json:2222"}},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	// mergo.Merge does not overwrite fields already set by an earlier source
	assert.Equal(t, "from-env:1111", cfg.Server.HTTPAddress)
}

func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Server: Server{HTTPAddress: "localhost:8080"},
		// no DSN, no auth settings
	})

	_, err := b.build()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"AUTH_TOKEN_SIGN_KEY": "env_key",
	})

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env_key", b.configs[0].Auth.TokenSignKey)
}

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempConfig(t, `{"server": {"http_address": "json-host:9999"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-host:9999", b.configs[1].Server.HTTPAddress)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/file.json"})

	b.withJSON()

	require.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}
