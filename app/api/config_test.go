package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/traitkit/service/provider"
)

const testConfig = `
app_name: traitkit-api
log:
  level: debug
server:
  address: ":9000"
cache:
  ttl: 5s
provider:
  wallet:
    url: ""
  legacy:
    url: "http://localhost:8545"
  fallback:
    rpcUrl: ""
    privateKey: ""
`

func writeConfig(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))
	return path
}

func TestInitConfig(t *testing.T) {
	req := require.New(t)
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("PROVIDER_FALLBACK_RPCURL", "http://fallback:8545")

	req.NoError(initConfig([]string{"--config", writeConfig(t)}))
	req.Equal("debug", viper.GetString("log.level"))
	req.Equal(":9000", viper.GetString("server.address"))
	req.Equal(5*time.Second, viper.GetDuration("cache.ttl"))
	req.Equal(64, viper.GetInt("cache.sizeMB"))

	req.Equal(provider.Config{
		Legacy:   provider.EndpointConfig{Url: "http://localhost:8545"},
		Fallback: provider.FallbackConfig{RpcUrl: "http://fallback:8545"},
	}, providerConfig())
}

func TestInitConfigFlagOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	require.NoError(t, initConfig([]string{"--config", writeConfig(t), "--server.address", ":7000"}))
	require.Equal(t, ":7000", viper.GetString("server.address"))
}

func TestInitConfigMissingFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	require.Error(t, initConfig([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}))
}
