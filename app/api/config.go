package main

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"github.com/x-xyz/traitkit/base/env"
	"github.com/x-xyz/traitkit/service/provider"
)

const defaultConfigPath = "infra/configs/config.yaml"

// initConfig loads the yaml config into the global viper. The path comes from
// --config, then TRAITKIT_CONFIG, then the default. Environment variables
// override file values, "provider.fallback.rpcUrl" reads PROVIDER_FALLBACK_RPCURL.
func initConfig(args []string) error {
	fs := pflag.NewFlagSet("api", pflag.ContinueOnError)
	fs.String("config", "", "path of the yaml config file")
	fs.String("server.address", "", "listen address, overrides the config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path, _ := fs.GetString("config")
	if path == "" {
		path = env.ConfigPath()
	}
	if path == "" {
		path = defaultConfigPath
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("cache.sizeMB", 64)
	viper.SetDefault("cache.ttl", "30s")

	if err := viper.ReadInConfig(); err != nil {
		return xerrors.Errorf("read config %s: %w", path, err)
	}
	if f := fs.Lookup("server.address"); f.Changed {
		viper.Set("server.address", f.Value.String())
	}
	return nil
}

// providerConfig reads key by key so environment overrides apply to the
// nested secrets as well
func providerConfig() provider.Config {
	return provider.Config{
		Wallet: provider.EndpointConfig{Url: viper.GetString("provider.wallet.url")},
		Legacy: provider.EndpointConfig{Url: viper.GetString("provider.legacy.url")},
		Fallback: provider.FallbackConfig{
			RpcUrl:     viper.GetString("provider.fallback.rpcUrl"),
			PrivateKey: viper.GetString("provider.fallback.privateKey"),
		},
	}
}
