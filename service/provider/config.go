package provider

// Config is read from the "provider" section of the service config.
// Fallback credentials come from config or environment only.
type Config struct {
	// Wallet is an RPC endpoint of a wallet that supports eth_requestAccounts
	Wallet EndpointConfig `mapstructure:"wallet"`
	// Legacy is a plain RPC endpoint with no authorization step
	Legacy   EndpointConfig `mapstructure:"legacy"`
	Fallback FallbackConfig `mapstructure:"fallback"`
}

type EndpointConfig struct {
	Url string `mapstructure:"url"`
}

type FallbackConfig struct {
	RpcUrl     string `mapstructure:"rpcUrl"`
	PrivateKey string `mapstructure:"privateKey"`
}

func (c FallbackConfig) IsEmpty() bool {
	return c.RpcUrl == "" || c.PrivateKey == ""
}
