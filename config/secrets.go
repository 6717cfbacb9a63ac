package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/vault/api"
)

// applyVaultSecrets overrides backend access configuration with values read
// from a Vault KV secret. Recognized fields: url, anon_key, service_key.
// Both KV v1 and v2 response shapes are handled.
func applyVaultSecrets(backend *BackendConfig, vcfg VaultConfig) error {
	clientConfig := api.DefaultConfig()
	if clientConfig == nil {
		return fmt.Errorf("failed to create default Vault config")
	}
	clientConfig.Address = vcfg.Addr
	if err := clientConfig.ConfigureTLS(&api.TLSConfig{Insecure: vcfg.TLSInsecure}); err != nil {
		return fmt.Errorf("failed to configure Vault TLS: %w", err)
	}

	client, err := api.NewClient(clientConfig)
	if err != nil {
		return fmt.Errorf("failed to create Vault client: %w", err)
	}
	client.SetToken(vcfg.ReadToken)

	secret, err := client.Logical().Read(vcfg.SecretPath)
	if err != nil {
		return fmt.Errorf("failed to read secret %s: %w", vcfg.SecretPath, err)
	}
	if secret == nil || secret.Data == nil {
		return fmt.Errorf("secret %s not found", vcfg.SecretPath)
	}

	data := secret.Data
	if nested, ok := data["data"].(map[string]interface{}); ok {
		data = nested
	}

	if value := secretField(data, "url"); value != "" {
		backend.URL = strings.TrimRight(value, "/")
	}
	if value := secretField(data, "anon_key"); value != "" {
		backend.AnonKey = value
	}
	if value := secretField(data, "service_key"); value != "" {
		backend.ServiceKey = value
	}
	return nil
}

func secretField(data map[string]interface{}, key string) string {
	value, ok := data[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}
