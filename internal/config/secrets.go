package config

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azsecrets"
	"github.com/rs/zerolog/log"
)

// SecretGetter is the part of the Key Vault client used here
type SecretGetter interface {
	GetSecret(ctx context.Context, name string, version string, options *azsecrets.GetSecretOptions) (azsecrets.GetSecretResponse, error)
}

// NewKeyVaultClient authenticates with the default Azure credential
// chain (managed identity, environment, CLI)
func NewKeyVaultClient(vaultURL string) (*azsecrets.Client, error) {
	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("could not get default azure credential: %w", err)
	}
	client, err := azsecrets.NewClient(vaultURL, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create key vault client for %s: %w", vaultURL, err)
	}
	return client, nil
}

// ResolveToken fills DiscordToken from Key Vault when it was not
// given directly. An explicit DISCORD_TOKEN always wins.
func (cfg *Config) ResolveToken(ctx context.Context, vault SecretGetter) error {
	if cfg.DiscordToken != "" {
		return nil
	}
	if vault == nil || cfg.TokenSecretName == "" {
		return ErrMissingToken
	}

	secret, err := vault.GetSecret(ctx, cfg.TokenSecretName, cfg.TokenSecretVersion, nil)
	if err != nil {
		return fmt.Errorf("could not read secret %s from key vault: %w", cfg.TokenSecretName, err)
	}
	if secret.Value == nil || *secret.Value == "" {
		return fmt.Errorf("secret %s is empty: %w", cfg.TokenSecretName, ErrMissingToken)
	}

	cfg.DiscordToken = *secret.Value
	log.Info().Str("secret", cfg.TokenSecretName).Msg("Discord token read from key vault")
	return nil
}
