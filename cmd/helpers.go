package cmd

import (
	"context"

	"github.com/WoLand-Q/Syrve-API-Supplier-Fetcher/config"
	"github.com/WoLand-Q/Syrve-API-Supplier-Fetcher/syrve"
)

func newClientFromConfig() (*syrve.HTTPClient, *config.Config, error) {
	cfg, err := config.LoadAndValidate()
	if err != nil {
		return nil, nil, err
	}

	client, err := syrve.NewClient(syrve.ClientConfig{
		BaseURL:      cfg.Syrve.URL,
		Login:        cfg.Syrve.Login,
		PasswordSHA1: cfg.Syrve.EffectivePasswordSHA1(),
		Timeout:      cfg.Syrve.Timeout(),
		Logger:       &logger,
	})
	if err != nil {
		return nil, nil, err
	}

	return client, cfg, nil
}

// fetchDirectory degrades a failed or malformed fetch to an empty directory.
// The session is already open at this point and still gets released cleanly;
// only authentication failures abort a run.
func fetchDirectory(ctx context.Context, client syrve.Client, token string) []syrve.Supplier {
	suppliers, err := client.FetchSuppliers(ctx, token)
	if err != nil {
		logger.Error().Err(err).Msg("fetching supplier directory failed, continuing with empty directory")
		return nil
	}
	return suppliers
}
