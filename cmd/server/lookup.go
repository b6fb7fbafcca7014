package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/campaign/backend/internal/domain/catalog"
	"github.com/campaign/backend/internal/infrastructure/openfoodfacts"
	"github.com/spf13/cobra"
)

// newLookupCommand queries the external catalog directly, without touching
// the database or the cache
func newLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <barcode>",
		Short: "Look a barcode up in the external product catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Catalog.Timeout)
			defer cancel()

			client := openfoodfacts.NewClient(cfg.Catalog, log)
			entry, err := client.Lookup(ctx, args[0])
			if errors.Is(err, catalog.ErrCatalogNotFound) {
				return fmt.Errorf("barcode %s not found in catalog", args[0])
			}
			if err != nil {
				return err
			}

			product, err := catalog.NewProductFromCatalog(args[0], entry)
			if err != nil {
				return err
			}
			weight, err := product.NormalizedWeight()
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"catalog":           entry,
				"name":              product.Name,
				"weight_value":      product.WeightValue,
				"weight_unit":       product.WeightUnit.String(),
				"normalized_weight": weight,
			})
		},
	}
}
