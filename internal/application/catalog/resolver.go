package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/campaign/backend/internal/domain/catalog"
	"github.com/campaign/backend/internal/domain/shared"
	"github.com/campaign/backend/internal/infrastructure/logger"
	"github.com/campaign/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ProductResolver turns a barcode into a stored product, importing it from
// the external catalog the first time it is seen.
type ProductResolver struct {
	products catalog.ProductRepository
	client   catalog.CatalogClient
	timeout  time.Duration
	metrics  *telemetry.Metrics
	group    singleflight.Group
}

// NewProductResolver creates a resolver. timeout bounds one catalog lookup;
// zero leaves it to the caller's context.
func NewProductResolver(products catalog.ProductRepository, client catalog.CatalogClient, timeout time.Duration, metrics *telemetry.Metrics) *ProductResolver {
	return &ProductResolver{
		products: products,
		client:   client,
		timeout:  timeout,
		metrics:  metrics,
	}
}

// Resolve returns the product stored under codebar. On a local miss it looks
// the barcode up in the catalog and stores the result atomically, so
// concurrent resolutions of one barcode always agree on a single record.
func (r *ProductResolver) Resolve(ctx context.Context, codebar string) (*catalog.Product, error) {
	codebar = strings.TrimSpace(codebar)
	if err := catalog.ValidateBarcode(codebar); err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartServiceSpan(ctx, "product", "resolve",
		telemetry.WithAttribute(telemetry.SpanAttrBarcode, codebar),
	)
	defer span.End()

	product, err := r.products.FindByBarcode(ctx, codebar)
	if err == nil {
		telemetry.SetAttributes(span, telemetry.SpanAttrResolvedFrom, telemetry.ResolvedFromLocal)
		r.metrics.IncProductResolution(ctx, telemetry.ResolvedFromLocal)
		return product, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		telemetry.RecordError(span, err)
		return nil, err
	}

	telemetry.AddEvent(span, "local_miss", telemetry.SpanAttrBarcode, codebar)

	// Callers share one import per barcode. The import runs detached from
	// the first caller's cancellation; each caller still honours its own ctx.
	ch := r.group.DoChan(codebar, func() (interface{}, error) {
		return r.importFromCatalog(context.WithoutCancel(ctx), codebar)
	})
	select {
	case <-ctx.Done():
		return nil, shared.NewUpstreamError("catalog lookup cancelled", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			telemetry.RecordError(span, res.Err)
			return nil, res.Err
		}
		telemetry.SetAttributes(span, telemetry.SpanAttrResolvedFrom, telemetry.ResolvedFromCatalog)
		r.metrics.IncProductResolution(ctx, telemetry.ResolvedFromCatalog)
		return res.Val.(*catalog.Product), nil
	}
}

func (r *ProductResolver) importFromCatalog(ctx context.Context, codebar string) (*catalog.Product, error) {
	lookupCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	entry, err := r.client.Lookup(lookupCtx, codebar)
	if err != nil {
		return nil, catalog.ToDomainError(err)
	}

	product, err := catalog.NewProductFromCatalog(codebar, entry)
	if err != nil {
		return nil, err
	}

	stored, err := r.products.CreateOrGet(ctx, product)
	if err != nil {
		return nil, err
	}
	if stored.ID == product.ID {
		logger.L(ctx).Info("Imported product from catalog",
			zap.String("barcode", codebar),
			zap.String("product_id", stored.ID.String()),
			zap.String("name", stored.Name),
		)
	}
	return stored, nil
}
