package votations

import (
	"campaignfinance/lib/platforms/efk"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type RootLister interface {
	GetCampaignFinancings(ctx context.Context, lang string) ([]efk.Node, error)
}

// ResolveTitles looks the votation up again in every supported
// language and returns the titles it found. Languages whose listing
// fails or does not contain the votation are left out.
func ResolveTitles(ctx context.Context, lister RootLister, id efk.NodeID) map[string]string {
	ctx, span := tracer.Start(ctx, "ResolveTitles")
	defer span.End()
	span.SetAttributes(attribute.String("votation_id", id.String()))

	titles := map[string]string{}
	var errs []error
	for _, lang := range Languages {
		roots, err := lister.GetCampaignFinancings(ctx, lang)
		if err != nil {
			titlesFailed.Add(ctx, 1)
			errs = append(errs, fmt.Errorf("%s: %w", lang, err))
			slog.ErrorContext(
				ctx, "failed to fetch title",
				"votation_id", id.String(),
				"lang", lang,
				"err", err,
			)
			continue
		}
		for _, root := range roots {
			if root.ID == id {
				titles[lang] = ExtractTitle(root.Label)
				break
			}
		}
	}

	if len(errs) > 0 {
		err := errors.Join(errs...)
		span.RecordError(err)
		span.SetStatus(codes.Error, "some titles could not be resolved")
	}
	return titles
}
