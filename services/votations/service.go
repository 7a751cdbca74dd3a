package votations

import (
	"campaignfinance/lib/chf"
	"campaignfinance/lib/timezone"
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type Source interface {
	RootLister
	FormFetcher
}

type Service struct {
	source Source
	now    func() time.Time
}

type ServiceOptions struct {
	// defaults to timezone.Now
	Now func() time.Time
}

func NewService(source Source, opts ServiceOptions) Service {
	now := opts.Now
	if now == nil {
		now = timezone.Now
	}
	return Service{source: source, now: now}
}

// Run fetches the disclosure tree and builds the output document.
// Only a failure to list the tree roots is returned as an error, every
// other failed request degrades the affected value instead.
func (s Service) Run(ctx context.Context) (Document, error) {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	now := s.now()

	roots, err := s.source.GetCampaignFinancings(ctx, BaseLanguage)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch campaign financings")
		return Document{}, fmt.Errorf("fetch campaign financings: %w", err)
	}
	slog.InfoContext(ctx, "fetched campaign financings", "tree_roots", len(roots))

	votations := Extract(ctx, roots, s.source, BaseLanguage, now)
	slog.InfoContext(ctx, "found future votations", "count", len(votations))

	for i := range votations {
		v := &votations[i]
		titles := ResolveTitles(ctx, s.source, v.ID)
		if len(titles) > 0 {
			v.Title = titles
		}
		slog.InfoContext(
			ctx, "votation",
			"date", v.Date,
			"title", v.Title[BaseLanguage],
			"supporters", chf.FormatAmount(v.SupportersTotal),
			"supporters_count", v.SupportersCount,
			"opponents", chf.FormatAmount(v.OpponentsTotal),
			"opponents_count", v.OpponentsCount,
		)
	}

	nextVoteDate := ""
	if len(votations) > 0 {
		nextVoteDate = votations[0].Date
	}
	span.SetAttributes(
		attribute.Int("votations", len(votations)),
		attribute.String("next_vote_date", nextVoteDate),
	)

	return Document{
		LastUpdate:   now.Format(lastUpdateLayout),
		NextVoteDate: nextVoteDate,
		Translations: Translations(),
		Votations:    votations,
	}, nil
}
