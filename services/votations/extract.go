package votations

import (
	"campaignfinance/lib/chf"
	"campaignfinance/lib/platforms/efk"
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type Actor struct {
	Name       string     `json:"name"`
	Position   Position   `json:"position"`
	Total      float64    `json:"total"`
	CampaignID efk.NodeID `json:"campaign_id"`
}

type Votation struct {
	ID              efk.NodeID        `json:"id"`
	Title           map[string]string `json:"title"`
	Date            string            `json:"date"`
	SupportersTotal float64           `json:"supporters_total"`
	OpponentsTotal  float64           `json:"opponents_total"`
	SupportersCount int               `json:"supporters_count"`
	OpponentsCount  int               `json:"opponents_count"`
	Actors          []Actor           `json:"actors"`
}

func (v *Votation) addActor(actor Actor) {
	v.Actors = append(v.Actors, actor)
	switch actor.Position {
	case PositionSupporter:
		v.SupportersTotal += actor.Total
		v.SupportersCount++
	case PositionOpponent:
		v.OpponentsTotal += actor.Total
		v.OpponentsCount++
	}
}

type FormFetcher interface {
	GetForm(ctx context.Context, lang string, campaignId, formId efk.NodeID) (efk.FormDetail, error)
}

// Extract walks the disclosure tree and builds one Votation per
// financing root announcing a future vote. Form details are fetched
// through `forms` in `lang`, one at a time in document order.
func Extract(ctx context.Context, roots []efk.Node, forms FormFetcher, lang string, now time.Time) []Votation {
	ctx, span := tracer.Start(ctx, "Extract")
	defer span.End()

	votations := []Votation{}
	for _, root := range roots {
		if root.Type != efk.NodeCampaignFinancing {
			continue
		}
		if !IsFutureVotation(root.Label, now) {
			continue
		}

		votation := newVotation(root)
		for _, category := range childrenOfType(root, efk.NodeActorCategory) {
			for _, actor := range childrenOfType(category, efk.NodeActor) {
				for _, campaign := range childrenOfType(actor, efk.NodeCampaign) {
					entry, ok := extractCampaign(ctx, forms, lang, actor, campaign)
					if ok {
						votation.addActor(entry)
					}
				}
			}
		}

		if votation.Date == "" {
			continue
		}
		votations = append(votations, votation)
	}

	span.SetAttributes(attribute.Int("votations", len(votations)))
	return votations
}

func newVotation(root efk.Node) Votation {
	title := ExtractTitle(root.Label)
	titles := make(map[string]string, len(Languages))
	for _, lang := range Languages {
		titles[lang] = title
	}
	return Votation{
		ID:     root.ID,
		Title:  titles,
		Date:   ExtractVoteDate(root.Label),
		Actors: []Actor{},
	}
}

func childrenOfType(node efk.Node, t efk.NodeType) []efk.Node {
	var out []efk.Node
	for _, child := range node.Children {
		if child.Type == t {
			out = append(out, child)
		}
	}
	return out
}

// builds the actor entry for a campaign from its first revenue
// declaration form, reports false when the campaign has none
func extractCampaign(ctx context.Context, forms FormFetcher, lang string, actor, campaign efk.Node) (Actor, bool) {
	position, ambiguous := ClassifyStance(campaign.Label)
	if ambiguous {
		slog.WarnContext(
			ctx, "campaign label names both adoption and rejection, counting it as unknown",
			"actor", actor.Label,
			"campaign", campaign.Label,
			"campaign_id", campaign.ID.String(),
		)
	}

	for _, form := range childrenOfType(campaign, efk.NodeForm) {
		if !IsRevenueDeclaration(form.Label) {
			continue
		}
		return Actor{
			Name:       actor.Label,
			Position:   position,
			Total:      fetchFormTotal(ctx, forms, lang, campaign.ID, form.ID),
			CampaignID: campaign.ID,
		}, true
	}
	return Actor{}, false
}

func fetchFormTotal(ctx context.Context, forms FormFetcher, lang string, campaignId, formId efk.NodeID) float64 {
	ctx, span := tracer.Start(ctx, "fetchFormTotal")
	defer span.End()

	formsFetched.Add(ctx, 1)
	detail, err := forms.GetForm(ctx, lang, campaignId, formId)
	if err != nil {
		formsFailed.Add(ctx, 1)
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch form")
		slog.ErrorContext(
			ctx, "failed to fetch form, counting it as 0",
			"campaign_id", campaignId.String(),
			"form_id", formId.String(),
			"err", err,
		)
		return 0
	}
	return FormTotal(detail)
}

// FormTotal reads the declared total of a form, preferring
// form_data.totals.total over a top level totals.total.
// A form with neither counts as 0.
func FormTotal(detail efk.FormDetail) float64 {
	if formData, ok := detail["form_data"].(map[string]any); ok {
		if total, ok := lookupTotal(formData); ok {
			return total
		}
	}
	if total, ok := lookupTotal(detail); ok {
		return total
	}
	return 0
}

func lookupTotal(obj map[string]any) (float64, bool) {
	totals, ok := obj["totals"].(map[string]any)
	if !ok {
		return 0, false
	}
	raw, ok := totals["total"]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case string:
		return chf.ParseAmount(v), true
	case float64:
		if v < 0 {
			return 0, true
		}
		return v, true
	}
	return 0, true
}
