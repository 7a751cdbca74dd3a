// Package efk is a client for the public frontend api of the swiss
// federal audit office's political finance register.
package efk

import (
	"campaignfinance/lib/restyutil"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const DefaultBaseUrl = "https://politikfinanzierung.efk.admin.ch/api/frontend/v1"

var tracer = otel.Tracer("platforms/efk")

type Client struct {
	http *resty.Client
}

type ClientOptions struct {
	BaseUrl   string
	UserAgent string
	// 0 means no timeout
	Timeout time.Duration
	// optional, receives a dump of every http exchange while debug
	// logging is enabled
	InstrumentOutput restyutil.InstrumentOutput
}

func NewClient(opts ClientOptions) (*Client, error) {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}

	client := resty.New()
	client.SetBaseURL(baseUrl)
	client.SetHeader("accept", "application/json")
	if opts.UserAgent != "" {
		client.SetHeader("user-agent", opts.UserAgent)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}

	restyutil.InstrumentClient(client, otel.Tracer("platforms/efk/http"), opts.InstrumentOutput)

	return &Client{http: client}, nil
}

// FormDetail is the `data` object of a form response, the api does not
// give it a stable schema so it is kept as generic json.
type FormDetail map[string]any

type envelope[T any] struct {
	Data T `json:"data"`
}

type campaignFinancings struct {
	TreeRoots []Node `json:"tree_roots"`
}

func (c *Client) get(ctx context.Context, path string, params map[string]string, out any) error {
	res, err := c.http.R().
		SetContext(ctx).
		SetPathParams(params).
		Get(path)
	if err != nil {
		return err
	}
	if res.IsError() {
		return fmt.Errorf("GET %s: unexpected status %s", res.Request.URL, res.Status())
	}
	err = json.Unmarshal(res.Body(), out)
	if err != nil {
		return fmt.Errorf("GET %s: decode response: %w", res.Request.URL, err)
	}
	return nil
}

// GetCampaignFinancings lists every disclosure tree root with its
// labels in the given language.
func (c *Client) GetCampaignFinancings(ctx context.Context, lang string) ([]Node, error) {
	ctx, span := tracer.Start(ctx, "GetCampaignFinancings")
	defer span.End()
	span.SetAttributes(attribute.String("lang", lang))

	var res envelope[campaignFinancings]
	err := c.get(ctx, "/{lang}/campaign_financings", map[string]string{
		"lang": lang,
	}, &res)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch campaign financings")
		return nil, err
	}

	span.SetAttributes(attribute.Int("tree_roots", len(res.Data.TreeRoots)))
	return res.Data.TreeRoots, nil
}

func (c *Client) GetForm(ctx context.Context, lang string, campaignId, formId NodeID) (FormDetail, error) {
	ctx, span := tracer.Start(ctx, "GetForm")
	defer span.End()
	span.SetAttributes(
		attribute.String("lang", lang),
		attribute.String("campaign_id", campaignId.String()),
		attribute.String("form_id", formId.String()),
	)

	var res envelope[FormDetail]
	err := c.get(ctx, "/{lang}/campaigns/{campaignId}/forms/{formId}", map[string]string{
		"lang":       lang,
		"campaignId": campaignId.String(),
		"formId":     formId.String(),
	}, &res)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch form")
		return nil, err
	}
	if res.Data == nil {
		return FormDetail{}, nil
	}
	return res.Data, nil
}
