package votations

import (
	"campaignfinance/lib/platforms/efk"
	"context"
	"fmt"
)

type formKey struct {
	campaign efk.NodeID
	form     efk.NodeID
}

// an in-memory stand-in for the efk api
type fakeSource struct {
	roots       map[string][]efk.Node
	forms       map[formKey]efk.FormDetail
	failedLangs map[string]bool
	failedForms map[formKey]bool

	formRequests []formKey
	rootRequests []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		roots:       map[string][]efk.Node{},
		forms:       map[formKey]efk.FormDetail{},
		failedLangs: map[string]bool{},
		failedForms: map[formKey]bool{},
	}
}

func (f *fakeSource) GetCampaignFinancings(ctx context.Context, lang string) ([]efk.Node, error) {
	f.rootRequests = append(f.rootRequests, lang)
	if f.failedLangs[lang] {
		return nil, fmt.Errorf("listing %s: connection refused", lang)
	}
	return f.roots[lang], nil
}

func (f *fakeSource) GetForm(ctx context.Context, lang string, campaignId, formId efk.NodeID) (efk.FormDetail, error) {
	key := formKey{campaign: campaignId, form: formId}
	f.formRequests = append(f.formRequests, key)
	if f.failedForms[key] {
		return nil, fmt.Errorf("form %s/%s: timeout", campaignId, formId)
	}
	detail, ok := f.forms[key]
	if !ok {
		return efk.FormDetail{}, nil
	}
	return detail, nil
}

func revenueForm(id int64, label string) efk.Node {
	return efk.Node{Type: efk.NodeForm, Label: label, ID: efk.IntID(id)}
}

func campaignNode(id int64, label string, forms ...efk.Node) efk.Node {
	return efk.Node{Type: efk.NodeCampaign, Label: label, ID: efk.IntID(id), Children: forms}
}

func actorNode(id int64, name string, campaigns ...efk.Node) efk.Node {
	return efk.Node{Type: efk.NodeActor, Label: name, ID: efk.IntID(id), Children: campaigns}
}

func categoryNode(id int64, actors ...efk.Node) efk.Node {
	return efk.Node{Type: efk.NodeActorCategory, Label: "Comités", ID: efk.IntID(id), Children: actors}
}

func financingRoot(id int64, label string, categories ...efk.Node) efk.Node {
	return efk.Node{Type: efk.NodeCampaignFinancing, Label: label, ID: efk.IntID(id), Children: categories}
}

func totalOf(amount string) efk.FormDetail {
	return efk.FormDetail{
		"form_data": map[string]any{
			"totals": map[string]any{"total": amount},
		},
	}
}
