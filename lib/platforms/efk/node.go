package efk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

type NodeType string

const (
	NodeCampaignFinancing NodeType = "campaign_financing"
	NodeActorCategory     NodeType = "actor_category"
	NodeActor             NodeType = "actor"
	NodeCampaign          NodeType = "campaign"
	NodeForm              NodeType = "form"
)

// Node is one entry of the disclosure tree. The api nests them as
// campaign_financing > actor_category > actor > campaign > form.
type Node struct {
	Type     NodeType `json:"type"`
	Label    string   `json:"label"`
	ID       NodeID   `json:"id"`
	Children []Node   `json:"children"`
}

// NodeID keeps the id exactly as the api sent it (any json scalar,
// in practice a number or string) so it can be written back out
// unchanged.
type NodeID string

func IntID(id int64) NodeID {
	return NodeID(strconv.FormatInt(id, 10))
}

func StringID(id string) NodeID {
	quoted, _ := json.Marshal(id)
	return NodeID(quoted)
}

// the id as it should appear in a url path
func (id NodeID) String() string {
	if len(id) > 0 && id[0] == '"' {
		var s string
		if err := json.Unmarshal([]byte(id), &s); err == nil {
			return s
		}
	}
	return string(id)
}

func (id NodeID) IsZero() bool {
	return id == ""
}

func (id *NodeID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = NodeID(data)
		return nil
	}
	if bytes.Equal(data, []byte("true")) || bytes.Equal(data, []byte("false")) {
		*id = NodeID(data)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("node id must be a scalar, got %s", data)
	}
	*id = NodeID(n)
	return nil
}

func (id NodeID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	return []byte(id), nil
}
