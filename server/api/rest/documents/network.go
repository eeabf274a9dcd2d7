package documents

import (
	"github.com/gwhitehawk/device-net/common/models"
	"github.com/gwhitehawk/device-net/server/api/rest/routes"
	"github.com/gwhitehawk/device-net/server/dto"
)

// NetworkNode is a device and the subtree of devices uplinked to it.
type NetworkNode struct {
	Device    *Device        `json:"device"`
	Children  []*NetworkNode `json:"children"`
	HasParent bool           `json:"hasParent"`
}

func MakeNetworkNode(rctx routes.RequestContext, node *dto.NetworkNode) *NetworkNode {
	doc := &NetworkNode{
		Device:    MakeDevice(rctx, node.Device),
		Children:  make([]*NetworkNode, 0, len(node.Children)),
		HasParent: node.HasParent,
	}
	for _, child := range node.Children {
		doc.Children = append(doc.Children, MakeNetworkNode(rctx, child))
	}
	return doc
}

func MakeNetwork(rctx routes.RequestContext, forest []*dto.NetworkNode) []*NetworkNode {
	docs := make([]*NetworkNode, 0, len(forest))
	for _, node := range forest {
		docs = append(docs, MakeNetworkNode(rctx, node))
	}
	return docs
}

func (n *NetworkNode) GetLink() string {
	if n.Device == nil {
		return ""
	}
	return n.Device.URL
}

func (n *NetworkNode) GetETag() models.ETag {
	eTag, err := computeETag(n)
	if err != nil {
		return ""
	}
	return eTag
}
