package model

import (
	"github.com/marofke/aws-rfdk/pkg/api"
	"github.com/marofke/aws-rfdk/pkg/cfn"
)

// addHostedZone emits the internal DNS zone scoped to the VPC.
func addHostedZone(t *cfn.Template, cfg *api.Network, vpcRef interface{}) error {
	properties := map[string]interface{}{
		"Name": cfg.PrivateHostedZone.Name,
		"VPCs": []map[string]interface{}{
			{
				"VPCId":     vpcRef,
				"VPCRegion": cfn.Ref("AWS::Region"),
			},
		},
	}
	if cfg.PrivateHostedZone.Comment != "" {
		properties["HostedZoneConfig"] = map[string]interface{}{
			"Comment": cfg.PrivateHostedZone.Comment,
		}
	}

	return t.Add(hostedZoneLogicalName, cfn.Resource{
		Type:       "AWS::Route53::HostedZone",
		Properties: properties,
	})
}
