// Package model compiles a validated network tier configuration into a
// CloudFormation template. The template is the single deliverable; resource
// creation, ordering and rollback are CloudFormation's job.
package model

import (
	"fmt"
	"strconv"

	"github.com/marofke/aws-rfdk/cfnresource"
	"github.com/marofke/aws-rfdk/pkg/api"
	"github.com/marofke/aws-rfdk/pkg/cfn"
	"github.com/pkg/errors"
)

const (
	vpcLogicalName        = "VPC"
	igwLogicalName        = "InternetGateway"
	igwAttachLogicalName  = "VPCGatewayAttachment"
	publicRTLogicalName   = "PublicRouteTable"
	hostedZoneLogicalName = "PrivateHostedZone"
)

// Compile builds the network tier template for the given configuration.
func Compile(cfg *api.Network) (*cfn.Template, error) {
	t := cfn.NewTemplate(fmt.Sprintf("Network tier for render farm %s", cfg.ClusterName))

	vpcRef := cfg.VPC.Identifier.Ref(vpcLogicalName)

	var subnets Subnets
	if cfg.VPC.Managed() {
		var err error
		if subnets, err = DeriveSubnets(cfg); err != nil {
			return nil, err
		}
		if err := addVPC(t, cfg); err != nil {
			return nil, err
		}
		if err := addSubnets(t, cfg, subnets, vpcRef); err != nil {
			return nil, err
		}
	}

	if cfg.FlowLog.Enabled {
		if err := addFlowLog(t, cfg, vpcRef); err != nil {
			return nil, errors.Wrap(err, "failed to add flow log resources")
		}
	}

	if !cfg.VPCEndpoints.Empty() {
		if err := addVPCEndpoints(t, cfg, subnets, vpcRef); err != nil {
			return nil, errors.Wrap(err, "failed to add vpc endpoint resources")
		}
	}

	if cfg.PrivateHostedZone.Managed() {
		if err := addHostedZone(t, cfg, vpcRef); err != nil {
			return nil, errors.Wrap(err, "failed to add private hosted zone")
		}
	}

	if err := addOutputs(t, cfg, subnets, vpcRef); err != nil {
		return nil, err
	}

	return t, nil
}

func addVPC(t *cfn.Template, cfg *api.Network) error {
	return t.Add(vpcLogicalName, cfn.Resource{
		Type: "AWS::EC2::VPC",
		Properties: map[string]interface{}{
			"CidrBlock":          cfg.VPC.CIDR.String(),
			"EnableDnsSupport":   cfg.VPC.EnableDnsSupport,
			"EnableDnsHostnames": cfg.VPC.EnableDnsHostnames,
			"InstanceTenancy":    cfg.VPC.InstanceTenancy,
			"Tags": []cfn.Tag{
				{Key: "Name", Value: cfn.Sub("${AWS::StackName}-vpc")},
			},
		},
	})
}

func addSubnets(t *cfn.Template, cfg *api.Network, subnets Subnets, vpcRef interface{}) error {
	hasPublic := len(subnets.Public()) > 0
	hasPrivate := len(subnets.Private()) > 0

	if hasPublic {
		if err := t.Add(igwLogicalName, cfn.Resource{
			Type: "AWS::EC2::InternetGateway",
			Properties: map[string]interface{}{
				"Tags": []cfn.Tag{
					{Key: "Name", Value: cfn.Sub("${AWS::StackName}-igw")},
				},
			},
		}); err != nil {
			return err
		}
		if err := t.Add(igwAttachLogicalName, cfn.Resource{
			Type: "AWS::EC2::VPCGatewayAttachment",
			Properties: map[string]interface{}{
				"InternetGatewayId": cfn.Ref(igwLogicalName),
				"VpcId":             vpcRef,
			},
		}); err != nil {
			return err
		}
		if err := t.Add(publicRTLogicalName, cfn.Resource{
			Type: "AWS::EC2::RouteTable",
			Properties: map[string]interface{}{
				"VpcId": vpcRef,
				"Tags": []cfn.Tag{
					{Key: "Name", Value: cfn.Sub("${AWS::StackName}-public-rt")},
				},
			},
		}); err != nil {
			return err
		}
		if err := t.Add("PublicRoute", cfn.Resource{
			Type:      "AWS::EC2::Route",
			DependsOn: []string{igwAttachLogicalName},
			Properties: map[string]interface{}{
				"RouteTableId":         cfn.Ref(publicRTLogicalName),
				"DestinationCidrBlock": "0.0.0.0/0",
				"GatewayId":            cfn.Ref(igwLogicalName),
			},
		}); err != nil {
			return err
		}
	}

	for _, s := range subnets {
		properties := map[string]interface{}{
			"VpcId":            vpcRef,
			"CidrBlock":        s.CIDR,
			"AvailabilityZone": s.AvailabilityZone(),
			"Tags": []cfn.Tag{
				{Key: "Name", Value: cfn.Sub("${AWS::StackName}-" + s.NameTagSuffix())},
			},
		}
		if s.Public {
			properties["MapPublicIpOnLaunch"] = true
		}
		if err := t.Add(s.LogicalName(), cfn.Resource{
			Type:       "AWS::EC2::Subnet",
			Properties: properties,
		}); err != nil {
			return err
		}

		if s.Public {
			if err := t.Add(s.LogicalName()+"RouteTableAssociation", cfn.Resource{
				Type: "AWS::EC2::SubnetRouteTableAssociation",
				Properties: map[string]interface{}{
					"SubnetId":     cfn.Ref(s.LogicalName()),
					"RouteTableId": cfn.Ref(publicRTLogicalName),
				},
			}); err != nil {
				return err
			}
		}
	}

	// NAT gateways give instances in the private subnets outbound internet
	// access. One per AZ, hosted in that AZ's public subnet.
	if hasPublic && hasPrivate {
		for az := 0; az < cfg.AvailabilityZoneCount; az++ {
			host, ok := subnets.FirstPublicInAZ(az)
			if !ok {
				return fmt.Errorf("no public subnet in AZ %d to host a NAT gateway", az)
			}
			eip := "NatEIP" + strconv.Itoa(az)
			nat := natGatewayLogicalName(az)
			if err := t.Add(eip, cfn.Resource{
				Type: "AWS::EC2::EIP",
				Properties: map[string]interface{}{
					"Domain": "vpc",
				},
			}); err != nil {
				return err
			}
			if err := t.Add(nat, cfn.Resource{
				Type:      "AWS::EC2::NatGateway",
				DependsOn: []string{igwAttachLogicalName},
				Properties: map[string]interface{}{
					"AllocationId": cfn.GetAtt(eip, "AllocationId"),
					"SubnetId":     cfn.Ref(host.LogicalName()),
					"Tags": []cfn.Tag{
						{Key: "Name", Value: cfn.Sub("${AWS::StackName}-nat-" + strconv.Itoa(az))},
					},
				},
			}); err != nil {
				return err
			}
		}
	}

	if hasPrivate {
		for az := 0; az < cfg.AvailabilityZoneCount; az++ {
			rt := privateRTLogicalName(az)
			if err := t.Add(rt, cfn.Resource{
				Type: "AWS::EC2::RouteTable",
				Properties: map[string]interface{}{
					"VpcId": vpcRef,
					"Tags": []cfn.Tag{
						{Key: "Name", Value: cfn.Sub("${AWS::StackName}-private-rt-" + strconv.Itoa(az))},
					},
				},
			}); err != nil {
				return err
			}
			if hasPublic {
				if err := t.Add("PrivateRoute"+strconv.Itoa(az), cfn.Resource{
					Type: "AWS::EC2::Route",
					Properties: map[string]interface{}{
						"RouteTableId":         cfn.Ref(rt),
						"DestinationCidrBlock": "0.0.0.0/0",
						"NatGatewayId":         cfn.Ref(natGatewayLogicalName(az)),
					},
				}); err != nil {
					return err
				}
			}
		}
		for _, s := range subnets.Private() {
			if err := t.Add(s.LogicalName()+"RouteTableAssociation", cfn.Resource{
				Type: "AWS::EC2::SubnetRouteTableAssociation",
				Properties: map[string]interface{}{
					"SubnetId":     cfn.Ref(s.LogicalName()),
					"RouteTableId": cfn.Ref(privateRTLogicalName(s.Index)),
				},
			}); err != nil {
				return err
			}
		}
	}

	return nil
}

func natGatewayLogicalName(az int) string {
	return "NatGateway" + strconv.Itoa(az)
}

func privateRTLogicalName(az int) string {
	return "PrivateRouteTable" + strconv.Itoa(az)
}

func addOutputs(t *cfn.Template, cfg *api.Network, subnets Subnets, vpcRef interface{}) error {
	t.AddOutput(vpcLogicalName, "Network tier VPC ID", vpcRef)
	if cfg.VPC.Managed() {
		t.AddOutput("VPCCIDR", "Network tier VPC CIDR block", cfg.VPC.CIDR.String())
	}
	for _, s := range subnets {
		t.AddOutput(s.LogicalName(), fmt.Sprintf("%s subnet in AZ %d", s.Name, s.Index), cfn.Ref(s.LogicalName()))
	}
	if len(subnets.Private()) > 0 {
		for az := 0; az < cfg.AvailabilityZoneCount; az++ {
			rt := privateRTLogicalName(az)
			t.AddOutput(rt, fmt.Sprintf("Private route table in AZ %d", az), cfn.Ref(rt))
		}
	}
	if cfg.PrivateHostedZone.Enabled() {
		t.AddOutput(hostedZoneLogicalName, "Internal DNS zone ID", cfg.PrivateHostedZone.Ref(hostedZoneLogicalName))
	}

	for name := range t.Outputs {
		if err := cfnresource.ValidateExportNameLength(cfg.StackName(), name); err != nil {
			return err
		}
	}
	return nil
}
