package model

import (
	"fmt"

	"github.com/marofke/aws-rfdk/naming"
	"github.com/marofke/aws-rfdk/pkg/api"
	"github.com/marofke/aws-rfdk/pkg/cfn"
)

const endpointSGLogicalName = "VPCEndpointSecurityGroup"

// addVPCEndpoints emits interface endpoints into the private subnets and
// gateway endpoints onto the private route tables. Interface endpoints share
// one security group admitting HTTPS from anywhere inside the VPC.
func addVPCEndpoints(t *cfn.Template, cfg *api.Network, subnets Subnets, vpcRef interface{}) error {
	private := subnets.Private()
	if len(private) == 0 {
		return fmt.Errorf("vpc endpoints require at least one private subnet")
	}

	if len(cfg.VPCEndpoints.Interface) > 0 {
		if err := t.Add(endpointSGLogicalName, cfn.Resource{
			Type: "AWS::EC2::SecurityGroup",
			Properties: map[string]interface{}{
				"GroupDescription": "HTTPS from within the VPC to interface endpoints",
				"VpcId":            vpcRef,
				"SecurityGroupIngress": []map[string]interface{}{
					{
						"IpProtocol": "tcp",
						"FromPort":   443,
						"ToPort":     443,
						"CidrIp":     cfg.VPC.CIDR.String(),
					},
				},
				"Tags": []cfn.Tag{
					{Key: "Name", Value: cfn.Sub("${AWS::StackName}-endpoint-sg")},
				},
			},
		}); err != nil {
			return err
		}
	}

	for _, name := range cfg.VPCEndpoints.Interface {
		if err := t.Add(naming.Logical(name)+"VPCEndpoint", cfn.Resource{
			Type: "AWS::EC2::VPCEndpoint",
			Properties: map[string]interface{}{
				"ServiceName":       endpointServiceName(cfg.Region, api.InterfaceServiceSuffix(name)),
				"VpcEndpointType":   "Interface",
				"VpcId":             vpcRef,
				"PrivateDnsEnabled": cfg.VPCEndpoints.PrivateDNSEnabled,
				"SubnetIds":         private.Refs(),
				"SecurityGroupIds":  []interface{}{cfn.Ref(endpointSGLogicalName)},
			},
		}); err != nil {
			return err
		}
	}

	routeTables := make([]interface{}, cfg.AvailabilityZoneCount)
	for az := 0; az < cfg.AvailabilityZoneCount; az++ {
		routeTables[az] = cfn.Ref(privateRTLogicalName(az))
	}
	for _, name := range cfg.VPCEndpoints.Gateway {
		if err := t.Add(naming.Logical(name)+"VPCEndpoint", cfn.Resource{
			Type: "AWS::EC2::VPCEndpoint",
			Properties: map[string]interface{}{
				"ServiceName":     endpointServiceName(cfg.Region, api.GatewayServiceSuffix(name)),
				"VpcEndpointType": "Gateway",
				"VpcId":           vpcRef,
				"RouteTableIds":   routeTables,
			},
		}); err != nil {
			return err
		}
	}

	return nil
}

func endpointServiceName(region api.Region, suffix string) interface{} {
	return cfn.Sub(region.EndpointServicePrefix() + ".${AWS::Region}." + suffix)
}
