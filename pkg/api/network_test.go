package api

import (
	"strings"
	"testing"
)

const minimalConfigYaml = `clusterName: render-farm
region: us-west-2
`

func TestNetworkFromBytesAppliesDefaults(t *testing.T) {
	n, err := NetworkFromBytes([]byte(minimalConfigYaml))
	if err != nil {
		t.Fatalf("failed to parse config: %v", err)
	}

	if n.ClusterName != "render-farm" {
		t.Errorf("unexpected clusterName: %s", n.ClusterName)
	}
	if n.Region.Name != "us-west-2" {
		t.Errorf("unexpected region: %s", n.Region.Name)
	}
	if n.VPC.CIDR.String() != "10.0.0.0/16" {
		t.Errorf("unexpected default VPC CIDR: %s", n.VPC.CIDR)
	}
	if n.AvailabilityZoneCount != 2 {
		t.Errorf("unexpected default availabilityZoneCount: %d", n.AvailabilityZoneCount)
	}
	if len(n.Subnets) != 2 {
		t.Fatalf("unexpected default subnets: %+v", n.Subnets)
	}
	if n.Subnets[0].Name != "Public" || n.Subnets[0].CIDRMask != 28 {
		t.Errorf("unexpected default public subnet group: %+v", n.Subnets[0])
	}
	if n.Subnets[1].Name != "Private" || n.Subnets[1].CIDRMask != 18 {
		t.Errorf("unexpected default private subnet group: %+v", n.Subnets[1])
	}
	if !n.FlowLog.Enabled || n.FlowLog.TrafficType != "ALL" || n.FlowLog.RetentionInDays != 731 {
		t.Errorf("unexpected default flow log: %+v", n.FlowLog)
	}
	if len(n.VPCEndpoints.Interface) != 10 {
		t.Errorf("unexpected default interface endpoints: %v", n.VPCEndpoints.Interface)
	}
	if len(n.VPCEndpoints.Gateway) != 2 {
		t.Errorf("unexpected default gateway endpoints: %v", n.VPCEndpoints.Gateway)
	}
	if n.PrivateHostedZone.Enabled() {
		t.Error("private hosted zone should be disabled by default")
	}
}

func TestNetworkFromBytesOverridesDefaults(t *testing.T) {
	yaml := minimalConfigYaml + `
vpc:
  cidr: "192.168.0.0/20"
availabilityZoneCount: 3
subnets:
- name: Ingress
  type: public
  cidrMask: 24
- name: Workers
  type: private
  cidrMask: 22
flowLog:
  enabled: false
privateHostedZone:
  name: farm.internal
stackTags:
  team: rendering
`
	n, err := NetworkFromBytes([]byte(yaml))
	if err != nil {
		t.Fatalf("failed to parse config: %v", err)
	}

	if n.VPC.CIDR.String() != "192.168.0.0/20" {
		t.Errorf("unexpected VPC CIDR: %s", n.VPC.CIDR)
	}
	if n.AvailabilityZoneCount != 3 {
		t.Errorf("unexpected availabilityZoneCount: %d", n.AvailabilityZoneCount)
	}
	if len(n.Subnets) != 2 || n.Subnets[0].Name != "Ingress" || n.Subnets[1].Name != "Workers" {
		t.Errorf("unexpected subnets: %+v", n.Subnets)
	}
	if n.FlowLog.Enabled {
		t.Error("flow log should be disabled")
	}
	if !n.PrivateHostedZone.Managed() || n.PrivateHostedZone.Name != "farm.internal" {
		t.Errorf("unexpected private hosted zone: %+v", n.PrivateHostedZone)
	}
	if n.StackTags["team"] != "rendering" {
		t.Errorf("unexpected stack tags: %v", n.StackTags)
	}
}

func TestNetworkFromBytesRejectsUnknownKeys(t *testing.T) {
	yaml := minimalConfigYaml + `
unknownKey: true
`
	if _, err := NetworkFromBytes([]byte(yaml)); err == nil {
		t.Error("expected an error for unknown config key")
	}
}

func TestNetworkValidationErrors(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing cluster name",
			yaml:    "region: us-west-2\n",
			wantErr: "clusterName must be set",
		},
		{
			name:    "invalid cluster name",
			yaml:    "clusterName: 0badname\nregion: us-west-2\n",
			wantErr: "invalid clusterName",
		},
		{
			name:    "missing region",
			yaml:    "clusterName: render-farm\n",
			wantErr: "region must be set",
		},
		{
			name:    "too many availability zones",
			yaml:    minimalConfigYaml + "availabilityZoneCount: 5\n",
			wantErr: "invalid availabilityZoneCount",
		},
		{
			name:    "invalid subnet type",
			yaml:    minimalConfigYaml + "subnets:\n- name: Workers\n  type: isolated\n  cidrMask: 24\n",
			wantErr: "invalid subnet type",
		},
		{
			name:    "duplicate subnet name",
			yaml:    minimalConfigYaml + "subnets:\n- name: Workers\n  type: private\n  cidrMask: 24\n- name: Workers\n  type: private\n  cidrMask: 24\n",
			wantErr: "duplicate subnet configuration name",
		},
		{
			name:    "invalid flow log traffic type",
			yaml:    minimalConfigYaml + "flowLog:\n  enabled: true\n  trafficType: SOME\n  retentionInDays: 1\n",
			wantErr: "invalid flow log traffic type",
		},
		{
			name:    "unknown interface endpoint",
			yaml:    minimalConfigYaml + "vpcEndpoints:\n  interface: [nosuchservice]\n",
			wantErr: "unknown interface endpoint service",
		},
		{
			name:    "unknown gateway endpoint",
			yaml:    minimalConfigYaml + "vpcEndpoints:\n  gateway: [kms]\n",
			wantErr: "unknown gateway endpoint service",
		},
		{
			name:    "invalid hosted zone name",
			yaml:    minimalConfigYaml + "privateHostedZone:\n  name: \"-bad.name\"\n",
			wantErr: "invalid private hosted zone name",
		},
		{
			name:    "subnets do not fit the VPC CIDR",
			yaml:    minimalConfigYaml + "vpc:\n  cidr: \"10.0.0.0/24\"\nsubnets:\n- name: Workers\n  type: private\n  cidrMask: 24\n",
			wantErr: "does not fit into the VPC CIDR",
		},
		{
			name:    "subnets declared on a reused VPC",
			yaml:    minimalConfigYaml + "vpc:\n  id: vpc-0123456789abcdef0\nsubnets:\n- name: Workers\n  type: private\n  cidrMask: 24\n",
			wantErr: "subnets cannot be declared when reusing an existing VPC",
		},
		{
			name:    "endpoints declared on a reused VPC",
			yaml:    minimalConfigYaml + "vpc:\n  id: vpc-0123456789abcdef0\nvpcEndpoints:\n  interface: [kms]\n",
			wantErr: "vpcEndpoints cannot be declared when reusing an existing VPC",
		},
		{
			name:    "reused VPC with nothing to provision",
			yaml:    minimalConfigYaml + "vpc:\n  id: vpc-0123456789abcdef0\nflowLog:\n  enabled: false\n",
			wantErr: "nothing to provision",
		},
		{
			name:    "endpoints without a private subnet",
			yaml:    minimalConfigYaml + "subnets:\n- name: Public\n  type: public\n  cidrMask: 24\n",
			wantErr: "vpcEndpoints require at least one private subnet",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NetworkFromBytes([]byte(c.yaml))
			if err == nil {
				t.Fatal("expected a validation error but got none")
			}
			if !strings.Contains(err.Error(), c.wantErr) {
				t.Errorf("unexpected error: expected to contain %q, got %q", c.wantErr, err.Error())
			}
		})
	}
}

func TestNetworkStackName(t *testing.T) {
	n := NewDefaultNetwork()
	n.ClusterName = "render-farm"
	if n.StackName() != "render-farm-network" {
		t.Errorf("unexpected stack name: %s", n.StackName())
	}

	n.StackNameOverride = "custom-stack"
	if n.StackName() != "custom-stack" {
		t.Errorf("unexpected overridden stack name: %s", n.StackName())
	}
}

func TestReusedVPCDropsDefaultTopology(t *testing.T) {
	// Setting vpc.id and nothing else, as the generated network.yaml
	// suggests, must not leave the managed-VPC subnet and endpoint defaults
	// behind.
	yaml := minimalConfigYaml + `vpc:
  id: vpc-0123456789abcdef0
`
	n, err := NetworkFromBytes([]byte(yaml))
	if err != nil {
		t.Fatalf("failed to parse config: %v", err)
	}
	if n.VPC.Managed() {
		t.Error("VPC with an id should not be managed")
	}
	if len(n.Subnets) != 0 {
		t.Errorf("default subnet groups should be dropped for a reused VPC, got %+v", n.Subnets)
	}
	if !n.VPCEndpoints.Empty() {
		t.Errorf("default endpoints should be dropped for a reused VPC, got %+v", n.VPCEndpoints)
	}
	if !n.FlowLog.Enabled {
		t.Error("flow log should remain enabled on a reused VPC")
	}
}

func TestReusedVPCSupportsFlowLogAndHostedZone(t *testing.T) {
	yaml := minimalConfigYaml + `vpc:
  id: vpc-0123456789abcdef0
privateHostedZone:
  name: farm.internal
`
	n, err := NetworkFromBytes([]byte(yaml))
	if err != nil {
		t.Fatalf("failed to parse config: %v", err)
	}
	if n.VPC.Managed() {
		t.Error("VPC with an id should not be managed")
	}
	if !n.FlowLog.Enabled {
		t.Error("flow log should remain enabled on a reused VPC")
	}
	if !n.PrivateHostedZone.Managed() {
		t.Error("private hosted zone should be managed")
	}
}
