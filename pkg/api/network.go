package api

import (
	"fmt"
	"io/ioutil"
	"regexp"

	"github.com/marofke/aws-rfdk/cfnresource"
	"github.com/marofke/aws-rfdk/netutil"
	yaml "gopkg.in/yaml.v2"
)

const (
	defaultVPCCIDR          = "10.0.0.0/16"
	defaultAZCount          = 2
	defaultFlowLogRetention = 731

	maxAZCount = 4
)

var clusterNameRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)

// Network is the desired state of the render farm's network tier: one VPC,
// subnet groups instantiated across availability zones, a flow log, VPC
// endpoints and a private DNS zone. It is compiled into a CloudFormation
// template; all resource lifecycle is delegated to CloudFormation.
type Network struct {
	ClusterName           string               `yaml:"clusterName"`
	Region                `yaml:",inline"`
	VPC                   VPC                  `yaml:"vpc,omitempty"`
	AvailabilityZoneCount int                  `yaml:"availabilityZoneCount,omitempty"`
	Subnets               SubnetConfigurations `yaml:"subnets,omitempty"`
	FlowLog               FlowLog              `yaml:"flowLog,omitempty"`
	VPCEndpoints          VPCEndpoints         `yaml:"vpcEndpoints,omitempty"`
	PrivateHostedZone     PrivateHostedZone    `yaml:"privateHostedZone,omitempty"`
	StackTags             map[string]string    `yaml:"stackTags,omitempty"`
	S3URI                 string               `yaml:"s3URI,omitempty"`
	StackNameOverride     string               `yaml:"stackName,omitempty"`
}

// NewDefaultNetwork returns a Network prefilled with the defaults that
// network.yaml values are unmarshalled over: two AZs, a /16 VPC split into
// public /28 and private /18 subnet groups, an ALL-traffic flow log and the
// full set of render farm service endpoints.
func NewDefaultNetwork() *Network {
	cidr, err := CIDRRangeFromString(defaultVPCCIDR)
	if err != nil {
		panic(fmt.Sprintf("[bug] invalid default VPC CIDR: %v", err))
	}
	return &Network{
		VPC: VPC{
			CIDR:               cidr,
			EnableDnsSupport:   true,
			EnableDnsHostnames: true,
			InstanceTenancy:    "default",
		},
		AvailabilityZoneCount: defaultAZCount,
		Subnets: SubnetConfigurations{
			{Name: "Public", Type: SubnetTypePublic, CIDRMask: 28},
			{Name: "Private", Type: SubnetTypePrivate, CIDRMask: 18},
		},
		FlowLog: FlowLog{
			Enabled:         true,
			TrafficType:     "ALL",
			RetentionInDays: defaultFlowLogRetention,
		},
		VPCEndpoints: VPCEndpoints{
			Interface: []string{
				"cloudwatch",
				"cloudwatch-events",
				"cloudwatch-logs",
				"ec2",
				"ecr",
				"ecs",
				"kms",
				"secretsmanager",
				"sns",
				"sts",
			},
			Gateway:           []string{"s3", "dynamodb"},
			PrivateDNSEnabled: true,
		},
	}
}

// NetworkFromFile loads, defaults and validates a network.yaml.
func NetworkFromFile(path string) (*Network, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	n, err := NetworkFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v", path, err)
	}

	return n, nil
}

// NetworkFromBytes unmarshals the given YAML over the defaults and validates
// the result. Unknown keys are rejected.
//
// A config reusing an existing VPC gets no default subnets or endpoints: the
// pre-existing subnets are unknown to this stack, so the managed-VPC topology
// defaults would only produce a validation error.
func NetworkFromBytes(data []byte) (*Network, error) {
	var probe struct {
		VPC Identifier `yaml:"vpc"`
	}
	// Non-strict on purpose: only the identifier matters here, the strict
	// unmarshal below rejects unknown keys.
	_ = yaml.Unmarshal(data, &probe)

	n := NewDefaultNetwork()
	if probe.VPC.HasIdentifier() {
		n.Subnets = nil
		n.VPCEndpoints = VPCEndpoints{}
	}

	if err := yaml.UnmarshalStrict(data, n); err != nil {
		return nil, err
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

// StackName is the name of the CloudFormation stack managed for this config.
func (n *Network) StackName() string {
	if n.StackNameOverride != "" {
		return n.StackNameOverride
	}
	return fmt.Sprintf("%s-network", n.ClusterName)
}

func (n *Network) Validate() error {
	if n.ClusterName == "" {
		return fmt.Errorf("clusterName must be set")
	}
	if !clusterNameRe.MatchString(n.ClusterName) {
		return fmt.Errorf("invalid clusterName %q: must begin with a letter and contain only letters, digits and hyphens", n.ClusterName)
	}
	if err := cfnresource.ValidateStackName(n.StackName()); err != nil {
		return err
	}
	if n.Region.IsEmpty() {
		return fmt.Errorf("region must be set")
	}
	if n.AvailabilityZoneCount < 1 || n.AvailabilityZoneCount > maxAZCount {
		return fmt.Errorf("invalid availabilityZoneCount %d: must be between 1 and %d", n.AvailabilityZoneCount, maxAZCount)
	}

	if err := n.Subnets.Validate(); err != nil {
		return err
	}
	if err := n.FlowLog.Validate(); err != nil {
		return err
	}
	if err := n.VPCEndpoints.Validate(); err != nil {
		return err
	}
	if err := n.PrivateHostedZone.Validate(); err != nil {
		return err
	}

	if n.VPC.Managed() {
		if n.VPC.CIDR.IsEmpty() {
			return fmt.Errorf("vpc.cidr must be set for a managed VPC")
		}
		if len(n.Subnets) == 0 {
			return fmt.Errorf("at least one subnet configuration is required for a managed VPC")
		}
		if !n.Subnets.ContainsPrivate() && !n.VPCEndpoints.Empty() {
			return fmt.Errorf("vpcEndpoints require at least one private subnet configuration")
		}
		if err := n.validateSubnetLayout(); err != nil {
			return err
		}
	} else {
		// A reused VPC comes with pre-existing subnets this stack knows
		// nothing about, so only VPC-scoped attachments are possible.
		if len(n.Subnets) > 0 {
			return fmt.Errorf("subnets cannot be declared when reusing an existing VPC (vpc.id or vpc.idFromStackOutput is set)")
		}
		if !n.VPCEndpoints.Empty() {
			return fmt.Errorf("vpcEndpoints cannot be declared when reusing an existing VPC")
		}
		// CloudFormation rejects templates without resources, so an empty
		// attachment set has to be caught here.
		if !n.FlowLog.Enabled && !n.PrivateHostedZone.Managed() {
			return fmt.Errorf("nothing to provision for the reused VPC: enable the flow log or declare a private hosted zone name")
		}
	}

	return nil
}

// validateSubnetLayout dry-runs the subnet CIDR allocation so that layout
// problems surface at config load rather than at CloudFormation rollout.
func (n *Network) validateSubnetLayout() error {
	alloc, err := netutil.NewAllocator(n.VPC.CIDR.IPNet())
	if err != nil {
		return err
	}
	for _, s := range n.Subnets {
		for az := 0; az < n.AvailabilityZoneCount; az++ {
			if _, err := alloc.Next(s.CIDRMask); err != nil {
				return fmt.Errorf("subnet configuration %q does not fit into the VPC CIDR %s: %v", s.Name, n.VPC.CIDR, err)
			}
		}
	}
	return nil
}
