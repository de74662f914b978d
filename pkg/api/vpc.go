package api

// VPC is the network tier's virtual private cloud.
//
// If ID or IDFromStackOutput is non-zero the VPC is not managed by this stack
// but reused; in that case only the flow log and the private hosted zone can
// attach to it, since the stack has no knowledge of the existing subnets.
type VPC struct {
	Identifier         `yaml:",inline"`
	CIDR               CIDRRange `yaml:"cidr,omitempty"`
	EnableDnsSupport   bool      `yaml:"enableDnsSupport"`
	EnableDnsHostnames bool      `yaml:"enableDnsHostnames"`
	InstanceTenancy    string    `yaml:"instanceTenancy,omitempty"`
}

func (v VPC) Managed() bool {
	return !v.HasIdentifier()
}
