package model

import (
	"strconv"
	"strings"

	"github.com/marofke/aws-rfdk/naming"
	"github.com/marofke/aws-rfdk/netutil"
	"github.com/marofke/aws-rfdk/pkg/api"
	"github.com/marofke/aws-rfdk/pkg/cfn"
	"github.com/pkg/errors"
)

// Subnet is one concrete subnet: a subnet configuration instantiated in one
// availability zone with a CIDR block carved out of the VPC range.
type Subnet struct {
	Name   string
	Public bool
	Index  int
	CIDR   string
}

func (s Subnet) LogicalName() string {
	return naming.Logical(s.Name) + "Subnet" + strconv.Itoa(s.Index)
}

// NameTagSuffix is appended to the stack name to build the Name tag, e.g.
// "${AWS::StackName}-private-0".
func (s Subnet) NameTagSuffix() string {
	return strings.ToLower(naming.Logical(s.Name)) + "-" + strconv.Itoa(s.Index)
}

// AvailabilityZone returns the Fn::Select expression picking this subnet's AZ
// out of the region's AZ list, so the rendered template stays region-agnostic.
func (s Subnet) AvailabilityZone() interface{} {
	return cfn.Select(s.Index, cfn.GetAZs())
}

type Subnets []Subnet

func (ss Subnets) Public() Subnets {
	var result Subnets
	for _, s := range ss {
		if s.Public {
			result = append(result, s)
		}
	}
	return result
}

func (ss Subnets) Private() Subnets {
	var result Subnets
	for _, s := range ss {
		if !s.Public {
			result = append(result, s)
		}
	}
	return result
}

// FirstPublicInAZ returns the public subnet hosting shared per-AZ resources
// such as the NAT gateway.
func (ss Subnets) FirstPublicInAZ(index int) (Subnet, bool) {
	for _, s := range ss {
		if s.Public && s.Index == index {
			return s, true
		}
	}
	return Subnet{}, false
}

func (ss Subnets) Refs() []interface{} {
	refs := make([]interface{}, len(ss))
	for i, s := range ss {
		refs[i] = cfn.Ref(s.LogicalName())
	}
	return refs
}

// DeriveSubnets lays out the configured subnet groups across availability
// zones. Allocation is configuration-major, matching the layout validated at
// config load time.
func DeriveSubnets(cfg *api.Network) (Subnets, error) {
	alloc, err := netutil.NewAllocator(cfg.VPC.CIDR.IPNet())
	if err != nil {
		return nil, err
	}

	var subnets Subnets
	for _, sc := range cfg.Subnets {
		for az := 0; az < cfg.AvailabilityZoneCount; az++ {
			block, err := alloc.Next(sc.CIDRMask)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to allocate a CIDR block for subnet %q in AZ %d", sc.Name, az)
			}
			subnets = append(subnets, Subnet{
				Name:   sc.Name,
				Public: sc.Public(),
				Index:  az,
				CIDR:   block.String(),
			})
		}
	}
	return subnets, nil
}
