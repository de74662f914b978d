package api

import (
	"fmt"
)

type SubnetType string

const (
	SubnetTypePublic  SubnetType = "public"
	SubnetTypePrivate SubnetType = "private"
)

// SubnetConfiguration describes one group of subnets: the group is
// instantiated once per availability zone, each instance receiving a block of
// the given prefix length carved out of the VPC CIDR.
type SubnetConfiguration struct {
	Name     string     `yaml:"name"`
	Type     SubnetType `yaml:"type"`
	CIDRMask int        `yaml:"cidrMask"`
}

func (s SubnetConfiguration) Public() bool {
	return s.Type == SubnetTypePublic
}

func (s SubnetConfiguration) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("subnet configuration name must not be empty")
	}
	if s.Type != SubnetTypePublic && s.Type != SubnetTypePrivate {
		return fmt.Errorf("invalid subnet type %q for subnet configuration %q: must be one of %q, %q", s.Type, s.Name, SubnetTypePublic, SubnetTypePrivate)
	}
	if s.CIDRMask < 16 || s.CIDRMask > 28 {
		return fmt.Errorf("invalid cidrMask /%d for subnet configuration %q: must be between /16 and /28", s.CIDRMask, s.Name)
	}
	return nil
}

type SubnetConfigurations []SubnetConfiguration

func (ss SubnetConfigurations) ContainsPublic() bool {
	for _, s := range ss {
		if s.Public() {
			return true
		}
	}
	return false
}

func (ss SubnetConfigurations) ContainsPrivate() bool {
	for _, s := range ss {
		if !s.Public() {
			return true
		}
	}
	return false
}

func (ss SubnetConfigurations) Validate() error {
	seen := map[string]bool{}
	for _, s := range ss {
		if err := s.Validate(); err != nil {
			return err
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate subnet configuration name %q", s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}
