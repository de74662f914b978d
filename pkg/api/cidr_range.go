package api

import (
	"fmt"
	"net"
)

// CIDRRange represents an IP network range in CIDR notation
type CIDRRange struct {
	str string
}

func CIDRRangeFromString(cidr string) (CIDRRange, error) {
	if _, _, err := net.ParseCIDR(cidr); err != nil {
		return CIDRRange{}, fmt.Errorf("failed to parse CIDR range: %v", err)
	}
	return CIDRRange{str: cidr}, nil
}

func (c *CIDRRange) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var cidr string
	if err := unmarshal(&cidr); err != nil {
		return fmt.Errorf("failed to parse CIDR range: %v", err)
	}

	parsed, err := CIDRRangeFromString(cidr)
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

// String returns the string representation of this CIDR range
func (c CIDRRange) String() string {
	return c.str
}

func (c CIDRRange) IsEmpty() bool {
	return c.str == ""
}

// IPNet returns the parsed network. Must not be called on an empty range.
func (c CIDRRange) IPNet() *net.IPNet {
	_, network, err := net.ParseCIDR(c.str)
	if err != nil {
		panic(fmt.Sprintf("[bug] unvalidated CIDR range %q: %v", c.str, err))
	}
	return network
}
