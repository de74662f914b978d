package api

import (
	"fmt"
	"regexp"
)

var zoneNameRe = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?\.)*[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?$`)

// PrivateHostedZone is the internal DNS zone attached to the VPC.
// Leave Name empty to skip creating one. Set the Identifier to point at a
// zone managed elsewhere instead; no zone resource is created then, but the
// stack still exports the zone ID so sibling stacks can import it uniformly.
type PrivateHostedZone struct {
	Identifier `yaml:",inline"`
	Name       string `yaml:"name,omitempty"`
	Comment    string `yaml:"comment,omitempty"`
}

func (z PrivateHostedZone) Enabled() bool {
	return z.Name != "" || z.HasIdentifier()
}

func (z PrivateHostedZone) Managed() bool {
	return z.Name != "" && !z.HasIdentifier()
}

func (z PrivateHostedZone) Validate() error {
	if z.Name != "" && z.HasIdentifier() {
		return fmt.Errorf("privateHostedZone.name and privateHostedZone.id are mutually exclusive")
	}
	if z.Name != "" && !zoneNameRe.MatchString(z.Name) {
		return fmt.Errorf("invalid private hosted zone name %q", z.Name)
	}
	return nil
}
