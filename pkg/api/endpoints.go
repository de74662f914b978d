package api

import (
	"fmt"
	"sort"
)

// interfaceEndpointServices maps the short service names accepted in
// network.yaml to the service-name suffix AWS uses for interface endpoints,
// i.e. the last component of com.amazonaws.<region>.<suffix>.
var interfaceEndpointServices = map[string]string{
	"cloudwatch":        "monitoring",
	"cloudwatch-events": "events",
	"cloudwatch-logs":   "logs",
	"ec2":               "ec2",
	"ecr":               "ecr.api",
	"ecr-docker":        "ecr.dkr",
	"ecs":               "ecs",
	"kms":               "kms",
	"secretsmanager":    "secretsmanager",
	"sns":               "sns",
	"sqs":               "sqs",
	"ssm":               "ssm",
	"sts":               "sts",
}

var gatewayEndpointServices = map[string]string{
	"s3":       "s3",
	"dynamodb": "dynamodb",
}

// VPCEndpoints selects which AWS services get private entry points inside the
// VPC. Interface endpoints land in the private subnets; gateway endpoints are
// bound to the private route tables.
type VPCEndpoints struct {
	Interface         []string `yaml:"interface"`
	Gateway           []string `yaml:"gateway"`
	PrivateDNSEnabled bool     `yaml:"privateDnsEnabled"`
}

func (e VPCEndpoints) Empty() bool {
	return len(e.Interface) == 0 && len(e.Gateway) == 0
}

func (e VPCEndpoints) Validate() error {
	for _, name := range e.Interface {
		if _, ok := interfaceEndpointServices[name]; !ok {
			return fmt.Errorf("unknown interface endpoint service %q: supported services are %v", name, sortedKeys(interfaceEndpointServices))
		}
	}
	for _, name := range e.Gateway {
		if _, ok := gatewayEndpointServices[name]; !ok {
			return fmt.Errorf("unknown gateway endpoint service %q: supported services are %v", name, sortedKeys(gatewayEndpointServices))
		}
	}
	return nil
}

// InterfaceServiceSuffix returns the service-name suffix for a validated
// interface endpoint name.
func InterfaceServiceSuffix(name string) string {
	return interfaceEndpointServices[name]
}

// GatewayServiceSuffix returns the service-name suffix for a validated
// gateway endpoint name.
func GatewayServiceSuffix(name string) string {
	return gatewayEndpointServices[name]
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
