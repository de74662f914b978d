package api

import (
	"fmt"
)

// FlowLog captures traffic metadata for the VPC into CloudWatch Logs.
type FlowLog struct {
	Enabled         bool   `yaml:"enabled"`
	TrafficType     string `yaml:"trafficType,omitempty"`
	RetentionInDays int    `yaml:"retentionInDays,omitempty"`
}

var validTrafficTypes = map[string]bool{
	"ALL":    true,
	"ACCEPT": true,
	"REJECT": true,
}

func (f FlowLog) Validate() error {
	if !f.Enabled {
		return nil
	}
	if !validTrafficTypes[f.TrafficType] {
		return fmt.Errorf("invalid flow log traffic type %q: must be one of ALL, ACCEPT, REJECT", f.TrafficType)
	}
	if f.RetentionInDays < 1 {
		return fmt.Errorf("invalid flow log retention %d: must be a positive number of days", f.RetentionInDays)
	}
	return nil
}
