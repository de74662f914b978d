// Package cfn holds an in-memory representation of a CloudFormation template
// along with the handful of intrinsic functions the network stack relies on.
package cfn

import (
	"encoding/json"
	"fmt"
	"sort"
)

const TemplateFormatVersion = "2010-09-09"

// Template is a CloudFormation template.
type Template struct {
	AWSTemplateFormatVersion string               `json:"AWSTemplateFormatVersion"`
	Description              string               `json:"Description,omitempty"`
	Parameters               map[string]Parameter `json:"Parameters,omitempty"`
	Resources                map[string]Resource  `json:"Resources"`
	Outputs                  map[string]Output    `json:"Outputs,omitempty"`
}

// Resource is a single resource in the template.
type Resource struct {
	Type           string                 `json:"Type"`
	Properties     map[string]interface{} `json:"Properties,omitempty"`
	DependsOn      []string               `json:"DependsOn,omitempty"`
	DeletionPolicy string                 `json:"DeletionPolicy,omitempty"`
}

// Parameter is a template parameter.
type Parameter struct {
	Type        string      `json:"Type"`
	Description string      `json:"Description,omitempty"`
	Default     interface{} `json:"Default,omitempty"`
}

// Output is a template output, optionally exported for cross-stack imports.
type Output struct {
	Description string      `json:"Description,omitempty"`
	Value       interface{} `json:"Value"`
	Export      *Export     `json:"Export,omitempty"`
}

type Export struct {
	Name interface{} `json:"Name"`
}

func NewTemplate(description string) *Template {
	return &Template{
		AWSTemplateFormatVersion: TemplateFormatVersion,
		Description:              description,
		Resources:                map[string]Resource{},
		Outputs:                  map[string]Output{},
	}
}

// Add registers a resource under the given logical ID. Duplicate logical IDs
// indicate a bug in the template builder, not user error.
func (t *Template) Add(logicalID string, r Resource) error {
	if _, exists := t.Resources[logicalID]; exists {
		return fmt.Errorf("duplicate resource logical ID: %s", logicalID)
	}
	t.Resources[logicalID] = r
	return nil
}

// AddOutput registers an output exported as "${AWS::StackName}-<logicalID>" so
// that sibling stacks can import it.
func (t *Template) AddOutput(logicalID string, description string, value interface{}) {
	t.Outputs[logicalID] = Output{
		Description: description,
		Value:       value,
		Export: &Export{
			Name: Sub(fmt.Sprintf("${AWS::StackName}-%s", logicalID)),
		},
	}
}

// LogicalIDs returns the resource logical IDs in lexical order.
func (t *Template) LogicalIDs() []string {
	ids := make([]string, 0, len(t.Resources))
	for id := range t.Resources {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ResourcesOfType returns the logical IDs of all resources of the given
// CloudFormation type, in lexical order.
func (t *Template) ResourcesOfType(cfnType string) []string {
	var ids []string
	for id, r := range t.Resources {
		if r.Type == cfnType {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Render serializes the template to compact JSON.
func (t *Template) Render() ([]byte, error) {
	return json.Marshal(t)
}

// RenderPretty serializes the template to indented JSON.
func (t *Template) RenderPretty() ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}
