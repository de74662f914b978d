package api

import (
	"github.com/marofke/aws-rfdk/pkg/cfn"
)

// Identifier points at an AWS resource that either already exists (ID), is
// exported by another stack (IDFromStackOutput), or is managed by this stack
// (neither is set).
type Identifier struct {
	ID                string `yaml:"id,omitempty"`
	IDFromStackOutput string `yaml:"idFromStackOutput,omitempty"`
}

func (i Identifier) HasIdentifier() bool {
	return i.ID != "" || i.IDFromStackOutput != ""
}

// Ref returns the value to embed into resource properties: a literal ID, an
// Fn::ImportValue expression, or a Ref to the managed resource.
func (i Identifier) Ref(logicalName string) interface{} {
	if i.IDFromStackOutput != "" {
		return cfn.ImportValue(i.IDFromStackOutput)
	}
	if i.ID != "" {
		return i.ID
	}
	return cfn.Ref(logicalName)
}
