package api

import (
	"reflect"
	"testing"

	"github.com/marofke/aws-rfdk/pkg/cfn"
)

func TestIdentifierRef(t *testing.T) {
	managed := Identifier{}
	if !reflect.DeepEqual(managed.Ref("VPC"), cfn.Ref("VPC")) {
		t.Errorf("managed identifier should Ref the logical name, got %v", managed.Ref("VPC"))
	}

	existing := Identifier{ID: "vpc-0123456789abcdef0"}
	if existing.Ref("VPC") != "vpc-0123456789abcdef0" {
		t.Errorf("identifier with an ID should return the literal, got %v", existing.Ref("VPC"))
	}

	imported := Identifier{IDFromStackOutput: "base-stack-VPC"}
	if !reflect.DeepEqual(imported.Ref("VPC"), cfn.ImportValue("base-stack-VPC")) {
		t.Errorf("identifier from a stack output should import the export, got %v", imported.Ref("VPC"))
	}
}
