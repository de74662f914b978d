package cfnresource

import (
	"strings"
	"testing"
)

func TestValidateStackName(t *testing.T) {
	if err := ValidateStackName("render-farm-network"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateStackName(strings.Repeat("a", 129)); err == nil {
		t.Error("expected an error for a 129-character stack name")
	}
	if err := ValidateStackName("1bad"); err == nil {
		t.Error("expected an error for a stack name starting with a digit")
	}
	if err := ValidateStackName("bad_name"); err == nil {
		t.Error("expected an error for a stack name with an underscore")
	}
}

func TestValidateExportNameLength(t *testing.T) {
	if err := ValidateExportNameLength("render-farm-network", "PrivateSubnet0"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateExportNameLength(strings.Repeat("a", 250), "PrivateSubnet0"); err == nil {
		t.Error("expected an error for an oversized export name")
	}
}
