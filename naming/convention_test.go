package naming

import "testing"

func TestLogical(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"cloudwatch-logs", "CloudwatchLogs"},
		{"secretsmanager", "Secretsmanager"},
		{"my-render-farm", "MyRenderFarm"},
		{"farm-test.internal", "FarmTestInternal"},
		{"Public", "Public"},
	}
	for _, c := range cases {
		if actual := Logical(c.input); actual != c.expected {
			t.Errorf("Logical(%q) = %q, expected %q", c.input, actual, c.expected)
		}
	}
}

func TestFromStackToCfnResource(t *testing.T) {
	if actual := FromStackToCfnResource("test5-network"); actual != "Test5Network" {
		t.Errorf("unexpected cfn resource name: %s", actual)
	}
}
