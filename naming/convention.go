package naming

import (
	"strings"
)

// FromStackToCfnResource converts a stack name into something valid as a cfn
// resource name, or we'd end up with cfn errors like "Template format error:
// Resource name test5-network is non alphanumeric".
func FromStackToCfnResource(stackName string) string {
	return Logical(stackName)
}

// Logical converts a kebab-case or dotted name like "cloudwatch-logs" into a
// CloudFormation-safe logical ID fragment like "CloudwatchLogs".
func Logical(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '.' || r == '_' || r == ' '
	})
	for i, p := range parts {
		parts[i] = strings.Title(p)
	}
	return strings.Join(parts, "")
}
