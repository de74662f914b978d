package cfnresource

import (
	"fmt"
	"regexp"
)

// CloudFormation limits stack names to 128 characters starting with a letter,
// followed by letters, digits and hyphens.
const maxStackNameLength = 128

var stackNameRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)

func ValidateStackName(name string) error {
	if len(name) > maxStackNameLength {
		return fmt.Errorf("stack name %q is %d characters long. It exceeds the AWS limit of %d characters", name, len(name), maxStackNameLength)
	}
	if !stackNameRe.MatchString(name) {
		return fmt.Errorf("invalid stack name %q: must begin with a letter and contain only letters, digits and hyphens", name)
	}
	return nil
}

// ValidateExportNameLength guards the names of stack outputs exported for
// cross-stack imports, which AWS caps at 255 characters.
func ValidateExportNameLength(stackName string, outputLogicalName string) error {
	name := fmt.Sprintf("%s-%s", stackName, outputLogicalName)
	if len(name) > 255 {
		limit := 255 - len(name) + len(stackName)
		return fmt.Errorf("export name(=%s) will be %d characters long. It exceeds the AWS limit of 255 characters: stack name(=%s) should be less than or equal to %d characters", name, len(name), stackName, limit)
	}
	return nil
}
