package cfnstack

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudformation"
)

type Destroyer struct {
	stackName string
	session   *session.Session
}

func NewDestroyer(stackName string, session *session.Session) *Destroyer {
	return &Destroyer{
		stackName: stackName,
		session:   session,
	}
}

func (d *Destroyer) Destroy() error {
	cfSvc := cloudformation.New(d.session)
	input := &cloudformation.DeleteStackInput{
		StackName: aws.String(d.stackName),
	}
	_, err := cfSvc.DeleteStack(input)
	return err
}

// DestroyAndWait deletes the stack and polls until CloudFormation reports the
// deletion finished. A stack that no longer exists counts as success.
func (d *Destroyer) DestroyAndWait() error {
	cfSvc := cloudformation.New(d.session)

	describeInput := &cloudformation.DescribeStacksInput{
		StackName: aws.String(d.stackName),
	}
	resp, err := cfSvc.DescribeStacks(describeInput)
	if err != nil {
		return err
	}
	if len(resp.Stacks) == 0 {
		return fmt.Errorf("stack not found: %s", d.stackName)
	}
	// Track the stack by ID: the name stops resolving once deletion completes.
	stackID := resp.Stacks[0].StackId

	if err := d.Destroy(); err != nil {
		return err
	}

	req := &cloudformation.DescribeStacksInput{
		StackName: stackID,
	}
	for {
		resp, err := cfSvc.DescribeStacks(req)
		if err != nil {
			if awsErr, ok := err.(awserr.Error); ok && awsErr.Code() == "ValidationError" {
				return nil
			}
			return err
		}
		if len(resp.Stacks) == 0 {
			return nil
		}
		statusString := aws.StringValue(resp.Stacks[0].StackStatus)
		switch statusString {
		case cloudformation.StackStatusDeleteComplete:
			return nil
		case cloudformation.StackStatusDeleteFailed:
			errMsg := fmt.Sprintf(
				"Stack deletion failed: %s : %s",
				statusString,
				aws.StringValue(resp.Stacks[0].StackStatusReason),
			)

			stackEventsOutput, err := cfSvc.DescribeStackEvents(
				&cloudformation.DescribeStackEventsInput{
					StackName: stackID,
				})
			if err != nil {
				return err
			}
			errMsg = errMsg + "\n\nPrinting the most recent failed stack events:\n"
			errMsg = errMsg + strings.Join(StackEventErrMsgs(stackEventsOutput.StackEvents), "\n")
			return errors.New(errMsg)
		case cloudformation.StackStatusDeleteInProgress:
			time.Sleep(stackPollInterval)
			continue
		default:
			return fmt.Errorf("unexpected stack status: %s", statusString)
		}
	}
}
