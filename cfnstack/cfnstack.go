package cfnstack

import (
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/s3"
)

// CFN_TEMPLATE_SIZE_LIMIT is the largest template body the CloudFormation API
// accepts inline; anything bigger has to go through S3.
var CFN_TEMPLATE_SIZE_LIMIT = 51200

type CreationService interface {
	CreateStack(*cloudformation.CreateStackInput) (*cloudformation.CreateStackOutput, error)
}

type UpdateService interface {
	UpdateStack(input *cloudformation.UpdateStackInput) (*cloudformation.UpdateStackOutput, error)
}

type CRUDService interface {
	CreateStack(*cloudformation.CreateStackInput) (*cloudformation.CreateStackOutput, error)
	UpdateStack(input *cloudformation.UpdateStackInput) (*cloudformation.UpdateStackOutput, error)
	DeleteStack(input *cloudformation.DeleteStackInput) (*cloudformation.DeleteStackOutput, error)
	DescribeStacks(input *cloudformation.DescribeStacksInput) (*cloudformation.DescribeStacksOutput, error)
	DescribeStackEvents(input *cloudformation.DescribeStackEventsInput) (*cloudformation.DescribeStackEventsOutput, error)
	GetTemplate(input *cloudformation.GetTemplateInput) (*cloudformation.GetTemplateOutput, error)
	ValidateTemplate(input *cloudformation.ValidateTemplateInput) (*cloudformation.ValidateTemplateOutput, error)
}

type S3ObjectPutterService interface {
	PutObject(input *s3.PutObjectInput) (*s3.PutObjectOutput, error)
}

// EC2Interrogator answers questions about the target region, e.g. whether it
// really has as many availability zones as the config asks for.
type EC2Interrogator interface {
	DescribeAvailabilityZones(input *ec2.DescribeAvailabilityZonesInput) (*ec2.DescribeAvailabilityZonesOutput, error)
}

// StackEventErrMsgs summarizes the events of a failed rollout, skipping the
// resources that were merely cancelled because a sibling failed.
func StackEventErrMsgs(events []*cloudformation.StackEvent) []string {
	var errMsgs []string

	for _, event := range events {
		status := aws.StringValue(event.ResourceStatus)
		if status == cloudformation.ResourceStatusCreateFailed || status == cloudformation.ResourceStatusDeleteFailed || status == cloudformation.ResourceStatusUpdateFailed {
			reason := aws.StringValue(event.ResourceStatusReason)
			if reason == "Resource creation cancelled" || reason == "Resource update cancelled" {
				continue
			}
			errMsgs = append(errMsgs,
				strings.TrimSpace(
					strings.Join([]string{
						status,
						aws.StringValue(event.ResourceType),
						aws.StringValue(event.LogicalResourceId),
						reason,
					}, " ")))
		}
	}

	return errMsgs
}
