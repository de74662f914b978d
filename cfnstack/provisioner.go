package cfnstack

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/marofke/aws-rfdk/pkg/api"
)

var stackPollInterval = 3 * time.Second

// Provisioner drives the CloudFormation API for a single stack. Templates
// larger than the inline limit are staged in S3 first.
type Provisioner struct {
	stackName string
	stackTags map[string]string
	s3URI     string
	region    api.Region
	session   *session.Session
}

func NewProvisioner(name string, stackTags map[string]string, s3URI string, region api.Region, session *session.Session) *Provisioner {
	return &Provisioner{
		stackName: name,
		stackTags: stackTags,
		s3URI:     s3URI,
		region:    region,
		session:   session,
	}
}

func (c *Provisioner) uploadFile(s3Svc S3ObjectPutterService, content string, filename string) (string, error) {
	uri, err := S3URIFromString(c.s3URI)
	if err != nil {
		return "", err
	}

	key := strings.Join(append(uri.KeyComponents(), c.stackName, filename), "/")

	contentLength := int64(len(content))
	body := strings.NewReader(content)

	_, err = s3Svc.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(uri.Bucket()),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(contentLength),
		ContentType:   aws.String("application/json"),
	})
	if err != nil {
		return "", err
	}

	templateURL := fmt.Sprintf("%s/%s/%s", c.region.S3Endpoint(), uri.Bucket(), key)

	return templateURL, nil
}

func (c *Provisioner) uploadTemplateIfNecessary(s3Svc S3ObjectPutterService, stackBody string) (*string, error) {
	if len(stackBody) <= CFN_TEMPLATE_SIZE_LIMIT {
		return nil, nil
	}

	if c.s3URI == "" {
		return nil, fmt.Errorf("stack template's size(=%d) exceeds the %d bytes limit of cloudformation. `--s3-uri s3://<bucket>/path/to/dir` must be specified to upload it to S3 beforehand", len(stackBody), CFN_TEMPLATE_SIZE_LIMIT)
	}

	templateURL, err := c.uploadFile(s3Svc, stackBody, "stack.json")
	if err != nil {
		return nil, fmt.Errorf("template upload failed: %v", err)
	}

	return &templateURL, nil
}

func (c *Provisioner) baseCreateStackInput() *cloudformation.CreateStackInput {
	var tags []*cloudformation.Tag
	for k, v := range c.stackTags {
		key := k
		value := v
		tags = append(tags, &cloudformation.Tag{Key: &key, Value: &value})
	}

	return &cloudformation.CreateStackInput{
		StackName:    aws.String(c.stackName),
		OnFailure:    aws.String(cloudformation.OnFailureDoNothing),
		Capabilities: []*string{aws.String(cloudformation.CapabilityCapabilityIam)},
		Tags:         tags,
	}
}

func (c *Provisioner) CreateStack(cfSvc CreationService, s3Svc S3ObjectPutterService, stackBody string) (*cloudformation.CreateStackOutput, error) {
	input := c.baseCreateStackInput()

	templateURL, err := c.uploadTemplateIfNecessary(s3Svc, stackBody)
	if err != nil {
		return nil, err
	}
	if templateURL != nil {
		input.TemplateURL = templateURL
	} else {
		input.TemplateBody = aws.String(stackBody)
	}

	resp, err := cfSvc.CreateStack(input)
	if err != nil {
		return nil, fmt.Errorf("stack creation failed: %v", err)
	}

	return resp, nil
}

func (c *Provisioner) CreateStackAndWait(cfSvc CRUDService, s3Svc S3ObjectPutterService, stackBody string) error {
	resp, err := c.CreateStack(cfSvc, s3Svc, stackBody)
	if err != nil {
		return err
	}

	req := cloudformation.DescribeStacksInput{
		StackName: resp.StackId,
	}

	for {
		resp, err := cfSvc.DescribeStacks(&req)
		if err != nil {
			return err
		}
		if len(resp.Stacks) == 0 {
			return fmt.Errorf("stack not found")
		}
		statusString := aws.StringValue(resp.Stacks[0].StackStatus)
		switch statusString {
		case cloudformation.StackStatusCreateComplete:
			return nil
		case cloudformation.StackStatusCreateFailed, cloudformation.StackStatusRollbackComplete, cloudformation.StackStatusRollbackFailed:
			errMsg := fmt.Sprintf(
				"Stack creation failed: %s : %s",
				statusString,
				aws.StringValue(resp.Stacks[0].StackStatusReason),
			)
			errMsg = errMsg + "\n\nPrinting the most recent failed stack events:\n"

			stackEventsOutput, err := cfSvc.DescribeStackEvents(
				&cloudformation.DescribeStackEventsInput{
					StackName: resp.Stacks[0].StackName,
				})
			if err != nil {
				return err
			}
			errMsg = errMsg + strings.Join(StackEventErrMsgs(stackEventsOutput.StackEvents), "\n")
			return errors.New(errMsg)
		case cloudformation.StackStatusCreateInProgress, cloudformation.StackStatusRollbackInProgress:
			time.Sleep(stackPollInterval)
			continue
		default:
			return fmt.Errorf("unexpected stack status: %s", statusString)
		}
	}
}

func (c *Provisioner) baseUpdateStackInput() *cloudformation.UpdateStackInput {
	return &cloudformation.UpdateStackInput{
		Capabilities: []*string{aws.String(cloudformation.CapabilityCapabilityIam)},
		StackName:    aws.String(c.stackName),
	}
}

func (c *Provisioner) UpdateStack(cfSvc UpdateService, s3Svc S3ObjectPutterService, stackBody string) (*cloudformation.UpdateStackOutput, error) {
	input := c.baseUpdateStackInput()

	templateURL, err := c.uploadTemplateIfNecessary(s3Svc, stackBody)
	if err != nil {
		return nil, err
	}
	if templateURL != nil {
		input.TemplateURL = templateURL
	} else {
		input.TemplateBody = aws.String(stackBody)
	}

	resp, err := cfSvc.UpdateStack(input)
	if err != nil {
		return nil, fmt.Errorf("stack update failed: %v", err)
	}

	return resp, nil
}

func (c *Provisioner) UpdateStackAndWait(cfSvc CRUDService, s3Svc S3ObjectPutterService, stackBody string) (string, error) {
	updateOutput, err := c.UpdateStack(cfSvc, s3Svc, stackBody)
	if err != nil {
		return "", fmt.Errorf("error updating cloudformation stack: %v", err)
	}
	req := cloudformation.DescribeStacksInput{
		StackName: updateOutput.StackId,
	}
	for {
		resp, err := cfSvc.DescribeStacks(&req)
		if err != nil {
			return "", err
		}
		if len(resp.Stacks) == 0 {
			return "", fmt.Errorf("stack not found")
		}
		statusString := aws.StringValue(resp.Stacks[0].StackStatus)
		switch statusString {
		case cloudformation.StackStatusUpdateComplete:
			return updateOutput.String(), nil
		case cloudformation.StackStatusUpdateRollbackComplete, cloudformation.StackStatusUpdateRollbackFailed:
			errMsg := fmt.Sprintf("Stack status: %s : %s", statusString, aws.StringValue(resp.Stacks[0].StackStatusReason))
			return "", errors.New(errMsg)
		case cloudformation.StackStatusUpdateInProgress, cloudformation.StackStatusUpdateCompleteCleanupInProgress, cloudformation.StackStatusUpdateRollbackInProgress, cloudformation.StackStatusUpdateRollbackCompleteCleanupInProgress:
			time.Sleep(stackPollInterval)
			continue
		default:
			return "", fmt.Errorf("unexpected stack status: %s", statusString)
		}
	}
}

// Validate asks the CloudFormation API to check the template, staging it in
// S3 first when it exceeds the inline limit.
func (c *Provisioner) Validate(stackBody string) (string, error) {
	validateInput := cloudformation.ValidateTemplateInput{}

	templateURL, err := c.uploadTemplateIfNecessary(s3.New(c.session), stackBody)
	if err != nil {
		return "", err
	}
	if templateURL != nil {
		validateInput.TemplateURL = templateURL
	} else {
		validateInput.TemplateBody = aws.String(stackBody)
	}

	cfSvc := cloudformation.New(c.session)
	validationReport, err := cfSvc.ValidateTemplate(&validateInput)
	if err != nil {
		return "", fmt.Errorf("invalid cloudformation stack: %v", err)
	}

	return validationReport.String(), nil
}
