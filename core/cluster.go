package core

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/davecgh/go-spew/spew"
	"github.com/imdario/mergo"
	"github.com/marofke/aws-rfdk/awsconn"
	"github.com/marofke/aws-rfdk/cfnstack"
	"github.com/marofke/aws-rfdk/logger"
	"github.com/marofke/aws-rfdk/pkg/api"
	"github.com/marofke/aws-rfdk/pkg/model"
)

// VERSION is set by the build script
var VERSION = "UNKNOWN"

type Options struct {
	PrettyPrint bool
	SkipWait    bool
	// S3URI overrides the s3URI from network.yaml when set
	S3URI string
}

// Cluster ties a loaded network config to an AWS session and exposes the
// operations the CLI drives: render, validate, create, update, diff, info,
// destroy.
type Cluster struct {
	Cfg *api.Network

	opts    Options
	session *session.Session
}

// ClusterFromFile loads network.yaml and establishes an AWS session for its
// region.
func ClusterFromFile(configPath string, opts Options, awsDebug bool) (*Cluster, error) {
	cfg, err := api.NetworkFromFile(configPath)
	if err != nil {
		return nil, err
	}
	return ClusterFromConfig(cfg, opts, awsDebug)
}

func ClusterFromConfig(cfg *api.Network, opts Options, awsDebug bool) (*Cluster, error) {
	logger.Debugf("network config: %s", spew.Sdump(cfg))

	session, err := awsconn.NewSessionFromRegion(cfg.Region, awsDebug)
	if err != nil {
		return nil, err
	}

	return &Cluster{
		Cfg:     cfg,
		opts:    opts,
		session: session,
	}, nil
}

// RenderStackTemplate compiles the config into the CloudFormation template
// body.
func (c *Cluster) RenderStackTemplate() ([]byte, error) {
	tmpl, err := model.Compile(c.Cfg)
	if err != nil {
		return nil, err
	}
	if c.opts.PrettyPrint {
		return tmpl.RenderPretty()
	}
	return tmpl.Render()
}

// StackTags returns the user-configured stack tags plus the tags this tool
// always applies.
func (c *Cluster) StackTags() (map[string]string, error) {
	tags := map[string]string{
		"rfdk-net:cluster": c.Cfg.ClusterName,
		"rfdk-net:version": VERSION,
	}
	if err := mergo.Merge(&tags, c.Cfg.StackTags, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge stack tags: %v", err)
	}
	return tags, nil
}

func (c *Cluster) s3URI() string {
	if c.opts.S3URI != "" {
		return c.opts.S3URI
	}
	return c.Cfg.S3URI
}

func (c *Cluster) provisioner() (*cfnstack.Provisioner, error) {
	tags, err := c.StackTags()
	if err != nil {
		return nil, err
	}
	return cfnstack.NewProvisioner(c.Cfg.StackName(), tags, c.s3URI(), c.Cfg.Region, c.session), nil
}

// ValidateStack checks the region's AZ capacity and asks CloudFormation to
// validate the rendered template.
func (c *Cluster) ValidateStack() (string, error) {
	if err := c.ValidateAvailabilityZones(ec2.New(c.session)); err != nil {
		return "", err
	}

	body, err := c.RenderStackTemplate()
	if err != nil {
		return "", fmt.Errorf("failed to render stack template: %v", err)
	}

	provisioner, err := c.provisioner()
	if err != nil {
		return "", err
	}
	return provisioner.Validate(string(body))
}

// ValidateAvailabilityZones fails when the region has fewer usable AZs than
// the config spreads subnets over.
func (c *Cluster) ValidateAvailabilityZones(ec2Svc cfnstack.EC2Interrogator) error {
	resp, err := ec2Svc.DescribeAvailabilityZones(&ec2.DescribeAvailabilityZonesInput{})
	if err != nil {
		return fmt.Errorf("failed to describe availability zones: %v", err)
	}

	available := 0
	for _, az := range resp.AvailabilityZones {
		if aws.StringValue(az.State) == ec2.AvailabilityZoneStateAvailable {
			available++
		}
	}
	if available < c.Cfg.AvailabilityZoneCount {
		return fmt.Errorf("config spreads subnets over %d availability zones but region %s only has %d available", c.Cfg.AvailabilityZoneCount, c.Cfg.Region, available)
	}
	return nil
}

// Create rolls the stack out and, unless SkipWait is set, blocks until
// CloudFormation reports completion.
func (c *Cluster) Create() error {
	body, err := c.RenderStackTemplate()
	if err != nil {
		return fmt.Errorf("failed to render stack template: %v", err)
	}

	provisioner, err := c.provisioner()
	if err != nil {
		return err
	}

	cfSvc := cloudformation.New(c.session)
	s3Svc := s3.New(c.session)

	if c.opts.SkipWait {
		_, err := provisioner.CreateStack(cfSvc, s3Svc, string(body))
		return err
	}
	return provisioner.CreateStackAndWait(cfSvc, s3Svc, string(body))
}

// Update applies the rendered template to the existing stack.
func (c *Cluster) Update() (string, error) {
	body, err := c.RenderStackTemplate()
	if err != nil {
		return "", fmt.Errorf("failed to render stack template: %v", err)
	}

	provisioner, err := c.provisioner()
	if err != nil {
		return "", err
	}

	cfSvc := cloudformation.New(c.session)
	s3Svc := s3.New(c.session)

	if c.opts.SkipWait {
		updateOutput, err := provisioner.UpdateStack(cfSvc, s3Svc, string(body))
		if err != nil {
			return "", err
		}
		return updateOutput.String(), nil
	}
	return provisioner.UpdateStackAndWait(cfSvc, s3Svc, string(body))
}

// Destroy deletes the stack.
func (c *Cluster) Destroy() error {
	destroyer := cfnstack.NewDestroyer(c.Cfg.StackName(), c.session)
	if c.opts.SkipWait {
		return destroyer.Destroy()
	}
	return destroyer.DestroyAndWait()
}

// Info describes the current state of the stack.
func (c *Cluster) Info() (*Info, error) {
	cfSvc := cloudformation.New(c.session)
	resp, err := cfSvc.DescribeStacks(&cloudformation.DescribeStacksInput{
		StackName: aws.String(c.Cfg.StackName()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe stack %s: %v", c.Cfg.StackName(), err)
	}
	if len(resp.Stacks) == 0 {
		return nil, fmt.Errorf("stack not found: %s", c.Cfg.StackName())
	}

	return newInfo(resp.Stacks[0]), nil
}

// Diff compares the live stack template against the desired one.
func (c *Cluster) Diff(context int) (string, error) {
	desired, err := c.RenderStackTemplate()
	if err != nil {
		return "", fmt.Errorf("failed to render stack template: %v", err)
	}

	cfSvc := cloudformation.New(c.session)
	resp, err := cfSvc.GetTemplate(&cloudformation.GetTemplateInput{
		StackName: aws.String(c.Cfg.StackName()),
	})
	if err != nil {
		return "", fmt.Errorf("failed to fetch current template of stack %s: %v", c.Cfg.StackName(), err)
	}

	return diffJson(aws.StringValue(resp.TemplateBody), string(desired), context)
}
