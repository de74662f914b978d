package api

// InitialConfig holds the values interpolated into DefaultNetworkConfig by
// the init command.
type InitialConfig struct {
	ClusterName string
	Region      Region
	ZoneName    string
}

// DefaultNetworkConfig is the network.yaml written by the init command.
// Values left commented fall back to the defaults in NewDefaultNetwork.
var DefaultNetworkConfig = []byte(`# The name of your render farm. The CloudFormation stack managed by this
# config is named "<clusterName>-network".
clusterName: {{.ClusterName}}

# The AWS region to deploy to.
region: {{.Region.Name}}

# The VPC all components of the render farm are created in.
# Uncomment to change the address range, or set "id" to reuse an existing VPC
# (in which case subnets and vpcEndpoints must be left unset).
# vpc:
#   cidr: "10.0.0.0/16"
#   enableDnsSupport: true
#   enableDnsHostnames: true

# How many availability zones the subnet groups below are spread over.
# availabilityZoneCount: 2

# Each subnet group is instantiated once per availability zone and receives a
# block of the given prefix length carved out of the VPC CIDR.
# subnets:
# - name: Public
#   type: public
#   cidrMask: 28
# - name: Private
#   type: private
#   cidrMask: 18

# VPC flow logs are a security best-practice: they capture metadata about the
# traffic going in and out of the VPC into CloudWatch Logs.
# flowLog:
#   enabled: true
#   trafficType: ALL
#   retentionInDays: 731

# Private entry points to the AWS services the render farm depends on, so
# that instances in the private subnets reach them without internet egress.
# vpcEndpoints:
#   interface:
#   - cloudwatch
#   - cloudwatch-events
#   - cloudwatch-logs
#   - ec2
#   - ecr
#   - ecs
#   - kms
#   - secretsmanager
#   - sns
#   - sts
#   gateway:
#   - s3
#   - dynamodb
#   privateDnsEnabled: true

# Internal DNS zone for the VPC.
{{- if .ZoneName }}
privateHostedZone:
  name: {{.ZoneName}}
{{- else }}
# privateHostedZone:
#   name: {{ default "farm.internal" .ZoneName }}
{{- end }}

# AWS tags applied to the CloudFormation stack and propagated to resources.
# stackTags:
#   team: rendering

# When the rendered template exceeds the 51200-byte CloudFormation limit it
# is uploaded here first. S3 location expressed as s3://<bucket>/path/to/dir
# s3URI: ""
`)
