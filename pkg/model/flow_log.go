package model

import (
	"github.com/marofke/aws-rfdk/pkg/api"
	"github.com/marofke/aws-rfdk/pkg/cfn"
)

const (
	flowLogLogicalName      = "FlowLog"
	flowLogGroupLogicalName = "FlowLogGroup"
	flowLogRoleLogicalName  = "FlowLogRole"
)

// addFlowLog emits the CloudWatch log group, the delivery role and the flow
// log itself.
func addFlowLog(t *cfn.Template, cfg *api.Network, vpcRef interface{}) error {
	if err := t.Add(flowLogGroupLogicalName, cfn.Resource{
		Type: "AWS::Logs::LogGroup",
		Properties: map[string]interface{}{
			"RetentionInDays": cfg.FlowLog.RetentionInDays,
		},
	}); err != nil {
		return err
	}

	if err := t.Add(flowLogRoleLogicalName, cfn.Resource{
		Type: "AWS::IAM::Role",
		Properties: map[string]interface{}{
			"AssumeRolePolicyDocument": map[string]interface{}{
				"Version": "2012-10-17",
				"Statement": []map[string]interface{}{
					{
						"Effect":    "Allow",
						"Principal": map[string]interface{}{"Service": "vpc-flow-logs.amazonaws.com"},
						"Action":    "sts:AssumeRole",
					},
				},
			},
			"Policies": []map[string]interface{}{
				{
					"PolicyName": "flowlog-delivery",
					"PolicyDocument": map[string]interface{}{
						"Version": "2012-10-17",
						"Statement": []map[string]interface{}{
							{
								"Effect": "Allow",
								"Action": []string{
									"logs:CreateLogStream",
									"logs:PutLogEvents",
									"logs:DescribeLogGroups",
									"logs:DescribeLogStreams",
								},
								"Resource": cfn.GetAtt(flowLogGroupLogicalName, "Arn"),
							},
						},
					},
				},
			},
		},
	}); err != nil {
		return err
	}

	return t.Add(flowLogLogicalName, cfn.Resource{
		Type: "AWS::EC2::FlowLog",
		Properties: map[string]interface{}{
			"ResourceId":               vpcRef,
			"ResourceType":             "VPC",
			"TrafficType":              cfg.FlowLog.TrafficType,
			"LogGroupName":             cfn.Ref(flowLogGroupLogicalName),
			"DeliverLogsPermissionArn": cfn.GetAtt(flowLogRoleLogicalName, "Arn"),
		},
	})
}
