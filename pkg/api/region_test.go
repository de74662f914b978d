package api

import (
	"testing"
)

func TestRegionPartitions(t *testing.T) {
	cases := []struct {
		name      string
		partition string
		china     bool
		govcloud  bool
	}{
		{"us-west-2", "aws", false, false},
		{"eu-central-1", "aws", false, false},
		{"cn-north-1", "aws-cn", true, false},
		{"us-gov-west-1", "aws-us-gov", false, true},
	}
	for _, c := range cases {
		r := RegionForName(c.name)
		if r.Partition() != c.partition {
			t.Errorf("Region(%s).Partition() = %s, expected %s", c.name, r.Partition(), c.partition)
		}
		if r.IsChina() != c.china {
			t.Errorf("Region(%s).IsChina() = %v, expected %v", c.name, r.IsChina(), c.china)
		}
		if r.IsGovcloud() != c.govcloud {
			t.Errorf("Region(%s).IsGovcloud() = %v, expected %v", c.name, r.IsGovcloud(), c.govcloud)
		}
	}
}

func TestRegionS3Endpoint(t *testing.T) {
	cases := []struct {
		name     string
		expected string
	}{
		{"us-west-2", "https://s3.amazonaws.com"},
		{"cn-north-1", "https://s3.cn-north-1.amazonaws.com.cn"},
		{"us-gov-west-1", "https://s3-us-gov-west-1.amazonaws.com"},
	}
	for _, c := range cases {
		if actual := RegionForName(c.name).S3Endpoint(); actual != c.expected {
			t.Errorf("Region(%s).S3Endpoint() = %s, expected %s", c.name, actual, c.expected)
		}
	}
}

func TestRegionEndpointServicePrefix(t *testing.T) {
	if p := RegionForName("us-west-2").EndpointServicePrefix(); p != "com.amazonaws" {
		t.Errorf("unexpected endpoint service prefix: %s", p)
	}
	if p := RegionForName("cn-northwest-1").EndpointServicePrefix(); p != "cn.com.amazonaws" {
		t.Errorf("unexpected endpoint service prefix for China: %s", p)
	}
}
