package cfnstack

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/marofke/aws-rfdk/pkg/api"
)

type dummyS3ObjectPutterService struct {
	ExpectedBucket        string
	ExpectedKey           string
	ExpectedBody          string
	ExpectedContentType   string
	ExpectedContentLength int64
}

func (s3Svc dummyS3ObjectPutterService) PutObject(input *s3.PutObjectInput) (*s3.PutObjectOutput, error) {

	if s3Svc.ExpectedContentLength != *input.ContentLength {
		return nil, fmt.Errorf(
			"expected content length does not match supplied content length\nexpected=%v, supplied=%v",
			s3Svc.ExpectedContentLength,
			input.ContentLength,
		)
	}

	if s3Svc.ExpectedBucket != *input.Bucket {
		return nil, fmt.Errorf(
			"expected bucket does not match supplied bucket\nexpected=%v, supplied=%v",
			s3Svc.ExpectedBucket,
			input.Bucket,
		)
	}

	if s3Svc.ExpectedKey != *input.Key {
		return nil, fmt.Errorf(
			"expected key does not match supplied key\nexpected=%v, supplied=%v",
			s3Svc.ExpectedKey,
			*input.Key,
		)
	}

	if s3Svc.ExpectedContentType != *input.ContentType {
		return nil, fmt.Errorf(
			"expected content type does not match supplied content type\nexpected=%v, supplied=%v",
			s3Svc.ExpectedContentType,
			input.ContentType,
		)
	}

	buf := new(bytes.Buffer)
	buf.ReadFrom(input.Body)
	suppliedBody := buf.String()

	if s3Svc.ExpectedBody != suppliedBody {
		return nil, fmt.Errorf(
			"expected body does not match supplied body\nexpected=%v, supplied=%v",
			s3Svc.ExpectedBody,
			suppliedBody,
		)
	}

	return &s3.PutObjectOutput{}, nil
}

func TestUploadTemplateWithDirectory(t *testing.T) {
	body := "{}"
	s3Svc := dummyS3ObjectPutterService{
		ExpectedBucket:        "mybucket",
		ExpectedKey:           "mykey/test-farm-network/stack.json",
		ExpectedContentLength: 2,
		ExpectedContentType:   "application/json",
		ExpectedBody:          body,
	}

	provisioner := NewProvisioner("test-farm-network", map[string]string{}, "s3://mybucket/mykey", api.RegionForName("us-east-1"), nil)

	suppliedURL, err := provisioner.uploadFile(s3Svc, body, "stack.json")

	if err != nil {
		t.Errorf("error uploading template: %v", err)
	}

	expectedURL := "https://s3.amazonaws.com/mybucket/mykey/test-farm-network/stack.json"
	if suppliedURL != expectedURL {
		t.Errorf("supplied template url doesn't match expected one: expected=%s, supplied=%s", expectedURL, suppliedURL)
	}
}

func TestUploadTemplateWithDirectoryOnChina(t *testing.T) {
	body := "{}"
	s3Svc := dummyS3ObjectPutterService{
		ExpectedBucket:        "mybucket",
		ExpectedKey:           "mykey/test-farm-network/stack.json",
		ExpectedContentLength: 2,
		ExpectedContentType:   "application/json",
		ExpectedBody:          body,
	}

	provisioner := NewProvisioner("test-farm-network", map[string]string{}, "s3://mybucket/mykey", api.RegionForName("cn-north-1"), nil)

	suppliedURL, err := provisioner.uploadFile(s3Svc, body, "stack.json")

	if err != nil {
		t.Errorf("error uploading template: %v", err)
	}

	expectedURL := "https://s3.cn-north-1.amazonaws.com.cn/mybucket/mykey/test-farm-network/stack.json"
	if suppliedURL != expectedURL {
		t.Errorf("supplied template url doesn't match expected one: expected=%s, supplied=%s", expectedURL, suppliedURL)
	}
}

func TestUploadTemplateWithoutDirectory(t *testing.T) {
	body := "{}"
	s3Svc := dummyS3ObjectPutterService{
		ExpectedBucket:        "mybucket",
		ExpectedKey:           "test-farm-network/stack.json",
		ExpectedContentLength: 2,
		ExpectedContentType:   "application/json",
		ExpectedBody:          body,
	}

	provisioner := NewProvisioner("test-farm-network", map[string]string{}, "s3://mybucket", api.RegionForName("us-east-1"), nil)

	suppliedURL, err := provisioner.uploadFile(s3Svc, body, "stack.json")

	if err != nil {
		t.Errorf("error uploading template: %v", err)
	}

	expectedURL := "https://s3.amazonaws.com/mybucket/test-farm-network/stack.json"
	if suppliedURL != expectedURL {
		t.Errorf("supplied template url doesn't match expected one: expected=%s, supplied=%s", expectedURL, suppliedURL)
	}
}

func TestSmallTemplateIsNotUploaded(t *testing.T) {
	provisioner := NewProvisioner("test-farm-network", map[string]string{}, "s3://mybucket", api.RegionForName("us-east-1"), nil)

	url, err := provisioner.uploadTemplateIfNecessary(dummyS3ObjectPutterService{}, "{}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != nil {
		t.Errorf("expected no upload for a small template but got url %s", *url)
	}
}

func TestOversizedTemplateRequiresS3URI(t *testing.T) {
	provisioner := NewProvisioner("test-farm-network", map[string]string{}, "", api.RegionForName("us-east-1"), nil)

	oversized := strings.Repeat("x", CFN_TEMPLATE_SIZE_LIMIT+1)
	if _, err := provisioner.uploadTemplateIfNecessary(dummyS3ObjectPutterService{}, oversized); err == nil {
		t.Error("expected an error for an oversized template without --s3-uri but got none")
	}
}
