package texttemplate

import (
	"testing"
)

func TestGetString(t *testing.T) {
	out, err := GetString("test", `hello {{.Name}}{{ if .Shout }}!{{ end }}`, struct {
		Name  string
		Shout bool
	}{"farm", true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hello farm!" {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestSprigFuncsAvailable(t *testing.T) {
	out, err := GetString("test", `{{ default "fallback" .Value }}`, struct{ Value string }{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "fallback" {
		t.Errorf("unexpected output: %q", out)
	}
}
