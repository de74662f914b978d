package core

import (
	"bytes"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudformation"
)

// Info summarizes the deployed network stack.
type Info struct {
	Name         string
	Status       string
	StatusReason string
	Outputs      map[string]string
}

func newInfo(stack *cloudformation.Stack) *Info {
	outputs := map[string]string{}
	for _, o := range stack.Outputs {
		outputs[aws.StringValue(o.OutputKey)] = aws.StringValue(o.OutputValue)
	}
	return &Info{
		Name:         aws.StringValue(stack.StackName),
		Status:       aws.StringValue(stack.StackStatus),
		StatusReason: aws.StringValue(stack.StackStatusReason),
		Outputs:      outputs,
	}
}

func (i *Info) String() string {
	buf := new(bytes.Buffer)
	w := new(tabwriter.Writer)
	w.Init(buf, 0, 8, 0, '\t', 0)

	fmt.Fprintf(w, "Stack Name:\t%s\n", i.Name)
	fmt.Fprintf(w, "Status:\t%s\n", i.Status)
	if i.StatusReason != "" {
		fmt.Fprintf(w, "Status Reason:\t%s\n", i.StatusReason)
	}

	keys := make([]string, 0, len(i.Outputs))
	for k := range i.Outputs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s:\t%s\n", k, i.Outputs[k])
	}

	w.Flush()
	return buf.String()
}
