package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/aryann/difflib"
	"github.com/mgutz/ansi"
)

// diffJson renders a line diff of two JSON documents after normalizing their
// indentation. A negative context prints the whole documents.
func diffJson(current, desired string, context int) (string, error) {
	var currentBuf bytes.Buffer
	if err := json.Indent(&currentBuf, []byte(current), "", "  "); err != nil {
		return "", fmt.Errorf("current template is not valid JSON: %v", err)
	}

	var desiredBuf bytes.Buffer
	if err := json.Indent(&desiredBuf, []byte(desired), "", "  "); err != nil {
		return "", fmt.Errorf("desired template is not valid JSON: %v", err)
	}

	return diffText(currentBuf.String(), desiredBuf.String(), context), nil
}

func diffText(current, desired string, context int) string {
	records := difflib.Diff(strings.Split(current, "\n"), strings.Split(desired, "\n"))

	lines := []string{}
	if context < 0 {
		for _, r := range records {
			lines = append(lines, sprintDiffRecord(r))
		}
		return strings.Join(lines, "")
	}

	distances := changeDistances(records)
	omitting := false
	for i, r := range records {
		if distances[i] > context {
			if !omitting {
				lines = append(lines, "...\n")
				omitting = true
			}
			continue
		}
		omitting = false
		lines = append(lines, sprintDiffRecord(r))
	}
	return strings.Join(lines, "")
}

// changeDistances maps every diff line to its distance from the nearest
// changed line, in either direction.
func changeDistances(records []difflib.DiffRecord) map[int]int {
	distances := map[int]int{}

	change := -1
	for i, r := range records {
		if r.Delta != difflib.Common {
			change = i
		}
		if change == -1 {
			distances[i] = math.MaxInt32
		} else {
			distances[i] = i - change
		}
	}

	change = -1
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].Delta != difflib.Common {
			change = i
		}
		if change != -1 && change-i < distances[i] {
			distances[i] = change - i
		}
	}

	return distances
}

func sprintDiffRecord(r difflib.DiffRecord) string {
	switch r.Delta {
	case difflib.RightOnly:
		return ansi.Color("+ "+r.Payload, "green") + "\n"
	case difflib.LeftOnly:
		return ansi.Color("- "+r.Payload, "red") + "\n"
	default:
		return "  " + r.Payload + "\n"
	}
}
