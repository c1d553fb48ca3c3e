package profile

import (
	"fmt"
	"strings"

	"github.com/skyfreq/gridpad/internal/canonjson"
)

// Issue is one validation failure, located by a dotted/indexed path such as
// "tabs[2].page.rows".
type Issue struct {
	Path    string
	Message string
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// ValidationError carries every issue found in a loaded document.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	lines := make([]string, len(e.Issues))
	for i, is := range e.Issues {
		lines[i] = is.String()
	}
	return "invalid profile: " + strings.Join(lines, "; ")
}

// Validate inspects a decoded JSON value against the Tabbed profile schema
// and returns every violation found, or nil when the document is acceptable.
//
// Only the top two levels are checked strictly; subpages below them are
// sanitized permissively by FromRaw so a damaged deep structure degrades to
// defaults instead of rejecting the whole file. A wrong or missing "type" is
// reported as the only issue, since nothing else in the document can be
// trusted past it.
func Validate(raw any) []Issue {
	root, ok := raw.(canonjson.Object)
	if !ok {
		return []Issue{{Message: "profile must be a non-null JSON object"}}
	}

	typ, _ := root.Get("type")
	if s, ok := typ.(string); !ok || s != TypeTabbed {
		return []Issue{{Path: "type", Message: fmt.Sprintf("must be %q", TypeTabbed)}}
	}

	var issues []Issue

	id, _ := root.Get("id")
	if s, ok := id.(string); !ok || strings.TrimSpace(s) == "" {
		issues = append(issues, Issue{Path: "id", Message: "must be a non-empty string"})
	}

	tabsRaw, _ := root.Get("tabs")
	tabs, ok := tabsRaw.([]any)
	if !ok || len(tabs) == 0 {
		issues = append(issues, Issue{Path: "tabs", Message: "must be a non-empty array"})
		return issues
	}

	for i, tabRaw := range tabs {
		path := fmt.Sprintf("tabs[%d]", i)
		tab, ok := tabRaw.(canonjson.Object)
		if !ok {
			issues = append(issues, Issue{Path: path, Message: "must be an object"})
			continue
		}
		issues = append(issues, validateTab(path, tab)...)
	}

	return issues
}

func validateTab(path string, tab canonjson.Object) []Issue {
	var issues []Issue

	label, _ := tab.Get("label")
	switch l := label.(type) {
	case string:
		if strings.TrimSpace(l) == "" {
			issues = append(issues, Issue{Path: path + ".label", Message: "must not be empty"})
		}
	case []any:
		// Array labels are trimmed and truncated during normalization.
	default:
		issues = append(issues, Issue{Path: path + ".label", Message: "must be a string or an array of lines"})
	}

	pageRaw, _ := tab.Get("page")
	page, ok := pageRaw.(canonjson.Object)
	if !ok {
		issues = append(issues, Issue{Path: path + ".page", Message: "must be an object"})
		return issues
	}

	rows, _ := page.Get("rows")
	if n, ok := numberValue(rows); !ok || n < 1 {
		issues = append(issues, Issue{Path: path + ".page.rows", Message: "must be a number >= 1"})
	}

	if keys, present := page.Get("keys"); present {
		if _, ok := keys.([]any); !ok {
			issues = append(issues, Issue{Path: path + ".page.keys", Message: "must be an array"})
		}
	}

	return issues
}
