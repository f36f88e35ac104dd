package submissions

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Submission is a creator's demo submission.
type Submission struct {
	Title         string `json:"title"`
	Creator       string `json:"creator"`
	Genre         string `json:"genre"`
	Type          string `json:"type"`
	Platform      string `json:"platform"`
	URL           string `json:"url"`
	SourceRepoURL string `json:"sourceRepoUrl,omitempty"`
	Description   string `json:"description"`
}

const (
	DefaultType     = "demo"
	DefaultPlatform = "web"
)

var (
	Types     = []string{"demo", "prototype", "jam", "full"}
	Platforms = []string{"web", "desktop", "mobile"}
)

// ErrMalformed means the payload was not a JSON object.
var ErrMalformed = errors.New("malformed submission payload")

// ValidationError carries one message per offending field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid submission: %s", strings.Join(names, ", "))
}

var fieldMessages = map[string]string{
	"title":         "Title must be at least 2 characters.",
	"creator":       "Creator name must be at least 2 characters.",
	"genre":         "Please select a genre.",
	"type":          "Please select a submission type.",
	"platform":      "Please select a platform.",
	"url":           "Please enter a valid URL.",
	"sourceRepoUrl": "Please enter a valid source repository URL.",
	"description":   "Description must be at least 10 characters.",
}

// Decode parses and validates payload, filling defaults for optional fields.
func Decode(payload []byte) (Submission, error) {
	var doc map[string]any
	if err := json.Unmarshal(payload, &doc); err != nil || doc == nil {
		return Submission{}, ErrMalformed
	}

	fields, err := validateDocument(doc)
	if err != nil {
		return Submission{}, err
	}
	checkURL(doc, "url", fields)
	checkURL(doc, "sourceRepoUrl", fields)
	if len(fields) > 0 {
		return Submission{}, &ValidationError{Fields: fields}
	}

	var sub Submission
	if err := json.Unmarshal(payload, &sub); err != nil {
		return Submission{}, ErrMalformed
	}
	if sub.Type == "" {
		sub.Type = DefaultType
	}
	if sub.Platform == "" {
		sub.Platform = DefaultPlatform
	}
	return sub, nil
}

// checkURL flags a present, non-empty string that is not an absolute http(s) URL.
// Missing or mistyped values are left to the schema.
func checkURL(doc map[string]any, name string, fields map[string]string) {
	if _, flagged := fields[name]; flagged {
		return
	}
	v, ok := doc[name].(string)
	if !ok || v == "" {
		return
	}
	if !validHTTPURL(v) {
		fields[name] = fieldMessages[name]
	}
}

func validHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
