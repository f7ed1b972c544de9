package contracts

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ViolationError документ не соответствует схеме
type ViolationError struct {
	Schema  string
	Details []string // "location.city: missing property" и т.п.
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("document does not match %s: %s", e.Schema, strings.Join(e.Details, "; "))
}

func newViolationError(key string, err error) *ViolationError {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return &ViolationError{Schema: key, Details: []string{err.Error()}}
	}

	seen := make(map[string]struct{})
	var details []string
	for _, leaf := range leaves(verr) {
		d := fieldPath(leaf.InstanceLocation) + ": " + leaf.Message
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		details = append(details, d)
	}
	sort.Strings(details)
	return &ViolationError{Schema: key, Details: details}
}

func leaves(e *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(e.Causes) == 0 {
		return []*jsonschema.ValidationError{e}
	}
	var out []*jsonschema.ValidationError
	for _, c := range e.Causes {
		out = append(out, leaves(c)...)
	}
	return out
}

// fieldPath "/location/city" -> "location.city", корень -> "(root)"
func fieldPath(instanceLocation string) string {
	p := strings.Trim(instanceLocation, "/")
	if p == "" {
		return "(root)"
	}
	return strings.ReplaceAll(p, "/", ".")
}
