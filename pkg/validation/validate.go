// Handles presence validation of inbound payloads in Callboard.
// Payloads declare required fields with govalidator `valid:"required"` annotations.

package validation

import (
	"sort"

	"github.com/asaskevich/govalidator"
)

// Missing runs govalidator over v and returns the sorted names of the fields which failed,
// or nil when every annotated field is present.
func Missing(v interface{}) []string {
	ok, err := govalidator.ValidateStruct(v)
	if ok || err == nil {
		return nil
	}
	byField := govalidator.ErrorsByField(err)
	fields := make([]string, 0, len(byField))
	for field := range byField {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
