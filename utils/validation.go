// utils/validation.go
package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidImageURL checks an imageUrl field value. Empty is allowed (it is
// the stored default); anything else must look like a URL and stay
// under the stored length cap.
func ValidImageURL(u string) bool {
	if u == "" {
		return true
	}
	return validate.Var(u, "url,max=300") == nil
}

// ValidStyleName checks a style name for create and update payloads.
func ValidStyleName(name string) bool {
	return validate.Var(name, "required,max=80") == nil
}

// ValidStyleDescription enforces the same length cap the create
// binding applies.
func ValidStyleDescription(description string) bool {
	return validate.Var(description, "max=500") == nil
}
