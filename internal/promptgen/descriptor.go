package promptgen

import "strings"

// ModelDescriptor derives a human-readable model phrase from the free-form
// modelType filter. Gender tokens are matched by substring so compound values
// like "female-asian" or "male indian" resolve without a fixed vocabulary.
// Empty and "none" mean no model: the caller switches to product-only
// framing.
func ModelDescriptor(modelType string) string {
	normalized := strings.ToLower(strings.TrimSpace(modelType))
	if normalized == "" || normalized == "none" {
		return ""
	}

	if strings.Contains(normalized, "mannequin") {
		return "a display mannequin"
	}

	// "female" contains "male", so it has to be tested first.
	var gender string
	switch {
	case strings.Contains(normalized, "female"):
		gender = "female"
	case strings.Contains(normalized, "male"):
		gender = "male"
	case strings.Contains(normalized, "kid"):
		gender = "child"
	}

	// "caucasian" contains "asian", so it has to be tested first.
	var ethnicity string
	switch {
	case strings.Contains(normalized, "caucasian"):
		ethnicity = "Caucasian"
	case strings.Contains(normalized, "asian"):
		ethnicity = "Asian"
	case strings.Contains(normalized, "indian"):
		ethnicity = "Indian"
	}

	if gender == "" {
		return "a model"
	}
	if ethnicity == "" {
		return "a " + gender + " model"
	}
	return "a " + gender + " " + ethnicity + " model"
}

// isFemaleModel reports whether the modelType filter names a female model.
// The saree draping branch is only used for female models; the draping
// specification is anatomically specific to that presentation.
func isFemaleModel(modelType string) bool {
	return strings.Contains(strings.ToLower(modelType), "female")
}
