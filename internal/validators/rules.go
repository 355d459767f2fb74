// Package validators implements the declarative request-validation pipeline.
//
// Validation is expressed as an ordered list of [Rule] records — one field
// name, one predicate, one failure message — evaluated by a single generic
// interpreter. Every rule is always evaluated: there is no short-circuit
// across fields or within a field, so each violated rule contributes its
// message to the result in declaration order.
//
// Rules are pure functions of the field value. They never consult external
// state; uniqueness checks and other storage-dependent constraints belong to
// the service layer.
package validators

// Rule is one declarative validation rule: a named input field, a predicate
// over its value, and the message reported when the predicate fails.
type Rule struct {
	// Field is the input field the rule applies to, e.g. "email".
	Field string

	// Check returns true when the value is acceptable.
	Check func(value string) bool

	// Message is the human-readable failure message contributed to the
	// violation list when Check returns false.
	Message string
}

// RuleSet is an ordered collection of rules. A field may appear in any
// number of rules; declaration order determines message order.
type RuleSet []Rule

// Validate evaluates every rule in the set against the corresponding field
// of input and returns the messages of all violated rules, in declaration
// order. An empty result means the input is accepted.
//
// A field absent from input is validated as an empty string, so
// required-field rules fire for missing fields too.
func (rs RuleSet) Validate(input map[string]string) []string {
	var violations []string
	for _, rule := range rs {
		if !rule.Check(input[rule.Field]) {
			violations = append(violations, rule.Message)
		}
	}
	return violations
}
