package validators

import "fmt"

// Input field names shared by the rule sets and the handlers that build
// rule-set inputs from decoded request bodies.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldMessage  = "message"
)

// NewRegistrationRules returns the rule set applied to user registration
// bodies: username, email, and password are required and the email must be
// well-formed.
func NewRegistrationRules() RuleSet {
	return append(RuleSet{
		{Field: FieldUsername, Check: Required, Message: "Please provide a username"},
	}, NewCredentialRules()...)
}

// NewCredentialRules returns the rule set applied to login bodies: a
// well-formed email and a non-empty password.
func NewCredentialRules() RuleSet {
	return RuleSet{
		{Field: FieldEmail, Check: Required, Message: "Please provide a valid email."},
		{Field: FieldEmail, Check: EmailShape, Message: "Please provide a valid email."},
		{Field: FieldPassword, Check: Required, Message: "Please provide a password."},
	}
}

// NewTweetRules returns the rule set applied to tweet creation and update
// bodies. The maximum message length is supplied by configuration.
func NewTweetRules(maxMessageLength int) RuleSet {
	return RuleSet{
		{Field: FieldMessage, Check: Required, Message: "Please provide a message"},
		{
			Field:   FieldMessage,
			Check:   MaxLength(maxMessageLength),
			Message: fmt.Sprintf("Message must not be more than %d", maxMessageLength),
		},
	}
}
