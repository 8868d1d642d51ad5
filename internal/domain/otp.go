package domain

// OTP purposes. A code issued for one flow cannot be consumed by the other.
const (
	OTPPurposeSignup = "signup"
	OTPPurposeReset  = "reset"
)

// OneTimeCode is a short-lived email verification code.
// PK: email, SK: code — several outstanding codes may coexist per email;
// a successful consumption removes all of them.
// ExpiresAt is a Unix timestamp used as DynamoDB TTL, so expired codes that
// were never consumed get purged without an application-level sweep.
type OneTimeCode struct {
	Email     string `json:"email" dynamodbav:"email"`
	Code      string `json:"code" dynamodbav:"code"`
	Purpose   string `json:"purpose" dynamodbav:"purpose"` // "signup" | "reset"
	ExpiresAt int64  `json:"expires_at" dynamodbav:"expires_at"`
}
