package domain

import "time"

type User struct {
	UserID       string    `json:"id" dynamodbav:"user_id"`
	Name         string    `json:"name" dynamodbav:"name"`
	Email        string    `json:"email" dynamodbav:"email"`
	PasswordHash string    `json:"-" dynamodbav:"password_hash"` // empty for Google-only accounts
	GoogleID     string    `json:"-" dynamodbav:"google_id"`
	CountryCode  string    `json:"country_code" dynamodbav:"country_code"`
	Phone        string    `json:"phone" dynamodbav:"phone"`
	AddressLine1 string    `json:"address_line1" dynamodbav:"address_line1"`
	AddressLine2 string    `json:"address_line2" dynamodbav:"address_line2"`
	City         string    `json:"city" dynamodbav:"city"`
	PostalCode   string    `json:"postal_code" dynamodbav:"postal_code"`
	Country      string    `json:"country" dynamodbav:"country"`
	IsAdmin      bool      `json:"is_admin" dynamodbav:"is_admin"`
	CreatedAt    time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt    time.Time `json:"updated" dynamodbav:"updated_at"`
}

// FullPhone returns the dialable phone number, e.g. "+14165550133".
// Empty when no phone is on file.
func (u *User) FullPhone() string {
	if u.Phone == "" {
		return ""
	}
	return u.CountryCode + u.Phone
}

type UpdateProfileRequest struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	AddressLine1 *string `json:"address_line1"`
	AddressLine2 *string `json:"address_line2"`
	City         *string `json:"city"`
	PostalCode   *string `json:"postal_code"`
	Country      *string `json:"country"`
}
