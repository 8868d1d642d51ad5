package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/HarmanGIT10/Ironic-gym-backend/internal/domain"
	googleinfra "github.com/HarmanGIT10/Ironic-gym-backend/internal/infrastructure/google"
	"github.com/HarmanGIT10/Ironic-gym-backend/internal/pkg/id"
	"golang.org/x/crypto/bcrypt"
)

// Verification codes expire 5 minutes after issuance.
const otpTTL = 5 * time.Minute

const defaultCountryCode = "+1"

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
	Phone    string `json:"phone"`
	OTP      string `json:"otp" validate:"required,len=6"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	OTP         string `json:"otp" validate:"required,len=6"`
	NewPassword string `json:"new_password" validate:"required,max=72"`
}

type Service interface {
	SendSignupOTP(ctx context.Context, email string) error
	VerifySignupOTP(ctx context.Context, req SignupRequest) (*domain.User, string, error)
	SignIn(ctx context.Context, email, password string) (*domain.User, string, error)
	GoogleSignIn(ctx context.Context, idToken string) (*domain.User, string, error)
	SendResetOTP(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}

type otpStore interface {
	Put(ctx context.Context, c *domain.OneTimeCode) error
	Get(ctx context.Context, email, code string) (*domain.OneTimeCode, error)
	DeleteAllForEmail(ctx context.Context, email string) error
}

type userStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
}

type mailer interface {
	SendEmail(to, subject, body string) error
}

type googleVerifier interface {
	Verify(ctx context.Context, token string) (*googleinfra.Payload, error)
}

type jwtSigner interface {
	Sign(userID, email string, isAdmin bool) (string, error)
}

type service struct {
	otpRepo  otpStore
	userRepo userStore
	mailer   mailer
	google   googleVerifier
	jwt      jwtSigner
}

type ServiceDeps struct {
	OtpRepo  otpStore
	UserRepo userStore
	Mailer   mailer
	Google   googleVerifier
	JWT      jwtSigner
}

func NewService(deps ServiceDeps) Service {
	return &service{
		otpRepo:  deps.OtpRepo,
		userRepo: deps.UserRepo,
		mailer:   deps.Mailer,
		google:   deps.Google,
		jwt:      deps.JWT,
	}
}

// SendSignupOTP issues a fresh code for account creation. Outstanding codes
// for the address stay valid until consumed or expired.
func (s *service) SendSignupOTP(ctx context.Context, email string) error {
	return s.issueCode(ctx, email, domain.OTPPurposeSignup,
		"Your OTP for IRONIC Store",
		"Your verification code is %s. It expires in 5 minutes.")
}

// SendResetOTP issues a password-reset code. Unlike signup, the address must
// belong to an existing account.
func (s *service) SendResetOTP(ctx context.Context, email string) error {
	if _, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no account with this email: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("look up account: %w", err)
	}
	return s.issueCode(ctx, email, domain.OTPPurposeReset,
		"Your Password Reset Code",
		"Your password reset code is %s. It expires in 5 minutes.")
}

func (s *service) issueCode(ctx context.Context, email, purpose, subject, bodyFmt string) error {
	code, err := generateCode()
	if err != nil {
		return err
	}
	otp := &domain.OneTimeCode{
		Email:     email,
		Code:      code,
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(otpTTL).Unix(),
	}
	if err := s.otpRepo.Put(ctx, otp); err != nil {
		return fmt.Errorf("store one-time code: %w", err)
	}
	if err := s.mailer.SendEmail(email, subject, fmt.Sprintf(bodyFmt, code)); err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}
	return nil
}

// VerifySignupOTP consumes a signup code and creates the account.
//
// Codes are single-shot: once a code validates, every outstanding code for
// the address is deleted before the duplicate-account check runs, so a valid
// code is spent even when the signup is then rejected. A delete failure
// aborts the signup; letting a validated code survive would allow it to be
// consumed twice. An expired code is left in place — the table TTL reaps it.
func (s *service) VerifySignupOTP(ctx context.Context, req SignupRequest) (*domain.User, string, error) {
	if err := s.checkCode(ctx, req.Email, req.OTP, domain.OTPPurposeSignup); err != nil {
		return nil, "", err
	}
	if err := s.otpRepo.DeleteAllForEmail(ctx, req.Email); err != nil {
		return nil, "", fmt.Errorf("clear one-time codes: %w", err)
	}

	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, "", domain.ErrAccountExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	now := time.Now().UTC()
	u := &domain.User{
		UserID:       id.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		CountryCode:  defaultCountryCode,
		Phone:        req.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, "", domain.ErrAccountExists
		}
		return nil, "", err
	}

	token, err := s.jwt.Sign(u.UserID, u.Email, u.IsAdmin)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// ResetPassword consumes a reset code and overwrites only the password hash.
// No token is issued; the caller signs in afterwards.
func (s *service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	if err := s.checkCode(ctx, req.Email, req.OTP, domain.OTPPurposeReset); err != nil {
		return err
	}

	// Re-checked defensively; SendResetOTP already required the account.
	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("user not found: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("look up account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.userRepo.Update(ctx, u.UserID, map[string]interface{}{"password_hash": string(hash)}); err != nil {
		return err
	}

	if err := s.otpRepo.DeleteAllForEmail(ctx, req.Email); err != nil {
		return fmt.Errorf("clear one-time codes: %w", err)
	}
	return nil
}

// checkCode validates the exact (email, code) pair, its purpose and expiry.
// The record is not touched on any failure path. Only a missing record means
// the code is invalid; a store failure propagates as-is.
func (s *service) checkCode(ctx context.Context, email, code, purpose string) error {
	otp, err := s.otpRepo.Get(ctx, email, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrInvalidCode
		}
		return fmt.Errorf("load one-time code: %w", err)
	}
	if otp.Purpose != purpose {
		return domain.ErrInvalidCode
	}
	if otp.ExpiresAt < time.Now().Unix() {
		return domain.ErrCodeExpired
	}
	return nil
}

func (s *service) SignIn(ctx context.Context, email, password string) (*domain.User, string, error) {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", fmt.Errorf("invalid email or password: %w", domain.ErrBadRequest)
		}
		return nil, "", fmt.Errorf("look up account: %w", err)
	}
	if u.PasswordHash == "" {
		return nil, "", domain.ErrNoPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("invalid email or password: %w", domain.ErrBadRequest)
	}
	token, err := s.jwt.Sign(u.UserID, u.Email, u.IsAdmin)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// GoogleSignIn verifies the ID token and upserts the account by its Google
// subject. A pre-existing password account with the same email gets the
// Google identity linked rather than a duplicate record.
func (s *service) GoogleSignIn(ctx context.Context, idToken string) (*domain.User, string, error) {
	payload, err := s.google.Verify(ctx, idToken)
	if err != nil {
		return nil, "", err
	}

	u, err := s.userRepo.GetByGoogleID(ctx, payload.Sub)
	switch {
	case err == nil:
		updates := map[string]interface{}{"name": payload.Name, "email": payload.Email}
		if err := s.userRepo.Update(ctx, u.UserID, updates); err != nil {
			return nil, "", err
		}
		u.Name = payload.Name
		u.Email = payload.Email
	case errors.Is(err, domain.ErrNotFound):
		existing, lookupErr := s.userRepo.GetByEmail(ctx, payload.Email)
		if lookupErr == nil {
			if err := s.userRepo.Update(ctx, existing.UserID, map[string]interface{}{"google_id": payload.Sub}); err != nil {
				return nil, "", err
			}
			existing.GoogleID = payload.Sub
			u = existing
			break
		}
		if !errors.Is(lookupErr, domain.ErrNotFound) {
			return nil, "", fmt.Errorf("look up account: %w", lookupErr)
		}
		now := time.Now().UTC()
		u = &domain.User{
			UserID:      id.New(),
			Name:        payload.Name,
			Email:       payload.Email,
			GoogleID:    payload.Sub,
			CountryCode: defaultCountryCode,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.userRepo.Create(ctx, u); err != nil {
			return nil, "", err
		}
	default:
		return nil, "", err
	}

	token, err := s.jwt.Sign(u.UserID, u.Email, u.IsAdmin)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// generateCode returns a uniform random 6-digit code in [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}
