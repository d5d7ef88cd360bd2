package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/raushankrgupta/portfolio-backend/models"
	"github.com/raushankrgupta/portfolio-backend/utils"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// AccountStore is the persistence surface the auth flows need.
type AccountStore interface {
	GetAccountByEmail(ctx context.Context, email string, role models.Role) (*models.Account, error)
	GetAccountByID(ctx context.Context, id primitive.ObjectID) (*models.Account, error)
	CreateAccount(ctx context.Context, acc *models.Account) error
	DeleteUnverifiedAccount(ctx context.Context, email string, role models.Role) error
	SetVerifyCode(ctx context.Context, id primitive.ObjectID, code string, expiry time.Time) error
	MarkVerified(ctx context.Context, id primitive.ObjectID) error
	SetResetCode(ctx context.Context, id primitive.ObjectID, code string, expiry time.Time) error
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
}

// Notifier delivers one-time codes to the account's mailbox.
type Notifier interface {
	Send(toName, toEmail, subject, textContent, htmlContent string) error
}

// AuthService implements both authentication flows. Admin and public user
// share the code paths; the role picks the token TTL and whether OTP
// verification gates login.
type AuthService struct {
	store  AccountStore
	mailer Notifier
	tokens *utils.TokenManager

	otpTTL   time.Duration
	adminTTL time.Duration
	userTTL  time.Duration

	// now is swappable in tests.
	now func() time.Time
}

func NewAuthService(store AccountStore, mailer Notifier, tokens *utils.TokenManager, otpTTL, adminTTL, userTTL time.Duration) *AuthService {
	return &AuthService{
		store:    store,
		mailer:   mailer,
		tokens:   tokens,
		otpTTL:   otpTTL,
		adminTTL: adminTTL,
		userTTL:  userTTL,
		now:      time.Now,
	}
}

// Register creates an unverified user account and emails it a verification
// OTP. A verified account on the same email fails with ErrDuplicateAccount;
// an abandoned unverified one is silently purged and replaced.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.Account, error) {
	existing, err := s.store.GetAccountByEmail(ctx, email, models.RoleUser)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		if existing.IsVerified {
			return nil, models.ErrDuplicateAccount
		}
		if err := s.store.DeleteUnverifiedAccount(ctx, email, models.RoleUser); err != nil {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	acc := &models.Account{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		IsVerified:   false,
	}
	if err := s.store.CreateAccount(ctx, acc); err != nil {
		return nil, err
	}

	if err := s.issueVerifyCode(ctx, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

// ResendOTP issues a fresh verification code, invalidating the previous one.
func (s *AuthService) ResendOTP(ctx context.Context, email string) error {
	acc, err := s.store.GetAccountByEmail(ctx, email, models.RoleUser)
	if err != nil {
		return err
	}
	if acc.IsVerified {
		return models.ErrConflict
	}
	return s.issueVerifyCode(ctx, acc)
}

func (s *AuthService) issueVerifyCode(ctx context.Context, acc *models.Account) error {
	code, err := utils.GenerateCode()
	if err != nil {
		return err
	}
	expiry := s.now().Add(s.otpTTL)
	if err := s.store.SetVerifyCode(ctx, acc.ID, code, expiry); err != nil {
		return err
	}

	if err := s.mailer.Send(acc.Name, acc.Email, "Verify your email",
		fmt.Sprintf("Your verification code is: %s", code),
		fmt.Sprintf("<h1>Your verification code is: <strong>%s</strong></h1>", code)); err != nil {
		// The account exists and the code is stored; the client can hit
		// resend-otp.
		log.Error().Err(err).Str("email", acc.Email).Msg("failed to send verification email")
	}
	return nil
}

// VerifyEmail consumes a verification OTP. Wrong and expired codes are both
// reported as ErrCodeInvalid. Success marks the account verified and clears
// the OTP fields in the same update.
func (s *AuthService) VerifyEmail(ctx context.Context, email, code string) error {
	acc, err := s.store.GetAccountByEmail(ctx, email, models.RoleUser)
	if errors.Is(err, models.ErrNotFound) {
		return models.ErrCodeInvalid
	}
	if err != nil {
		return err
	}
	if !s.codeValid(acc.VerifyCode, acc.VerifyExpiry, code) {
		return models.ErrCodeInvalid
	}
	return s.store.MarkVerified(ctx, acc.ID)
}

// Login checks the credentials and returns a signed session token. Users
// must have completed OTP verification first.
func (s *AuthService) Login(ctx context.Context, role models.Role, email, password string) (string, *models.Account, error) {
	acc, err := s.store.GetAccountByEmail(ctx, email, role)
	if errors.Is(err, models.ErrNotFound) {
		return "", nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return "", nil, models.ErrInvalidCredentials
	}
	if role == models.RoleUser && !acc.IsVerified {
		return "", nil, models.ErrNotVerified
	}

	ttl := s.userTTL
	if role == models.RoleAdmin {
		ttl = s.adminTTL
	}
	token, err := s.tokens.Generate(acc.ID.Hex(), role, ttl)
	if err != nil {
		return "", nil, err
	}
	return token, acc, nil
}

// ForgotPassword emails a reset code. An unknown email is a silent no-op so
// the endpoint cannot be used to probe which addresses have accounts.
func (s *AuthService) ForgotPassword(ctx context.Context, role models.Role, email string) error {
	acc, err := s.store.GetAccountByEmail(ctx, email, role)
	if errors.Is(err, models.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	code, err := utils.GenerateCode()
	if err != nil {
		return err
	}
	expiry := s.now().Add(s.otpTTL)
	if err := s.store.SetResetCode(ctx, acc.ID, code, expiry); err != nil {
		return err
	}

	return s.mailer.Send(acc.Name, acc.Email, "Password reset code",
		fmt.Sprintf("Your password reset code is: %s", code),
		fmt.Sprintf("<h1>Your password reset code is: <strong>%s</strong></h1>", code))
}

// ResetPassword consumes a reset code and writes the new password hash; the
// reset fields are cleared in the same update as the password.
func (s *AuthService) ResetPassword(ctx context.Context, role models.Role, email, code, newPassword string) error {
	acc, err := s.store.GetAccountByEmail(ctx, email, role)
	if errors.Is(err, models.ErrNotFound) {
		return models.ErrCodeInvalid
	}
	if err != nil {
		return err
	}
	if !s.codeValid(acc.ResetCode, acc.ResetExpiry, code) {
		return models.ErrCodeInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.store.UpdatePassword(ctx, acc.ID, string(hash))
}

// GetAccount loads the account behind a session token's subject.
func (s *AuthService) GetAccount(ctx context.Context, id primitive.ObjectID) (*models.Account, error) {
	return s.store.GetAccountByID(ctx, id)
}

func (s *AuthService) codeValid(stored string, expiry *time.Time, submitted string) bool {
	if stored == "" || expiry == nil || submitted == "" {
		return false
	}
	if stored != submitted {
		return false
	}
	return !s.now().After(*expiry)
}
