package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/raushankrgupta/portfolio-backend/models"
	"github.com/raushankrgupta/portfolio-backend/utils"
)

type mockAccountStore struct {
	mock.Mock
}

func (m *mockAccountStore) GetAccountByEmail(ctx context.Context, email string, role models.Role) (*models.Account, error) {
	args := m.Called(ctx, email, role)
	if acc := args.Get(0); acc != nil {
		return acc.(*models.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAccountStore) GetAccountByID(ctx context.Context, id primitive.ObjectID) (*models.Account, error) {
	args := m.Called(ctx, id)
	if acc := args.Get(0); acc != nil {
		return acc.(*models.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAccountStore) CreateAccount(ctx context.Context, acc *models.Account) error {
	args := m.Called(ctx, acc)
	return args.Error(0)
}

func (m *mockAccountStore) DeleteUnverifiedAccount(ctx context.Context, email string, role models.Role) error {
	args := m.Called(ctx, email, role)
	return args.Error(0)
}

func (m *mockAccountStore) SetVerifyCode(ctx context.Context, id primitive.ObjectID, code string, expiry time.Time) error {
	args := m.Called(ctx, id, code, expiry)
	return args.Error(0)
}

func (m *mockAccountStore) MarkVerified(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockAccountStore) SetResetCode(ctx context.Context, id primitive.ObjectID, code string, expiry time.Time) error {
	args := m.Called(ctx, id, code, expiry)
	return args.Error(0)
}

func (m *mockAccountStore) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Send(toName, toEmail, subject, textContent, htmlContent string) error {
	args := m.Called(toName, toEmail, subject, textContent, htmlContent)
	return args.Error(0)
}

func newTestAuthService(t *testing.T, store *mockAccountStore, mailer *mockNotifier) *AuthService {
	t.Helper()
	tokens, err := utils.NewTokenManager("test-secret")
	require.NoError(t, err)
	return NewAuthService(store, mailer, tokens, 10*time.Minute, 24*time.Hour, 168*time.Hour)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func timePtr(tm time.Time) *time.Time { return &tm }

func TestRegister_NewAccount(t *testing.T) {
	store := new(mockAccountStore)
	mailer := new(mockNotifier)
	svc := newTestAuthService(t, store, mailer)

	store.On("GetAccountByEmail", mock.Anything, "new@example.com", models.RoleUser).
		Return(nil, models.ErrNotFound)
	store.On("CreateAccount", mock.Anything, mock.AnythingOfType("*models.Account")).Return(nil)
	store.On("SetVerifyCode", mock.Anything, mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil)
	mailer.On("Send", "New User", "new@example.com", "Verify your email", mock.Anything, mock.Anything).Return(nil)

	acc, err := svc.Register(context.Background(), "New User", "new@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, acc.Role)
	assert.False(t, acc.IsVerified)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte("password123")))

	store.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestRegister_DuplicateVerified(t *testing.T) {
	store := new(mockAccountStore)
	mailer := new(mockNotifier)
	svc := newTestAuthService(t, store, mailer)

	store.On("GetAccountByEmail", mock.Anything, "taken@example.com", models.RoleUser).
		Return(&models.Account{Email: "taken@example.com", IsVerified: true}, nil)

	_, err := svc.Register(context.Background(), "X", "taken@example.com", "pw")
	assert.ErrorIs(t, err, models.ErrDuplicateAccount)
	store.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
}

func TestRegister_ReplacesUnverified(t *testing.T) {
	store := new(mockAccountStore)
	mailer := new(mockNotifier)
	svc := newTestAuthService(t, store, mailer)

	store.On("GetAccountByEmail", mock.Anything, "stale@example.com", models.RoleUser).
		Return(&models.Account{Email: "stale@example.com", IsVerified: false}, nil)
	store.On("DeleteUnverifiedAccount", mock.Anything, "stale@example.com", models.RoleUser).Return(nil)
	store.On("CreateAccount", mock.Anything, mock.Anything).Return(nil)
	store.On("SetVerifyCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	mailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Register(context.Background(), "Retry", "stale@example.com", "pw2")
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestVerifyEmail(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	id := primitive.NewObjectID()

	account := func(code string, expiry time.Time) *models.Account {
		return &models.Account{
			ID:           id,
			Email:        "u@example.com",
			VerifyCode:   code,
			VerifyExpiry: timePtr(expiry),
		}
	}

	tests := []struct {
		name    string
		acc     *models.Account
		code    string
		wantErr error
		marked  bool
	}{
		{"correct code", account("123456", now.Add(time.Minute)), "123456", nil, true},
		{"wrong code", account("123456", now.Add(time.Minute)), "654321", models.ErrCodeInvalid, false},
		{"just inside TTL", account("123456", now.Add(time.Second)), "123456", nil, true},
		{"expired", account("123456", now.Add(-time.Second)), "123456", models.ErrCodeInvalid, false},
		{"no code issued", &models.Account{ID: id, Email: "u@example.com"}, "123456", models.ErrCodeInvalid, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mockAccountStore)
			svc := newTestAuthService(t, store, new(mockNotifier))
			svc.now = func() time.Time { return now }

			store.On("GetAccountByEmail", mock.Anything, "u@example.com", models.RoleUser).Return(tt.acc, nil)
			if tt.marked {
				store.On("MarkVerified", mock.Anything, id).Return(nil)
			}

			err := svc.VerifyEmail(context.Background(), "u@example.com", tt.code)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			store.AssertExpectations(t)
		})
	}
}

func TestVerifyEmail_UnknownEmail(t *testing.T) {
	store := new(mockAccountStore)
	svc := newTestAuthService(t, store, new(mockNotifier))

	store.On("GetAccountByEmail", mock.Anything, "nobody@example.com", models.RoleUser).
		Return(nil, models.ErrNotFound)

	err := svc.VerifyEmail(context.Background(), "nobody@example.com", "123456")
	assert.ErrorIs(t, err, models.ErrCodeInvalid)
}

func TestResendOTP_InvalidatesPreviousCode(t *testing.T) {
	id := primitive.NewObjectID()
	store := new(mockAccountStore)
	mailer := new(mockNotifier)
	svc := newTestAuthService(t, store, mailer)

	store.On("GetAccountByEmail", mock.Anything, "u@example.com", models.RoleUser).
		Return(&models.Account{ID: id, Email: "u@example.com", VerifyCode: "111111"}, nil)

	var issued string
	store.On("SetVerifyCode", mock.Anything, id, mock.AnythingOfType("string"), mock.Anything).
		Run(func(args mock.Arguments) { issued = args.String(2) }).
		Return(nil)
	mailer.On("Send", mock.Anything, "u@example.com", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, svc.ResendOTP(context.Background(), "u@example.com"))
	assert.Len(t, issued, 6)
	assert.NotEqual(t, "111111", issued)
	store.AssertExpectations(t)
}

func TestResendOTP_AlreadyVerified(t *testing.T) {
	store := new(mockAccountStore)
	svc := newTestAuthService(t, store, new(mockNotifier))

	store.On("GetAccountByEmail", mock.Anything, "done@example.com", models.RoleUser).
		Return(&models.Account{Email: "done@example.com", IsVerified: true}, nil)

	assert.ErrorIs(t, svc.ResendOTP(context.Background(), "done@example.com"), models.ErrConflict)
}

func TestLogin(t *testing.T) {
	id := primitive.NewObjectID()
	hash := hashOf(t, "correct-pw")

	tests := []struct {
		name    string
		role    models.Role
		acc     *models.Account
		accErr  error
		pw      string
		wantErr error
	}{
		{
			name: "verified user",
			role: models.RoleUser,
			acc:  &models.Account{ID: id, Role: models.RoleUser, PasswordHash: hash, IsVerified: true},
			pw:   "correct-pw",
		},
		{
			name:    "unknown email",
			role:    models.RoleUser,
			accErr:  models.ErrNotFound,
			pw:      "correct-pw",
			wantErr: models.ErrInvalidCredentials,
		},
		{
			name:    "wrong password",
			role:    models.RoleUser,
			acc:     &models.Account{ID: id, Role: models.RoleUser, PasswordHash: hash, IsVerified: true},
			pw:      "wrong-pw",
			wantErr: models.ErrInvalidCredentials,
		},
		{
			name:    "unverified user",
			role:    models.RoleUser,
			acc:     &models.Account{ID: id, Role: models.RoleUser, PasswordHash: hash, IsVerified: false},
			pw:      "correct-pw",
			wantErr: models.ErrNotVerified,
		},
		{
			// Admin accounts never go through OTP verification.
			name: "unverified admin",
			role: models.RoleAdmin,
			acc:  &models.Account{ID: id, Role: models.RoleAdmin, PasswordHash: hash, IsVerified: false},
			pw:   "correct-pw",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mockAccountStore)
			svc := newTestAuthService(t, store, new(mockNotifier))

			store.On("GetAccountByEmail", mock.Anything, "login@example.com", tt.role).
				Return(tt.acc, tt.accErr)

			token, acc, err := svc.Login(context.Background(), tt.role, "login@example.com", tt.pw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Equal(t, id, acc.ID)
		})
	}
}

func TestLogin_TokenCarriesRole(t *testing.T) {
	id := primitive.NewObjectID()
	store := new(mockAccountStore)
	svc := newTestAuthService(t, store, new(mockNotifier))

	store.On("GetAccountByEmail", mock.Anything, "admin@example.com", models.RoleAdmin).
		Return(&models.Account{ID: id, Role: models.RoleAdmin, PasswordHash: hashOf(t, "pw")}, nil)

	token, _, err := svc.Login(context.Background(), models.RoleAdmin, "admin@example.com", "pw")
	require.NoError(t, err)

	claims, err := svc.tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, id.Hex(), claims.Subject)
}

func TestForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	store := new(mockAccountStore)
	mailer := new(mockNotifier)
	svc := newTestAuthService(t, store, mailer)

	store.On("GetAccountByEmail", mock.Anything, "ghost@example.com", models.RoleUser).
		Return(nil, models.ErrNotFound)

	assert.NoError(t, svc.ForgotPassword(context.Background(), models.RoleUser, "ghost@example.com"))
	store.AssertNotCalled(t, "SetResetCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestForgotPassword_SendsCode(t *testing.T) {
	id := primitive.NewObjectID()
	store := new(mockAccountStore)
	mailer := new(mockNotifier)
	svc := newTestAuthService(t, store, mailer)

	store.On("GetAccountByEmail", mock.Anything, "u@example.com", models.RoleUser).
		Return(&models.Account{ID: id, Name: "U", Email: "u@example.com"}, nil)
	store.On("SetResetCode", mock.Anything, id, mock.AnythingOfType("string"), mock.Anything).Return(nil)
	mailer.On("Send", "U", "u@example.com", "Password reset code", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, svc.ForgotPassword(context.Background(), models.RoleUser, "u@example.com"))
	store.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestResetPassword(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	id := primitive.NewObjectID()

	t.Run("valid code updates password", func(t *testing.T) {
		store := new(mockAccountStore)
		svc := newTestAuthService(t, store, new(mockNotifier))
		svc.now = func() time.Time { return now }

		store.On("GetAccountByEmail", mock.Anything, "u@example.com", models.RoleUser).
			Return(&models.Account{ID: id, ResetCode: "222333", ResetExpiry: timePtr(now.Add(5 * time.Minute))}, nil)

		var newHash string
		store.On("UpdatePassword", mock.Anything, id, mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) { newHash = args.String(2) }).
			Return(nil)

		require.NoError(t, svc.ResetPassword(context.Background(), models.RoleUser, "u@example.com", "222333", "new-pw"))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("new-pw")))
	})

	t.Run("expired code", func(t *testing.T) {
		store := new(mockAccountStore)
		svc := newTestAuthService(t, store, new(mockNotifier))
		svc.now = func() time.Time { return now }

		store.On("GetAccountByEmail", mock.Anything, "u@example.com", models.RoleUser).
			Return(&models.Account{ID: id, ResetCode: "222333", ResetExpiry: timePtr(now.Add(-time.Minute))}, nil)

		err := svc.ResetPassword(context.Background(), models.RoleUser, "u@example.com", "222333", "new-pw")
		assert.ErrorIs(t, err, models.ErrCodeInvalid)
		store.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown email", func(t *testing.T) {
		store := new(mockAccountStore)
		svc := newTestAuthService(t, store, new(mockNotifier))

		store.On("GetAccountByEmail", mock.Anything, "ghost@example.com", models.RoleUser).
			Return(nil, models.ErrNotFound)

		err := svc.ResetPassword(context.Background(), models.RoleUser, "ghost@example.com", "222333", "new-pw")
		assert.ErrorIs(t, err, models.ErrCodeInvalid)
	})
}
