package usecase

import (
	"context"
	"fmt"
	"time"

	"brook-rent/internal/data/entity"
	"brook-rent/internal/data/repository"
	"brook-rent/internal/dto/request"
	"brook-rent/internal/dto/response"
	"brook-rent/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, userID int64) error
	ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type authService struct {
	repo      *repository.Repository
	config    *utils.Config
	deliverer ResetTokenDeliverer
	log       *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	deliverer ResetTokenDeliverer,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:      repo,
		config:    config,
		deliverer: deliverer,
		log:       log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Check email already registered
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existingUser != nil {
		return nil, fmt.Errorf("email already registered")
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// 4. Create user, store assigns id and created_at
	user := &entity.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Phone:        req.Phone,
		Role:         entity.UserRole(req.Role),
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		// The unique constraint settles the concurrent-registration race
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("email already registered")
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Find user by email
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}

	// 3. Unknown email and wrong password are not distinguished
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid email or password")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("invalid email or password")
	}

	// 4. Issue token, remember-me selects the longer expiry policy
	ttl := time.Duration(s.config.JWT.ExpiryDays) * 24 * time.Hour
	if req.RememberMe {
		ttl = time.Duration(s.config.JWT.RememberExpiryDays) * 24 * time.Hour
	}

	token, err := utils.GenerateToken(user.ID, user.Email, s.config.JWT.Secret, ttl)
	if err != nil {
		s.log.Error("Failed to generate token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("failed to create session")
	}

	// 5. Remember-me also stores an opaque remember token on the row
	if req.RememberMe {
		rememberToken, err := utils.GenerateOpaqueToken()
		if err != nil {
			s.log.Error("Failed to generate remember token", zap.Error(err), zap.Int64("user_id", user.ID))
			return nil, fmt.Errorf("failed to create session")
		}
		if err := s.repo.User.SetRememberToken(ctx, user.ID, &rememberToken); err != nil {
			s.log.Error("Failed to store remember token", zap.Error(err), zap.Int64("user_id", user.ID))
			return nil, fmt.Errorf("failed to create session")
		}
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.Bool("remember_me", req.RememberMe))

	return &response.AuthResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(ttl),
		User:      response.UserToResponse(user),
	}, nil
}

// Logout clears the remember token. The bearer token itself is not
// revoked and stays valid until its natural expiry.
func (s *authService) Logout(ctx context.Context, userID int64) error {
	if err := s.repo.User.SetRememberToken(ctx, userID, nil); err != nil {
		s.log.Error("Failed to clear remember token", zap.Error(err), zap.Int64("user_id", userID))
		return fmt.Errorf("failed to logout")
	}

	s.log.Info("User logged out", zap.Int64("user_id", userID))
	return nil
}

// ForgotPassword reports success whether or not the email is
// registered, so the response never leaks which emails exist. Only the
// registered case mutates the store.
func (s *authService) ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Forgot password validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Find user
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for reset", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("failed to process request")
	}
	if user == nil {
		s.log.Info("Password reset requested for unknown email")
		return nil
	}

	// 3. Generate reset token, overwriting any outstanding one
	resetToken, err := utils.GenerateOpaqueToken()
	if err != nil {
		s.log.Error("Failed to generate reset token", zap.Error(err), zap.Int64("user_id", user.ID))
		return fmt.Errorf("failed to process request")
	}

	expiry := time.Now().Add(time.Duration(s.config.Reset.ExpiryMinutes) * time.Minute)
	if err := s.repo.User.SetResetToken(ctx, user.ID, resetToken, expiry); err != nil {
		s.log.Error("Failed to store reset token", zap.Error(err), zap.Int64("user_id", user.ID))
		return fmt.Errorf("failed to process request")
	}

	// 4. Hand the token to the deliverer, never to the HTTP response
	if err := s.deliverer.Deliver(ctx, user.Email, resetToken, expiry); err != nil {
		s.log.Error("Failed to deliver reset token", zap.Error(err), zap.Int64("user_id", user.ID))
	}

	s.log.Info("Reset token issued", zap.Int64("user_id", user.ID), zap.Time("expires_at", expiry))
	return nil
}

// ResetPassword consumes a reset token. Unknown and expired tokens get
// the same generic error.
func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reset password validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Match an unexpired token
	user, err := s.repo.User.FindByResetToken(ctx, req.Token)
	if err != nil {
		s.log.Error("Failed to look up reset token", zap.Error(err))
		return fmt.Errorf("failed to reset password")
	}
	if user == nil {
		return fmt.Errorf("invalid or expired token")
	}

	// 3. Hash the new password
	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash new password", zap.Error(err), zap.Int64("user_id", user.ID))
		return fmt.Errorf("failed to process password")
	}

	// 4. Store the hash and clear the token in one update, no replay
	if err := s.repo.User.UpdatePasswordAndClearReset(ctx, user.ID, hashedPassword); err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.Int64("user_id", user.ID))
		return fmt.Errorf("failed to reset password")
	}

	s.log.Info("Password reset", zap.Int64("user_id", user.ID))
	return nil
}
