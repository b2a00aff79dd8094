package identity

import (
	"context"
	"time"

	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/domain/identity"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/domain/shared"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthServiceConfig contains configuration for the auth service
type AuthServiceConfig struct {
	MaxLoginAttempts int           // Maximum failed login attempts before lock
	LockDuration     time.Duration // How long to lock account after max attempts
}

// DefaultAuthServiceConfig returns default configuration
func DefaultAuthServiceConfig() AuthServiceConfig {
	return AuthServiceConfig{
		MaxLoginAttempts: 5,
		LockDuration:     15 * time.Minute,
	}
}

// AuthService handles signup and authentication operations
type AuthService struct {
	userRepo    identity.UserRepository
	companyRepo identity.CompanyRepository
	planRepo    identity.PlanRepository
	jwtService  *auth.JWTService
	blacklist   auth.TokenBlacklist
	config      AuthServiceConfig
	logger      *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	companyRepo identity.CompanyRepository,
	planRepo identity.PlanRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	config AuthServiceConfig,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		planRepo:    planRepo,
		jwtService:  jwtService,
		blacklist:   blacklist,
		config:      config,
		logger:      logger,
	}
}

// RegisterCompany signs up a new company together with its owner account.
// The plan is resolved first; nothing is persisted when it is unknown or
// retired.
func (s *AuthService) RegisterCompany(ctx context.Context, input RegisterCompanyInput) (*RegisterCompanyResult, error) {
	s.logger.Info("Company registration attempt",
		zap.String("company", input.CompanyName),
		zap.String("email", input.Email))

	plan, err := s.planRepo.FindByCode(ctx, identity.PlanCode(input.PlanCode))
	if err != nil {
		s.logger.Warn("Registration with unknown plan", zap.String("plan", input.PlanCode))
		return nil, shared.NewDomainError("INVALID_PLAN", "Unknown subscription plan")
	}
	if !plan.IsActive {
		return nil, shared.NewDomainError("INVALID_PLAN", "Plan is no longer open for subscription")
	}

	exists, err := s.companyRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Error("Failed to check company email", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check email availability")
	}
	if exists {
		return nil, shared.NewDomainError("EMAIL_EXISTS", "A company with this email already exists")
	}

	exists, err = s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Error("Failed to check user email", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check email availability")
	}
	if exists {
		return nil, shared.NewDomainError("EMAIL_EXISTS", "An account with this email already exists")
	}

	company, err := identity.NewCompany(input.CompanyName, input.Email, plan.ID)
	if err != nil {
		return nil, err
	}

	owner, err := identity.NewOwner(company.ID, input.OwnerName, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	if err := s.companyRepo.Save(ctx, company); err != nil {
		s.logger.Error("Failed to save company", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create company")
	}

	if err := s.userRepo.Create(ctx, owner); err != nil {
		s.logger.Error("Failed to save owner", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create owner account")
	}

	owner.RecordLoginSuccess(input.IP)
	if err := s.userRepo.Update(ctx, owner); err != nil {
		s.logger.Error("Failed to record signup login", zap.Error(err))
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		CompanyID: company.ID,
		UserID:    owner.ID,
		Email:     owner.Email,
		Role:      string(owner.Role),
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	s.logger.Info("Company registered",
		zap.String("company_id", company.ID.String()),
		zap.String("owner_id", owner.ID.String()))

	return &RegisterCompanyResult{
		Company: companyToInfo(company),
		User:    userToInfo(owner),
		Tokens:  tokensToInfo(tokenPair),
	}, nil
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	s.logger.Info("Login attempt", zap.String("email", input.Email))

	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Warn("User not found during login", zap.String("email", input.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	if !user.CanLogin() {
		if user.IsLocked() {
			s.logger.Warn("Login attempt for locked account", zap.String("email", input.Email))
			return nil, shared.NewDomainError("ACCOUNT_LOCKED", "Account is locked. Please try again later")
		}
		s.logger.Warn("Login attempt for deactivated account", zap.String("email", input.Email))
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")
	}

	company, err := s.companyRepo.FindByID(ctx, user.CompanyID)
	if err != nil {
		s.logger.Error("Company lookup failed during login", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load company")
	}
	if !company.IsActive() {
		s.logger.Warn("Login attempt for suspended company",
			zap.String("company_id", company.ID.String()))
		return nil, shared.NewDomainError("COMPANY_SUSPENDED", "Company account is suspended")
	}

	if !user.VerifyPassword(input.Password) {
		locked := user.RecordLoginFailure(s.config.MaxLoginAttempts, s.config.LockDuration)
		if err := s.userRepo.Update(ctx, user); err != nil {
			s.logger.Error("Failed to update user after login failure", zap.Error(err))
		}

		if locked {
			s.logger.Warn("Account locked after too many failed attempts",
				zap.String("email", input.Email),
				zap.Int("attempts", s.config.MaxLoginAttempts))
			return nil, shared.NewDomainError("ACCOUNT_LOCKED", "Too many failed login attempts. Account has been locked")
		}

		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		CompanyID: user.CompanyID,
		UserID:    user.ID,
		Email:     user.Email,
		Role:      string(user.Role),
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	user.RecordLoginSuccess(input.IP)
	if err := s.userRepo.Update(ctx, user); err != nil {
		// Don't fail the login, just log
		s.logger.Error("Failed to update user after successful login", zap.Error(err))
	}

	s.logger.Info("User logged in",
		zap.String("email", input.Email),
		zap.String("user_id", user.ID.String()))

	return &LoginResult{
		Tokens: tokensToInfo(tokenPair),
		User:   userToInfo(user),
	}, nil
}

// RefreshToken refreshes the access token using a valid refresh token
func (s *AuthService) RefreshToken(ctx context.Context, input RefreshTokenInput) (*TokenInfo, error) {
	refreshClaims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		s.logger.Warn("Refresh token validation failed", zap.Error(err))
		return nil, mapTokenError(err)
	}

	userID, err := uuid.Parse(refreshClaims.UserID)
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid user ID in token")
	}

	invalidated, err := s.blacklist.IsUserTokenInvalidated(ctx, refreshClaims.UserID, refreshClaims.IssuedAt.Time)
	if err != nil {
		s.logger.Error("Failed to check token invalidation", zap.Error(err))
	}
	if invalidated {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Token has been revoked")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		s.logger.Warn("User not found during token refresh", zap.String("user_id", userID.String()))
		return nil, shared.NewDomainError("NOT_FOUND", "User not found")
	}

	if !user.CanLogin() {
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account is no longer active")
	}

	tokenPair, err := s.jwtService.RefreshTokenPair(input.RefreshToken, user.Email, string(user.Role))
	if err != nil {
		s.logger.Warn("Token refresh failed", zap.Error(err))
		return nil, mapTokenError(err)
	}

	tokens := tokensToInfo(tokenPair)
	return &tokens, nil
}

// Logout revokes the caller's tokens. The presented access token's JTI
// is blacklisted for its remaining lifetime; with AllSessions set every
// token issued so far is invalidated.
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	if input.TokenJTI != "" {
		ttl := time.Until(input.ExpiresAt)
		if ttl > 0 {
			if err := s.blacklist.AddToBlacklist(ctx, input.TokenJTI, ttl); err != nil {
				s.logger.Error("Failed to blacklist token", zap.Error(err))
				return shared.NewDomainError("INTERNAL_ERROR", "Failed to revoke token")
			}
		}
	}

	if input.AllSessions {
		// TTL covers the longest-lived refresh token still in flight
		if err := s.blacklist.AddUserTokensToBlacklist(ctx, input.UserID.String(), 7*24*time.Hour); err != nil {
			s.logger.Error("Failed to invalidate user sessions", zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to revoke sessions")
		}
	}

	s.logger.Info("User logged out", zap.String("user_id", input.UserID.String()))
	return nil
}

// GetCurrentUser retrieves the caller's profile and company
func (s *AuthService) GetCurrentUser(ctx context.Context, input GetCurrentUserInput) (*CurrentUserResult, error) {
	user, err := s.userRepo.FindByIDForCompany(ctx, input.CompanyID, input.UserID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "User not found")
	}

	company, err := s.companyRepo.FindByID(ctx, user.CompanyID)
	if err != nil {
		s.logger.Error("Failed to load company", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load company")
	}

	return &CurrentUserResult{
		User:    userToInfo(user),
		Company: companyToInfo(company),
	}, nil
}

// ChangePassword changes a user's password and revokes existing sessions
func (s *AuthService) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return shared.NewDomainError("NOT_FOUND", "User not found")
	}

	if err := user.ChangePassword(input.OldPassword, input.NewPassword); err != nil {
		return err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update user after password change", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update password")
	}

	if err := s.blacklist.AddUserTokensToBlacklist(ctx, input.UserID.String(), 7*24*time.Hour); err != nil {
		s.logger.Error("Failed to revoke sessions after password change", zap.Error(err))
	}

	s.logger.Info("User password changed", zap.String("user_id", input.UserID.String()))
	return nil
}

func mapTokenError(err error) error {
	switch err {
	case auth.ErrExpiredToken:
		return shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
	case auth.ErrInvalidToken:
		return shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
	case auth.ErrMaxRefreshExceeded:
		return shared.NewDomainError("TOKEN_MAX_REFRESH", "Maximum token refresh count exceeded. Please log in again")
	default:
		return shared.NewDomainError("TOKEN_ERROR", "Failed to validate refresh token")
	}
}

func userToInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:          user.ID,
		CompanyID:   user.CompanyID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        string(user.Role),
		Position:    user.Position,
		Status:      string(user.Status),
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}

func companyToInfo(company *identity.Company) CompanyInfo {
	return CompanyInfo{
		ID:       company.ID,
		Name:     company.Name,
		Email:    company.Email,
		Status:   string(company.Status),
		PlanID:   company.PlanID,
		Timezone: company.Timezone,
	}
}

func tokensToInfo(pair *auth.TokenPair) TokenInfo {
	return TokenInfo{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
	}
}
