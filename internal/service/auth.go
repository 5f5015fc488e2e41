package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"leasehub-backend/internal/apperrors"
	"leasehub-backend/internal/domain"
	"leasehub-backend/internal/logger"
	"leasehub-backend/internal/repository"
	"leasehub-backend/internal/security"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type authService struct {
	applicantRepo repository.ApplicantRepository
	tokens        security.TokenManager
}

func NewAuthService(applicantRepo repository.ApplicantRepository, tokens security.TokenManager) AuthService {
	return &authService{
		applicantRepo: applicantRepo,
		tokens:        tokens,
	}
}

func (s *authService) Signup(ctx context.Context, email, password, firstName, lastName string) (*domain.Applicant, string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", "", apperrors.NewValidation("a valid email address is required")
	}
	if len(password) < 8 {
		return nil, "", "", apperrors.NewValidation("password must be at least 8 characters")
	}

	if existing, err := s.applicantRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, "", "", apperrors.NewValidation("an account with this email already exists")
	} else if err != nil && !apperrors.IsNotFound(err) {
		return nil, "", "", wrapStore("signup email lookup", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}

	applicant := &domain.Applicant{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
	}
	if err := s.applicantRepo.Create(ctx, applicant); err != nil {
		return nil, "", "", wrapStore("applicant insert", err)
	}

	access, refresh, err := s.issueTokens(applicant)
	if err != nil {
		return nil, "", "", err
	}
	logger.InfoContext(ctx, "applicant signed up", "applicant_id", applicant.ID)
	return applicant, access, refresh, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	applicant, err := s.applicantRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		// Same answer for unknown email and wrong password.
		return "", "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(applicant.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}
	return s.issueTokens(applicant)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return "", "", security.ErrInvalidToken
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", security.ErrWrongTokenType
	}
	// Roles are re-read so a role change takes effect at next refresh.
	applicant, err := s.applicantRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", security.ErrInvalidToken
	}
	return s.issueTokens(applicant)
}

func (s *authService) issueTokens(applicant *domain.Applicant) (string, string, error) {
	var roles []string
	if applicant.IsReviewer {
		roles = append(roles, security.RoleReviewer)
	}
	if applicant.IsAdmin {
		roles = append(roles, security.RoleAdmin)
	}
	access, err := s.tokens.GenerateAccessToken(applicant.ID, applicant.Email, roles)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(applicant.ID, applicant.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
