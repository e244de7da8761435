package application

import (
	"errors"

	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/auth-service/internal/application/dto"
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/auth-service/internal/domain"

	"github.com/google/uuid"
)

type AuthService struct {
	userRepo        domain.UserRepository
	tokenService    domain.TokenService
	passwordEncoder domain.PasswordEncoder
}

func NewAuthService(
	userRepo domain.UserRepository,
	tokenService domain.TokenService,
	passwordEncoder domain.PasswordEncoder,
) *AuthService {
	return &AuthService{
		userRepo:        userRepo,
		tokenService:    tokenService,
		passwordEncoder: passwordEncoder,
	}
}

func (s *AuthService) Register(req *dto.RegisterReq) (*dto.RegisterResp, error) {
	if existing, _ := s.userRepo.FindByEmail(req.Email); existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	hashed, err := s.passwordEncoder.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     domain.RoleMember,
	}
	if err := s.userRepo.Save(user); err != nil {
		return nil, err
	}

	return &dto.RegisterResp{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   string(user.Role),
	}, nil
}

func (s *AuthService) Login(req *dto.LoginReq) (*dto.LoginResp, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.passwordEncoder.Compare(user.Password, req.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := s.tokenService.GenerateAccessToken(user.ID, user.Name, user.Role)
	if err != nil {
		return nil, domain.ErrTokenGenerateFailed
	}
	refreshToken, _, err := s.tokenService.GenerateRefreshToken(user.ID, user.Name, user.Role)
	if err != nil {
		return nil, domain.ErrTokenGenerateFailed
	}

	return &dto.LoginResp{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt.Unix(),
		UserID:       user.ID,
	}, nil
}

func (s *AuthService) Refresh(req *dto.RefreshReq) (*dto.LoginResp, error) {
	accessToken, expiresAt, err := s.tokenService.RefreshToken(req.RefreshToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &dto.LoginResp{
		AccessToken:  accessToken,
		RefreshToken: req.RefreshToken,
		ExpiresAt:    expiresAt.Unix(),
	}, nil
}
