package application

import (
	"errors"
	"testing"
	"time"

	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/auth-service/internal/application/dto"
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/auth-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*domain.User{}}
}

func (r *fakeUserRepo) Save(user *domain.User) error {
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*domain.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) FindByID(id string) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type plainEncoder struct{}

func (plainEncoder) Hash(password string) (string, error) { return "hash:" + password, nil }
func (plainEncoder) Compare(hashed, password string) bool { return hashed == "hash:"+password }

type fakeTokens struct{}

func (fakeTokens) GenerateAccessToken(userID, name string, role domain.Role) (string, time.Time, error) {
	return "access-" + userID, time.Now().Add(time.Hour), nil
}
func (fakeTokens) GenerateRefreshToken(userID, name string, role domain.Role) (string, time.Time, error) {
	return "refresh-" + userID, time.Now().Add(24 * time.Hour), nil
}
func (fakeTokens) ValidateToken(token string) (*domain.TokenClaims, error) {
	return nil, domain.ErrInvalidToken
}
func (fakeTokens) RefreshToken(refreshToken string) (string, time.Time, error) {
	if refreshToken == "good" {
		return "new-access", time.Now().Add(time.Hour), nil
	}
	return "", time.Time{}, domain.ErrInvalidToken
}

func newAuthService() (*AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewAuthService(repo, fakeTokens{}, plainEncoder{}), repo
}

func TestRegisterCreatesMember(t *testing.T) {
	svc, repo := newAuthService()

	resp, err := svc.Register(&dto.RegisterReq{Name: "Asha", Email: "asha@example.com", Password: "secret1"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.UserID)
	assert.Equal(t, "MEMBER", resp.Role)

	saved := repo.byEmail["asha@example.com"]
	require.NotNil(t, saved)
	assert.Equal(t, "hash:secret1", saved.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.Register(&dto.RegisterReq{Name: "Asha", Email: "asha@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterReq{Name: "Other", Email: "asha@example.com", Password: "secret2"})
	assert.True(t, errors.Is(err, domain.ErrUserAlreadyExists))
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService()
	_, err := svc.Register(&dto.RegisterReq{Name: "Asha", Email: "asha@example.com", Password: "secret1"})
	require.NoError(t, err)

	resp, err := svc.Login(&dto.LoginReq{Email: "asha@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	_, err = svc.Login(&dto.LoginReq{Email: "asha@example.com", Password: "wrong"})
	assert.True(t, errors.Is(err, domain.ErrInvalidCredentials))

	_, err = svc.Login(&dto.LoginReq{Email: "nobody@example.com", Password: "x"})
	assert.True(t, errors.Is(err, domain.ErrInvalidCredentials))
}

func TestRefresh(t *testing.T) {
	svc, _ := newAuthService()

	resp, err := svc.Refresh(&dto.RefreshReq{RefreshToken: "good"})
	require.NoError(t, err)
	assert.Equal(t, "new-access", resp.AccessToken)

	_, err = svc.Refresh(&dto.RefreshReq{RefreshToken: "bad"})
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}
