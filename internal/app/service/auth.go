package service

import (
	"time"

	"servicedesk/internal/app/config"
	"servicedesk/internal/app/ds"
	"servicedesk/internal/app/repository"
	"servicedesk/internal/app/role"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService - аутентификация трёх типов принципалов и выпуск JWT
type AuthService struct {
	repo *repository.Repository
	cfg  *config.Config
}

func NewAuthService(repo *repository.Repository, cfg *config.Config) *AuthService {
	return &AuthService{repo: repo, cfg: cfg}
}

// AuthResult - токен и данные принципала для ответа
type AuthResult struct {
	Token  string
	UserID uint
	Role   role.Role
	Login  string
	Fio    string
}

func (s *AuthService) signToken(userID uint, r role.Role) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(s.cfg.JWT.SigningMethod, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			// jti нужен, чтобы blacklist различал токены одного пользователя
			Id:        uuid.NewString(),
			ExpiresAt: now.Add(s.cfg.JWT.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    "servicedesk",
		},
		UserID: userID,
		Role:   r,
	})
	return token.SignedString([]byte(s.cfg.JWT.Token))
}

// Login проверяет пароль и выпускает токен с ролью в claims
func (s *AuthService) Login(login, password string, r role.Role) (*AuthResult, error) {
	var (
		userID uint
		hash   string
		name   string
	)

	switch r {
	case role.Admin:
		admin, err := s.repo.GetAdminByLogin(login)
		if err != nil {
			return nil, ErrWrongCredentials
		}
		userID, hash, name = admin.ID, admin.PasswordHash, admin.Fio
	case role.Staff:
		staff, err := s.repo.GetStaffByLogin(login)
		if err != nil {
			return nil, ErrWrongCredentials
		}
		userID, hash, name = staff.ID, staff.PasswordHash, staff.Fio
	case role.Client:
		client, err := s.repo.GetClientByLogin(login)
		if err != nil {
			return nil, ErrWrongCredentials
		}
		userID, hash, name = client.ID, client.PasswordHash, client.CompanyName
	default:
		return nil, ErrWrongCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, ErrWrongCredentials
	}

	token, err := s.signToken(userID, r)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Token:  token,
		UserID: userID,
		Role:   r,
		Login:  login,
		Fio:    name,
	}, nil
}

// Refresh выпускает новый токен по действующей паре id+роль
func (s *AuthService) Refresh(userID uint, r role.Role) (*AuthResult, error) {
	var (
		login string
		name  string
	)

	switch r {
	case role.Admin:
		admin, err := s.repo.GetAdminByID(userID)
		if err != nil {
			return nil, ErrAdminNotFound
		}
		login, name = admin.Login, admin.Fio
	case role.Staff:
		staff, err := s.repo.GetStaffByID(userID)
		if err != nil {
			return nil, ErrStaffNotFound
		}
		login, name = staff.Login, staff.Fio
	case role.Client:
		client, err := s.repo.GetClientByID(userID)
		if err != nil {
			return nil, ErrClientNotFound
		}
		login, name = client.Login, client.CompanyName
	default:
		return nil, ErrNotFound
	}

	token, err := s.signToken(userID, r)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Token:  token,
		UserID: userID,
		Role:   r,
		Login:  login,
		Fio:    name,
	}, nil
}
