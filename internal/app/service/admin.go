package service

import (
	"servicedesk/internal/app/ds"
	"servicedesk/internal/app/repository"
	"servicedesk/internal/app/role"

	"golang.org/x/crypto/bcrypt"
)

// AdminService - управление аккаунтами администраторов
type AdminService struct {
	repo *repository.Repository
}

func NewAdminService(repo *repository.Repository) *AdminService {
	return &AdminService{repo: repo}
}

func (s *AdminService) CreateAdmin(login, plainPassword, fio, phone string) (*ds.Admin, error) {
	if _, err := s.repo.GetAdminByLogin(login); err == nil {
		return nil, ErrLoginTaken
	}

	roleRec, err := s.repo.GetRoleByName(role.Admin)
	if err != nil {
		return nil, ErrNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &ds.Admin{
		Login:         login,
		PasswordHash:  string(hash),
		PasswordPlain: plainPassword,
		Fio:           fio,
		Phone:         phone,
		RoleID:        roleRec.ID,
		Role:          *roleRec,
	}
	if err := s.repo.CreateAdmin(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// UpdateAdminCredentials обновляет учётные данные; пустые значения сохраняют старые
func (s *AdminService) UpdateAdminCredentials(adminID uint, newLogin, newPassword, newPhone string) (*ds.Admin, error) {
	admin, err := s.repo.GetAdminByID(adminID)
	if err != nil {
		return nil, ErrAdminNotFound
	}

	if newLogin == "" {
		newLogin = admin.Login
	}
	if newPassword == "" {
		newPassword = admin.PasswordPlain
	}
	if newPhone == "" {
		newPhone = admin.Phone
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	err = s.repo.UpdateAdminFields(adminID, map[string]interface{}{
		"login":          newLogin,
		"password_hash":  string(hash),
		"password_plain": newPassword,
		"phone":          newPhone,
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetAdminByID(adminID)
}
