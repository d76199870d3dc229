package service

import (
	"servicedesk/internal/app/ds"
	"servicedesk/internal/app/repository"
	"servicedesk/internal/app/role"

	"golang.org/x/crypto/bcrypt"
)

// StaffService - управление аккаунтами сотрудников
type StaffService struct {
	repo *repository.Repository
}

func NewStaffService(repo *repository.Repository) *StaffService {
	return &StaffService{repo: repo}
}

func (s *StaffService) CreateStaff(login, plainPassword, fio string) (*ds.Staff, error) {
	if _, err := s.repo.GetStaffByLogin(login); err == nil {
		return nil, ErrLoginTaken
	}

	roleRec, err := s.repo.GetRoleByName(role.Staff)
	if err != nil {
		return nil, ErrNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	staff := &ds.Staff{
		Login:         login,
		PasswordHash:  string(hash),
		PasswordPlain: plainPassword,
		Fio:           fio,
		RoleID:        roleRec.ID,
		Role:          *roleRec,
	}
	if err := s.repo.CreateStaff(staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *StaffService) GetStaffByID(staffID uint) (*ds.Staff, error) {
	staff, err := s.repo.GetStaffByID(staffID)
	if err != nil {
		return nil, ErrStaffNotFound
	}
	return staff, nil
}

// GetStaffAppeals возвращает сотрудника с его открытыми и закрытыми заявками
func (s *StaffService) GetStaffAppeals(staffID uint) (*ds.Staff, error) {
	staff, err := s.repo.GetStaffWithAppeals(staffID)
	if err != nil {
		return nil, ErrStaffNotFound
	}
	return staff, nil
}

func (s *StaffService) GetAllStaff() ([]ds.Staff, error) {
	return s.repo.GetAllStaff()
}

// EditStaff обновляет только переданные (непустые) поля
func (s *StaffService) EditStaff(staffID uint, fio, login, plainPassword string) error {
	if _, err := s.repo.GetStaffByID(staffID); err != nil {
		return ErrStaffNotFound
	}

	fields := map[string]interface{}{}
	if fio != "" {
		fields["fio"] = fio
	}
	if login != "" {
		existing, err := s.repo.GetStaffByLogin(login)
		if err == nil && existing.ID != staffID {
			return ErrLoginTaken
		}
		fields["login"] = login
	}
	if plainPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		fields["password_hash"] = string(hash)
		fields["password_plain"] = plainPassword
	}
	if len(fields) == 0 {
		return nil
	}

	return s.repo.UpdateStaffFields(staffID, fields)
}

func (s *StaffService) RemoveStaff(staffID uint) error {
	if _, err := s.repo.GetStaffByID(staffID); err != nil {
		return ErrStaffNotFound
	}
	return s.repo.DeleteStaff(staffID)
}
