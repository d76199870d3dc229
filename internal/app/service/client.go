package service

import (
	"servicedesk/internal/app/ds"
	"servicedesk/internal/app/repository"
	"servicedesk/internal/app/role"

	"golang.org/x/crypto/bcrypt"
)

// ClientService - управление клиентскими аккаунтами
type ClientService struct {
	repo *repository.Repository
}

func NewClientService(repo *repository.Repository) *ClientService {
	return &ClientService{repo: repo}
}

func (s *ClientService) CreateClient(login, plainPassword, phone, companyName string) (*ds.Client, error) {
	if _, err := s.repo.GetClientByLogin(login); err == nil {
		return nil, ErrLoginTaken
	}

	roleRec, err := s.repo.GetRoleByName(role.Client)
	if err != nil {
		return nil, ErrNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	client := &ds.Client{
		Login:         login,
		PasswordHash:  string(hash),
		PasswordPlain: plainPassword,
		Phone:         phone,
		CompanyName:   companyName,
		RoleID:        roleRec.ID,
		Role:          *roleRec,
	}
	if err := s.repo.CreateClient(client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) GetClientByID(clientID uint) (*ds.Client, error) {
	client, err := s.repo.GetClientByID(clientID)
	if err != nil {
		return nil, ErrClientNotFound
	}
	return client, nil
}

func (s *ClientService) GetClientWithAppeals(clientID uint) (*ds.Client, error) {
	client, err := s.repo.GetClientWithAppeals(clientID)
	if err != nil {
		return nil, ErrClientNotFound
	}
	return client, nil
}

func (s *ClientService) GetAllClients() ([]ds.Client, error) {
	return s.repo.GetAllClients()
}

// UpdateClient обновляет только переданные (непустые) поля
func (s *ClientService) UpdateClient(clientID uint, companyName, phone, login, plainPassword string) error {
	if _, err := s.repo.GetClientByID(clientID); err != nil {
		return ErrClientNotFound
	}

	fields := map[string]interface{}{}
	if companyName != "" {
		fields["company_name"] = companyName
	}
	if phone != "" {
		fields["phone"] = phone
	}
	if login != "" {
		existing, err := s.repo.GetClientByLogin(login)
		if err == nil && existing.ID != clientID {
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

	return s.repo.UpdateClientFields(clientID, fields)
}

// UpdatePassword меняет пароль после проверки текущего
func (s *ClientService) UpdatePassword(clientID uint, currentPassword, newPassword string) error {
	client, err := s.repo.GetClientByID(clientID)
	if err != nil {
		return ErrClientNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(currentPassword)) != nil {
		return ErrWrongCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdateClientFields(clientID, map[string]interface{}{
		"password_hash":  string(hash),
		"password_plain": newPassword,
	})
}

func (s *ClientService) DeleteClient(clientID uint) error {
	if _, err := s.repo.GetClientByID(clientID); err != nil {
		return ErrClientNotFound
	}
	return s.repo.DeleteClient(clientID)
}
