package repository

import (
	"servicedesk/internal/app/ds"
)

// Методы для работы с клиентами

func (r *Repository) GetClientByID(id uint) (*ds.Client, error) {
	var client ds.Client
	err := r.db.Preload("Role").First(&client, id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// GetClientWithAppeals возвращает клиента вместе с его заявками
func (r *Repository) GetClientWithAppeals(id uint) (*ds.Client, error) {
	var client ds.Client
	err := r.db.Preload("Role").Preload("Appeals").Preload("Appeals.Status").First(&client, id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *Repository) GetClientByLogin(login string) (*ds.Client, error) {
	var client ds.Client
	err := r.db.Where("login = ?", login).Preload("Role").First(&client).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *Repository) GetClientByPhone(phone string) (*ds.Client, error) {
	var client ds.Client
	err := r.db.Where("phone = ?", phone).First(&client).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// GetAllClients возвращает всех клиентов с заявками, по алфавиту компаний
func (r *Repository) GetAllClients() ([]ds.Client, error) {
	var clients []ds.Client
	err := r.db.Preload("Role").Preload("Appeals").Order("company_name ASC").Find(&clients).Error
	return clients, err
}

func (r *Repository) CreateClient(client *ds.Client) error {
	return r.db.Create(client).Error
}

// UpdateClientFields обновляет только переданные поля
func (r *Repository) UpdateClientFields(clientID uint, fields map[string]interface{}) error {
	return r.db.Model(&ds.Client{}).Where("id = ?", clientID).Updates(fields).Error
}

func (r *Repository) DeleteClient(clientID uint) error {
	return r.db.Delete(&ds.Client{}, clientID).Error
}

// UpdateClientTelegramID привязывает чат Telegram к клиенту (заполняется ботом)
func (r *Repository) UpdateClientTelegramID(clientID uint, chatID string) error {
	return r.db.Model(&ds.Client{}).Where("id = ?", clientID).Update("telegram_id", chatID).Error
}
