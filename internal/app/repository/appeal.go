package repository

import (
	"servicedesk/internal/app/ds"
)

// Методы для работы с заявками

// CreateAppeal сохраняет новую заявку
func (r *Repository) CreateAppeal(appeal *ds.Appeal) error {
	return r.db.Create(appeal).Error
}

// SaveAppeal перезаписывает заявку целиком.
// Конкурентные сохранения одной заявки не сериализуются: побеждает
// последняя запись (поведение исходной системы).
func (r *Repository) SaveAppeal(appeal *ds.Appeal) error {
	return r.db.Save(appeal).Error
}

// GetAppealByID возвращает заявку со связанными сущностями
func (r *Repository) GetAppealByID(id uint) (*ds.Appeal, error) {
	var appeal ds.Appeal
	err := r.db.
		Preload("Status").
		Preload("Client").
		Preload("StaffOpen").
		Preload("StaffClose").
		First(&appeal, id).Error
	if err != nil {
		return nil, err
	}
	return &appeal, nil
}

// FindAppealsByStatus возвращает все заявки с указанным статусом
func (r *Repository) FindAppealsByStatus(statusID uint) ([]ds.Appeal, error) {
	var appeals []ds.Appeal
	err := r.db.
		Where("status_id = ?", statusID).
		Preload("Status").
		Preload("Client").
		Preload("StaffOpen").
		Preload("StaffClose").
		Find(&appeals).Error
	return appeals, err
}

// FindAppealsByStatusAndClient возвращает заявки клиента с указанным статусом
func (r *Repository) FindAppealsByStatusAndClient(statusID, clientID uint) ([]ds.Appeal, error) {
	var appeals []ds.Appeal
	err := r.db.
		Where("status_id = ? AND client_id = ?", statusID, clientID).
		Preload("Status").
		Preload("Client").
		Preload("StaffOpen").
		Preload("StaffClose").
		Find(&appeals).Error
	return appeals, err
}
