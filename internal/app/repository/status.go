package repository

import (
	"servicedesk/internal/app/ds"
)

// Реестр статусов: справочные строки, заполняются миграцией

// FindStatusByName ищет статус по имени
func (r *Repository) FindStatusByName(name ds.StatusName) (*ds.AppealStatus, error) {
	var status ds.AppealStatus
	err := r.db.Where("st = ?", string(name)).First(&status).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// GetAllStatuses возвращает весь словарь статусов
func (r *Repository) GetAllStatuses() ([]ds.AppealStatus, error) {
	var statuses []ds.AppealStatus
	err := r.db.Find(&statuses).Error
	return statuses, err
}
