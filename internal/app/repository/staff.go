package repository

import (
	"servicedesk/internal/app/ds"
)

// Методы для работы с сотрудниками

func (r *Repository) GetStaffByID(id uint) (*ds.Staff, error) {
	var staff ds.Staff
	err := r.db.Preload("Role").First(&staff, id).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *Repository) GetStaffByLogin(login string) (*ds.Staff, error) {
	var staff ds.Staff
	err := r.db.Where("login = ?", login).Preload("Role").First(&staff).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

// GetStaffWithAppeals возвращает сотрудника с открытыми и закрытыми заявками
func (r *Repository) GetStaffWithAppeals(id uint) (*ds.Staff, error) {
	var staff ds.Staff
	err := r.db.
		Preload("OpenedAppeals").
		Preload("OpenedAppeals.Status").
		Preload("ClosedAppeals").
		Preload("ClosedAppeals.Status").
		First(&staff, id).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *Repository) GetAllStaff() ([]ds.Staff, error) {
	var staff []ds.Staff
	err := r.db.Preload("Role").Find(&staff).Error
	return staff, err
}

func (r *Repository) CreateStaff(staff *ds.Staff) error {
	return r.db.Create(staff).Error
}

// UpdateStaffFields обновляет только переданные поля
func (r *Repository) UpdateStaffFields(staffID uint, fields map[string]interface{}) error {
	return r.db.Model(&ds.Staff{}).Where("id = ?", staffID).Updates(fields).Error
}

func (r *Repository) DeleteStaff(staffID uint) error {
	return r.db.Delete(&ds.Staff{}, staffID).Error
}
