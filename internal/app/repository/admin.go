package repository

import (
	"servicedesk/internal/app/ds"
)

// Методы для работы с администраторами

func (r *Repository) GetAdminByID(id uint) (*ds.Admin, error) {
	var admin ds.Admin
	err := r.db.Preload("Role").First(&admin, id).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *Repository) GetAdminByLogin(login string) (*ds.Admin, error) {
	var admin ds.Admin
	err := r.db.Where("login = ?", login).Preload("Role").First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *Repository) GetAdminByPhone(phone string) (*ds.Admin, error) {
	var admin ds.Admin
	err := r.db.Where("phone = ?", phone).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetFirstAdmin возвращает администратора с наименьшим id.
// Это адресат уведомлений о новых заявках.
func (r *Repository) GetFirstAdmin() (*ds.Admin, error) {
	var admin ds.Admin
	err := r.db.Preload("Role").Order("id ASC").First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *Repository) CreateAdmin(admin *ds.Admin) error {
	return r.db.Create(admin).Error
}

// UpdateAdminFields обновляет только переданные поля
func (r *Repository) UpdateAdminFields(adminID uint, fields map[string]interface{}) error {
	return r.db.Model(&ds.Admin{}).Where("id = ?", adminID).Updates(fields).Error
}

// UpdateAdminTelegramID привязывает чат Telegram к администратору (заполняется ботом)
func (r *Repository) UpdateAdminTelegramID(adminID uint, chatID string) error {
	return r.db.Model(&ds.Admin{}).Where("id = ?", adminID).Update("telegram_id", chatID).Error
}
