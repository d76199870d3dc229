package repository

import (
	"servicedesk/internal/app/ds"
	"servicedesk/internal/app/role"
)

// Методы для работы с ролями (справочная таблица)

func (r *Repository) GetRoleByName(name role.Role) (*ds.Role, error) {
	var rec ds.Role
	err := r.db.Where("role = ?", string(name)).First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
