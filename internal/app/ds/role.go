package ds

import "servicedesk/internal/app/role"

// 6. Таблица ролей - ТОЛЬКО справочная информация ('admin', 'staff', 'client')
type Role struct {
	ID   uint      `gorm:"primaryKey"`
	Name role.Role `gorm:"column:role;type:varchar(6);unique;not null"`
}
