package ds

// 3. Таблица сотрудников
type Staff struct {
	ID            uint   `gorm:"primaryKey"`
	Login         string `gorm:"type:varchar(10);unique;not null"`
	PasswordHash  string `gorm:"type:varchar(255);not null"`
	PasswordPlain string `gorm:"type:varchar(10)"` // Унаследованная небезопасная колонка
	Fio           string `gorm:"type:varchar(60);not null"`

	RoleID uint `gorm:"not null"`
	Role   Role `gorm:"foreignKey:RoleID"`

	// Два непересекающихся множества заявок
	OpenedAppeals []Appeal `gorm:"foreignKey:StaffOpenID"`
	ClosedAppeals []Appeal `gorm:"foreignKey:StaffCloseID"`
}
