package ds

// 4. Таблица администраторов
type Admin struct {
	ID            uint    `gorm:"primaryKey"`
	Login         string  `gorm:"type:varchar(10);unique;not null"`
	PasswordHash  string  `gorm:"type:varchar(255);not null"`
	PasswordPlain string  `gorm:"type:varchar(10)"` // Унаследованная небезопасная колонка
	Fio           string  `gorm:"type:varchar(60);not null"`
	Phone         string  `gorm:"type:varchar(12);not null"`
	TelegramID    *string `gorm:"type:varchar(200)"` // Привязанный чат Telegram (заполняется ботом)

	RoleID uint `gorm:"not null"`
	Role   Role `gorm:"foreignKey:RoleID"`
}
