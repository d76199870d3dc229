package ds

// 2. Таблица клиентов (аккаунт уровня компании)
type Client struct {
	ID           uint   `gorm:"primaryKey"`
	Login        string `gorm:"type:varchar(10);unique;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	// Пароль в открытом виде - унаследованная небезопасная колонка
	PasswordPlain string  `gorm:"type:varchar(10)"`
	Phone         string  `gorm:"type:varchar(12);not null"`
	CompanyName   string  `gorm:"type:varchar(50);not null"`
	TelegramID    *string `gorm:"type:varchar(200)"` // Привязанный чат Telegram (заполняется ботом)

	RoleID uint `gorm:"not null"`
	Role   Role `gorm:"foreignKey:RoleID"`

	Appeals []Appeal `gorm:"foreignKey:ClientID"`
}
