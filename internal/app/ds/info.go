package ds

// 7. Таблица справочной информации "О нас" (одна запись)
type POInfo struct {
	ID       uint   `gorm:"primaryKey"`
	TextInfo string `gorm:"type:varchar(255);not null"`
}

// TableName сохраняет историческое имя таблицы
func (POInfo) TableName() string {
	return "po_info"
}
