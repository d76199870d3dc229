package ds

import "time"

// 1. Таблица заявок
// Заявки никогда не удаляются физически - это журнал обращений.
// Отмена моделируется двумя записями: исходная закрывается, рядом
// создаётся заявка-маркер со статусом cancel.
type Appeal struct {
	ID        uint   `gorm:"primaryKey"`
	Mechanism string `gorm:"type:varchar(25);not null"`  // Тип механизма
	Problem   string `gorm:"type:varchar(256);not null"` // Описание проблемы
	FioClient string `gorm:"type:varchar(60);not null"`  // ФИО заявителя (свободный текст)

	StatusID uint         `gorm:"not null"`
	Status   AppealStatus `gorm:"foreignKey:StatusID"`

	DateStart  time.Time  `gorm:"not null"`           // Дата создания
	DateClose  *time.Time `gorm:"default:null"`       // Дата закрытия (только у терминальных)
	AppealDesc *string    `gorm:"type:varchar(256)"`  // Описание работ при закрытии
	FioStaff   *string    `gorm:"type:varchar(60)"`   // Дублирующее поле: ФИО последнего сотрудника

	// Клиент (компания), подавший заявку
	ClientID *uint   `gorm:"default:null"`
	Client   *Client `gorm:"foreignKey:ClientID"`

	// Сотрудник, взявший заявку в работу
	StaffOpenID *uint  `gorm:"default:null"`
	StaffOpen   *Staff `gorm:"foreignKey:StaffOpenID"`

	// Сотрудник, закрывший заявку
	StaffCloseID *uint  `gorm:"default:null"`
	StaffClose   *Staff `gorm:"foreignKey:StaffCloseID"`
}
