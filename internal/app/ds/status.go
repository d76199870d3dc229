package ds

// StatusName — фиксированный словарь состояний заявки.
// Справочные данные: четыре строки создаются миграцией и не меняются в рантайме.
type StatusName string

const (
	StatusNew        StatusName = "new"
	StatusInProgress StatusName = "in_progress"
	StatusCompleted  StatusName = "completed"
	StatusCancel     StatusName = "cancel"
)

// AllStatuses возвращает полный словарь статусов (порядок фиксирован, используется при сидировании)
func AllStatuses() []StatusName {
	return []StatusName{StatusNew, StatusInProgress, StatusCompleted, StatusCancel}
}

// Valid проверяет, что имя входит в словарь
func (s StatusName) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusCompleted, StatusCancel:
		return true
	}
	return false
}

// Terminal — терминальные состояния: дата закрытия заполнена только у них
func (s StatusName) Terminal() bool {
	return s == StatusCompleted || s == StatusCancel
}

// 5. Таблица статусов заявок - ТОЛЬКО справочная информация
type AppealStatus struct {
	ID   uint       `gorm:"primaryKey"`
	Name StatusName `gorm:"column:st;type:varchar(15);unique;not null"`
}

// TableName сохраняет историческое имя таблицы
func (AppealStatus) TableName() string {
	return "appeal_statuses"
}
