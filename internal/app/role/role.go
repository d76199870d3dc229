package role

// Role — тег авторизации; у каждого принципала ровно одна роль
type Role string

const (
	Admin  Role = "admin"
	Staff  Role = "staff"
	Client Role = "client"
)

// Valid проверяет, что роль известна системе
func (r Role) Valid() bool {
	switch r {
	case Admin, Staff, Client:
		return true
	}
	return false
}
