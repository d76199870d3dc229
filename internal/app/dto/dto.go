package dto

import "time"

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Аутентификация ============

type LoginRequest struct {
	Login    string `json:"login" binding:"required,max=10"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=admin staff client"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
	Login     string `json:"login"`
	Fio       string `json:"fio"`
	ExpiresIn int    `json:"expires_in"`
}

// ============ Заявки ============

// Валидация длин полей выполняется здесь, на границе API,
// движок заявок длины не проверяет
type CreateAppealRequest struct {
	Mechanism string `json:"mechanism" binding:"required,max=25"`
	Problem   string `json:"problem" binding:"required,max=256"`
	FioClient string `json:"fio_client" binding:"required,max=60"`
}

type CloseAppealRequest struct {
	Description string `json:"description" binding:"required,max=256"`
	FioStaff    string `json:"fio_staff" binding:"required,max=60"`
}

type AppealResponse struct {
	ID         uint       `json:"id"`
	Mechanism  string     `json:"mechanism"`
	Problem    string     `json:"problem"`
	FioClient  string     `json:"fio_client"`
	Status     string     `json:"status"`
	DateStart  time.Time  `json:"date_start"`
	DateClose  *time.Time `json:"date_close,omitempty"`
	AppealDesc string     `json:"appeal_desc,omitempty"`
	FioStaff   string     `json:"fio_staff,omitempty"`
	Company    string     `json:"company,omitempty"`
	ClientID   uint       `json:"client_id,omitempty"`
	StaffOpen  string     `json:"staff_open,omitempty"`
	StaffClose string     `json:"staff_close,omitempty"`
}

type AppealListResponse struct {
	Appeals []AppealResponse `json:"appeals"`
	Total   int              `json:"total"`
}

type StatusListResponse struct {
	Statuses []string `json:"statuses"`
}

// ============ Клиенты ============

type CreateClientRequest struct {
	Login       string `json:"login" binding:"required,max=10"`
	Password    string `json:"password" binding:"required,max=10"`
	Phone       string `json:"phone" binding:"required,max=12"`
	CompanyName string `json:"company_name" binding:"required,max=50"`
}

type UpdateClientRequest struct {
	CompanyName string `json:"company_name" binding:"omitempty,max=50"`
	Phone       string `json:"phone" binding:"omitempty,max=12"`
	Login       string `json:"login" binding:"omitempty,max=10"`
	Password    string `json:"password" binding:"omitempty,max=10"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,max=10"`
}

type ClientResponse struct {
	ID          uint   `json:"id"`
	Login       string `json:"login"`
	Phone       string `json:"phone"`
	CompanyName string `json:"company_name"`
	Linked      bool   `json:"telegram_linked"`
	Appeals     int    `json:"appeals,omitempty"`
}

type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int              `json:"total"`
}

// ============ Сотрудники ============

type CreateStaffRequest struct {
	Login    string `json:"login" binding:"required,max=10"`
	Password string `json:"password" binding:"required,max=10"`
	Fio      string `json:"fio" binding:"required,max=60"`
}

type UpdateStaffRequest struct {
	Fio      string `json:"fio" binding:"omitempty,max=60"`
	Login    string `json:"login" binding:"omitempty,max=10"`
	Password string `json:"password" binding:"omitempty,max=10"`
}

type StaffResponse struct {
	ID    uint   `json:"id"`
	Login string `json:"login"`
	Fio   string `json:"fio"`
}

type StaffAppealsResponse struct {
	Staff  StaffResponse    `json:"staff"`
	Opened []AppealResponse `json:"opened"`
	Closed []AppealResponse `json:"closed"`
}

type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
	Total int             `json:"total"`
}

// ============ Администраторы ============

type CreateAdminRequest struct {
	Login    string `json:"login" binding:"required,max=10"`
	Password string `json:"password" binding:"required,max=10"`
	Fio      string `json:"fio" binding:"required,max=60"`
	Phone    string `json:"phone" binding:"required,max=12"`
}

type UpdateAdminRequest struct {
	Login    string `json:"login" binding:"omitempty,max=10"`
	Password string `json:"password" binding:"omitempty,max=10"`
	Phone    string `json:"phone" binding:"omitempty,max=12"`
}

type AdminResponse struct {
	ID    uint   `json:"id"`
	Login string `json:"login"`
	Fio   string `json:"fio"`
	Phone string `json:"phone"`
}

// ============ Справочная информация ============

type UpdateInfoRequest struct {
	Text string `json:"text" binding:"required,max=255"`
}

type InfoResponse struct {
	Text string `json:"text"`
}
