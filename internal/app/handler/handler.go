package handler

import (
	"errors"
	"net/http"

	"servicedesk/internal/app/ds"
	"servicedesk/internal/app/dto"
	"servicedesk/internal/app/report"
	"servicedesk/internal/app/role"
	"servicedesk/internal/app/service"
	"servicedesk/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler содержит обработчики REST API
type Handler struct {
	Appeals *service.AppealService
	Clients *service.ClientService
	Staff   *service.StaffService
	Admins  *service.AdminService
	Info    *service.InfoService
	Reports *report.Service
	Storage *storage.MinIOClient
}

func NewHandler(appeals *service.AppealService, clients *service.ClientService, staff *service.StaffService, admins *service.AdminService, info *service.InfoService, reports *report.Service, minioClient *storage.MinIOClient) *Handler {
	return &Handler{
		Appeals: appeals,
		Clients: clients,
		Staff:   staff,
		Admins:  admins,
		Info:    info,
		Reports: reports,
		Storage: minioClient,
	}
}

// ============ Вспомогательные функции ============

func (h *Handler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *Handler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// serviceError переводит ошибку сервиса в HTTP-ответ
func (h *Handler) serviceError(c *gin.Context, err error) {
	logrus.Error(err.Error())

	switch {
	case errors.Is(err, service.ErrNotFound):
		h.errorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrIllegalTransition):
		h.errorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrLoginTaken), errors.Is(err, service.ErrInfoTooLong):
		h.errorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrWrongCredentials):
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
	default:
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
	}
}

// getUserFromContext возвращает id и роль принципала, установленные middleware
func getUserFromContext(c *gin.Context) (uint, role.Role, error) {
	userID, exists := c.Get("userID")
	if !exists {
		logrus.Warn("userID not found in context")
		return 0, "", errors.New("user not authenticated")
	}

	userRole, _ := c.Get("userRole")
	r, _ := userRole.(role.Role)

	id, ok := userID.(uint)
	if !ok {
		logrus.Errorf("getUserFromContext: invalid userID type: %T", userID)
		return 0, r, errors.New("invalid user ID")
	}

	return id, r, nil
}

// ============ Преобразование в DTO ============

func appealToDTO(a ds.Appeal) dto.AppealResponse {
	resp := dto.AppealResponse{
		ID:        a.ID,
		Mechanism: a.Mechanism,
		Problem:   a.Problem,
		FioClient: a.FioClient,
		Status:    string(a.Status.Name),
		DateStart: a.DateStart,
		DateClose: a.DateClose,
	}
	if a.AppealDesc != nil {
		resp.AppealDesc = *a.AppealDesc
	}
	if a.FioStaff != nil {
		resp.FioStaff = *a.FioStaff
	}
	if a.Client != nil {
		resp.Company = a.Client.CompanyName
		resp.ClientID = a.Client.ID
	} else if a.ClientID != nil {
		resp.ClientID = *a.ClientID
	}
	if a.StaffOpen != nil {
		resp.StaffOpen = a.StaffOpen.Fio
	}
	if a.StaffClose != nil {
		resp.StaffClose = a.StaffClose.Fio
	}
	return resp
}

func appealsToDTO(appeals []ds.Appeal) dto.AppealListResponse {
	items := make([]dto.AppealResponse, len(appeals))
	for i, a := range appeals {
		items[i] = appealToDTO(a)
	}
	return dto.AppealListResponse{Appeals: items, Total: len(items)}
}

func clientToDTO(c ds.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:          c.ID,
		Login:       c.Login,
		Phone:       c.Phone,
		CompanyName: c.CompanyName,
		Linked:      c.TelegramID != nil && *c.TelegramID != "",
		Appeals:     len(c.Appeals),
	}
}

func staffToDTO(s ds.Staff) dto.StaffResponse {
	return dto.StaffResponse{
		ID:    s.ID,
		Login: s.Login,
		Fio:   s.Fio,
	}
}
