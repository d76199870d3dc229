package handler

import (
	"net/http"

	"servicedesk/internal/app/dto"
	"servicedesk/internal/app/report"
	"servicedesk/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// CreateClient godoc
// @Summary      Создать клиента
// @Description  Админ регистрирует новую компанию-клиента
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateClientRequest true "Данные клиента"
// @Success      201 {object} dto.SuccessResponse
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/clients [post]
func (h *Handler) CreateClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.Error(err.Error())
		h.errorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	client, err := h.Clients.CreateClient(req.Login, req.Password, req.Phone, req.CompanyName)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	h.successResponse(c, http.StatusCreated, "client created", clientToDTO(*client))
}

// GetAllClients godoc
// @Summary      Список клиентов
// @Tags         clients
// @Produce      json
// @Success      200 {object} dto.ClientListResponse
// @Security     BearerAuth
// @Router       /api/clients [get]
func (h *Handler) GetAllClients(c *gin.Context) {
	clients, err := h.Clients.GetAllClients()
	if err != nil {
		h.serviceError(c, err)
		return
	}

	items := make([]dto.ClientResponse, len(clients))
	for i, cl := range clients {
		items[i] = clientToDTO(cl)
	}
	c.JSON(http.StatusOK, dto.ClientListResponse{Clients: items, Total: len(items)})
}

// GetClient godoc
// @Summary      Карточка клиента
// @Description  Клиент с историей заявок; клиентская роль видит только себя
// @Tags         clients
// @Produce      json
// @Param        id path int true "ID клиента"
// @Success      200 {object} dto.SuccessResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/clients/{id} [get]
func (h *Handler) GetClient(c *gin.Context) {
	clientID, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid client ID")
		return
	}

	userID, userRole, err := getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}
	if userRole == role.Client && userID != clientID {
		h.errorResponse(c, http.StatusForbidden, "access denied")
		return
	}

	client, err := h.Clients.GetClientWithAppeals(clientID)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	resp := clientToDTO(*client)
	appeals := make([]dto.AppealResponse, len(client.Appeals))
	for i, a := range client.Appeals {
		appeals[i] = appealToDTO(a)
	}
	h.successResponse(c, http.StatusOK, "", gin.H{
		"client":  resp,
		"appeals": appeals,
	})
}

// UpdateClient godoc
// @Summary      Изменить клиента
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id path int true "ID клиента"
// @Param        request body dto.UpdateClientRequest true "Изменяемые поля"
// @Success      200 {object} dto.SuccessResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/clients/{id} [put]
func (h *Handler) UpdateClient(c *gin.Context) {
	clientID, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid client ID")
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.Error(err.Error())
		h.errorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Clients.UpdateClient(clientID, req.CompanyName, req.Phone, req.Login, req.Password); err != nil {
		h.serviceError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "client updated", nil)
}

// DeleteClient godoc
// @Summary      Удалить клиента
// @Tags         clients
// @Produce      json
// @Param        id path int true "ID клиента"
// @Success      200 {object} dto.SuccessResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/clients/{id} [delete]
func (h *Handler) DeleteClient(c *gin.Context) {
	clientID, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid client ID")
		return
	}

	client, err := h.Clients.GetClientByID(clientID)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	if err := h.Clients.DeleteClient(clientID); err != nil {
		h.serviceError(c, err)
		return
	}

	// Кэшированный отчёт удалённого клиента больше не нужен
	if err := h.Storage.DeleteReport(report.ObjectName(client)); err != nil {
		logrus.Warnf("client %d: report cleanup failed: %v", clientID, err)
	}

	h.successResponse(c, http.StatusOK, "client deleted", nil)
}

// UpdateClientPassword godoc
// @Summary      Сменить пароль клиента
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id path int true "ID клиента"
// @Param        request body dto.UpdatePasswordRequest true "Текущий и новый пароли"
// @Success      200 {object} dto.SuccessResponse
// @Failure      401 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/clients/{id}/password [patch]
func (h *Handler) UpdateClientPassword(c *gin.Context) {
	clientID, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid client ID")
		return
	}

	userID, userRole, err := getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}
	if userRole == role.Client && userID != clientID {
		h.errorResponse(c, http.StatusForbidden, "access denied")
		return
	}

	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.Error(err.Error())
		h.errorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Clients.UpdatePassword(clientID, req.CurrentPassword, req.NewPassword); err != nil {
		h.serviceError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "password updated", nil)
}

// DownloadClientReport godoc
// @Summary      Отчёт по завершённым заявкам клиента
// @Description  Возвращает xlsx-файл; при refresh=true файл пересобирается
// @Tags         clients
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id path int true "ID клиента"
// @Param        refresh query bool false "Пересобрать отчёт"
// @Param        link query bool false "Вернуть временную ссылку вместо файла"
// @Success      200 {file} binary
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/clients/{id}/report [get]
func (h *Handler) DownloadClientReport(c *gin.Context) {
	clientID, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid client ID")
		return
	}

	userID, userRole, err := getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}
	if userRole == role.Client && userID != clientID {
		h.errorResponse(c, http.StatusForbidden, "access denied")
		return
	}

	client, err := h.Clients.GetClientByID(clientID)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	appeals, err := h.Appeals.GetCompletedAppealsByClient(clientID)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	var data []byte
	if c.Query("refresh") == "true" {
		data, err = h.Reports.RegenerateReport(c.Request.Context(), client, appeals)
	} else {
		data, err = h.Reports.GetOrCreateReport(c.Request.Context(), client, appeals)
	}
	if err != nil {
		h.serviceError(c, err)
		return
	}

	// link=true отдаёт временную ссылку на артефакт вместо самого файла
	if c.Query("link") == "true" {
		url, err := h.Storage.GetReportURL(report.ObjectName(client))
		if err != nil {
			h.serviceError(c, err)
			return
		}
		h.successResponse(c, http.StatusOK, "", gin.H{"url": url})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+report.ObjectName(client)+"\"")
	c.Data(http.StatusOK, xlsxContentType, data)
}
