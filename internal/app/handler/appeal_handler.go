package handler

import (
	"net/http"
	"strconv"

	"servicedesk/internal/app/ds"
	"servicedesk/internal/app/dto"
	"servicedesk/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CreateAppeal godoc
// @Summary      Создать заявку
// @Description  Регистрирует новую заявку от имени текущего клиента
// @Tags         appeals
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateAppealRequest true "Данные заявки"
// @Success      201 {object} dto.SuccessResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/appeals [post]
func (h *Handler) CreateAppeal(c *gin.Context) {
	userID, _, err := getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	var req dto.CreateAppealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.Error(err.Error())
		h.errorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	appeal, err := h.Appeals.CreateAppeal(c.Request.Context(), req.Mechanism, req.Problem, req.FioClient, userID)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	h.successResponse(c, http.StatusCreated, "appeal created", appealToDTO(*appeal))
}

// TakeAppealToWork godoc
// @Summary      Взять заявку в работу
// @Description  Сотрудник принимает заявку и становится её исполнителем
// @Tags         appeals
// @Produce      json
// @Param        id path int true "ID заявки"
// @Success      200 {object} dto.SuccessResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/appeals/{id}/take [patch]
func (h *Handler) TakeAppealToWork(c *gin.Context) {
	userID, _, err := getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	appealID, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid appeal ID")
		return
	}

	appeal, err := h.Appeals.TakeToWork(c.Request.Context(), appealID, userID)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "appeal taken to work", appealToDTO(*appeal))
}

// CloseAppeal godoc
// @Summary      Закрыть заявку
// @Description  Сотрудник завершает заявку с описанием выполненных работ
// @Tags         appeals
// @Accept       json
// @Produce      json
// @Param        id path int true "ID заявки"
// @Param        request body dto.CloseAppealRequest true "Результат работ"
// @Success      200 {object} dto.SuccessResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/appeals/{id}/close [patch]
func (h *Handler) CloseAppeal(c *gin.Context) {
	userID, _, err := getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	appealID, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid appeal ID")
		return
	}

	var req dto.CloseAppealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.Error(err.Error())
		h.errorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	appeal, err := h.Appeals.CloseAppeal(c.Request.Context(), appealID, userID, req.Description, req.FioStaff)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "appeal closed", appealToDTO(*appeal))
}

// CancelAppeal godoc
// @Summary      Отменить заявку
// @Description  Клиент отменяет свою заявку
// @Tags         appeals
// @Produce      json
// @Param        id path int true "ID заявки"
// @Success      200 {object} dto.SuccessResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/appeals/{id}/cancel [patch]
func (h *Handler) CancelAppeal(c *gin.Context) {
	userID, _, err := getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	appealID, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid appeal ID")
		return
	}

	appeal, err := h.Appeals.CancelAppeal(c.Request.Context(), appealID, userID)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "appeal cancelled", appealToDTO(*appeal))
}

// GetNewAppeals godoc
// @Summary      Новые заявки
// @Description  Админ и сотрудники видят все новые заявки, клиент - только свои
// @Tags         appeals
// @Produce      json
// @Success      200 {object} dto.AppealListResponse
// @Security     BearerAuth
// @Router       /api/appeals/new [get]
func (h *Handler) GetNewAppeals(c *gin.Context) {
	h.listAppeals(c, ds.StatusNew)
}

// GetAppealsInProgress godoc
// @Summary      Заявки в работе
// @Tags         appeals
// @Produce      json
// @Success      200 {object} dto.AppealListResponse
// @Security     BearerAuth
// @Router       /api/appeals/in-progress [get]
func (h *Handler) GetAppealsInProgress(c *gin.Context) {
	h.listAppeals(c, ds.StatusInProgress)
}

// GetCompletedAppeals godoc
// @Summary      Завершённые заявки
// @Tags         appeals
// @Produce      json
// @Success      200 {object} dto.AppealListResponse
// @Security     BearerAuth
// @Router       /api/appeals/completed [get]
func (h *Handler) GetCompletedAppeals(c *gin.Context) {
	h.listAppeals(c, ds.StatusCompleted)
}

// GetAppealStatuses godoc
// @Summary      Справочник статусов заявок
// @Tags         appeals
// @Produce      json
// @Success      200 {object} dto.StatusListResponse
// @Router       /api/appeals/statuses [get]
func (h *Handler) GetAppealStatuses(c *gin.Context) {
	statuses, err := h.Appeals.GetStatuses()
	if err != nil {
		h.serviceError(c, err)
		return
	}

	names := make([]string, len(statuses))
	for i, st := range statuses {
		names[i] = string(st.Name)
	}
	c.JSON(http.StatusOK, dto.StatusListResponse{Statuses: names})
}

// listAppeals выбирает заявки по статусу; клиент получает только собственные
func (h *Handler) listAppeals(c *gin.Context, status ds.StatusName) {
	userID, userRole, err := getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	var appeals []ds.Appeal
	if userRole == role.Client {
		switch status {
		case ds.StatusNew:
			appeals, err = h.Appeals.GetNewAppealsByClient(userID)
		case ds.StatusInProgress:
			appeals, err = h.Appeals.GetAppealsInProgressByClient(userID)
		default:
			appeals, err = h.Appeals.GetCompletedAppealsByClient(userID)
		}
	} else {
		switch status {
		case ds.StatusNew:
			appeals, err = h.Appeals.GetNewAppeals()
		case ds.StatusInProgress:
			appeals, err = h.Appeals.GetAppealsInProgress()
		default:
			appeals, err = h.Appeals.GetCompletedAppeals()
		}
	}
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, appealsToDTO(appeals))
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
