package handler

import (
	"net/http"

	"servicedesk/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CreateStaff godoc
// @Summary      Создать сотрудника
// @Tags         staff
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateStaffRequest true "Данные сотрудника"
// @Success      201 {object} dto.SuccessResponse
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/staff [post]
func (h *Handler) CreateStaff(c *gin.Context) {
	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.Error(err.Error())
		h.errorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	staff, err := h.Staff.CreateStaff(req.Login, req.Password, req.Fio)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	h.successResponse(c, http.StatusCreated, "staff created", staffToDTO(*staff))
}

// GetAllStaff godoc
// @Summary      Список сотрудников
// @Tags         staff
// @Produce      json
// @Success      200 {object} dto.StaffListResponse
// @Security     BearerAuth
// @Router       /api/staff [get]
func (h *Handler) GetAllStaff(c *gin.Context) {
	staff, err := h.Staff.GetAllStaff()
	if err != nil {
		h.serviceError(c, err)
		return
	}

	items := make([]dto.StaffResponse, len(staff))
	for i, s := range staff {
		items[i] = staffToDTO(s)
	}
	c.JSON(http.StatusOK, dto.StaffListResponse{Staff: items, Total: len(items)})
}

// GetStaffAppeals godoc
// @Summary      Заявки сотрудника
// @Description  Возвращает сотрудника вместе с принятыми и закрытыми им заявками
// @Tags         staff
// @Produce      json
// @Param        id path int true "ID сотрудника"
// @Success      200 {object} dto.StaffAppealsResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/staff/{id}/appeals [get]
func (h *Handler) GetStaffAppeals(c *gin.Context) {
	staffID, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid staff ID")
		return
	}

	staff, err := h.Staff.GetStaffAppeals(staffID)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	opened := make([]dto.AppealResponse, len(staff.OpenedAppeals))
	for i, a := range staff.OpenedAppeals {
		opened[i] = appealToDTO(a)
	}
	closed := make([]dto.AppealResponse, len(staff.ClosedAppeals))
	for i, a := range staff.ClosedAppeals {
		closed[i] = appealToDTO(a)
	}

	c.JSON(http.StatusOK, dto.StaffAppealsResponse{
		Staff:  staffToDTO(*staff),
		Opened: opened,
		Closed: closed,
	})
}

// UpdateStaff godoc
// @Summary      Изменить сотрудника
// @Tags         staff
// @Accept       json
// @Produce      json
// @Param        id path int true "ID сотрудника"
// @Param        request body dto.UpdateStaffRequest true "Изменяемые поля"
// @Success      200 {object} dto.SuccessResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/staff/{id} [put]
func (h *Handler) UpdateStaff(c *gin.Context) {
	staffID, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid staff ID")
		return
	}

	var req dto.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.Error(err.Error())
		h.errorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Staff.EditStaff(staffID, req.Fio, req.Login, req.Password); err != nil {
		h.serviceError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "staff updated", nil)
}

// DeleteStaff godoc
// @Summary      Удалить сотрудника
// @Tags         staff
// @Produce      json
// @Param        id path int true "ID сотрудника"
// @Success      200 {object} dto.SuccessResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/staff/{id} [delete]
func (h *Handler) DeleteStaff(c *gin.Context) {
	staffID, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid staff ID")
		return
	}

	if err := h.Staff.RemoveStaff(staffID); err != nil {
		h.serviceError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "staff deleted", nil)
}
