package handler

import (
	"net/http"

	"servicedesk/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CreateAdmin godoc
// @Summary      Создать администратора
// @Tags         admins
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateAdminRequest true "Данные администратора"
// @Success      201 {object} dto.SuccessResponse
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admins [post]
func (h *Handler) CreateAdmin(c *gin.Context) {
	var req dto.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.Error(err.Error())
		h.errorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	admin, err := h.Admins.CreateAdmin(req.Login, req.Password, req.Fio, req.Phone)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	h.successResponse(c, http.StatusCreated, "admin created", dto.AdminResponse{
		ID:    admin.ID,
		Login: admin.Login,
		Fio:   admin.Fio,
		Phone: admin.Phone,
	})
}

// UpdateAdmin godoc
// @Summary      Изменить учётные данные администратора
// @Description  Пустые поля сохраняют прежние значения
// @Tags         admins
// @Accept       json
// @Produce      json
// @Param        id path int true "ID администратора"
// @Param        request body dto.UpdateAdminRequest true "Новые учётные данные"
// @Success      200 {object} dto.SuccessResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admins/{id} [put]
func (h *Handler) UpdateAdmin(c *gin.Context) {
	adminID, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid admin ID")
		return
	}

	var req dto.UpdateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.Error(err.Error())
		h.errorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	admin, err := h.Admins.UpdateAdminCredentials(adminID, req.Login, req.Password, req.Phone)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "admin updated", dto.AdminResponse{
		ID:    admin.ID,
		Login: admin.Login,
		Fio:   admin.Fio,
		Phone: admin.Phone,
	})
}
