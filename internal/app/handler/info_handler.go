package handler

import (
	"net/http"

	"servicedesk/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GetInfo godoc
// @Summary      Справка о программе
// @Tags         info
// @Produce      json
// @Success      200 {object} dto.InfoResponse
// @Router       /api/info [get]
func (h *Handler) GetInfo(c *gin.Context) {
	info, err := h.Info.GetAboutInfo()
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.InfoResponse{Text: info.TextInfo})
}

// UpdateInfo godoc
// @Summary      Обновить справку о программе
// @Tags         info
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateInfoRequest true "Текст справки"
// @Success      200 {object} dto.SuccessResponse
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/info [put]
func (h *Handler) UpdateInfo(c *gin.Context) {
	var req dto.UpdateInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.Error(err.Error())
		h.errorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	info, err := h.Info.UpdateAboutInfo(req.Text)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "info updated", dto.InfoResponse{Text: info.TextInfo})
}
