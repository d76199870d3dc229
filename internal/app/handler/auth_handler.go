package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"servicedesk/internal/app/config"
	"servicedesk/internal/app/ds"
	"servicedesk/internal/app/dto"
	"servicedesk/internal/app/redis"
	"servicedesk/internal/app/repository"
	"servicedesk/internal/app/role"
	"servicedesk/internal/app/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	Auth        *service.AuthService
	Repository  *repository.Repository
	RedisClient *redis.Client
	Config      *config.Config
}

func NewAuthHandler(auth *service.AuthService, r *repository.Repository, redisClient *redis.Client, config *config.Config) *AuthHandler {
	return &AuthHandler{
		Auth:        auth,
		Repository:  r,
		RedisClient: redisClient,
		Config:      config,
	}
}

// Login аутентификация пользователя
// @Summary Вход в систему
// @Description Аутентификация клиента, сотрудника или администратора с возвратом JWT токена
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Данные для входа"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	result, err := h.Auth.Login(request.Login, request.Password, role.Role(request.Role))
	if err != nil {
		if errors.Is(err, service.ErrWrongCredentials) || errors.Is(err, service.ErrNotFound) {
			h.errorHandler(ctx, http.StatusUnauthorized, errors.New("неверный логин или пароль"))
			return
		}
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token:     result.Token,
		TokenType: "Bearer",
		UserID:    result.UserID,
		Role:      string(result.Role),
		Login:     result.Login,
		Fio:       result.Fio,
		ExpiresIn: int(h.Config.JWT.ExpiresIn.Seconds()),
	})
}

// Logout выход пользователя из системы
// @Summary Выход из системы
// @Description Завершение сеанса пользователя с добавлением токена в blacklist
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(ctx *gin.Context) {
	tokenString := ctx.GetHeader("Authorization")
	if tokenString == "" {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("authorization header missing"))
		return
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	// Парсинг токена для получения TTL
	token, err := jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.Config.JWT.Token), nil
	})
	if err != nil {
		h.errorHandler(ctx, http.StatusUnauthorized, err)
		return
	}

	claims, ok := token.Claims.(*ds.JWTClaims)
	if !ok {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("invalid token claims"))
		return
	}

	// Токен блокируется на остаток своего времени жизни
	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl > 0 {
		if err := h.RedisClient.WriteJWTToBlacklist(ctx.Request.Context(), tokenString, ttl); err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Status:  "success",
		Message: "пользователь успешно вышел из системы",
	})
}

// Refresh обновление токена
// @Summary Обновление JWT токена
// @Description Выдаёт новый токен текущему пользователю
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/refresh [post]
func (h *AuthHandler) Refresh(ctx *gin.Context) {
	userID, userRole, err := getUserFromContext(ctx)
	if err != nil {
		h.errorHandler(ctx, http.StatusUnauthorized, err)
		return
	}

	result, err := h.Auth.Refresh(userID, userRole)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.errorHandler(ctx, http.StatusUnauthorized, err)
			return
		}
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token:     result.Token,
		TokenType: "Bearer",
		UserID:    result.UserID,
		Role:      string(result.Role),
		Login:     result.Login,
		Fio:       result.Fio,
		ExpiresIn: int(h.Config.JWT.ExpiresIn.Seconds()),
	})
}

// Profile получение профиля текущего пользователя
// @Summary Профиль пользователя
// @Description Возвращает информацию о текущем пользователе в зависимости от роли
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/auth/profile [get]
func (h *AuthHandler) Profile(ctx *gin.Context) {
	userID, userRole, err := getUserFromContext(ctx)
	if err != nil {
		h.errorHandler(ctx, http.StatusUnauthorized, err)
		return
	}

	switch userRole {
	case role.Client:
		client, err := h.Repository.GetClientByID(userID)
		if err != nil {
			h.errorHandler(ctx, http.StatusNotFound, errors.New("пользователь не найден"))
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"status": "success",
			"user": gin.H{
				"id":           client.ID,
				"login":        client.Login,
				"company_name": client.CompanyName,
				"phone":        client.Phone,
				"role":         userRole,
			},
		})
	case role.Staff:
		staff, err := h.Repository.GetStaffByID(userID)
		if err != nil {
			h.errorHandler(ctx, http.StatusNotFound, errors.New("пользователь не найден"))
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"status": "success",
			"user": gin.H{
				"id":    staff.ID,
				"login": staff.Login,
				"fio":   staff.Fio,
				"role":  userRole,
			},
		})
	case role.Admin:
		admin, err := h.Repository.GetAdminByID(userID)
		if err != nil {
			h.errorHandler(ctx, http.StatusNotFound, errors.New("пользователь не найден"))
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"status": "success",
			"user": gin.H{
				"id":    admin.ID,
				"login": admin.Login,
				"fio":   admin.Fio,
				"phone": admin.Phone,
				"role":  userRole,
			},
		})
	default:
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("неизвестная роль"))
	}
}

// errorHandler централизованная обработка ошибок
func (h *AuthHandler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	logrus.Error(err.Error())
	ctx.JSON(errorStatusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: err.Error(),
	})
}
