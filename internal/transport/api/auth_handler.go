package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/loyalty-pro/internal/domain"
	"github.com/fsdevblog/loyalty-pro/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	ledgerSvs LedgerServicer
}

func NewAuthHandler(ledgerSvs LedgerServicer) *AuthHandler {
	return &AuthHandler{
		ledgerSvs: ledgerSvs,
	}
}

type RegisterParams struct {
	Name     string `binding:"required,min=1,max=100" json:"name"`
	Username string `binding:"required,min=1,max=30"  json:"username"`
	Password string `binding:"required,min=6,max=255" json:"password"`
}

type AdminResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Register POST RouteGroup + RegisterRoute. Регистрирует админа и возвращает его
// урезанное представление без пароля.
func (h *AuthHandler) Register(c *gin.Context) {
	var params RegisterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs.Error()})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	admin, createErr := h.ledgerSvs.Register(ctx, service.RegisterAdminArgs{
		Name:     params.Name,
		Username: params.Username,
		Password: params.Password,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrUsernameTaken) {
			_ = c.AbortWithError(http.StatusConflict, domain.ErrUsernameTaken).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, createErr).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": AdminResponse{
		Username: admin.Username,
		Name:     admin.Name,
	}})
}

type LoginParams struct {
	Username string `binding:"required,min=1,max=30"  json:"username"`
	Password string `binding:"required,min=1,max=255" json:"password"`
}

// Login POST RouteGroup + LoginRoute. Аутентификация по паре username/пароль.
// Неизвестный username и неверный пароль дают один и тот же ответ.
func (h *AuthHandler) Login(c *gin.Context) {
	var params LoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	admin, loginErr := h.ledgerSvs.Login(ctx, service.LoginAdminArgs{
		Username: params.Username,
		Password: params.Password,
	})
	if loginErr != nil {
		if errors.Is(loginErr, domain.ErrInvalidCredentials) {
			_ = c.AbortWithError(http.StatusUnauthorized, domain.ErrInvalidCredentials).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, loginErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": AdminResponse{
		Username: admin.Username,
		Name:     admin.Name,
	}})
}
