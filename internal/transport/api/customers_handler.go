package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/loyalty-pro/internal/domain"
	"github.com/fsdevblog/loyalty-pro/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type CustomersHandler struct {
	ledgerSvs LedgerServicer
}

func NewCustomersHandler(ledgerSvs LedgerServicer) *CustomersHandler {
	return &CustomersHandler{
		ledgerSvs: ledgerSvs,
	}
}

type HistoryEntryResponse struct {
	Date   time.Time `json:"date"`
	Bill   float64   `json:"bill"`
	Points int64     `json:"points"`
}

type CustomerResponse struct {
	Mobile     string                 `json:"mobile"`
	Name       string                 `json:"name"`
	Points     int64                  `json:"points"`
	TotalSpent float64                `json:"totalSpent"`
	History    []HistoryEntryResponse `json:"history"`
}

func newCustomerResponse(customer domain.Customer) CustomerResponse {
	history := make([]HistoryEntryResponse, 0, len(customer.History))
	for _, entry := range customer.History {
		history = append(history, HistoryEntryResponse{
			Date:   entry.Date,
			Bill:   entry.Bill.InexactFloat64(),
			Points: entry.Points,
		})
	}
	return CustomerResponse{
		Mobile:     customer.Mobile,
		Name:       customer.Name,
		Points:     customer.Points,
		TotalSpent: customer.TotalSpent.InexactFloat64(),
		History:    history,
	}
}

// Index GET RouteGroup + CustomersRoute. Список клиентов админа в порядке первой
// транзакции. Для админа без клиентов — пустой список.
func (h *CustomersHandler) Index(c *gin.Context) {
	username := c.Param("username")

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customers, fetchErr := h.ledgerSvs.Customers(ctx, username)
	if fetchErr != nil {
		if errors.Is(fetchErr, domain.ErrAdminNotFound) {
			_ = c.AbortWithError(http.StatusNotFound, domain.ErrAdminNotFound).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, fetchErr).
			SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		response = append(response, newCustomerResponse(customer))
	}

	c.JSON(http.StatusOK, gin.H{"customers": response})
}

// TransactionParams — клиент и транзакция одним запросом. Name и PIN нужны только при
// первой покупке клиента; знак и величина bill/points намеренно не проверяются.
type TransactionParams struct {
	Mobile string          `binding:"required,min=4,max=15" json:"mobile"`
	Name   string          `binding:"omitempty,max=100"     json:"name"`
	PIN    string          `binding:"omitempty,max=10"      json:"pin"`
	Bill   decimal.Decimal `json:"bill"`
	Points int64           `json:"points"`
}

// CreateTransaction POST RouteGroup + TransactionsRoute. Начисляет покупку клиенту
// админа из пути.
func (h *CustomersHandler) CreateTransaction(c *gin.Context) {
	username := c.Param("username")

	var params TransactionParams
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

	applyErr := h.ledgerSvs.ApplyTransaction(ctx, username,
		service.CustomerDraft{
			Mobile: params.Mobile,
			Name:   params.Name,
			PIN:    params.PIN,
		},
		domain.Transaction{
			Bill:   params.Bill,
			Points: params.Points,
		},
	)
	if applyErr != nil {
		if errors.Is(applyErr, domain.ErrAdminNotFound) {
			_ = c.AbortWithError(http.StatusNotFound, domain.ErrAdminNotFound).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, applyErr).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction processed!"})
}
