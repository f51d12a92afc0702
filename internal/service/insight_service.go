package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/loyalty-pro/internal/domain"
)

// NoCustomerDataMessage возвращается вместо обращения к модели, если у админа еще нет
// клиентов.
const NoCustomerDataMessage = "There is no customer data to analyze. Please add transactions first."

// Формат системной инструкции и пользовательского запроса — часть наблюдаемого
// контракта: пользователи сравнивают ответы между запусками.
const analystSystemInstruction = `You are a world-class data analyst for a high-end customer loyalty program called "Loyalty Pro".
Your task is to analyze the provided customer data and answer the user's question with actionable insights.

The data is provided as an array of JSON objects. Each object represents a customer.
- 'mobile': Customer's mobile number.
- 'points': Current loyalty points balance.
- 'totalSpent': Lifetime spending in Rupees (₹).
- 'history': An array of their past transactions, including 'date', 'bill' amount, and 'points' earned.
- 'customerId': A unique anonymous identifier for the customer.

Based on the data provided, please answer the user's question. Provide a concise, well-formatted, and insightful response. Use markdown for formatting if it helps clarity (e.g., lists, bold text).`

const userContentTemplate = "Here is the customer data:\n```json\n%s\n```\n\nUser's Question: \"%s\"\n"

// InsightService готовит обезличенные данные клиентов и делегирует вопрос внешнему
// генератору инсайтов. Состояния между вызовами нет.
type InsightService struct {
	client InsightClient
}

// NewInsightService создает сервис. client равный nil означает, что генератор не
// сконфигурирован (нет ключа API): остальные операции системы при этом работают,
// а запросы инсайтов завершаются domain.ErrInsightUnavailable.
func NewInsightService(client InsightClient) *InsightService {
	return &InsightService{client: client}
}

// sanitizedCustomer — клиент без прямых идентификаторов (Name, PIN удалены).
type sanitizedCustomer struct {
	Mobile     string                `json:"mobile"`
	Points     int64                 `json:"points"`
	TotalSpent decimal.Decimal       `json:"totalSpent"`
	History    []domain.HistoryEntry `json:"history"`
	CustomerID string                `json:"customerId"`
}

// CustomerInsights отвечает на вопрос prompt по данным customers.
//
// Алгоритм:
//  1. Пустой список клиентов — фиксированный совет без обращения к модели.
//  2. Каждый клиент обезличивается: Name и PIN отбрасываются, добавляется псевдоним
//     CUST-<последние 4 цифры mobile>.
//  3. Обезличенный список сериализуется в JSON и вместе с системной инструкцией и
//     вопросом уходит одним запросом в модель.
//  4. Текст ответа возвращается как есть.
func (s *InsightService) CustomerInsights(
	ctx context.Context,
	customers []domain.Customer,
	prompt string,
) (string, error) {
	if len(customers) == 0 {
		return NoCustomerDataMessage, nil
	}

	if s.client == nil {
		return "", domain.ErrInsightUnavailable
	}

	sanitized := make([]sanitizedCustomer, 0, len(customers))
	for _, customer := range customers {
		sanitized = append(sanitized, sanitizedCustomer{
			Mobile:     customer.Mobile,
			Points:     customer.Points,
			TotalSpent: customer.TotalSpent,
			History:    customer.History,
			CustomerID: pseudonymousID(customer.Mobile),
		})
	}

	payload, jsonErr := json.MarshalIndent(sanitized, "", "  ")
	if jsonErr != nil {
		return "", fmt.Errorf("serializing customer data: %s", jsonErr.Error())
	}

	userContent := fmt.Sprintf(userContentTemplate, payload, prompt)

	text, genErr := s.client.GenerateContent(ctx, analystSystemInstruction, userContent)
	if genErr != nil {
		return "", domain.NewUpstreamError(genErr)
	}
	if text == "" {
		return "", domain.NewUpstreamError(errors.New("no response from model"))
	}
	return text, nil
}

// pseudonymousID строит псевдоним по последним 4 цифрам номера. Коллизии при совпадении
// суффиксов возможны и приняты как допустимое приближение.
func pseudonymousID(mobile string) string {
	suffix := mobile
	if len(mobile) > 4 { //nolint:mnd
		suffix = mobile[len(mobile)-4:]
	}
	return "CUST-" + suffix
}
