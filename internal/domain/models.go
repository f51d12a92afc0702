package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Admin — аккаунт владельца магазина. Пароль хранится в виде bcrypt-хеша и никогда
// не попадает в ответы наружу (для этого есть AdminView).
type Admin struct {
	Username  string     `json:"username"`
	Password  string     `json:"password"`
	Name      string     `json:"name"`
	Customers []Customer `json:"customers"`
}

// View возвращает урезанное представление админа без пароля.
func (a Admin) View() AdminView {
	return AdminView{
		Username: a.Username,
		Name:     a.Name,
	}
}

// AdminView — представление админа, безопасное для выдачи клиенту.
type AdminView struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Customer — участник программы лояльности. Уникален по Mobile в пределах одного админа,
// глобальной уникальности номера нет.
type Customer struct {
	Mobile     string          `json:"mobile"`
	Name       string          `json:"name"`
	PIN        string          `json:"pin"`
	Points     int64           `json:"points"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
	History    []HistoryEntry  `json:"history"`
}

// HistoryEntry — одна покупка в истории клиента. Date проставляется сервером в момент
// обработки транзакции, а не приходит от вызывающей стороны.
type HistoryEntry struct {
	Date   time.Time       `json:"date"`
	Bill   decimal.Decimal `json:"bill"`
	Points int64           `json:"points"`
}

// Transaction — пара сумма чека / начисляемые баллы. Самостоятельной сущностью не
// является, только поглощается в Customer.History.
type Transaction struct {
	Bill   decimal.Decimal
	Points int64
}

// Table — вся таблица админов, единый персистентный документ. Ключ — username.
type Table map[string]Admin

// Clone возвращает глубокую копию таблицы. Нужен хранилищам, которые держат таблицу
// в памяти и не должны делить срезы с вызывающим кодом.
func (t Table) Clone() Table {
	clone := make(Table, len(t))
	for username, admin := range t {
		customers := make([]Customer, len(admin.Customers))
		for i, customer := range admin.Customers {
			history := make([]HistoryEntry, len(customer.History))
			copy(history, customer.History)
			customer.History = history
			customers[i] = customer
		}
		admin.Customers = customers
		clone[username] = admin
	}
	return clone
}
