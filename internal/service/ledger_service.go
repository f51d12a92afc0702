package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsdevblog/loyalty-pro/internal/domain"
)

// LedgerService владеет таблицей админов и клиентов. Каждая операция — цикл
// load/mutate/save над единым документом хранилища; мутирующие операции сериализованы
// одним мьютексом. Документ глобальный (Register конкурирует с любой транзакцией за
// один и тот же блоб), поэтому блокировка по отдельному админу была бы недостаточной.
type LedgerService struct {
	mu    sync.Mutex
	store TableStore
	psswd PasswordHasher
	nowFn func() time.Time
}

func NewLedgerService(store TableStore, hasher PasswordHasher) *LedgerService {
	return &LedgerService{
		store: store,
		psswd: hasher,
		nowFn: time.Now,
	}
}

type RegisterAdminArgs struct {
	Name     string
	Username string
	Password string
}

// Register создает админа с пустым списком клиентов. Возвращает domain.ErrUsernameTaken
// если username уже занят; частично созданных записей при ошибке не остается.
func (s *LedgerService) Register(ctx context.Context, args RegisterAdminArgs) (*domain.AdminView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, loadErr := s.store.Load(ctx)
	if loadErr != nil {
		return nil, fmt.Errorf("registering admin: %w", loadErr)
	}

	if _, exists := table[args.Username]; exists {
		return nil, domain.ErrUsernameTaken
	}

	hash, hashErr := s.psswd.HashPassword(args.Password)
	if hashErr != nil {
		return nil, fmt.Errorf("registering admin: %s", hashErr.Error())
	}

	admin := domain.Admin{
		Username:  args.Username,
		Password:  hash,
		Name:      args.Name,
		Customers: []domain.Customer{},
	}
	table[args.Username] = admin

	if saveErr := s.store.Save(ctx, table); saveErr != nil {
		return nil, fmt.Errorf("registering admin: %w", saveErr)
	}

	view := admin.View()
	return &view, nil
}

type LoginAdminArgs struct {
	Username string
	Password string
}

// Login сверяет пару username/пароль. Неизвестный username и неверный пароль дают одну
// и ту же ошибку domain.ErrInvalidCredentials.
func (s *LedgerService) Login(ctx context.Context, args LoginAdminArgs) (*domain.AdminView, error) {
	table, loadErr := s.store.Load(ctx)
	if loadErr != nil {
		return nil, fmt.Errorf("logging in admin: %w", loadErr)
	}

	admin, exists := table[args.Username]
	if !exists || !s.psswd.ComparePassword(args.Password, admin.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	view := admin.View()
	return &view, nil
}

// Customers возвращает клиентов админа в порядке первой транзакции. Для админа без
// клиентов возвращает пустой срез, а не ошибку.
func (s *LedgerService) Customers(ctx context.Context, username string) ([]domain.Customer, error) {
	table, loadErr := s.store.Load(ctx)
	if loadErr != nil {
		return nil, fmt.Errorf("fetching customers: %w", loadErr)
	}

	admin, exists := table[username]
	if !exists {
		return nil, domain.ErrAdminNotFound
	}

	if admin.Customers == nil {
		return []domain.Customer{}, nil
	}
	return admin.Customers, nil
}

// CustomerDraft — данные клиента от вызывающей стороны. Name и PIN используются только
// при создании новой записи: идентичность существующего клиента транзакцией не
// перезаписывается.
type CustomerDraft struct {
	Mobile string
	Name   string
	PIN    string
}

// ApplyTransaction начисляет баллы и сумму чека клиенту админа username. Клиент ищется
// по Mobile: найденному добавляются points/bill и запись истории, иначе в конец списка
// добавляется новый клиент из draft.
//
// Операция не идемпотентна: повторная отправка той же транзакции удвоит начисления.
// Знак и величина bill/points не проверяются, отрицательные значения уменьшают итоги.
func (s *LedgerService) ApplyTransaction(
	ctx context.Context,
	username string,
	draft CustomerDraft,
	transaction domain.Transaction,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, loadErr := s.store.Load(ctx)
	if loadErr != nil {
		return fmt.Errorf("applying transaction: %w", loadErr)
	}

	admin, exists := table[username]
	if !exists {
		return domain.ErrAdminNotFound
	}

	entry := domain.HistoryEntry{
		Date:   s.nowFn().UTC(),
		Bill:   transaction.Bill,
		Points: transaction.Points,
	}

	existingIndex := -1
	for i, customer := range admin.Customers {
		if customer.Mobile == draft.Mobile {
			existingIndex = i
			break
		}
	}

	if existingIndex >= 0 {
		customer := admin.Customers[existingIndex]
		customer.Points += transaction.Points
		customer.TotalSpent = customer.TotalSpent.Add(transaction.Bill)
		customer.History = append(customer.History, entry)
		admin.Customers[existingIndex] = customer
	} else {
		admin.Customers = append(admin.Customers, domain.Customer{
			Mobile:     draft.Mobile,
			Name:       draft.Name,
			PIN:        draft.PIN,
			Points:     transaction.Points,
			TotalSpent: transaction.Bill,
			History:    []domain.HistoryEntry{entry},
		})
	}

	table[username] = admin

	if saveErr := s.store.Save(ctx, table); saveErr != nil {
		return fmt.Errorf("applying transaction: %w", saveErr)
	}
	return nil
}
