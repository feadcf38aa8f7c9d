package repositories

// In-memory store implementations mirroring the mongo-backed repositories'
// semantics: duplicate-key rejection on account email, case-insensitive
// substring search over the catalog, newest-first listings. They satisfy the
// store interfaces declared in app/services and back handler and service
// tests that should not need a running MongoDB.

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cafedelights/api/app/models"
)

// ─── Accounts ─────────────────────────────────────────────────────────────────

type MemoryAccountStore struct {
	mu       sync.RWMutex
	accounts map[string]models.Account // keyed by id
}

func NewMemoryAccountStore() *MemoryAccountStore {
	return &MemoryAccountStore{accounts: make(map[string]models.Account)}
}

func (s *MemoryAccountStore) Insert(_ context.Context, account *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.accounts {
		if existing.Email == account.Email {
			return fmt.Errorf("insert account %s: %w", account.Email, ErrDuplicateKey)
		}
	}
	s.accounts[account.ID] = *account
	return nil
}

func (s *MemoryAccountStore) FindByID(_ context.Context, id string) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]
	if !ok {
		return models.Account{}, fmt.Errorf("account %s: %w", id, ErrNotFound)
	}
	return account, nil
}

func (s *MemoryAccountStore) FindByEmail(_ context.Context, email string) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, account := range s.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return models.Account{}, fmt.Errorf("account %s: %w", email, ErrNotFound)
}

func (s *MemoryAccountStore) CountByRole(_ context.Context, role models.Role) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, account := range s.accounts {
		if account.Role == role {
			n++
		}
	}
	return n, nil
}

// Delete removes an account outright. No API operation does this; it exists
// so tests can exercise the token-for-removed-account path.
func (s *MemoryAccountStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.accounts, id)
}

// Len reports the number of stored accounts.
func (s *MemoryAccountStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}

// ─── Products ─────────────────────────────────────────────────────────────────

type MemoryProductStore struct {
	mu       sync.RWMutex
	products map[string]models.Product
}

func NewMemoryProductStore() *MemoryProductStore {
	return &MemoryProductStore{products: make(map[string]models.Product)}
}

func (s *MemoryProductStore) Insert(_ context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[product.ID] = *product
	return nil
}

func (s *MemoryProductStore) FindByID(_ context.Context, id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return models.Product{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return product, nil
}

func (s *MemoryProductStore) FindAvailable(_ context.Context, category models.Category) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := []models.Product{}
	for _, p := range s.products {
		if !p.Available {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

func (s *MemoryProductStore) Search(_ context.Context, q string) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(q)
	products := []models.Product{}
	for _, p := range s.products {
		if !p.Available {
			continue
		}
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			products = append(products, p)
		}
	}
	return products, nil
}

func (s *MemoryProductStore) Replace(_ context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[product.ID]; !ok {
		return fmt.Errorf("product %s: %w", product.ID, ErrNotFound)
	}
	s.products[product.ID] = *product
	return nil
}

func (s *MemoryProductStore) CountAvailable(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, p := range s.products {
		if p.Available {
			n++
		}
	}
	return n, nil
}

// Len reports the number of stored products, available or not.
func (s *MemoryProductStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// ─── Orders ───────────────────────────────────────────────────────────────────

type MemoryOrderStore struct {
	mu     sync.RWMutex
	orders map[string]models.Order
}

func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{orders: make(map[string]models.Order)}
}

func (s *MemoryOrderStore) Insert(_ context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.ID] = *order
	return nil
}

func (s *MemoryOrderStore) FindByID(_ context.Context, id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return models.Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	return order, nil
}

func (s *MemoryOrderStore) FindAll(_ context.Context) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(models.Order) bool { return true }), nil
}

func (s *MemoryOrderStore) FindByUser(_ context.Context, userID string) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(o models.Order) bool { return o.UserID == userID }), nil
}

func (s *MemoryOrderStore) UpdateStatus(_ context.Context, id string, status models.OrderStatus, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	order.Status = status
	order.UpdatedAt = at
	s.orders[id] = order
	return nil
}

func (s *MemoryOrderStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.orders)), nil
}

func (s *MemoryOrderStore) CountByStatus(_ context.Context, status models.OrderStatus) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, o := range s.orders {
		if o.Status == status {
			n++
		}
	}
	return n, nil
}

// collect returns matching orders newest first. Callers must hold the lock.
func (s *MemoryOrderStore) collect(match func(models.Order) bool) []models.Order {
	orders := []models.Order{}
	for _, o := range s.orders {
		if match(o) {
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders
}

// ─── Reviews ──────────────────────────────────────────────────────────────────

type MemoryReviewStore struct {
	mu      sync.RWMutex
	reviews []models.Review
}

func NewMemoryReviewStore() *MemoryReviewStore {
	return &MemoryReviewStore{}
}

func (s *MemoryReviewStore) Insert(_ context.Context, review *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = append(s.reviews, *review)
	return nil
}

func (s *MemoryReviewStore) FindByProduct(_ context.Context, productID string) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reviews := []models.Review{}
	for _, r := range s.reviews {
		if r.ProductID == productID {
			reviews = append(reviews, r)
		}
	}
	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}
