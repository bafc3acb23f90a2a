// Package memory implementa todos los puertos de persistencia sobre un
// almacén en memoria thread-safe. Mismo contrato que el backend de Postgres,
// sin mecanismo de almacenamiento: se usa en tests y demos locales.
package memory

import (
	"context"
	"sync"

	"github.com/tu-usuario/tallerpro-api/internal/domain"
	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
	"github.com/tu-usuario/tallerpro-api/internal/domain/repository"
)

// Store contiene las colecciones de dominio. Las vistas (Users(), Sales(),
// etc.) implementan los puertos de repository compartiendo el mismo lock.
type Store struct {
	mu        sync.RWMutex
	users     []entity.User
	plans     []entity.Plan
	sales     []entity.Sale
	items     []entity.InventoryItem
	repairs   []entity.Repair
	tickets   []entity.SupportTicket
	planReqs  []entity.PlanRequest
	activity  []entity.ActivityLog
	walletTxs []entity.WalletTransaction
}

// NewStore crea un almacén vacío.
func NewStore() *Store { return &Store{} }

// Seed carga colecciones iniciales (demo y tests). Reemplaza lo existente.
func (s *Store) Seed(
	users []entity.User,
	plans []entity.Plan,
	sales []entity.Sale,
	items []entity.InventoryItem,
	repairs []entity.Repair,
	tickets []entity.SupportTicket,
	planReqs []entity.PlanRequest,
	activity []entity.ActivityLog,
	walletTxs []entity.WalletTransaction,
) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append([]entity.User(nil), users...)
	s.plans = append([]entity.Plan(nil), plans...)
	s.sales = append([]entity.Sale(nil), sales...)
	s.items = append([]entity.InventoryItem(nil), items...)
	s.repairs = append([]entity.Repair(nil), repairs...)
	s.tickets = append([]entity.SupportTicket(nil), tickets...)
	s.planReqs = append([]entity.PlanRequest(nil), planReqs...)
	s.activity = append([]entity.ActivityLog(nil), activity...)
	s.walletTxs = append([]entity.WalletTransaction(nil), walletTxs...)
}

// ── Users ─────────────────────────────────────────────────────────────────────

// UserStore vista de Store que implementa repository.UserRepository.
type UserStore struct{ s *Store }

// Users devuelve la vista de usuarios.
func (s *Store) Users() *UserStore { return &UserStore{s} }

func (v *UserStore) Create(_ context.Context, user *entity.User) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	for _, u := range v.s.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	v.s.users = append(v.s.users, *user)
	return nil
}

func (v *UserStore) GetByID(_ context.Context, id string) (*entity.User, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	for _, u := range v.s.users {
		if u.ID == id {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (v *UserStore) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	for _, u := range v.s.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (v *UserStore) Update(_ context.Context, user *entity.User) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	for i, u := range v.s.users {
		if u.ID == user.ID {
			v.s.users[i] = *user
			return nil
		}
	}
	return domain.ErrNotFound
}

func (v *UserStore) List(_ context.Context) ([]entity.User, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	return append([]entity.User(nil), v.s.users...), nil
}

func (v *UserStore) Delete(_ context.Context, id string) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	for i, u := range v.s.users {
		if u.ID == id {
			v.s.users = append(v.s.users[:i], v.s.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── Plans ─────────────────────────────────────────────────────────────────────

// PlanStore vista de Store que implementa repository.PlanRepository.
type PlanStore struct{ s *Store }

// Plans devuelve la vista de planes.
func (s *Store) Plans() *PlanStore { return &PlanStore{s} }

func (v *PlanStore) List(_ context.Context) ([]entity.Plan, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	return append([]entity.Plan(nil), v.s.plans...), nil
}

func (v *PlanStore) GetByID(_ context.Context, id string) (*entity.Plan, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	for _, p := range v.s.plans {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

// ── Sales ─────────────────────────────────────────────────────────────────────

// SaleStore vista de Store que implementa repository.SaleRepository.
type SaleStore struct{ s *Store }

// Sales devuelve la vista de ventas.
func (s *Store) Sales() *SaleStore { return &SaleStore{s} }

func (v *SaleStore) Create(_ context.Context, sale *entity.Sale) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	v.s.sales = append(v.s.sales, *sale)
	return nil
}

func (v *SaleStore) ListByShop(_ context.Context, shopID string) ([]entity.Sale, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	out := make([]entity.Sale, 0)
	for _, s := range v.s.sales {
		if s.ShopID == shopID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (v *SaleStore) List(_ context.Context) ([]entity.Sale, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	return append([]entity.Sale(nil), v.s.sales...), nil
}

// ── Inventory ─────────────────────────────────────────────────────────────────

// InventoryStore vista de Store que implementa repository.InventoryRepository.
type InventoryStore struct{ s *Store }

// Inventory devuelve la vista de inventario.
func (s *Store) Inventory() *InventoryStore { return &InventoryStore{s} }

func (v *InventoryStore) Create(_ context.Context, item *entity.InventoryItem) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	v.s.items = append(v.s.items, *item)
	return nil
}

func (v *InventoryStore) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	for _, it := range v.s.items {
		if it.ID == id {
			out := it
			return &out, nil
		}
	}
	return nil, nil
}

func (v *InventoryStore) Update(_ context.Context, item *entity.InventoryItem) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	for i, it := range v.s.items {
		if it.ID == item.ID {
			v.s.items[i] = *item
			return nil
		}
	}
	return domain.ErrNotFound
}

func (v *InventoryStore) ListByShop(_ context.Context, shopID string) ([]entity.InventoryItem, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	out := make([]entity.InventoryItem, 0)
	for _, it := range v.s.items {
		if it.ShopID == shopID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (v *InventoryStore) List(_ context.Context) ([]entity.InventoryItem, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	return append([]entity.InventoryItem(nil), v.s.items...), nil
}

func (v *InventoryStore) DecrementStock(_ context.Context, id string, qty int) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	for i, it := range v.s.items {
		if it.ID == id {
			if it.Stock < qty {
				return domain.ErrInsufficientStock
			}
			v.s.items[i].Stock -= qty
			return nil
		}
	}
	return domain.ErrNotFound
}

func (v *InventoryStore) Delete(_ context.Context, id string) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	for i, it := range v.s.items {
		if it.ID == id {
			v.s.items = append(v.s.items[:i], v.s.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── Repairs ───────────────────────────────────────────────────────────────────

// RepairStore vista de Store que implementa repository.RepairRepository.
type RepairStore struct{ s *Store }

// Repairs devuelve la vista de reparaciones.
func (s *Store) Repairs() *RepairStore { return &RepairStore{s} }

func (v *RepairStore) Create(_ context.Context, repair *entity.Repair) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	v.s.repairs = append(v.s.repairs, *repair)
	return nil
}

func (v *RepairStore) ListByShop(_ context.Context, shopID string) ([]entity.Repair, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	out := make([]entity.Repair, 0)
	for _, r := range v.s.repairs {
		if r.ShopID == shopID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (v *RepairStore) List(_ context.Context) ([]entity.Repair, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	return append([]entity.Repair(nil), v.s.repairs...), nil
}

// ── Support tickets ───────────────────────────────────────────────────────────

// TicketStore vista de Store que implementa repository.SupportTicketRepository.
type TicketStore struct{ s *Store }

// Tickets devuelve la vista de tickets de soporte.
func (s *Store) Tickets() *TicketStore { return &TicketStore{s} }

func (v *TicketStore) Create(_ context.Context, ticket *entity.SupportTicket) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	v.s.tickets = append(v.s.tickets, *ticket)
	return nil
}

func (v *TicketStore) ListByUser(_ context.Context, userID string) ([]entity.SupportTicket, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	out := make([]entity.SupportTicket, 0)
	for _, t := range v.s.tickets {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (v *TicketStore) List(_ context.Context) ([]entity.SupportTicket, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	return append([]entity.SupportTicket(nil), v.s.tickets...), nil
}

// ── Plan requests ─────────────────────────────────────────────────────────────

// PlanRequestStore vista de Store que implementa repository.PlanRequestRepository.
type PlanRequestStore struct{ s *Store }

// PlanRequests devuelve la vista de solicitudes de plan.
func (s *Store) PlanRequests() *PlanRequestStore { return &PlanRequestStore{s} }

func (v *PlanRequestStore) Create(_ context.Context, req *entity.PlanRequest) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	v.s.planReqs = append(v.s.planReqs, *req)
	return nil
}

func (v *PlanRequestStore) List(_ context.Context) ([]entity.PlanRequest, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	return append([]entity.PlanRequest(nil), v.s.planReqs...), nil
}

// ── Activity log ──────────────────────────────────────────────────────────────

// ActivityStore vista de Store que implementa repository.ActivityLogRepository.
type ActivityStore struct{ s *Store }

// Activity devuelve la vista de la bitácora.
func (s *Store) Activity() *ActivityStore { return &ActivityStore{s} }

func (v *ActivityStore) Log(_ context.Context, entry *entity.ActivityLog) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	v.s.activity = append(v.s.activity, *entry)
	return nil
}

func (v *ActivityStore) ListByUser(_ context.Context, userID string) ([]entity.ActivityLog, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	out := make([]entity.ActivityLog, 0)
	for _, a := range v.s.activity {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (v *ActivityStore) List(_ context.Context) ([]entity.ActivityLog, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	return append([]entity.ActivityLog(nil), v.s.activity...), nil
}

// ── Wallet transactions ───────────────────────────────────────────────────────

// WalletStore vista de Store que implementa repository.WalletTransactionRepository.
type WalletStore struct{ s *Store }

// WalletTransactions devuelve la vista de movimientos de billetera.
func (s *Store) WalletTransactions() *WalletStore { return &WalletStore{s} }

func (v *WalletStore) Create(_ context.Context, tx *entity.WalletTransaction) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	v.s.walletTxs = append(v.s.walletTxs, *tx)
	return nil
}

func (v *WalletStore) ListByUser(_ context.Context, userID string) ([]entity.WalletTransaction, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	out := make([]entity.WalletTransaction, 0)
	for _, tx := range v.s.walletTxs {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (v *WalletStore) List(_ context.Context) ([]entity.WalletTransaction, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	return append([]entity.WalletTransaction(nil), v.s.walletTxs...), nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// TxRunner pseudo-transaccional para el fallback en memoria: serializa las
// operaciones con el lock del store pero no deshace escrituras parciales.
// Suficiente para demo y tests del caso de uso POS.
type TxRunner struct{ s *Store }

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(s *Store) *TxRunner { return &TxRunner{s} }

// Run ejecuta fn con las vistas del store.
func (r *TxRunner) Run(_ context.Context, fn func(
	saleRepo repository.SaleRepository,
	inventoryRepo repository.InventoryRepository,
) error) error {
	return fn(r.s.Sales(), r.s.Inventory())
}

// Aserciones de contrato: cada vista implementa su puerto.
var (
	_ repository.UserRepository              = (*UserStore)(nil)
	_ repository.PlanRepository              = (*PlanStore)(nil)
	_ repository.SaleRepository              = (*SaleStore)(nil)
	_ repository.InventoryRepository         = (*InventoryStore)(nil)
	_ repository.RepairRepository            = (*RepairStore)(nil)
	_ repository.SupportTicketRepository     = (*TicketStore)(nil)
	_ repository.PlanRequestRepository       = (*PlanRequestStore)(nil)
	_ repository.ActivityLogRepository       = (*ActivityStore)(nil)
	_ repository.WalletTransactionRepository = (*WalletStore)(nil)
)
