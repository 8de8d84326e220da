package appstate

import (
	"context"
	"errors"
	"io"
	"sync"

	customerdomain "github.com/smallbiznis/reparo/internal/customer/domain"
	"github.com/smallbiznis/reparo/internal/forms"
	inventorydomain "github.com/smallbiznis/reparo/internal/inventory/domain"
	ledgerdomain "github.com/smallbiznis/reparo/internal/ledger/domain"
	messagelogdomain "github.com/smallbiznis/reparo/internal/messagelog/domain"
	repairjobdomain "github.com/smallbiznis/reparo/internal/repairjob/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Phase is the cache lifecycle: nothing may be read before Ready.
type Phase int32

const (
	PhaseUninitialized Phase = iota
	PhaseLoading
	PhaseReady
)

// ErrNotReady is returned when the cache is read before Load completed.
// This is a programming error in the caller, not a runtime condition.
var ErrNotReady = errors.New("appstate_not_ready")

type Params struct {
	fx.In

	Log       *zap.Logger
	Ledger    ledgerdomain.Service
	Repairs   repairjobdomain.Service
	Inventory inventorydomain.Service
	Customers customerdomain.Service
	Messages  messagelogdomain.Service
}

// State is the in-memory mirror of all five tables. Every mutation writes
// through the owning service and then reloads that entity's whole list, so
// the cache always matches the store once the call returns.
type State struct {
	log *zap.Logger
	hub *Hub

	ledger    ledgerdomain.Service
	repairs   repairjobdomain.Service
	inventory inventorydomain.Service
	customers customerdomain.Service
	messages  messagelogdomain.Service

	mu             sync.RWMutex
	phase          Phase
	ledgerEntries  []ledgerdomain.LedgerEntry
	repairJobs     []repairjobdomain.RepairJob
	inventoryItems []inventorydomain.InventoryItem
	customerList   []customerdomain.Customer
	messageLog     []messagelogdomain.MessageLog
}

func New(p Params) *State {
	return &State{
		log:       p.Log.Named("appstate"),
		hub:       NewHub(),
		ledger:    p.Ledger,
		repairs:   p.Repairs,
		inventory: p.Inventory,
		customers: p.Customers,
		messages:  p.Messages,
	}
}

// Load fills all five lists and transitions to Ready. The five reads have
// no cross-table dependency; they run in order because there is a single
// writer anyway.
func (s *State) Load(ctx context.Context) error {
	s.mu.Lock()
	s.phase = PhaseLoading
	s.mu.Unlock()

	ledgerEntries, err := s.ledger.List(ctx)
	if err != nil {
		return s.failLoad(err)
	}
	repairJobs, err := s.repairs.List(ctx)
	if err != nil {
		return s.failLoad(err)
	}
	inventoryItems, err := s.inventory.List(ctx)
	if err != nil {
		return s.failLoad(err)
	}
	customerList, err := s.customers.List(ctx)
	if err != nil {
		return s.failLoad(err)
	}
	messageLog, err := s.messages.List(ctx)
	if err != nil {
		return s.failLoad(err)
	}

	s.mu.Lock()
	s.ledgerEntries = ledgerEntries
	s.repairJobs = repairJobs
	s.inventoryItems = inventoryItems
	s.customerList = customerList
	s.messageLog = messageLog
	s.phase = PhaseReady
	s.mu.Unlock()

	s.log.Info("state cache loaded",
		zap.Int("ledger", len(ledgerEntries)),
		zap.Int("repairs", len(repairJobs)),
		zap.Int("inventory", len(inventoryItems)),
		zap.Int("customers", len(customerList)),
		zap.Int("messages", len(messageLog)),
	)
	return nil
}

func (s *State) failLoad(err error) error {
	s.mu.Lock()
	s.phase = PhaseUninitialized
	s.mu.Unlock()
	return err
}

func (s *State) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// Subscribe registers an observer for reload events.
func (s *State) Subscribe() *Subscription {
	return s.hub.Subscribe()
}

func (s *State) ready() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.phase != PhaseReady {
		return ErrNotReady
	}
	return nil
}

// ---- snapshots ----

func (s *State) LedgerEntries() ([]ledgerdomain.LedgerEntry, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ledgerdomain.LedgerEntry(nil), s.ledgerEntries...), nil
}

func (s *State) RepairJobs() ([]repairjobdomain.RepairJob, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]repairjobdomain.RepairJob(nil), s.repairJobs...), nil
}

func (s *State) InventoryItems() ([]inventorydomain.InventoryItem, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]inventorydomain.InventoryItem(nil), s.inventoryItems...), nil
}

func (s *State) Customers() ([]customerdomain.Customer, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]customerdomain.Customer(nil), s.customerList...), nil
}

func (s *State) Messages() ([]messagelogdomain.MessageLog, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]messagelogdomain.MessageLog(nil), s.messageLog...), nil
}

// ---- mutations: write through, reload the one affected list, notify ----

func (s *State) AddLedgerEntry(ctx context.Context, req ledgerdomain.AddEntryRequest) (ledgerdomain.LedgerEntry, error) {
	if err := s.ready(); err != nil {
		return ledgerdomain.LedgerEntry{}, err
	}
	entry, err := s.ledger.Add(ctx, req)
	if err != nil {
		return ledgerdomain.LedgerEntry{}, err
	}
	if err := s.reloadLedger(ctx); err != nil {
		return ledgerdomain.LedgerEntry{}, err
	}
	return entry, nil
}

func (s *State) AddRepairJob(ctx context.Context, req repairjobdomain.AddJobRequest) (repairjobdomain.RepairJob, error) {
	if err := s.ready(); err != nil {
		return repairjobdomain.RepairJob{}, err
	}
	job, err := s.repairs.Add(ctx, req)
	if err != nil {
		return repairjobdomain.RepairJob{}, err
	}
	if err := s.reloadRepairs(ctx); err != nil {
		return repairjobdomain.RepairJob{}, err
	}
	return job, nil
}

// UpdateRepairStatus is the one in-place mutation: it writes directly by id
// and then performs the same reload-and-notify as an insert.
func (s *State) UpdateRepairStatus(ctx context.Context, id int64, status string) (repairjobdomain.RepairJob, error) {
	if err := s.ready(); err != nil {
		return repairjobdomain.RepairJob{}, err
	}
	job, err := s.repairs.UpdateStatus(ctx, id, status)
	if err != nil {
		return repairjobdomain.RepairJob{}, err
	}
	if err := s.reloadRepairs(ctx); err != nil {
		return repairjobdomain.RepairJob{}, err
	}
	return job, nil
}

// AddLedgerEntryForm accepts raw form text from the entry dialog; a
// malformed amount defaults to zero rather than rejecting the submission.
func (s *State) AddLedgerEntryForm(ctx context.Context, title, amount, entryType, note string) (ledgerdomain.LedgerEntry, error) {
	return s.AddLedgerEntry(ctx, ledgerdomain.AddEntryRequest{
		Title:  title,
		Amount: forms.ParseAmount(amount),
		Type:   ledgerdomain.EntryType(entryType),
		Note:   note,
	})
}

// AddInventoryItemForm accepts raw form text; malformed numbers become
// zero.
func (s *State) AddInventoryItemForm(ctx context.Context, name, qty, buyPrice, sellPrice string) (inventorydomain.InventoryItem, error) {
	return s.AddInventoryItem(ctx, inventorydomain.AddItemRequest{
		Name:      name,
		Qty:       forms.ParseQty(qty),
		BuyPrice:  forms.ParseAmount(buyPrice),
		SellPrice: forms.ParseAmount(sellPrice),
	})
}

func (s *State) AddInventoryItem(ctx context.Context, req inventorydomain.AddItemRequest) (inventorydomain.InventoryItem, error) {
	if err := s.ready(); err != nil {
		return inventorydomain.InventoryItem{}, err
	}
	item, err := s.inventory.Add(ctx, req)
	if err != nil {
		return inventorydomain.InventoryItem{}, err
	}
	if err := s.reloadInventory(ctx); err != nil {
		return inventorydomain.InventoryItem{}, err
	}
	return item, nil
}

func (s *State) AddCustomer(ctx context.Context, req customerdomain.AddCustomerRequest) (customerdomain.Customer, error) {
	if err := s.ready(); err != nil {
		return customerdomain.Customer{}, err
	}
	customer, err := s.customers.Add(ctx, req)
	if err != nil {
		return customerdomain.Customer{}, err
	}
	if err := s.reloadCustomers(ctx); err != nil {
		return customerdomain.Customer{}, err
	}
	return customer, nil
}

// RecordMessage sends the notification and logs the outcome; a transport
// failure still appends a failed row, so the cache reloads either way.
func (s *State) RecordMessage(ctx context.Context, req messagelogdomain.NotifyRequest) (messagelogdomain.MessageLog, error) {
	if err := s.ready(); err != nil {
		return messagelogdomain.MessageLog{}, err
	}
	entry, err := s.messages.Notify(ctx, req)
	if err != nil {
		return messagelogdomain.MessageLog{}, err
	}
	if err := s.reloadMessages(ctx); err != nil {
		return messagelogdomain.MessageLog{}, err
	}
	return entry, nil
}

// ExportLedgerCSV streams the ledger in the cache's current order, which
// reload-after-write keeps equal to the store's order.
func (s *State) ExportLedgerCSV(ctx context.Context, w io.Writer) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.ledger.ExportCSV(ctx, w)
}

func (s *State) LedgerTotals(ctx context.Context) (ledgerdomain.Totals, error) {
	if err := s.ready(); err != nil {
		return ledgerdomain.Totals{}, err
	}
	return s.ledger.Totals(ctx)
}

// ---- per-entity reloads ----

func (s *State) reloadLedger(ctx context.Context) error {
	entries, err := s.ledger.List(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.ledgerEntries = entries
	s.mu.Unlock()
	s.hub.Publish(Event{Entity: EntityLedger})
	return nil
}

func (s *State) reloadRepairs(ctx context.Context) error {
	jobs, err := s.repairs.List(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.repairJobs = jobs
	s.mu.Unlock()
	s.hub.Publish(Event{Entity: EntityRepairs})
	return nil
}

func (s *State) reloadInventory(ctx context.Context) error {
	items, err := s.inventory.List(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.inventoryItems = items
	s.mu.Unlock()
	s.hub.Publish(Event{Entity: EntityInventory})
	return nil
}

func (s *State) reloadCustomers(ctx context.Context) error {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.customerList = customers
	s.mu.Unlock()
	s.hub.Publish(Event{Entity: EntityCustomers})
	return nil
}

func (s *State) reloadMessages(ctx context.Context) error {
	entries, err := s.messages.List(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.messageLog = entries
	s.mu.Unlock()
	s.hub.Publish(Event{Entity: EntityMessages})
	return nil
}
