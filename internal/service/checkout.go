package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xilang-pos/api/internal/cart"
	"github.com/xilang-pos/api/internal/enum"
	"github.com/xilang-pos/api/internal/order"
	"github.com/xilang-pos/api/internal/session"
	"github.com/xilang-pos/api/internal/settings"
	"github.com/xilang-pos/api/internal/table"
)

// Errors returned by the checkout service.
var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInsufficientCash     = errors.New("amount received is less than the total")
)

// OrderBook defines the order store methods the checkout flow needs.
// Satisfied by *order.Store; narrow interface for testability.
type OrderBook interface {
	Create(snap cart.Snapshot) order.Order
	Get(id uuid.UUID) (order.Order, error)
	Settle(id uuid.UUID, p order.Payment) (order.Order, error)
	Cancel(id uuid.UUID) (order.Order, error)
}

// FloorBoard updates table statuses as orders move through their lifecycle.
// Satisfied by *table.Store.
type FloorBoard interface {
	SetStatus(number, status string) (table.Table, error)
}

// Printer sends a kitchen ticket for a submitted order. Printing is best
// effort; a failed print never fails the order.
type Printer interface {
	PrintTicket(o order.Order) error
}

// Notifier pushes an order lifecycle event to connected clients.
// Satisfied by *ws.Hub.
type Notifier interface {
	Notify(event string, payload any)
}

// Event names pushed through the Notifier.
const (
	EventOrderCreated   = "order.created"
	EventOrderPaid      = "order.paid"
	EventOrderCancelled = "order.cancelled"
	EventTableUpdated   = "table.updated"
)

// CheckoutService turns a table's cart into an order and settles it. It is
// the one place where the cart session, the order book, and the floor board
// change together.
type CheckoutService struct {
	sessions *session.Manager
	book     OrderBook
	floor    FloorBoard
	settings *settings.Store
	printer  Printer
	notifier Notifier
}

// NewCheckoutService wires the checkout flow. Printer and notifier may be
// nil, in which case those side effects are skipped.
func NewCheckoutService(
	sessions *session.Manager,
	book OrderBook,
	floor FloorBoard,
	st *settings.Store,
	printer Printer,
	notifier Notifier,
) *CheckoutService {
	return &CheckoutService{
		sessions: sessions,
		book:     book,
		floor:    floor,
		settings: st,
		printer:  printer,
		notifier: notifier,
	}
}

// Submit finalizes the table's cart into a new pending order. The cart
// session is cleared only after the order exists, the table moves to
// DINING, and a kitchen ticket goes out. An empty cart is rejected without
// any side effects. Customer counts below 1 fall back to the configured
// default.
func (s *CheckoutService) Submit(tableNumber string, customerCount int) (order.Order, error) {
	if customerCount < 1 {
		customerCount = s.settings.Get().DefaultCustomerCount
	}

	var snap cart.Snapshot
	err := s.sessions.With(tableNumber, func(c *cart.Cart) error {
		if c.Empty() {
			return ErrEmptyCart
		}
		snap = c.Snapshot(tableNumber, customerCount)
		return nil
	})
	if err != nil {
		return order.Order{}, err
	}

	o := s.book.Create(snap)
	s.sessions.Clear(tableNumber)

	if _, err := s.floor.SetStatus(tableNumber, enum.TableStatusDining); err != nil {
		// Walk-in tables not on the floor plan still get orders.
		log.Printf("WARN: table %s not updated on submit: %v", tableNumber, err)
	}

	if s.printer != nil {
		if err := s.printer.PrintTicket(o); err != nil {
			log.Printf("ERROR: kitchen ticket for %s: %v", o.BillNumber, err)
		}
	}
	s.notify(EventOrderCreated, o)
	return o, nil
}

// PayRequest is the validated input for settling an order.
type PayRequest struct {
	OrderID        uuid.UUID
	Method         string
	AmountReceived decimal.Decimal
}

// Pay settles a pending order. Cash payments must cover the total and
// produce change; every other method charges exactly the total. On success
// the order completes and its table returns to AVAILABLE.
func (s *CheckoutService) Pay(req PayRequest) (order.Order, error) {
	if !isValidPaymentMethod(req.Method) {
		return order.Order{}, fmt.Errorf("%q: %w", req.Method, ErrInvalidPaymentMethod)
	}

	o, err := s.book.Get(req.OrderID)
	if err != nil {
		return order.Order{}, err
	}

	p := order.Payment{
		Method:         req.Method,
		Amount:         o.Total,
		AmountReceived: o.Total,
		Change:         decimal.Zero,
	}
	if req.Method == enum.PaymentMethodCash {
		if req.AmountReceived.LessThan(o.Total) {
			return order.Order{}, ErrInsufficientCash
		}
		p.AmountReceived = req.AmountReceived
		p.Change = req.AmountReceived.Sub(o.Total)
	}

	settled, err := s.book.Settle(req.OrderID, p)
	if err != nil {
		return order.Order{}, err
	}

	if _, err := s.floor.SetStatus(settled.TableNumber, enum.TableStatusAvailable); err != nil {
		log.Printf("WARN: table %s not freed after payment: %v", settled.TableNumber, err)
	}
	s.notify(EventOrderPaid, settled)
	return settled, nil
}

// Cancel voids a pending order and frees its table.
func (s *CheckoutService) Cancel(orderID uuid.UUID) (order.Order, error) {
	cancelled, err := s.book.Cancel(orderID)
	if err != nil {
		return order.Order{}, err
	}

	if _, err := s.floor.SetStatus(cancelled.TableNumber, enum.TableStatusAvailable); err != nil {
		log.Printf("WARN: table %s not freed after cancel: %v", cancelled.TableNumber, err)
	}
	s.notify(EventOrderCancelled, cancelled)
	return cancelled, nil
}

func (s *CheckoutService) notify(event string, payload any) {
	if s.notifier != nil {
		s.notifier.Notify(event, payload)
	}
}

func isValidPaymentMethod(m string) bool {
	switch m {
	case enum.PaymentMethodCash, enum.PaymentMethodCard,
		enum.PaymentMethodWeChat, enum.PaymentMethodBalance:
		return true
	}
	return false
}
