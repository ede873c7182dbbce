package enum

// ── State machines ──

const (
	OrderStatusPending   = "PENDING"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

const (
	TableStatusAvailable = "AVAILABLE"
	TableStatusOccupied  = "OCCUPIED"
	TableStatusDining    = "DINING"
)

// ── Configurable labels ──

const (
	UserRoleManager = "MANAGER"
	UserRoleWaiter  = "WAITER"
)

const (
	PaymentMethodCash    = "CASH"
	PaymentMethodCard    = "CARD"
	PaymentMethodWeChat  = "WECHAT"
	PaymentMethodBalance = "BALANCE"
)
