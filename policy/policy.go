// Package policy is the single authorization decision point. Handlers ask
// Can(caller, action, resource) instead of sprinkling role checks.
package policy

type Caller struct {
	UserID uint
	Admin  bool
}

type Action string

const (
	ActionReadOrder         Action = "order:read"
	ActionUpdateOrderStatus Action = "order:update_status"
	ActionManageCatalog     Action = "catalog:manage"
	ActionViewAccounts      Action = "accounts:view"
	ActionExportOrders      Action = "orders:export"
	ActionWatchOrders       Action = "orders:watch"
)

// Resource identifies what the action targets. OwnerID is the account that
// owns the resource, zero when ownership does not apply.
type Resource struct {
	OwnerID uint
}

func Can(caller Caller, action Action, res Resource) bool {
	if caller.Admin {
		return true
	}
	switch action {
	case ActionReadOrder:
		return res.OwnerID != 0 && res.OwnerID == caller.UserID
	default:
		return false
	}
}
