// Package credits holds the credit reconciliation rules that authorize image
// generation. The single Reconcile function replaces a set of defensive
// checks that used to be duplicated at every call site: a user whose stored
// balance reads as empty, NULL, or zero is treated as a first-time account
// and granted the free allowance rather than being blocked.
package credits

// Bootstrap is the free allowance granted to first-time or zeroed accounts.
const Bootstrap = 5

// Result describes the outcome of reconciling a stored credit balance.
//
// Effective is the balance the caller must use for the authorization
// decision. ShouldPersist indicates the store should be updated to
// PersistValue; that write is best-effort and its failure must never lower
// Effective.
type Result struct {
	Effective     int
	ShouldPersist bool
	PersistValue  int
}

// Reconcile maps a stored balance (nil means the column was NULL or never
// read) to the balance used for authorization.
//
// Rules, in order:
//  1. nil coerces to 0.
//  2. balance <= 0 bootstraps to the free allowance and requests a persist.
//  3. balance > 0 passes through untouched.
//  4. A final floor forces the effective value up to the allowance if the
//     earlier steps somehow produced a non-positive result. Unreachable when
//     1-3 hold, kept as a safety net with a test pinning it.
func Reconcile(stored *int) Result {
	balance := 0
	if stored != nil {
		balance = *stored
	}

	res := Result{Effective: balance}
	if balance <= 0 {
		res = Result{Effective: Bootstrap, ShouldPersist: true, PersistValue: Bootstrap}
	}

	if res.Effective <= 0 {
		res.Effective = Bootstrap
	}
	return res
}

// Debit returns the balance after consuming one credit, never below zero.
func Debit(effective int) int {
	if effective <= 1 {
		return 0
	}
	return effective - 1
}
