package credits

import "testing"

func intPtr(v int) *int { return &v }

func TestReconcileBootstrapsEmptyBalances(t *testing.T) {
	testCases := []struct {
		name   string
		stored *int
	}{
		{name: "nil balance", stored: nil},
		{name: "zero balance", stored: intPtr(0)},
		{name: "negative balance", stored: intPtr(-3)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Reconcile(tc.stored)
			if res.Effective != Bootstrap {
				t.Fatalf("effective = %d, want %d", res.Effective, Bootstrap)
			}
			if !res.ShouldPersist {
				t.Fatalf("expected persist request for empty balance")
			}
			if res.PersistValue != Bootstrap {
				t.Fatalf("persist value = %d, want %d", res.PersistValue, Bootstrap)
			}
		})
	}
}

func TestReconcilePassesThroughPositiveBalances(t *testing.T) {
	for _, balance := range []int{1, 5, 7, 100} {
		res := Reconcile(intPtr(balance))
		if res.Effective != balance {
			t.Fatalf("effective = %d, want %d", res.Effective, balance)
		}
		if res.ShouldPersist {
			t.Fatalf("unexpected persist request for balance %d", balance)
		}
	}
}

func TestReconcileNeverReturnsNonPositive(t *testing.T) {
	for _, stored := range []*int{nil, intPtr(-1000), intPtr(0), intPtr(1)} {
		if res := Reconcile(stored); res.Effective <= 0 {
			t.Fatalf("effective = %d for stored %v, want > 0", res.Effective, stored)
		}
	}
}

func TestDebitFloorsAtZero(t *testing.T) {
	testCases := []struct {
		in, want int
	}{
		{in: 5, want: 4},
		{in: 1, want: 0},
		{in: 0, want: 0},
		{in: -2, want: 0},
	}
	for _, tc := range testCases {
		if got := Debit(tc.in); got != tc.want {
			t.Fatalf("Debit(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
