package domain

import "testing"

// Репозитории привязывают created_at модели к INSERT, поэтому конструкторы
// обязаны проставлять время создания: нулевое значение сломало бы
// сортировку "новые первыми" во всех списках.
func TestConstructorsSetCreatedAt(t *testing.T) {
	cases := []struct {
		name      string
		createdAt interface{ IsZero() bool }
	}{
		{"refund", NewRefund(10, 1, 2500, "defective download").CreatedAt},
		{"dispute", NewDispute(10, 7, 1, "chargeback", nil).CreatedAt},
		{"product", NewProduct(1, "E-Book", "", 5000, ProductDraft, nil).CreatedAt},
		{"category", NewCategory(1, "Courses", "courses", "", nil).CreatedAt},
		{"tag", NewTag(1, "Sale", "sale").CreatedAt},
	}

	for _, tc := range cases {
		if tc.createdAt.IsZero() {
			t.Errorf("%s: expected non-zero creation time", tc.name)
		}
	}
}

func TestRefundCanTransition(t *testing.T) {
	pending := &Refund{Status: RefundPending}
	if !pending.CanTransition(RefundApproved) || !pending.CanTransition(RefundRejected) {
		t.Errorf("expected pending to allow both terminal transitions")
	}
	if pending.CanTransition(RefundPending) {
		t.Errorf("expected pending -> pending to be rejected")
	}

	for _, status := range []RefundStatus{RefundApproved, RefundRejected} {
		terminal := &Refund{Status: status}
		if terminal.CanTransition(RefundApproved) || terminal.CanTransition(RefundRejected) {
			t.Errorf("expected %s to be terminal", status)
		}
	}
}
