package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/DRSN-tech/seller-backend/pkg/e"
)

func TestParseAmountToCents(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr error
	}{
		{in: "599.99", want: 59999},
		{in: "600", want: 60000},
		{in: "50.00", want: 5000},
		{in: "0.01", want: 1},
		{in: "0", want: 0},
		{in: "", wantErr: e.ErrInvalidPrice},
		{in: "abc", wantErr: e.ErrInvalidPrice},
		{in: "-1", wantErr: e.ErrInvalidPrice},
		{in: "50.001", wantErr: e.ErrPricePrecision},
		{in: "1000000001", wantErr: e.ErrInvalidPrice},
	}

	for _, tc := range cases {
		got, err := parseAmountToCents(tc.in)
		if tc.wantErr != nil {
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("parseAmountToCents(%q): expected %v, got %v", tc.in, tc.wantErr, err)
			}
			continue
		}

		if err != nil {
			t.Errorf("parseAmountToCents(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseAmountToCents(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestCentsToAmount(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{5000, "50.00"},
		{1, "0.01"},
		{0, "0.00"},
		{59999, "599.99"},
	}

	for _, tc := range cases {
		if got := centsToAmount(tc.in); got != tc.want {
			t.Errorf("centsToAmount(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestToHTTPResponse(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{e.ErrReasonRequired, http.StatusBadRequest},
		{e.ErrAmountOutOfRange, http.StatusBadRequest},
		{e.ErrCustomerMismatch, http.StatusBadRequest},
		{e.ErrCategoryCycle, http.StatusBadRequest},
		{e.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
		{e.ErrUnauthorized, http.StatusForbidden},
		{e.ErrSaleNotFound, http.StatusNotFound},
		{e.ErrRefundNotFound, http.StatusNotFound},
		{e.ErrInvalidTransition, http.StatusConflict},
		{errors.New("pg: connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		// Обёртки слоёв не должны менять маппинг
		wrapped := e.Wrap("RefundUseCase.Approve", tc.err)
		if code, _ := ToHTTPResponse(wrapped); code != tc.code {
			t.Errorf("ToHTTPResponse(%v): expected %d, got %d", tc.err, tc.code, code)
		}
	}
}

func TestToHTTPResponse_AmountMessageKeepsRange(t *testing.T) {
	rangeErr := fmt.Errorf("%w: must be greater than 0 and at most 50.00", e.ErrAmountOutOfRange)
	_, msg := ToHTTPResponse(e.Wrap("RefundUseCase.Create", rangeErr))

	want := "refund amount out of range: must be greater than 0 and at most 50.00"
	if msg != want {
		t.Errorf("expected %q, got %q", want, msg)
	}
}
