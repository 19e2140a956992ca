package models

import "testing"

func TestMenuItemPrice(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{1250, "12.50"},
		{850, "8.50"},
		{5, "0.05"},
		{100, "1.00"},
		{999, "9.99"},
	}
	for _, c := range cases {
		item := MenuItem{PriceCents: c.cents}
		if got := item.Price(); got != c.want {
			t.Errorf("Price(%d cents) = %q, want %q", c.cents, got, c.want)
		}
	}
}

func TestParseOrderStatus(t *testing.T) {
	for _, in := range []string{"PAID", "paid", "Paid"} {
		status, ok := ParseOrderStatus(in)
		if !ok || status != StatusPaid {
			t.Errorf("ParseOrderStatus(%q) = %v, %v", in, status, ok)
		}
	}

	for _, in := range []string{"", "SHIPPED", "PENDING ", "DONE"} {
		if _, ok := ParseOrderStatus(in); ok {
			t.Errorf("expected %q to be rejected", in)
		}
	}
}
