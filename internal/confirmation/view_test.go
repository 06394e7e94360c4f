package confirmation

import (
	"net/url"
	"testing"
)

func TestFromQueryConfirmed(t *testing.T) {
	view := FromQuery(url.Values{"order_id": {"3f2a9c1e-77aa-4b1c-9d0e-aa11bb22cc33"}})
	if view.Status != StatusConfirmed || view.Title != "Order Confirmed!" {
		t.Fatalf("unexpected view %+v", view)
	}
	if view.ShortID != "3f2a9c1e" {
		t.Fatalf("expected first 8 characters, got %q", view.ShortID)
	}
}

func TestFromQueryPending(t *testing.T) {
	view := FromQuery(url.Values{"order_id": {"abc"}, "pending": {"true"}})
	if view.Status != StatusPending || view.Title != "Payment Pending" {
		t.Fatalf("unexpected view %+v", view)
	}
	if view.ShortID != "abc" {
		t.Fatalf("short ids keep short values, got %q", view.ShortID)
	}
}

func TestFromQueryPendingRequiresExactTrue(t *testing.T) {
	view := FromQuery(url.Values{"pending": {"1"}})
	if view.Status != StatusConfirmed {
		t.Fatalf("expected confirmed, got %s", view.Status)
	}
	if view.OrderID != "" || view.ShortID != "" {
		t.Fatalf("expected no order id, got %+v", view)
	}
}
