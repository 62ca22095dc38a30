package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/quickmart/checkout-api/internal/domain/entity"
	"github.com/quickmart/checkout-api/pkg/money"
)

func product(id int, description, price string, wholesale bool) entity.Product {
	return entity.NewProduct(id, description, decimal.RequireFromString(price), 100, wholesale)
}

func line(p entity.Product, qty int) entity.LineItem {
	return entity.LineItem{Product: p, Quantity: qty}
}

func amt(t *testing.T, d decimal.Decimal, want string) {
	t.Helper()
	if money.Format(d) != want {
		t.Errorf("amount = %s, want %s", money.Format(d), want)
	}
}

func TestWholesaleDiscount(t *testing.T) {
	// qty 5 of a wholesale product at 10.00: gross 50.00, discount 5.00, net 45.00
	svc := NewReceiptService()
	r := svc.Compute([]entity.LineItem{line(product(1, "Milk", "10.00", true), 5)}, nil, nil)

	if len(r.Lines) != 1 {
		t.Fatalf("lines=%d want=1", len(r.Lines))
	}
	got := r.Lines[0]
	amt(t, got.GrossTotal, "50.00")
	amt(t, got.DiscountAmount, "5.00")
	amt(t, got.NetTotal, "45.00")
	if got.DiscountLabel != "10% wholesale" {
		t.Errorf("label=%q want %q", got.DiscountLabel, "10% wholesale")
	}
}

func TestWholesaleBeatsCard(t *testing.T) {
	// A wholesale line at the threshold never gets the card discount on top.
	svc := NewReceiptService()
	card := entity.NewDefaultCard(1234)
	r := svc.Compute([]entity.LineItem{line(product(1, "Milk", "10.00", true), 5)}, &card, nil)

	got := r.Lines[0]
	amt(t, got.DiscountAmount, "5.00")
	amt(t, got.NetTotal, "45.00")
	if got.DiscountLabel != "10% wholesale" {
		t.Errorf("label=%q want wholesale only", got.DiscountLabel)
	}
}

func TestCardDiscountBelowThreshold(t *testing.T) {
	// qty 4 of the same product with the 2.00% default card:
	// gross 40.00, card discount 0.80, net 39.20
	svc := NewReceiptService()
	card := entity.NewDefaultCard(1234)
	r := svc.Compute([]entity.LineItem{line(product(1, "Milk", "10.00", true), 4)}, &card, nil)

	got := r.Lines[0]
	amt(t, got.GrossTotal, "40.00")
	amt(t, got.DiscountAmount, "0.80")
	amt(t, got.NetTotal, "39.20")
	if got.DiscountLabel != "2.00% card discount" {
		t.Errorf("label=%q want %q", got.DiscountLabel, "2.00% card discount")
	}
}

func TestCardLabelFixedTwoDecimals(t *testing.T) {
	svc := NewReceiptService()
	card := entity.NewDiscountCard(1, decimal.RequireFromString("3.5"))
	r := svc.Compute([]entity.LineItem{line(product(1, "Milk", "10.00", false), 1)}, &card, nil)

	if got := r.Lines[0].DiscountLabel; got != "3.50% card discount" {
		t.Errorf("label=%q want %q", got, "3.50% card discount")
	}
}

func TestNoDiscountWithoutCard(t *testing.T) {
	svc := NewReceiptService()
	r := svc.Compute([]entity.LineItem{line(product(1, "Milk", "1.07", false), 3)}, nil, nil)

	got := r.Lines[0]
	amt(t, got.GrossTotal, "3.21")
	amt(t, got.DiscountAmount, "0.00")
	amt(t, got.NetTotal, "3.21")
	if got.DiscountLabel != "" {
		t.Errorf("label=%q want empty", got.DiscountLabel)
	}
}

func TestZeroRateCardAppliesNothing(t *testing.T) {
	svc := NewReceiptService()
	card := entity.NewDiscountCard(1, decimal.Zero)
	r := svc.Compute([]entity.LineItem{line(product(1, "Milk", "10.00", false), 1)}, &card, nil)

	amt(t, r.Lines[0].DiscountAmount, "0.00")
	amt(t, r.Lines[0].NetTotal, "10.00")
}

func TestStepwiseHalfUpRounding(t *testing.T) {
	// 3 x 3.335 -> price normalizes to 3.34 at construction, gross 10.02.
	// Card 2.00% on 10.02 = 0.2004 -> rounds to 0.20.
	svc := NewReceiptService()
	card := entity.NewDefaultCard(1)
	r := svc.Compute([]entity.LineItem{line(product(1, "Cheese", "3.335", false), 3)}, &card, nil)

	got := r.Lines[0]
	amt(t, got.Product.Price, "3.34")
	amt(t, got.GrossTotal, "10.02")
	amt(t, got.DiscountAmount, "0.20")
	amt(t, got.NetTotal, "9.82")
}

func TestHalfUpAtBoundary(t *testing.T) {
	// 2.25% of 2.00 = 0.045, a tie at the third decimal: rounds up to 0.05.
	svc := NewReceiptService()
	card := entity.NewDiscountCard(1, decimal.RequireFromString("2.25"))
	r := svc.Compute([]entity.LineItem{line(product(1, "Gum", "2.00", false), 1)}, &card, nil)

	amt(t, r.Lines[0].DiscountAmount, "0.05")
	amt(t, r.Lines[0].NetTotal, "1.95")
}

func TestAggregatesSumRoundedLines(t *testing.T) {
	svc := NewReceiptService()
	card := entity.NewDefaultCard(1)
	lines := []entity.LineItem{
		line(product(1, "Milk", "1.07", true), 5),
		line(product(2, "Cream", "2.71", true), 4),
		line(product(3, "Potatoes", "1.47", false), 2),
	}
	r := svc.Compute(lines, &card, nil)

	gross := decimal.Zero
	net := decimal.Zero
	for _, l := range r.Lines {
		gross = gross.Add(l.GrossTotal)
		net = net.Add(l.NetTotal)
	}
	if !r.GrossTotalSum.Equal(money.Round2(gross)) {
		t.Errorf("GrossTotalSum=%s want sum of line grosses %s", r.GrossTotalSum, money.Round2(gross))
	}
	if !r.NetTotalSum.Equal(money.Round2(net)) {
		t.Errorf("NetTotalSum=%s want sum of line nets %s", r.NetTotalSum, money.Round2(net))
	}
	if !r.TotalDiscountSum.Equal(r.GrossTotalSum.Sub(r.NetTotalSum)) {
		t.Errorf("TotalDiscountSum=%s want gross-net=%s", r.TotalDiscountSum, r.GrossTotalSum.Sub(r.NetTotalSum))
	}
}

func TestBalanceAfterPurchase(t *testing.T) {
	svc := NewReceiptService()
	balance := decimal.RequireFromString("100.00")
	r := svc.Compute([]entity.LineItem{line(product(1, "Milk", "10.00", true), 5)}, nil, &balance)

	if r.AccountBalance == nil || r.BalanceAfterPurchase == nil {
		t.Fatal("balance fields missing")
	}
	amt(t, *r.AccountBalance, "100.00")
	amt(t, *r.BalanceAfterPurchase, "55.00")
}

func TestNoBalanceFieldsWithoutBalance(t *testing.T) {
	svc := NewReceiptService()
	r := svc.Compute([]entity.LineItem{line(product(1, "Milk", "10.00", false), 1)}, nil, nil)
	if r.AccountBalance != nil || r.BalanceAfterPurchase != nil {
		t.Fatal("balance fields must be absent when no balance was supplied")
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	svc := NewReceiptService()
	card := entity.NewDefaultCard(42)
	balance := decimal.RequireFromString("50.00")
	lines := []entity.LineItem{
		line(product(1, "Milk", "1.07", true), 6),
		line(product(2, "Cream", "2.71", false), 3),
	}

	a := svc.Compute(lines, &card, &balance)
	b := svc.Compute(lines, &card, &balance)

	if len(a.Lines) != len(b.Lines) {
		t.Fatal("line counts differ")
	}
	for i := range a.Lines {
		if !a.Lines[i].GrossTotal.Equal(b.Lines[i].GrossTotal) ||
			!a.Lines[i].DiscountAmount.Equal(b.Lines[i].DiscountAmount) ||
			!a.Lines[i].NetTotal.Equal(b.Lines[i].NetTotal) {
			t.Errorf("line %d monetary fields differ between runs", i)
		}
	}
	if !a.GrossTotalSum.Equal(b.GrossTotalSum) || !a.NetTotalSum.Equal(b.NetTotalSum) ||
		!a.TotalDiscountSum.Equal(b.TotalDiscountSum) || !a.BalanceAfterPurchase.Equal(*b.BalanceAfterPurchase) {
		t.Error("totals differ between runs")
	}
}
