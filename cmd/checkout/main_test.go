package main

import (
	"testing"

	"github.com/quickmart/checkout-api/pkg/apperror"
)

func TestParseArgsFullInvocation(t *testing.T) {
	inv, err := parseArgs([]string{
		"3-1", "2-5", "3-2",
		"discountCard=1111",
		"balanceDebitCard=100",
		"pathToFile=./products.csv",
		"saveToFile=./result.csv",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(inv.items) != 3 {
		t.Fatalf("items=%d want=3", len(inv.items))
	}
	if inv.items[0].ProductID != 3 || inv.items[0].Quantity != 1 {
		t.Errorf("first item=%+v", inv.items[0])
	}
	if inv.discountCard == nil || *inv.discountCard != 1111 {
		t.Errorf("discountCard=%v", inv.discountCard)
	}
	if inv.balanceDebitCard == nil || inv.balanceDebitCard.String() != "100" {
		t.Errorf("balance=%v", inv.balanceDebitCard)
	}
	if inv.pathToFile != "./products.csv" || inv.saveToFile != "./result.csv" {
		t.Errorf("paths=%q %q", inv.pathToFile, inv.saveToFile)
	}
}

func TestParseArgsEmptyValuesIgnored(t *testing.T) {
	inv, err := parseArgs([]string{"discountCard=", "balanceDebitCard=", "pathToFile=", "saveToFile="})
	if err != nil {
		t.Fatal(err)
	}
	if inv.discountCard != nil || inv.balanceDebitCard != nil {
		t.Error("empty key=value tokens must be ignored")
	}
	if inv.pathToFile != "" || inv.saveToFile != "" {
		t.Error("empty paths must stay unset")
	}
}

func TestParseArgsBareTokenWithoutDashIgnored(t *testing.T) {
	inv, err := parseArgs([]string{"verbose"})
	if err != nil {
		t.Fatal(err)
	}
	if len(inv.items) != 0 {
		t.Errorf("items=%v want none", inv.items)
	}
}

func TestParseArgsMalformedTokens(t *testing.T) {
	cases := [][]string{
		{"x-1"},
		{"1-x"},
		{"discountCard=abc"},
		{"balanceDebitCard=lots"},
	}
	for _, args := range cases {
		if _, err := parseArgs(args); err == nil {
			t.Errorf("parseArgs(%v) accepted malformed input", args)
		} else if apperror.GetAppError(err).Code != 400 {
			t.Errorf("parseArgs(%v) code=%d want 400", args, apperror.GetAppError(err).Code)
		}
	}
}

func TestParseArgsKeepsSaveToFileOnLaterError(t *testing.T) {
	inv, err := parseArgs([]string{"saveToFile=./result.csv", "discountCard=abc"})
	if err == nil {
		t.Fatal("want error")
	}
	// The partial invocation still carries the output path so the error
	// line can be routed there.
	if inv.saveToFile != "./result.csv" {
		t.Errorf("saveToFile=%q", inv.saveToFile)
	}
}

func TestParseArgsNegativeQuantityToken(t *testing.T) {
	// "1--2" splits into id 1 and quantity -2; the basket service rejects
	// the non-positive quantity later.
	inv, err := parseArgs([]string{"1--2"})
	if err != nil {
		t.Fatal(err)
	}
	if len(inv.items) != 1 || inv.items[0].Quantity != -2 {
		t.Errorf("items=%v", inv.items)
	}
}
