// Command checkout computes a single retail receipt from the command line.
//
// Usage:
//
//	checkout 3-1 2-5 5-2 discountCard=1111 balanceDebitCard=100 \
//	    pathToFile=./data/products.csv saveToFile=./result.csv
//
// Repeated id-quantity tokens form the basket; discountCard and
// balanceDebitCard are optional. The receipt is printed to the console and
// written to saveToFile as a semicolon-delimited file. On any failure the
// output file instead receives a single "Error: <message>" line.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/quickmart/checkout-api/internal/application/service"
	"github.com/quickmart/checkout-api/internal/config"
	"github.com/quickmart/checkout-api/internal/domain/entity"
	"github.com/quickmart/checkout-api/internal/infrastructure/csvstore"
	"github.com/quickmart/checkout-api/internal/presentation/report"
	"github.com/quickmart/checkout-api/pkg/apperror"
	"github.com/quickmart/checkout-api/pkg/logger"
)

// invocation holds the parsed command line.
type invocation struct {
	items            []service.BasketItem
	discountCard     *int
	balanceDebitCard *decimal.Decimal
	pathToFile       string
	saveToFile       string
}

func main() {
	cfg := config.Load()
	logger.Init(cfg.App.Env)

	inv, err := parseArgs(os.Args[1:])
	if err != nil {
		// saveToFile may still be known even when parsing failed elsewhere.
		fail(inv, err)
	}
	if inv.pathToFile == "" || inv.saveToFile == "" {
		fail(inv, apperror.NewInvalidArgumentError("Path to file and save to file must be specified."))
	}

	if err := run(cfg, inv); err != nil {
		fail(inv, err)
	}
}

func run(cfg *config.Config, inv *invocation) error {
	ctx := context.Background()

	productRepo, err := csvstore.LoadProducts(inv.pathToFile)
	if err != nil {
		return err
	}
	cardRepo, err := csvstore.LoadDiscountCards(cfg.Catalog.CardsPath)
	if err != nil {
		return err
	}

	lines, err := service.NewBasketService(productRepo).Resolve(ctx, inv.items)
	if err != nil {
		return err
	}

	var card *entity.DiscountCard
	if inv.discountCard != nil {
		if card, err = cardRepo.GetByNumber(ctx, *inv.discountCard); err != nil {
			return err
		}
	}

	receipt := service.NewReceiptService().Compute(lines, card, inv.balanceDebitCard)

	fmt.Print(report.Console(receipt, cfg.Receipt.CurrencyMarker))
	return report.WriteCSV(inv.saveToFile, report.Records(receipt, cfg.Receipt.CurrencyMarker))
}

// parseArgs parses the invocation surface. Key=value tokens with an empty
// value are ignored; a bare token is a basket entry only when it contains a
// dash. Always returns the partial invocation so the caller can route the
// error to saveToFile when that much parsed.
func parseArgs(args []string) (*invocation, error) {
	inv := &invocation{}

	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "discountCard="):
			value := strings.TrimPrefix(arg, "discountCard=")
			if value == "" {
				continue
			}
			number, err := strconv.Atoi(value)
			if err != nil {
				return inv, apperror.NewInvalidArgumentError(fmt.Sprintf("invalid discount card number %q", value))
			}
			inv.discountCard = &number

		case strings.HasPrefix(arg, "balanceDebitCard="):
			value := strings.TrimPrefix(arg, "balanceDebitCard=")
			if value == "" {
				continue
			}
			balance, err := decimal.NewFromString(value)
			if err != nil {
				return inv, apperror.NewInvalidArgumentError(fmt.Sprintf("invalid balance %q", value))
			}
			inv.balanceDebitCard = &balance

		case strings.HasPrefix(arg, "pathToFile="):
			if value := strings.TrimPrefix(arg, "pathToFile="); value != "" {
				inv.pathToFile = value
			}

		case strings.HasPrefix(arg, "saveToFile="):
			if value := strings.TrimPrefix(arg, "saveToFile="); value != "" {
				inv.saveToFile = value
			}

		default:
			id, quantity, ok, err := parseBasketToken(arg)
			if err != nil {
				return inv, err
			}
			if ok {
				inv.items = append(inv.items, service.BasketItem{ProductID: id, Quantity: quantity})
			}
		}
	}
	return inv, nil
}

// parseBasketToken parses an "id-quantity" token. Tokens without a dash are
// ignored; a dash with unparsable numbers is an invocation error.
func parseBasketToken(arg string) (id, quantity int, ok bool, err error) {
	parts := strings.SplitN(arg, "-", 2)
	if len(parts) < 2 {
		return 0, 0, false, nil
	}
	id, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false, apperror.NewInvalidArgumentError(fmt.Sprintf("invalid basket token %q", arg))
	}
	quantity, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false, apperror.NewInvalidArgumentError(fmt.Sprintf("invalid basket token %q", arg))
	}
	return id, quantity, true, nil
}

// fail routes a fatal error to the output file when one was specified, logs
// it for the operator either way and exits non-zero.
func fail(inv *invocation, err error) {
	if inv != nil && inv.saveToFile != "" {
		if werr := report.WriteError(inv.saveToFile, err); werr != nil {
			logger.Error().Err(werr).Msg("failed to write error file")
		}
	}
	logger.Error().Err(err).Msg("checkout failed")
	os.Exit(1)
}
