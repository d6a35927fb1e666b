package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/equibook/equibook/config"
	"github.com/equibook/equibook/matching"
	"github.com/equibook/equibook/workers/engines"
)

// The driver is the reporting collaborator around the core: it feeds a
// sample order flow through the worker and prints returned trades and book
// snapshots. The core itself never prints.
func main() {
	configPath := "config/equibook.yml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}

	if cfg.LogLevel != "" {
		os.Setenv("LOG_LEVEL", cfg.LogLevel)
	}
	config.NewLoggerService()

	engine := matching.NewEngine(cfg.Instruments)
	worker := engines.NewMatchingWorker(engine)
	defer worker.Stop()

	submissions := []engines.SubmitPayload{
		{Instrument: "TATA", Side: matching.SideBuy, Price: decimal.NewFromInt(155), Quantity: 5},
		{Instrument: "TATA", Side: matching.SideSell, Price: decimal.NewFromInt(160), Quantity: 7},
		{Instrument: "TATA", Side: matching.SideSell, Price: decimal.NewFromInt(155), Quantity: 5},
		{Instrument: "TATA", Side: matching.SideBuy, Price: decimal.NewFromInt(160), Quantity: 7},
		{Instrument: "RELIANCE", Side: matching.SideSell, Price: decimal.NewFromInt(200), Quantity: 10},
		{Instrument: "RELIANCE", Side: matching.SideBuy, Price: decimal.NewFromInt(190), Quantity: 8},
		{Instrument: "RELIANCE", Side: matching.SideSell, Price: decimal.NewFromInt(190), Quantity: 7},
		// rejected submissions
		{Instrument: "InvalidStock", Side: matching.SideBuy, Price: decimal.NewFromInt(150), Quantity: 5},
		{Instrument: "TATA", Side: matching.SideBuy, Price: decimal.NewFromInt(-1), Quantity: 5},
		{Instrument: "TATA", Side: matching.SideBuy, Price: decimal.NewFromInt(150), Quantity: -5},
	}

	for _, payload := range submissions {
		result, err := worker.Submit(payload)
		if err != nil {
			fmt.Printf("Rejected %s %s %s x %d: %s\n", payload.Side, payload.Instrument, payload.Price, payload.Quantity, err)
			continue
		}

		for _, trade := range result.Trades {
			fmt.Printf("Matched %d shares of %s at price %s\n", trade.Quantity, trade.Instrument, trade.Price)
		}
	}

	for _, instrument := range engine.Instruments() {
		printBook(engine, instrument)
	}
}

func printBook(engine *matching.Engine, instrument string) {
	snapshot, err := engine.Snapshot(instrument)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	fmt.Printf("Instrument: %s\n", instrument)

	fmt.Println("Buy Orders:")
	for _, view := range snapshot.Bids {
		fmt.Printf("  Price: %s, Quantity: %d, Sequence: %d\n", view.Price, view.RemainingQuantity, view.Sequence)
	}

	fmt.Println("Sell Orders:")
	for _, view := range snapshot.Asks {
		fmt.Printf("  Price: %s, Quantity: %d, Sequence: %d\n", view.Price, view.RemainingQuantity, view.Sequence)
	}
}
