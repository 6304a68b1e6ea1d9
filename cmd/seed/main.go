// Command seed fills a running warehouse API with synthetic suppliers, items
// and shipments.
package main

import (
	"flag"
	"log"
	"strings"

	"go.uber.org/zap"

	applog "warehouse/internal/log"
)

func main() {
	api := flag.String("api", "http://localhost:8000", "base URL of the warehouse API")
	nSup := flag.Int("suppliers", 50, "suppliers to create")
	nItems := flag.Int("items", 50, "items to create")
	nShips := flag.Int("shipments", 50, "shipments to create")
	seed := flag.Int64("seed", 0, "random seed (0 picks one)")
	flag.Parse()

	logger, err := applog.New("info", "")
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	s := newSeeder(strings.TrimRight(*api, "/"), *seed, logger)
	res := s.Run(*nSup, *nItems, *nShips)
	logger.Info("seeding complete",
		zap.Int("suppliers", len(res.Suppliers)),
		zap.Int("items", len(res.Items)),
		zap.Int("shipments", len(res.Shipments)),
	)
}
