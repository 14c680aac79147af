package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/srburger/backoffice/config"
	"github.com/srburger/backoffice/internal/app"
)

var (
	cfile  = flag.String("config", "backoffice.yml", "configuration file")
	initdb = flag.Bool("initdb", false, "drop all collections and start from the seed catalog")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig(*cfile)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	application := app.NewApplication(cfg)
	if err := application.Init(cfg); err != nil {
		log.Fatalf("init: %v", err)
	}
	defer application.Release()

	if *initdb {
		application.InitDb()
	}

	summary := application.Reporting().Summary()
	usage := application.Reporting().Usage()
	fmt.Printf("sales: %d orders, $%.2f revenue, %d items sold\n",
		summary.Orders, summary.Revenue, summary.Items)
	fmt.Printf("inventory: %d ingredients low on stock\n", usage.LowStock)
}
