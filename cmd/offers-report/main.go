package main

import (
	"flag"
	"time"

	log "github.com/sirupsen/logrus"

	svc "github.com/sebasfavaron/ml-scraper/pkg/offerservice"
	config "github.com/sebasfavaron/ml-scraper/pkg/offerservice/config"
)

const (
	ConfigDefault = "config/config.yaml"
	ConfigUsage   = "path to the yaml config file"
	ProdUsage     = "fetch every configured page; a dev run stops after the first page per source"
)

var (
	configFlag     string
	productionFlag bool
	// BuildTime will be populated by the linker to tell builds appart after they were shipped
	BuildTime string
)

func init() {
	flag.StringVar(&configFlag, "config", ConfigDefault, ConfigUsage)
	flag.BoolVar(&productionFlag, "production", false, ProdUsage)
}

func main() {
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{
		DisableColors: false,
		FullTimestamp: true,
	})

	log.WithFields(
		log.Fields{
			"Image Built on": BuildTime,
			"Started at":     time.Now().UTC(),
		},
	).Println("Application Started")

	cfg, err := config.New(configFlag)
	if err != nil {
		log.Fatalf("%v", err)
	}

	p, err := svc.New(cfg, productionFlag)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := p.Run(); err != nil {
		log.Fatalf("%v", err)
	}
}
