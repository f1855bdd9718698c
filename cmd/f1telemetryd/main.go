package main

import (
	"flag"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/NourAymanZaghloul/f1telemetry"
	"github.com/NourAymanZaghloul/f1telemetry/internal/provider"
	"github.com/NourAymanZaghloul/f1telemetry/pkg/trackdata"
)

var configPath string

func init() {
	flag.StringVar(&configPath, "c", "./config.yml", "config path")
	flag.Parse()
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logrus.SetLevel(logrus.DebugLevel)

	logrus.Infof("Starting F1 telemetry comparison dashboard")

	config, err := f1telemetry.ReadConfig(configPath)

	if err != nil {
		logrus.WithError(err).Fatalf("Could not read config at %s", configPath)
	}

	var cache provider.Cache = provider.NopCache{}

	if config.CacheDir != "" {
		cache, err = provider.NewFilesystemCache(config.CacheDir)

		if err != nil {
			logrus.WithError(err).Fatalf("Could not initialise cache at %s", config.CacheDir)
		}
	}

	var circuits trackdata.Catalog

	if config.CircuitsFile != "" {
		circuits, err = trackdata.LoadCatalog(config.CircuitsFile)

		if err != nil {
			logrus.WithError(err).Warnf("Could not load circuit catalog at %s", config.CircuitsFile)
		}
	}

	client := provider.NewClient(config.Provider.BaseURL, config.Provider.RequestTimeout(), cache)

	dashboard := f1telemetry.NewDashboard(config, client, circuits)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)

	go func() {
		for range c {
			if err := dashboard.Close(); err != nil {
				logrus.WithError(err).Fatal("Could not stop dashboard")
			}

			os.Exit(0)
		}
	}()

	if err := dashboard.Listen(); err != nil {
		logrus.WithError(err).Fatal("Could not run dashboard")
	}

	logrus.Infof("Dashboard stopped. Exiting")
}
