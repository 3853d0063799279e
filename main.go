package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/alapierre/go-voucher-claim/voucher"
)

func main() {

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	cfg, err := voucher.LoadConfig(".env")
	if err != nil {
		logrus.Fatal(err)
	}
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
		cfg.LogDebug()
	}

	if err := voucher.Run(context.Background(), cfg, os.Stdin, os.Stdout); err != nil {
		logrus.Fatal(err)
	}
}
