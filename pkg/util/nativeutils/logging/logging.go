package logging

import (
	"os"

	cfg "github.com/dusk-network/base58/pkg/config"
	log "github.com/sirupsen/logrus"
)

// InitLog applies the configured logger level, format and output. The out
// file is used unless the configuration names stdout explicitly.
func InitLog(out *os.File) {
	// apply logger level from configurations
	SetToLevel(cfg.Get().Logger.Level)

	if cfg.Get().Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	}

	if cfg.Get().Logger.Output == "stdout" {
		log.SetOutput(os.Stdout)
		return
	}

	log.SetOutput(out)
}

func SetToLevel(l string) {
	level, err := log.ParseLevel(l)
	if err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(log.TraceLevel)
		log.Warnf("Parse logger level from config err: %v", err)
	}
}
