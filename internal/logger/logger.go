package logger

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger *logrus.Logger
	once   sync.Once
)

func Init() {
	logger = logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)
}

func Get() *logrus.Logger {
	once.Do(func() {
		if logger == nil {
			Init()
		}
	})
	return logger
}

// SetLevel parses a level name like "debug" and applies it. Unknown names
// leave the current level in place.
func SetLevel(name string) {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		Get().WithField("level", name).Warn("Unknown log level, keeping current")
		return
	}
	Get().SetLevel(level)
}
