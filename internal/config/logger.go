package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide structured logger. It works out of the box for
// tests; main calls InitLogger to switch it to JSON output.
var Log = logrus.New()

func InitLogger() {
	Log.SetFormatter(&logrus.JSONFormatter{})
	Log.SetOutput(os.Stdout)
	Log.SetLevel(logrus.InfoLevel)
}
