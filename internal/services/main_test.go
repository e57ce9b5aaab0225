package services

import (
	"bytes"
	"os"
	"testing"

	"github.com/google/logger"
)

// testLog collects everything the services log during the test run.
var testLog bytes.Buffer

func TestMain(m *testing.M) {
	logger.Init("services-test", false, false, &testLog)
	os.Exit(m.Run())
}
