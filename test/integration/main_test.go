package integration

import (
	"os"
	"testing"

	"helperbee_backend/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init("test")
	os.Exit(m.Run())
}
