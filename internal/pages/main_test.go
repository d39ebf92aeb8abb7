package pages_test

import (
	"os"
	"testing"

	"opencartqa/internal/suite"
)

func TestMain(m *testing.M) {
	os.Exit(suite.Main(m))
}
