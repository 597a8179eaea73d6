package service

import (
	"os"
	"testing"

	"github.com/emrgen/cabinet/internal/tester"
)

func TestMain(m *testing.M) {
	tester.Setup()
	code := m.Run()

	os.Exit(code)
}
