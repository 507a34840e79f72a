package sharedtest

import (
	"sync"
	"testing"

	"github.com/gavv/httpexpect"
)

var makeDefaultAppOnce sync.Once
var defaultTestApp *App

func GetDefaultTestApp() *App {
	makeDefaultAppOnce.Do(func() {
		defaultTestApp = RunApp()
	})
	return defaultTestApp
}

func NewHTTPExpect(t *testing.T) *httpexpect.Expect {
	return GetDefaultTestApp().NewHTTPExpect(t)
}
