package sharedtest

import (
	"log"
	"net/http/httptest"
	"os"
	"path"
	"testing"

	"github.com/courseflow/courseflow-api/internal/api/events"
	"github.com/courseflow/courseflow-api/internal/api/membershipplatforms"
	"github.com/courseflow/courseflow-api/internal/api/membershipplatforms/membershipplatform"
	"github.com/courseflow/courseflow-api/internal/api/paymentgateways"
	"github.com/courseflow/courseflow-api/internal/api/paymentgateways/paymentgateway"
	"github.com/courseflow/courseflow-api/internal/api/settings"
	"github.com/courseflow/courseflow-api/internal/shared/apperrors"
	"github.com/courseflow/courseflow-api/internal/shared/config"
	"github.com/courseflow/courseflow-api/internal/shared/fsutil"
	"github.com/courseflow/courseflow-api/internal/shared/logutil"
	app "github.com/courseflow/courseflow-api/pkg/api"
	"github.com/courseflow/courseflow-api/test/sharedtest/mocks"
	"github.com/gavv/httpexpect"
	"github.com/joho/godotenv"
)

type App struct {
	app        *app.App
	testserver *httptest.Server

	PayPal     *FakePayPal
	Systeme    *FakeSysteme
	Analytics  *events.MemoryTracker
	ErrTracker *apperrors.MemoryTracker
	Settings   *settings.Settings
}

func RunApp() *App {
	loadEnv()

	ta := App{
		PayPal:     NewFakePayPal(),
		Systeme:    NewFakeSysteme(),
		Analytics:  &events.MemoryTracker{},
		ErrTracker: apperrors.NewMemoryTracker(),
	}

	slog := logutil.NewStderrLog("test")
	slog.SetLevel(logutil.LogLevelWarn)
	cfg := config.NewEnvConfig(slog)

	s, err := settings.Load(cfg)
	if err != nil {
		log.Fatalf("Can't load test settings: %s", err)
	}
	ta.Settings = s

	gf := mocks.NewGatewayFactory(func(g paymentgateway.Gateway) paymentgateway.Gateway {
		if err := g.SetBaseURL(ta.PayPal.URL()); err != nil {
			log.Fatalf("Failed to set base url: %s", err)
		}
		return g
	}, paymentgateways.NewBasicFactory(slog, s))

	pf := mocks.NewPlatformFactory(func(p membershipplatform.Platform) membershipplatform.Platform {
		if err := p.SetBaseURL(ta.Systeme.URL()); err != nil {
			log.Fatalf("Failed to set base url: %s", err)
		}
		return p
	}, membershipplatforms.NewBasicFactory(slog, s))

	modifiers := []app.Modifier{
		app.SetLog(slog),
		app.SetConfig(cfg),
		app.SetErrTracker(ta.ErrTracker),
		app.SetAnalytics(ta.Analytics),
		app.SetPaymentGatewayFactory(gf),
		app.SetMembershipPlatformFactory(pf),
	}

	ta.app = app.NewApp(modifiers...)
	ta.testserver = httptest.NewServer(ta.app.GetHTTPHandler())

	return &ta
}

func (ta App) NewHTTPExpect(t *testing.T) *httpexpect.Expect {
	return httpexpect.New(t, ta.testserver.URL)
}

func (ta App) URL() string {
	return ta.testserver.URL
}

func (ta App) Close() {
	ta.testserver.Close()
	ta.PayPal.Close()
	ta.Systeme.Close()
}

// loadEnv applies .env and then .env.test, a missing .env is fine.
func loadEnv() {
	envNames := []string{".env", ".env.test"}
	for _, envName := range envNames {
		fpath := path.Join(fsutil.GetProjectRoot(), envName)
		if _, err := os.Stat(fpath); os.IsNotExist(err) && envName == ".env" {
			continue
		}

		if err := godotenv.Overload(fpath); err != nil {
			log.Fatalf("Can't load %s: %s", fpath, err)
		}
	}
}
