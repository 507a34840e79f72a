package app

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/courseflow/courseflow-api/internal/api/checkout"
	"github.com/courseflow/courseflow-api/internal/api/events"
	"github.com/courseflow/courseflow-api/internal/api/membershipplatforms"
	"github.com/courseflow/courseflow-api/internal/api/membershipplatforms/membershipplatform"
	"github.com/courseflow/courseflow-api/internal/api/paymentgateways"
	"github.com/courseflow/courseflow-api/internal/api/paymentgateways/paymentgateway"
	"github.com/courseflow/courseflow-api/internal/api/settings"
	"github.com/courseflow/courseflow-api/internal/api/transportutil"
	"github.com/courseflow/courseflow-api/internal/shared/apperrors"
	"github.com/courseflow/courseflow-api/internal/shared/config"
	"github.com/courseflow/courseflow-api/internal/shared/logutil"
	checkoutsvc "github.com/courseflow/courseflow-api/pkg/api/services/checkout"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/urfave/negroni"
)

type appServices struct {
	checkout checkoutsvc.Service
}

type App struct {
	cfg        config.Config
	log        logutil.Log
	trackedLog logutil.Log
	errTracker apperrors.Tracker
	settings   *settings.Settings
	analytics  events.Tracker
	services   appServices

	paymentGatewayFactory     paymentgateways.Factory
	membershipPlatformFactory membershipplatforms.Factory
	paymentGateway            paymentgateway.Gateway
	membershipPlatform        membershipplatform.Platform
}

func (a *App) buildDeps() {
	if a.log == nil {
		slog := logutil.NewStderrLog("courseflow-api", strings.Split(os.Getenv("DEBUG_KEYS"), ",")...)
		slog.SetLevel(logutil.ParseLogLevel(os.Getenv("LOG_LEVEL"), logutil.LogLevelInfo))
		if os.Getenv("LOG_FORMAT") == "json" {
			slog.SetJSONFormat()
		}
		a.log = slog
	}

	if a.cfg == nil {
		a.cfg = config.NewEnvConfig(a.log)
	}

	if a.errTracker == nil {
		a.errTracker = apperrors.GetTracker(a.cfg, a.log, "courseflow-api")
	}
	if a.trackedLog == nil {
		a.trackedLog = apperrors.WrapLogWithTracker(a.log, nil, a.errTracker)
	}

	if a.settings == nil {
		s, err := settings.Load(a.cfg)
		if err != nil {
			a.log.Fatalf("Invalid config: %s", err)
		}
		a.settings = s
	}

	if a.analytics == nil {
		a.analytics = events.NewTracker(a.trackedLog.Child("analytics"), a.settings.Analytics,
			a.settings.HTTP.ClientTimeout)
	}

	if a.paymentGatewayFactory == nil {
		a.paymentGatewayFactory = paymentgateways.NewBasicFactory(a.trackedLog, a.settings)
	}

	if a.membershipPlatformFactory == nil {
		a.membershipPlatformFactory = membershipplatforms.NewBasicFactory(a.trackedLog, a.settings)
	}
}

func (a *App) buildProviders() {
	gw, err := a.paymentGatewayFactory.Build(a.settings.PaymentProvider)
	if err != nil {
		a.log.Fatalf("Can't build payment gateway: %s", err)
	}
	a.paymentGateway = gw

	p, err := a.membershipPlatformFactory.Build(a.settings.MembershipPlatform)
	if err != nil {
		a.log.Fatalf("Can't build membership platform: %s", err)
	}
	a.membershipPlatform = p
}

func (a *App) buildServices() {
	plan := checkout.NewEnrollmentPlan(a.settings.Systeme.StarterCourseID, a.settings.Systeme.MiniCourseID)
	capturer := checkout.NewCapturer(a.paymentGateway, a.membershipPlatform, plan, a.analytics)
	a.services.checkout = checkoutsvc.NewBasicService(a.paymentGateway, capturer)
}

func NewApp(modifiers ...Modifier) *App {
	a := App{}
	for _, m := range modifiers {
		m(&a)
	}
	a.buildDeps()
	a.buildProviders()
	a.buildServices()

	mode := "LIVE"
	if a.settings.PayPal.IsSandbox() {
		mode = "SANDBOX"
	}
	a.log.Infof("PayPal mode: %s", mode)

	return &a
}

func (a App) registerHandlers(r *mux.Router) {
	regCtx := &transportutil.HandlerRegContext{
		Router:     r,
		Log:        a.log,
		ErrTracker: a.errTracker,
	}
	checkoutsvc.RegisterHandlers(a.services.checkout, regCtx)
}

func (a App) RunForever() {
	if a.settings.LambdaEnabled {
		a.log.Infof("Use lambda handler")
		a.runLambda() // blocks on net.Accept inside
		return
	}

	http.Handle("/", a.GetHTTPHandler())

	addr := fmt.Sprintf(":%d", a.settings.HTTP.Port)
	a.log.Infof("Listening on %s...", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		a.log.Errorf("Can't listen HTTP on %s: %s", addr, err)
		os.Exit(1)
	}
}

func (a App) GetHTTPHandler() http.Handler {
	r := mux.NewRouter()
	a.registerHandlers(r)

	corsOpts := cors.Options{
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type"},
	}
	if origins := a.settings.HTTP.CORSAllowedOrigins; len(origins) != 0 {
		corsOpts.AllowedOrigins = origins
	} else {
		// reflect any origin until the storefront domain is configured
		corsOpts.AllowOriginFunc = func(string) bool { return true }
	}

	n := negroni.Classic()
	n.Use(cors.New(corsOpts))
	n.UseHandler(r)
	return n
}
