package app

import (
	"github.com/courseflow/courseflow-api/internal/api/events"
	"github.com/courseflow/courseflow-api/internal/api/membershipplatforms"
	"github.com/courseflow/courseflow-api/internal/api/paymentgateways"
	"github.com/courseflow/courseflow-api/internal/shared/apperrors"
	"github.com/courseflow/courseflow-api/internal/shared/config"
	"github.com/courseflow/courseflow-api/internal/shared/logutil"
)

type Modifier func(a *App)

func SetConfig(cfg config.Config) Modifier {
	return func(a *App) {
		a.cfg = cfg
	}
}

func SetLog(log logutil.Log) Modifier {
	return func(a *App) {
		a.log = log
	}
}

func SetErrTracker(t apperrors.Tracker) Modifier {
	return func(a *App) {
		a.errTracker = t
	}
}

func SetAnalytics(t events.Tracker) Modifier {
	return func(a *App) {
		a.analytics = t
	}
}

func SetPaymentGatewayFactory(f paymentgateways.Factory) Modifier {
	return func(a *App) {
		a.paymentGatewayFactory = f
	}
}

func SetMembershipPlatformFactory(f membershipplatforms.Factory) Modifier {
	return func(a *App) {
		a.membershipPlatformFactory = f
	}
}
