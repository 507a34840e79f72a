package paymentgateways

import (
	"fmt"
	"net/http"

	"github.com/courseflow/courseflow-api/internal/api/paymentgateways/implementations/paypal"
	"github.com/courseflow/courseflow-api/internal/api/paymentgateways/paymentgateway"
	"github.com/courseflow/courseflow-api/internal/api/settings"
	"github.com/courseflow/courseflow-api/internal/shared/logutil"
)

type Factory interface {
	Build(gateway string) (paymentgateway.Gateway, error)
}

type basicFactory struct {
	log logutil.Log
	cfg *settings.Settings
}

func NewBasicFactory(log logutil.Log, cfg *settings.Settings) Factory {
	return &basicFactory{
		log: log,
		cfg: cfg,
	}
}

func (f basicFactory) Build(gateway string) (paymentgateway.Gateway, error) {
	client := &http.Client{
		Timeout: f.cfg.HTTP.ClientTimeout,
	}

	switch gateway {
	case paypal.ProviderName:
		p, err := paypal.NewProvider(f.log.Child(gateway), f.cfg.PayPal, client)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("invalid payment gateway name %q", gateway)
	}
}
