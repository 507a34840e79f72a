package membershipplatforms

import (
	"fmt"
	"net/http"

	"github.com/courseflow/courseflow-api/internal/api/membershipplatforms/implementations/systemeio"
	"github.com/courseflow/courseflow-api/internal/api/membershipplatforms/membershipplatform"
	"github.com/courseflow/courseflow-api/internal/api/settings"
	"github.com/courseflow/courseflow-api/internal/shared/logutil"
)

type Factory interface {
	Build(platform string) (membershipplatform.Platform, error)
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

func (f basicFactory) Build(platform string) (membershipplatform.Platform, error) {
	client := &http.Client{
		Timeout: f.cfg.HTTP.ClientTimeout,
	}

	switch platform {
	case systemeio.PlatformName:
		c, err := systemeio.NewClient(f.log.Child(platform), f.cfg.Systeme, client)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("invalid membership platform name %q", platform)
	}
}
