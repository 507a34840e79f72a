package settings

import (
	"fmt"
	"strings"
	"time"

	"github.com/courseflow/courseflow-api/internal/shared/config"
	"github.com/pkg/errors"
)

const (
	PayPalEnvSandbox = "sandbox"
	PayPalEnvLive    = "live"

	payPalSandboxAPIRoot = "https://api.sandbox.paypal.com"
	payPalLiveAPIRoot    = "https://api.paypal.com"

	defaultSystemeAPIRoot = "https://api.systeme.io/api"
)

type PayPal struct {
	Env          string
	APIRoot      string
	ClientID     string
	ClientSecret string
}

func (p PayPal) IsSandbox() bool {
	return p.Env == PayPalEnvSandbox
}

type Systeme struct {
	APIRoot         string
	APIKey          string
	StarterCourseID string
	MiniCourseID    string
}

type HTTP struct {
	Port               int
	CORSAllowedOrigins []string
	ClientTimeout      time.Duration
}

type Analytics struct {
	AmplitudeAPIKey string
	MixpanelToken   string
}

// Settings is read once at startup and never changed afterwards.
type Settings struct {
	PayPal    PayPal
	Systeme   Systeme
	HTTP      HTTP
	Analytics Analytics

	PaymentProvider    string
	MembershipPlatform string
	LambdaEnabled      bool
}

func Load(cfg config.Config) (*Settings, error) {
	s := &Settings{
		HTTP: HTTP{
			Port:               cfg.GetInt("PORT", 3000),
			CORSAllowedOrigins: cfg.GetStringList("CORS_ALLOWED_ORIGINS"),
			ClientTimeout:      cfg.GetDuration("HTTP_CLIENT_TIMEOUT", 30*time.Second),
		},
		Analytics: Analytics{
			AmplitudeAPIKey: cfg.GetString("AMPLITUDE_API_KEY"),
			MixpanelToken:   cfg.GetString("MIXPANEL_TOKEN"),
		},
		PaymentProvider:    withDefault(cfg.GetString("PAYMENT_PROVIDER"), "paypal"),
		MembershipPlatform: withDefault(cfg.GetString("MEMBERSHIP_PLATFORM"), "systemeio"),
		LambdaEnabled:      cfg.GetBool("LAMBDA_ENABLED", false),
	}

	payPal, err := loadPayPal(cfg)
	if err != nil {
		return nil, err
	}
	s.PayPal = *payPal

	s.Systeme = Systeme{
		APIRoot:         withDefault(cfg.GetString("SIO_API_ROOT"), defaultSystemeAPIRoot),
		APIKey:          cfg.GetString("SIO_API_KEY"),
		StarterCourseID: cfg.GetString("SIO_COURSE_ID_STARTER"),
		MiniCourseID:    cfg.GetString("SIO_COURSE_ID_MINI"),
	}
	if s.Systeme.APIKey == "" {
		return nil, errors.New("no SIO_API_KEY in config")
	}
	if s.Systeme.StarterCourseID == "" || s.Systeme.MiniCourseID == "" {
		return nil, errors.New("no SIO_COURSE_ID_{STARTER,MINI} in config")
	}

	return s, nil
}

func loadPayPal(cfg config.Config) (*PayPal, error) {
	env := strings.ToLower(withDefault(cfg.GetString("PAYPAL_ENV"), PayPalEnvLive))
	var p PayPal
	switch env {
	case PayPalEnvSandbox:
		p = PayPal{
			APIRoot:      payPalSandboxAPIRoot,
			ClientID:     cfg.GetString("PAYPAL_CLIENT_ID_SANDBOX"),
			ClientSecret: cfg.GetString("PAYPAL_CLIENT_SECRET_SANDBOX"),
		}
	case PayPalEnvLive:
		p = PayPal{
			APIRoot:      payPalLiveAPIRoot,
			ClientID:     cfg.GetString("PAYPAL_CLIENT_ID_LIVE"),
			ClientSecret: cfg.GetString("PAYPAL_CLIENT_SECRET_LIVE"),
		}
	default:
		return nil, fmt.Errorf("invalid PAYPAL_ENV %q: must be %s or %s", env, PayPalEnvSandbox, PayPalEnvLive)
	}
	p.Env = env

	if root := cfg.GetString("PAYPAL_API_ROOT"); root != "" {
		p.APIRoot = root
	}

	if p.ClientID == "" || p.ClientSecret == "" {
		return nil, fmt.Errorf("no paypal client id or secret for %s environment", env)
	}

	return &p, nil
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}

	return v
}
