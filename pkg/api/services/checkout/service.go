package checkout

import (
	"github.com/courseflow/courseflow-api/internal/api/checkout"
	"github.com/courseflow/courseflow-api/internal/api/paymentgateways/paymentgateway"
	"github.com/courseflow/courseflow-api/pkg/api/request"
)

type Health struct {
	OK bool `json:"ok"`
}

type CreatedOrder struct {
	ID string `json:"id"`
}

type Service interface {
	//url:/capture-paypal-order method:POST
	Capture(rc *request.AnonymousContext, req *checkout.CaptureRequest) (*checkout.CaptureResult, error)

	//url:/create-paypal-order method:POST
	CreateOrder(rc *request.AnonymousContext, req *checkout.CreateOrderRequest) (*CreatedOrder, error)

	//url:/health
	Health(rc *request.AnonymousContext) (*Health, error)
}

type BasicService struct {
	Capturer     *checkout.Capturer
	OrderCreator *checkout.OrderCreator
}

func NewBasicService(gateway paymentgateway.Gateway, capturer *checkout.Capturer) *BasicService {
	return &BasicService{
		Capturer:     capturer,
		OrderCreator: checkout.NewOrderCreator(gateway),
	}
}

func (s BasicService) Capture(rc *request.AnonymousContext, req *checkout.CaptureRequest) (*checkout.CaptureResult, error) {
	return s.Capturer.Capture(rc.Ctx, rc.Log, req)
}

func (s BasicService) CreateOrder(rc *request.AnonymousContext, req *checkout.CreateOrderRequest) (*CreatedOrder, error) {
	order, err := s.OrderCreator.Create(rc.Ctx, rc.Log, req)
	if err != nil {
		return nil, err
	}

	return &CreatedOrder{ID: order.ID}, nil
}

func (s BasicService) Health(_ *request.AnonymousContext) (*Health, error) {
	return &Health{OK: true}, nil
}
