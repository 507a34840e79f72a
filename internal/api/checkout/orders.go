package checkout

import (
	"context"

	"github.com/courseflow/courseflow-api/internal/api/paymentgateways/paymentgateway"
	"github.com/courseflow/courseflow-api/internal/shared/logutil"
	"github.com/pkg/errors"
)

type CreateOrderRequest struct {
	Amount  string `json:"amount,omitempty"`
	HasBump bool   `json:"hasBump,omitempty"`
}

func (r CreateOrderRequest) FillLogContext(lctx logutil.Context) {
	lctx["has_bump"] = r.HasBump
	if r.Amount != "" {
		lctx["amount"] = r.Amount
	}
}

type OrderCreator struct {
	gateway paymentgateway.Gateway
}

func NewOrderCreator(gateway paymentgateway.Gateway) *OrderCreator {
	return &OrderCreator{
		gateway: gateway,
	}
}

func (c OrderCreator) Create(ctx context.Context, log logutil.Log, req *CreateOrderRequest) (*paymentgateway.Order, error) {
	token, err := c.gateway.AccessToken(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get access token")
	}

	orderReq := paymentgateway.OrderRequest{
		Amount:  req.Amount,
		HasBump: req.HasBump,
	}
	order, err := c.gateway.CreateOrder(ctx, token, orderReq)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	log.Infof("Created order %s of %s %s (%s)", order.ID, orderReq.Total(),
		paymentgateway.CurrencyEUR, orderReq.ReferenceID())
	return order, nil
}
