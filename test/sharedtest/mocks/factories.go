package mocks

import (
	"github.com/courseflow/courseflow-api/internal/api/membershipplatforms"
	"github.com/courseflow/courseflow-api/internal/api/membershipplatforms/membershipplatform"
	"github.com/courseflow/courseflow-api/internal/api/paymentgateways"
	"github.com/courseflow/courseflow-api/internal/api/paymentgateways/paymentgateway"
)

type GatewayTransformer func(g paymentgateway.Gateway) paymentgateway.Gateway

type GatewayFactory struct {
	orig        paymentgateways.Factory
	transformer GatewayTransformer
}

var _ paymentgateways.Factory = &GatewayFactory{}

func NewGatewayFactory(transformer GatewayTransformer, orig paymentgateways.Factory) *GatewayFactory {
	return &GatewayFactory{
		orig:        orig,
		transformer: transformer,
	}
}

func (f GatewayFactory) Build(gateway string) (paymentgateway.Gateway, error) {
	g, err := f.orig.Build(gateway)
	if g != nil {
		g = f.transformer(g)
	}
	return g, err
}

type PlatformTransformer func(p membershipplatform.Platform) membershipplatform.Platform

type PlatformFactory struct {
	orig        membershipplatforms.Factory
	transformer PlatformTransformer
}

var _ membershipplatforms.Factory = &PlatformFactory{}

func NewPlatformFactory(transformer PlatformTransformer, orig membershipplatforms.Factory) *PlatformFactory {
	return &PlatformFactory{
		orig:        orig,
		transformer: transformer,
	}
}

func (f PlatformFactory) Build(platform string) (membershipplatform.Platform, error) {
	p, err := f.orig.Build(platform)
	if p != nil {
		p = f.transformer(p)
	}
	return p, err
}
