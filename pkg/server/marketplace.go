package server

import (
	"fmt"

	"github.com/NeuralTrust/Marketplace/pkg/config"
	"github.com/NeuralTrust/Marketplace/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type MarketplaceServerDI struct {
	Config  *config.Config
	Logger  *logrus.Logger
	Routers []router.ServerRouter
}

type MarketplaceServer struct {
	*BaseServer
}

func NewMarketplaceServer(di MarketplaceServerDI) *MarketplaceServer {
	s := &MarketplaceServer{
		BaseServer: NewBaseServer(di.Config, di.Logger),
	}
	s.WithRouters(di.Routers...)
	return s
}

func (s *MarketplaceServer) Run() error {
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf(":%d", s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting marketplace server")
	return s.Router.Listen(addr)
}
