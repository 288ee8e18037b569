package main

import (
	"github.com/google/wire"
	"github.com/pandodao/algopayx/service/gate"
	"github.com/pandodao/algopayx/worker/countdown"
)

var workerSet = wire.NewSet(
	wire.Bind(new(countdown.Ticker), new(*gate.Gate)),
	countdown.New,
)
