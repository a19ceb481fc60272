package main

import (
	"github.com/cinerec/core/internal/app"
	"github.com/cinerec/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
