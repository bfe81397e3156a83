package main

import (
	"go.uber.org/fx"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/app"
)

func main() {
	fx.New(app.CreateApp()).Run()
}
