//go:build wireinject
// +build wireinject

package wire

import (
	"context"

	"github.com/google/wire"

	"github.com/sevigo/code-optimizer/internal/app"
)

func InitializeApp(ctx context.Context) (*app.App, error) {
	wire.Build(AppSet)
	return &app.App{}, nil
}
