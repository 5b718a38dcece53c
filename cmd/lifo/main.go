package main

import (
	"context"

	"go.llib.dev/frameless/pkg/cli"
)

func main() {
	cli.Main(context.Background(), NewMux())
}

func NewMux() *cli.Mux {
	var m cli.Mux
	m.Handle("reverse", ReverseCommand{})
	m.Handle("rpn", RPNCommand{})
	return &m
}
