package main

import (
	"errors"
	"fmt"
	"os"

	vatify "github.com/vatify/client-go"
	"github.com/vatify/client-go/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, vatify.ErrMissingAPIKey) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
