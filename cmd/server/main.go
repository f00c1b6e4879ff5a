// Command server runs the duosync document server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/duosync/internal/server"
	"github.com/dmitrijs2005/duosync/internal/server/config"
)

func main() {
	ctx := context.Background()

	app, err := server.NewApp(ctx, config.LoadConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "duosync server: %v\n", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
