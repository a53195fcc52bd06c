package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/delaneyj/scopeparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const arityCountKey = "count"

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the Watch arity family for scopes",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityCountKey,
				Usage: "Number of controller type parameters to generate",
				Value: 8,
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for scope watchers started!")
	defer func() {
		log.Printf("Codegen for scope watchers finished in %v", time.Since(start))
	}()

	count := int(cmd.Uint(arityCountKey))
	log.Printf("Arity count: %d", count)

	contents := templates.WatchGen(count)
	return os.WriteFile("scope/watch_generated.go", []byte(contents), 0644)
}
