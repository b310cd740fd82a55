package main

import (
	"context"
	"fmt"
	"go/format"
	"os"
	"time"

	"github.com/delaneyj/gluekit/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

const (
	genericParamCountKey = "count"
	outputKey            = "out"
)

func main() {
	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the CombineN and CombineUpdatablesN families for package glue",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Highest number of sources to generate a Combine function for",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "File to write the generated code to",
				Value: "glue/combine_gen.go",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return generate(log, cmd)
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal("codegen failed", zap.Error(err))
	}
}

func generate(log *zap.Logger, cmd *cli.Command) error {
	start := time.Now()
	log.Info("codegen started")
	defer func() {
		log.Info("codegen finished", zap.Duration("took", time.Since(start)))
	}()

	count := int(cmd.Uint(genericParamCountKey))
	if count < 2 {
		return fmt.Errorf("count must be at least 2, got %d", count)
	}
	out := cmd.String(outputKey)
	log.Info("generating", zap.Int("count", count), zap.String("out", out))

	src, err := format.Source([]byte(templates.CombineGen(count)))
	if err != nil {
		return fmt.Errorf("formatting generated code: %w", err)
	}
	if err := os.WriteFile(out, src, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	return nil
}
