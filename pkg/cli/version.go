package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tugboatctl/tugboat/pkg/domain/types"
)

func cmdVersion() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the embedded version",
		Action: func(ctx context.Context, c *cli.Command) error {
			fmt.Printf("tugboat %s\n", types.Version)
			return nil
		},
	}
}
