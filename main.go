package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"auction-client/internal/auctions"
	"auction-client/internal/client"
	"auction-client/internal/viewmodel"
	"auction-client/utils"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run parses argv, wires the client stack and executes one command
func run(ctx context.Context, argv []string, out, errOut io.Writer) int {
	args, err := ParseArgs(argv)
	if err != nil {
		fmt.Fprintln(errOut, err)
		printUsage(errOut)
		return 2
	}

	if err := utils.SetLevel(args.LogLevel); err != nil {
		fmt.Fprintf(errOut, "invalid log level %q: %v\n", args.LogLevel, err)
		return 2
	}

	c, err := client.New(client.Config{BaseURL: args.BaseURL, Timeout: args.Timeout})
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}

	utils.Debug("starting command", map[string]any{
		"command":  args.Command,
		"base_url": c.BaseURL(),
	})

	return commands[args.Command].run(ctx, env{
		repo:   auctions.NewRepository(c),
		opts:   viewmodel.Options{MessageTTL: args.MessageTTL},
		args:   args,
		out:    out,
		errOut: errOut,
	})
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: auction-client [global flags] <command> [args]")
	fmt.Fprintln(w, "\ncommands:")
	for _, c := range commandList {
		fmt.Fprintln(w, "  "+c.usage())
	}
	fmt.Fprintln(w, "\nglobal flags: --base-url url --timeout d --message-ttl d --log-level l --user name")
	fmt.Fprintln(w, "every flag can also be set as AUCTION_<FLAG>, e.g. AUCTION_BASE_URL")
}
