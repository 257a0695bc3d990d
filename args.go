package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"auction-client/internal/client"
	"auction-client/internal/viewmodel"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "AUCTION"

type Args struct {
	Command string
	Params  []string

	BaseURL    string
	Timeout    time.Duration
	MessageTTL time.Duration
	LogLevel   string
	User       string

	// list
	Search string

	// create
	Name     string
	MinOffer string
	EndDate  string
	ImageURL string
}

// ParseArgs reads flags from argv and the AUCTION_* environment. Flags win over env.
func ParseArgs(argv []string) (Args, error) {
	flags := pflag.NewFlagSet("auction-client", pflag.ContinueOnError)
	flags.Usage = func() {}

	// global config
	flags.String("base-url", "http://localhost:3000/", "root url of the auction API")
	flags.Duration("timeout", client.DefaultTimeout, "ceiling for every request")
	flags.Duration("message-ttl", viewmodel.DefaultMessageTTL, "how long status messages are kept")
	flags.String("log-level", "warn", "debug, info, warn or error")
	flags.String("user", "", "bidder name used by the bid command")

	// list
	flags.String("search", "", "filter auctions by name or end date")

	// create
	flags.String("name", "", "auction name")
	flags.String("min-offer", "", "minimum offer")
	flags.String("end-date", "", "auction end date")
	flags.String("image-url", "", "auction image url")

	if err := flags.Parse(argv); err != nil {
		return Args{}, err
	}

	// bind pflag to viper
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return Args{}, err
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	args := Args{
		BaseURL:    v.GetString("base-url"),
		Timeout:    v.GetDuration("timeout"),
		MessageTTL: v.GetDuration("message-ttl"),
		LogLevel:   v.GetString("log-level"),
		User:       v.GetString("user"),
		Search:     v.GetString("search"),
		Name:       v.GetString("name"),
		MinOffer:   v.GetString("min-offer"),
		EndDate:    v.GetString("end-date"),
		ImageURL:   v.GetString("image-url"),
	}
	if positional := flags.Args(); len(positional) > 0 {
		args.Command = positional[0]
		args.Params = positional[1:]
	}
	return args, args.Validate()
}

// Validate checks the command name and its positional arguments
func (args Args) Validate() error {
	if args.Command == "" {
		return errors.New("missing command")
	}
	cmd, ok := commands[args.Command]
	if !ok {
		return fmt.Errorf("unknown command %q", args.Command)
	}
	if len(args.Params) != len(cmd.params) {
		return fmt.Errorf("usage: auction-client %s", cmd.usage())
	}
	if args.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", args.Timeout)
	}
	return nil
}
