package main

import (
	"context"
	"io"
	"strings"

	"auction-client/internal/auctions"
	"auction-client/internal/viewmodel"

	"github.com/samber/lo"
)

// env is what every command needs to run
type env struct {
	repo   auctions.Repository
	opts   viewmodel.Options
	args   Args
	out    io.Writer
	errOut io.Writer
}

type command struct {
	name   string
	params []string
	flags  string
	run    func(ctx context.Context, e env) int
}

func (c command) usage() string {
	var b strings.Builder
	b.WriteString(c.name)
	for _, p := range c.params {
		b.WriteString(" <" + p + ">")
	}
	if c.flags != "" {
		b.WriteString(" " + c.flags)
	}
	return b.String()
}

var commandList = []command{
	{name: "list", flags: "[--search s]", run: runList},
	{name: "show", params: []string{"auction-id"}, run: runShow},
	{name: "bid", params: []string{"auction-id", "amount"}, flags: "--user name", run: runBid},
	{name: "revise", params: []string{"auction-id", "bid-id", "amount"}, run: runRevise},
	{name: "finish", params: []string{"auction-id"}, run: runFinish},
	{name: "delete", params: []string{"auction-id"}, run: runDelete},
	{name: "result", params: []string{"auction-id"}, run: runResult},
	{name: "create", flags: "--name n --min-offer x --end-date d [--image-url u]", run: runCreate},
}

var commands = lo.KeyBy(commandList, func(c command) string { return c.name })

// exitCode is 1 when the last action ended in the error phase
func exitCode(status viewmodel.Status) int {
	if status.Phase == viewmodel.PhaseError {
		return 1
	}
	return 0
}

func runList(ctx context.Context, e env) int {
	list := viewmodel.NewList(ctx, e.repo, e.opts)
	defer list.Close()

	list.SetQuery(e.args.Search)
	list.Load(ctx)

	state := list.State()
	if state.Phase != viewmodel.PhaseError {
		renderAuctions(e.out, state.Auctions)
	}
	renderStatus(e.out, e.errOut, state.Status)
	return exitCode(state.Status)
}

func runCreate(ctx context.Context, e env) int {
	create := viewmodel.NewCreate(ctx, e.repo, e.opts)
	defer create.Close()

	create.SetName(e.args.Name)
	create.SetMinimumOffer(e.args.MinOffer)
	create.SetEndDate(e.args.EndDate)
	create.SetImageURL(e.args.ImageURL)
	create.Submit(ctx)

	state := create.State()
	if state.Created != nil {
		renderAuction(e.out, *state.Created)
	}
	renderStatus(e.out, e.errOut, state.Status)
	return exitCode(state.Status)
}

// withDetail loads the auction named by the first parameter and, when that worked,
// runs action on the same holder before rendering it
func withDetail(ctx context.Context, e env, action func(d *viewmodel.Detail)) int {
	detail := viewmodel.NewDetail(ctx, e.repo, e.opts)
	defer detail.Close()

	detail.Load(ctx, e.args.Params[0])
	if state := detail.State(); state.Phase != viewmodel.PhaseError && action != nil {
		action(detail)
	}

	state := detail.State()
	renderDetail(e.out, state)
	renderStatus(e.out, e.errOut, state.Status)
	return exitCode(state.Status)
}

func runShow(ctx context.Context, e env) int {
	return withDetail(ctx, e, nil)
}

func runBid(ctx context.Context, e env) int {
	return withDetail(ctx, e, func(d *viewmodel.Detail) {
		d.PlaceBid(ctx, e.args.Params[1], e.args.User)
	})
}

func runRevise(ctx context.Context, e env) int {
	return withDetail(ctx, e, func(d *viewmodel.Detail) {
		d.ReviseBid(ctx, e.args.Params[1], e.args.Params[2])
	})
}

func runFinish(ctx context.Context, e env) int {
	return withDetail(ctx, e, func(d *viewmodel.Detail) {
		d.Finish(ctx)
	})
}

func runDelete(ctx context.Context, e env) int {
	return withDetail(ctx, e, func(d *viewmodel.Detail) {
		d.Delete(ctx)
	})
}

func runResult(ctx context.Context, e env) int {
	return withDetail(ctx, e, func(d *viewmodel.Detail) {
		d.FetchResult(ctx)
	})
}
