package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"auction-client/internal/models"
	"auction-client/internal/viewmodel"

	"github.com/samber/lo"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func money(amount float64) string {
	return "$" + strconv.FormatFloat(amount, 'f', 2, 64)
}

func auctionStatus(a models.Auction) string {
	return lo.Ternary(a.Active(), "active", "finished")
}

func renderAuctions(w io.Writer, auctions []models.Auction) {
	if len(auctions) == 0 {
		fmt.Fprintln(w, "no auctions found")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tMAX OFFER\tBIDS\tEND DATE\tSTATUS")
	for _, a := range auctions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n", a.ID, a.Name, money(a.MaxOffer), a.Inscriptions, a.EndDate, auctionStatus(a))
	}
	tw.Flush()
}

func renderAuction(w io.Writer, a models.Auction) {
	tw := newTable(w)
	fmt.Fprintf(tw, "ID:\t%s\n", a.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", a.Name)
	if a.Description != "" {
		fmt.Fprintf(tw, "Description:\t%s\n", a.Description)
	}
	fmt.Fprintf(tw, "Max offer:\t%s\n", money(a.MaxOffer))
	if a.MinBid != nil {
		fmt.Fprintf(tw, "Minimum bid:\t%s\n", money(*a.MinBid))
	}
	fmt.Fprintf(tw, "Bids:\t%d\n", a.Inscriptions)
	fmt.Fprintf(tw, "Ends:\t%s\n", a.EndDate)
	if a.ImageURL != "" {
		fmt.Fprintf(tw, "Image:\t%s\n", a.ImageURL)
	}
	fmt.Fprintf(tw, "Status:\t%s\n", auctionStatus(a))
	if a.WinnerID != nil {
		fmt.Fprintf(tw, "Winner:\t%s\n", *a.WinnerID)
	}
	if a.WinningBid != nil {
		fmt.Fprintf(tw, "Winning bid:\t%s\n", money(*a.WinningBid))
	}
	tw.Flush()
}

func renderDetail(w io.Writer, state viewmodel.DetailState) {
	if state.Auction == nil {
		return
	}
	renderAuction(w, *state.Auction)

	fmt.Fprintln(w)
	if len(state.Bids) == 0 {
		fmt.Fprintln(w, "no bids yet")
	} else {
		tw := newTable(w)
		fmt.Fprintln(tw, "BID\tBIDDER\tAMOUNT")
		for _, b := range state.Bids {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", b.ID, b.UserID, money(b.Amount))
		}
		tw.Flush()
	}

	if r := state.Result; r != nil {
		fmt.Fprintln(w)
		tw := newTable(w)
		fmt.Fprintf(tw, "Result:\t%s\n", r.Message)
		if r.WinnerID != nil {
			fmt.Fprintf(tw, "Leader:\t%s\n", *r.WinnerID)
		}
		if r.WinningBid != nil {
			fmt.Fprintf(tw, "Amount:\t%s\n", money(*r.WinningBid))
		}
		tw.Flush()
	}
}

// renderStatus prints the outcome message: errors go to errOut
func renderStatus(out, errOut io.Writer, status viewmodel.Status) {
	switch {
	case status.Error != "":
		fmt.Fprintln(errOut, "error: "+status.Error)
	case status.Success != "":
		fmt.Fprintln(out, status.Success)
	}
}
