package main

import (
	bidding "auction-client/internal/biddingService"
	"auction-client/internal/models"
	"auction-client/utils"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// printer writes command results as text tables or JSON
type printer struct {
	w    io.Writer
	json bool
}

func newPrinter(w io.Writer, asJSON bool) *printer {
	return &printer{w: w, json: asJSON}
}

type auctionJSON struct {
	ID             int64        `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Cover          string       `json:"cover"`
	Author         string       `json:"author"`
	StartBid       int64        `json:"start_bid"`
	HighestBid     int64        `json:"highest_bid"`
	MinimumNextBid int64        `json:"minimum_next_bid"`
	BidCount       int          `json:"bid_count"`
	ClosedAt       time.Time    `json:"closed_at"`
	IsClosed       bool         `json:"is_closed"`
	IsMine         bool         `json:"is_mine"`
	MyBid          *models.Bid  `json:"my_bid,omitempty"`
	Bids           []models.Bid `json:"bids"`
	Actions        []string     `json:"actions"`
}

func toAuctionJSON(a bidding.Auction) auctionJSON {
	v := a.View
	return auctionJSON{
		ID:             v.AuctionID,
		Title:          v.Title,
		Description:    a.Record.Description,
		Cover:          a.Record.CoverURL,
		Author:         a.Record.Author.Name,
		StartBid:       v.StartBid,
		HighestBid:     v.HighestBidAmount,
		MinimumNextBid: v.MinimumNextBid,
		BidCount:       v.BidCount,
		ClosedAt:       v.ClosedAt,
		IsClosed:       v.IsClosed,
		IsMine:         v.IsOwnedByViewer,
		MyBid:          v.ViewerBid,
		Bids:           v.BidHistory,
		Actions:        actions(a),
	}
}

// actions lists the commands the viewer may run on the auction
func actions(a bidding.Auction) []string {
	out := []string{}
	if a.View.CanBid() {
		out = append(out, "bid")
	}
	if a.View.CanWithdraw() {
		out = append(out, "withdraw")
	}
	if a.View.CanManage() {
		out = append(out, "edit", "cover", "delete")
	}
	return out
}

func (p *printer) encode(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) message(msg string) error {
	if p.json {
		return p.encode(map[string]string{"message": msg})
	}
	_, err := fmt.Fprintln(p.w, msg)
	return err
}

func (p *printer) identity(prefix string, id models.Identity) error {
	if p.json {
		return p.encode(id)
	}
	_, err := fmt.Fprintf(p.w, "%s %s <%s>\n", prefix, id.Name, id.Email)
	return err
}

func (p *printer) auctions(list []bidding.Auction) error {
	if p.json {
		out := make([]auctionJSON, 0, len(list))
		for _, a := range list {
			out = append(out, toAuctionJSON(a))
		}
		return p.encode(out)
	}
	if len(list) == 0 {
		return p.message("No auctions")
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tHIGHEST\tBIDS\tCLOSES\tSTATUS")
	for _, a := range list {
		v := a.View
		highest := "-"
		if v.HighestBidAmount > 0 {
			highest = utils.FormatAmount(v.HighestBidAmount)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\n",
			v.AuctionID, v.Title, highest, v.BidCount,
			utils.FormatTime(v.ClosedAt.Local()), utils.FormatRemaining(v.Remaining))
	}
	return tw.Flush()
}

func (p *printer) auction(a bidding.Auction) error {
	if p.json {
		return p.encode(toAuctionJSON(a))
	}

	v := a.View
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#%d\t%s\n", v.AuctionID, v.Title)
	fmt.Fprintf(tw, "Seller\t%s\n", a.Record.Author.Name)
	if a.Record.Description != "" {
		fmt.Fprintf(tw, "Description\t%s\n", a.Record.Description)
	}
	fmt.Fprintf(tw, "Start bid\t%s\n", utils.FormatAmount(v.StartBid))
	fmt.Fprintf(tw, "Closes\t%s (%s)\n", utils.FormatTime(v.ClosedAt.Local()), utils.FormatRemaining(v.Remaining))
	if !v.IsClosed {
		fmt.Fprintf(tw, "Minimum next bid\t%s\n", utils.FormatAmount(v.MinimumNextBid))
	}
	if v.ViewerBid != nil {
		fmt.Fprintf(tw, "Your bid\t%s\n", utils.FormatAmount(v.ViewerBid.Amount))
	}
	if acts := actions(a); len(acts) > 0 {
		fmt.Fprintf(tw, "Actions\t%v\n", acts)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(p.w, "\nBids (%d)\n", v.BidCount)
	tw = tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	for _, b := range v.BidHistory {
		mark := ""
		if v.ViewerBid != nil && v.ViewerBid.ID == b.ID {
			mark = "you"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", utils.FormatAmount(b.Amount), utils.FormatTime(b.CreatedAt.Local()), mark)
	}
	return tw.Flush()
}
