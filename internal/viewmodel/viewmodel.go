// Package viewmodel derives display-ready facts about an auction for the
// current viewer. Views are snapshots: they are rebuilt after every fetch and
// never updated in place.
package viewmodel

import (
	"auction-client/internal/models"
	"sort"
	"time"
)

// AuctionView is the derived state of one auction as seen by one viewer
type AuctionView struct {
	AuctionID        int64
	Title            string
	StartBid         int64
	ClosedAt         time.Time
	HighestBidAmount int64
	BidCount         int
	IsClosed         bool
	IsOwnedByViewer  bool
	// MinimumNextBid is the smallest acceptable amount, one above the
	// larger of the highest bid and the start price
	MinimumNextBid   int64
	ViewerBid        *models.Bid
	// Bids ordered by descending amount; ties keep the gateway's order
	BidHistory []models.Bid
	// Remaining is zero once the auction is closed
	Remaining time.Duration
}

// Build derives the view of record for viewer at now. viewer may be nil.
func Build(record models.AuctionRecord, viewer *models.Identity, now time.Time) AuctionView {
	highest := HighestBid(record.Bids)

	view := AuctionView{
		AuctionID:        record.ID,
		Title:            record.Title,
		StartBid:         record.StartBid,
		ClosedAt:         record.ClosedAt,
		HighestBidAmount: highest,
		BidCount:         len(record.Bids),
		IsClosed:         !now.Before(record.ClosedAt),
		IsOwnedByViewer:  viewer != nil && viewer.ID == record.Author.ID,
		MinimumNextBid:   max(highest, record.StartBid) + 1,
		BidHistory:       SortedBids(record.Bids),
	}
	if record.MyBid != nil {
		bid := *record.MyBid
		view.ViewerBid = &bid
	}
	if !view.IsClosed {
		view.Remaining = record.ClosedAt.Sub(now)
	}
	return view
}

// HighestBid returns the largest bid amount, or 0 when there are no bids
func HighestBid(bids []models.Bid) int64 {
	var highest int64
	for _, b := range bids {
		if b.Amount > highest {
			highest = b.Amount
		}
	}
	return highest
}

// SortedBids returns a copy of bids ordered by descending amount
func SortedBids(bids []models.Bid) []models.Bid {
	sorted := make([]models.Bid, len(bids))
	copy(sorted, bids)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount > sorted[j].Amount
	})
	return sorted
}

// CanBid reports whether the bid form should be offered
func (v AuctionView) CanBid() bool {
	return !v.IsClosed && !v.IsOwnedByViewer && v.ViewerBid == nil
}

// CanWithdraw reports whether the viewer has a bid to withdraw
func (v AuctionView) CanWithdraw() bool {
	return v.ViewerBid != nil
}

// CanManage reports whether edit and delete are available
func (v AuctionView) CanManage() bool {
	return v.IsOwnedByViewer
}
