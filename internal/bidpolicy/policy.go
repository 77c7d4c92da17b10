// Package bidpolicy gates bid submission, bid withdrawal and listing drafts
// before anything is sent to the gateway. It performs no I/O.
package bidpolicy

import (
	"auction-client/internal/biddingerrors"
	"auction-client/internal/viewmodel"
	"fmt"
)

// ValidateBid checks a candidate amount against the current view of the auction.
// A bid must be strictly above both the highest bid and the start price.
func ValidateBid(amount int64, view viewmodel.AuctionView) error {
	if amount <= 0 {
		return fmt.Errorf("bid policy: %w - got %d", biddingerrors.ErrNotPositive, amount)
	}
	if view.IsClosed {
		return fmt.Errorf("bid policy: %w - closed at %s", biddingerrors.ErrAuctionClosed, view.ClosedAt.Format("2006-01-02 15:04:05"))
	}
	if view.IsOwnedByViewer {
		return fmt.Errorf("bid policy: %w", biddingerrors.ErrOwnerCannotBid)
	}
	if view.ViewerBid != nil {
		return fmt.Errorf("bid policy: %w - withdraw your bid of %d first", biddingerrors.ErrAlreadyBid, view.ViewerBid.Amount)
	}
	if floor := max(view.HighestBidAmount, view.StartBid); amount <= floor {
		return fmt.Errorf("bid policy: %w - bid must be above %d", biddingerrors.ErrBidTooLow, floor)
	}
	return nil
}

// ValidateWithdraw checks that the viewer has a bid to withdraw
func ValidateWithdraw(view viewmodel.AuctionView) error {
	if view.ViewerBid == nil {
		return fmt.Errorf("bid policy: %w", biddingerrors.ErrNoBidToWithdraw)
	}
	return nil
}

// RequireOwner checks that the viewer may edit or delete the auction
func RequireOwner(view viewmodel.AuctionView) error {
	if !view.IsOwnedByViewer {
		return fmt.Errorf("bid policy: %w - auction %d", biddingerrors.ErrNotOwner, view.AuctionID)
	}
	return nil
}
