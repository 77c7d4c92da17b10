package bidding

//go:generate mockgen -destination=mock_bidding.go -package=bidding auction-client/internal/biddingService Gateway,Viewer

import (
	"auction-client/internal/biddingerrors"
	"auction-client/internal/bidpolicy"
	"auction-client/internal/listfilter"
	"auction-client/internal/models"
	"auction-client/internal/viewmodel"
	"auction-client/utils"
	"context"
	"fmt"
	"time"
)

// Gateway is the set of remote auction operations the service drives
type Gateway interface {
	ListAuctions(ctx context.Context, filter listfilter.Filter) ([]models.AuctionRecord, error)
	GetAuction(ctx context.Context, id int64) (models.AuctionRecord, error)
	CreateAuction(ctx context.Context, draft models.AuctionDraft, cover models.CoverImage) (int64, error)
	UpdateAuction(ctx context.Context, id int64, draft models.AuctionDraft) error
	ChangeCover(ctx context.Context, id int64, cover models.CoverImage) error
	DeleteAuction(ctx context.Context, id int64) error
	AddBid(ctx context.Context, id int64, amount int64) error
	DeleteBid(ctx context.Context, id int64) error
}

// Viewer supplies the signed-in identity, nil when signed out
type Viewer interface {
	Identity() *models.Identity
}

// Auction pairs a fetched record with the view derived from it
type Auction struct {
	Record models.AuctionRecord
	View   viewmodel.AuctionView
}

// BiddingService defines the auction use cases of the client
type BiddingService struct {
	gateway Gateway
	viewer  Viewer
	now     func() time.Time
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(gateway Gateway, viewer Viewer) *BiddingService {
	return &BiddingService{
		gateway: gateway,
		viewer:  viewer,
		now:     time.Now,
	}
}

// WithClock replaces the clock used to decide whether auctions are closed
func (s *BiddingService) WithClock(now func() time.Time) *BiddingService {
	s.now = now
	return s
}

// ListAuctions returns the auctions matching filter as seen by the current viewer
func (s *BiddingService) ListAuctions(ctx context.Context, filter listfilter.Filter) ([]Auction, error) {
	viewer := s.viewer.Identity()
	if filter == listfilter.Mine && viewer == nil {
		return nil, fmt.Errorf("service: %w - sign in to list your auctions", biddingerrors.ErrNotAuthenticated)
	}

	records, err := s.gateway.ListAuctions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list %s auctions: %w", filter, err)
	}

	now := s.now()
	auctions := make([]Auction, 0, len(records))
	for _, r := range records {
		auctions = append(auctions, Auction{Record: r, View: viewmodel.Build(r, viewer, now)})
	}
	return auctions, nil
}

// LoadAuction fetches one auction and builds its view
func (s *BiddingService) LoadAuction(ctx context.Context, id int64) (Auction, error) {
	record, err := s.gateway.GetAuction(ctx, id)
	if err != nil {
		return Auction{}, fmt.Errorf("service: failed to load auction %d: %w", id, err)
	}
	return Auction{Record: record, View: viewmodel.Build(record, s.viewer.Identity(), s.now())}, nil
}

// PlaceBid validates amount against a fresh view of the auction, submits it
// and returns the auction as it stands afterwards
func (s *BiddingService) PlaceBid(ctx context.Context, id, amount int64) (Auction, error) {
	if err := s.requireViewer(); err != nil {
		return Auction{}, err
	}

	current, err := s.LoadAuction(ctx, id)
	if err != nil {
		return Auction{}, err
	}
	if err := bidpolicy.ValidateBid(amount, current.View); err != nil {
		return Auction{}, fmt.Errorf("service: bid on auction %d rejected: %w", id, err)
	}

	if err := s.gateway.AddBid(ctx, id, amount); err != nil {
		return Auction{}, fmt.Errorf("service: failed to place bid on auction %d: %w", id, err)
	}
	utils.Info("bid placed", map[string]any{"auction_id": id, "amount": amount})

	return s.LoadAuction(ctx, id)
}

// WithdrawBid removes the viewer's bid from the auction
func (s *BiddingService) WithdrawBid(ctx context.Context, id int64) (Auction, error) {
	if err := s.requireViewer(); err != nil {
		return Auction{}, err
	}

	current, err := s.LoadAuction(ctx, id)
	if err != nil {
		return Auction{}, err
	}
	if err := bidpolicy.ValidateWithdraw(current.View); err != nil {
		return Auction{}, fmt.Errorf("service: withdraw on auction %d rejected: %w", id, err)
	}

	if err := s.gateway.DeleteBid(ctx, id); err != nil {
		return Auction{}, fmt.Errorf("service: failed to withdraw bid on auction %d: %w", id, err)
	}
	utils.Info("bid withdrawn", map[string]any{"auction_id": id})

	return s.LoadAuction(ctx, id)
}

// CreateAuction validates and submits a new listing
func (s *BiddingService) CreateAuction(ctx context.Context, draft models.AuctionDraft, cover models.CoverImage) (Auction, error) {
	if err := s.requireViewer(); err != nil {
		return Auction{}, err
	}
	if err := bidpolicy.ValidateNewAuction(draft, cover, s.now()); err != nil {
		return Auction{}, fmt.Errorf("service: %w", err)
	}

	id, err := s.gateway.CreateAuction(ctx, draft, cover)
	if err != nil {
		return Auction{}, fmt.Errorf("service: failed to create auction %q: %w", draft.Title, err)
	}
	utils.Info("auction created", map[string]any{"auction_id": id})

	return s.LoadAuction(ctx, id)
}

// UpdateAuction edits a listing the viewer owns. A non-empty cover is
// uploaded after the fields are saved.
func (s *BiddingService) UpdateAuction(ctx context.Context, id int64, draft models.AuctionDraft, cover models.CoverImage) (Auction, error) {
	if _, err := s.ownedAuction(ctx, id); err != nil {
		return Auction{}, err
	}
	if err := bidpolicy.ValidateDraft(draft); err != nil {
		return Auction{}, fmt.Errorf("service: %w", err)
	}

	if err := s.gateway.UpdateAuction(ctx, id, draft); err != nil {
		return Auction{}, fmt.Errorf("service: failed to update auction %d: %w", id, err)
	}
	if !cover.Empty() {
		if err := s.gateway.ChangeCover(ctx, id, cover); err != nil {
			return Auction{}, fmt.Errorf("service: auction %d updated but cover upload failed: %w", id, err)
		}
	}
	utils.Info("auction updated", map[string]any{"auction_id": id, "cover": !cover.Empty()})

	return s.LoadAuction(ctx, id)
}

// ChangeCover replaces the cover image of a listing the viewer owns
func (s *BiddingService) ChangeCover(ctx context.Context, id int64, cover models.CoverImage) (Auction, error) {
	if cover.Empty() {
		return Auction{}, fmt.Errorf("service: %w - cover image is required", biddingerrors.ErrInvalidDraft)
	}
	if _, err := s.ownedAuction(ctx, id); err != nil {
		return Auction{}, err
	}

	if err := s.gateway.ChangeCover(ctx, id, cover); err != nil {
		return Auction{}, fmt.Errorf("service: failed to change cover of auction %d: %w", id, err)
	}
	utils.Info("auction cover changed", map[string]any{"auction_id": id})

	return s.LoadAuction(ctx, id)
}

// DeleteAuction removes a listing the viewer owns
func (s *BiddingService) DeleteAuction(ctx context.Context, id int64) error {
	if _, err := s.ownedAuction(ctx, id); err != nil {
		return err
	}
	if err := s.gateway.DeleteAuction(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete auction %d: %w", id, err)
	}
	utils.Info("auction deleted", map[string]any{"auction_id": id})
	return nil
}

func (s *BiddingService) ownedAuction(ctx context.Context, id int64) (Auction, error) {
	if err := s.requireViewer(); err != nil {
		return Auction{}, err
	}
	current, err := s.LoadAuction(ctx, id)
	if err != nil {
		return Auction{}, err
	}
	if err := bidpolicy.RequireOwner(current.View); err != nil {
		return Auction{}, fmt.Errorf("service: %w", err)
	}
	return current, nil
}

func (s *BiddingService) requireViewer() error {
	if s.viewer.Identity() == nil {
		return fmt.Errorf("service: %w", biddingerrors.ErrNotAuthenticated)
	}
	return nil
}
