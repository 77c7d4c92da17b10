package store

import (
	"auction-client/internal/biddingerrors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestStore(t *testing.T) (*Store, *clock) {
	t.Helper()
	c := &clock{now: time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)}
	return New(WithClock(c.Now), WithBcryptCost(bcrypt.MinCost), WithTokenTTL(time.Hour)), c
}

func mustRegister(t *testing.T, s *Store, email string) User {
	t.Helper()
	u, err := s.Register("User "+email, email, "secret")
	require.NoError(t, err)
	return u
}

func mustCreate(t *testing.T, s *Store, owner int64, startBid int64, closesIn time.Duration) int64 {
	t.Helper()
	id, err := s.CreateAuction(owner, AuctionInput{
		Title:       "Vintage watch",
		Description: "Runs well",
		StartBid:    startBid,
		ClosedAt:    s.Now().Add(closesIn),
	}, Cover{Filename: "watch.png", Content: []byte("png")})
	require.NoError(t, err)
	return id
}

func TestStore_RegisterAndLogin(t *testing.T) {
	s, c := newTestStore(t)

	u := mustRegister(t, s, "Ana@Example.com")
	require.Equal(t, int64(1), u.ID)
	require.Equal(t, "ana@example.com", u.Email)

	_, err := s.Register("Again", "ana@example.com", "x")
	require.ErrorIs(t, err, biddingerrors.ErrEmailTaken)

	_, err = s.Register("", "b@example.com", "x")
	require.ErrorIs(t, err, biddingerrors.ErrRegistrationFailed)

	_, _, err = s.Login("ana@example.com", "wrong")
	require.ErrorIs(t, err, biddingerrors.ErrInvalidCredentials)

	_, _, err = s.Login("nobody@example.com", "secret")
	require.ErrorIs(t, err, biddingerrors.ErrInvalidCredentials)

	logged, token, err := s.Login("ana@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, u.ID, logged.ID)
	require.NotEmpty(t, token)

	who, err := s.Authenticate(token)
	require.NoError(t, err)
	require.Equal(t, u.ID, who.ID)

	_, err = s.Authenticate("garbage")
	require.ErrorIs(t, err, biddingerrors.ErrUnknownToken)

	c.Advance(2 * time.Hour)
	_, err = s.Authenticate(token)
	require.ErrorIs(t, err, biddingerrors.ErrUnknownToken)
}

func TestStore_TokenFromAnotherStoreIsRejected(t *testing.T) {
	a, _ := newTestStore(t)
	b, _ := newTestStore(t)

	mustRegister(t, a, "ana@example.com")
	_, token, err := a.Login("ana@example.com", "secret")
	require.NoError(t, err)

	_, err = b.Authenticate(token)
	require.ErrorIs(t, err, biddingerrors.ErrUnknownToken)
}

func TestStore_CreateAuctionValidation(t *testing.T) {
	s, _ := newTestStore(t)
	owner := mustRegister(t, s, "seller@example.com")
	cover := Cover{Filename: "c.png", Content: []byte("png")}

	tests := []struct {
		name  string
		in    AuctionInput
		cover Cover
	}{
		{name: "missing_title", in: AuctionInput{Description: "d", StartBid: 1, ClosedAt: s.Now().Add(time.Hour)}, cover: cover},
		{name: "missing_description", in: AuctionInput{Title: "t", StartBid: 1, ClosedAt: s.Now().Add(time.Hour)}, cover: cover},
		{name: "zero_start_bid", in: AuctionInput{Title: "t", Description: "d", ClosedAt: s.Now().Add(time.Hour)}, cover: cover},
		{name: "closing_now", in: AuctionInput{Title: "t", Description: "d", StartBid: 1, ClosedAt: s.Now()}, cover: cover},
		{name: "no_cover", in: AuctionInput{Title: "t", Description: "d", StartBid: 1, ClosedAt: s.Now().Add(time.Hour)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateAuction(owner.ID, tt.in, tt.cover)
			require.ErrorIs(t, err, biddingerrors.ErrInvalidDraft)
		})
	}
}

func TestStore_AddBid(t *testing.T) {
	s, c := newTestStore(t)
	seller := mustRegister(t, s, "seller@example.com")
	buyer := mustRegister(t, s, "buyer@example.com")
	other := mustRegister(t, s, "other@example.com")
	id := mustCreate(t, s, seller.ID, 200000, 24*time.Hour)

	require.ErrorIs(t, s.AddBid(buyer.ID, id, 0), biddingerrors.ErrNotPositive)
	require.ErrorIs(t, s.AddBid(buyer.ID, id, 150000), biddingerrors.ErrBidTooLow)
	require.ErrorIs(t, s.AddBid(buyer.ID, id, 200000), biddingerrors.ErrBidTooLow)
	require.ErrorIs(t, s.AddBid(seller.ID, id, 300000), biddingerrors.ErrOwnerCannotBid)
	require.ErrorIs(t, s.AddBid(buyer.ID, 999, 300000), biddingerrors.ErrAuctionNotFound)

	require.NoError(t, s.AddBid(buyer.ID, id, 200001))
	require.ErrorIs(t, s.AddBid(buyer.ID, id, 300000), biddingerrors.ErrAlreadyBid)
	require.ErrorIs(t, s.AddBid(other.ID, id, 200001), biddingerrors.ErrBidTooLow)
	require.NoError(t, s.AddBid(other.ID, id, 200002))

	a, err := s.GetAuction(id)
	require.NoError(t, err)
	require.Len(t, a.Bids, 2)
	require.Equal(t, int64(200002), a.Highest())
	require.Equal(t, int64(200001), a.BidBy(buyer.ID).Amount)

	require.NoError(t, s.DeleteBid(buyer.ID, id))
	require.ErrorIs(t, s.DeleteBid(buyer.ID, id), biddingerrors.ErrNoBidToWithdraw)

	c.Advance(25 * time.Hour)
	require.ErrorIs(t, s.AddBid(buyer.ID, id, 500000), biddingerrors.ErrAuctionClosed)
}

func TestStore_ListAuctions(t *testing.T) {
	s, _ := newTestStore(t)
	seller := mustRegister(t, s, "seller@example.com")
	buyer := mustRegister(t, s, "buyer@example.com")

	running := mustCreate(t, s, seller.ID, 1000, time.Hour)
	mine := mustCreate(t, s, buyer.ID, 1000, 2*time.Hour)
	ended := mustCreate(t, s, seller.ID, 1000, time.Minute)

	// end one auction by moving its closing time back
	require.NoError(t, s.UpdateAuction(seller.ID, ended, AuctionInput{
		Title: "Ended", Description: "d", StartBid: 1000, ClosedAt: s.Now().Add(-time.Minute),
	}))

	ids := func(list []Auction) []int64 {
		out := make([]int64, 0, len(list))
		for _, a := range list {
			out = append(out, a.ID)
		}
		return out
	}
	one, zero := 1, 0

	require.Equal(t, []int64{running, mine, ended}, ids(s.ListAuctions(buyer.ID, ListQuery{})))
	require.Equal(t, []int64{mine}, ids(s.ListAuctions(buyer.ID, ListQuery{Mine: true})))
	require.Equal(t, []int64{running, mine}, ids(s.ListAuctions(buyer.ID, ListQuery{IsClosed: &one})))
	require.Equal(t, []int64{ended}, ids(s.ListAuctions(buyer.ID, ListQuery{IsClosed: &zero})))
}

func TestStore_OwnerOnly(t *testing.T) {
	s, _ := newTestStore(t)
	seller := mustRegister(t, s, "seller@example.com")
	buyer := mustRegister(t, s, "buyer@example.com")
	id := mustCreate(t, s, seller.ID, 1000, time.Hour)

	in := AuctionInput{Title: "New", Description: "d", StartBid: 2000, ClosedAt: s.Now().Add(time.Hour)}
	require.ErrorIs(t, s.UpdateAuction(buyer.ID, id, in), biddingerrors.ErrNotOwner)
	require.ErrorIs(t, s.SetCover(buyer.ID, id, Cover{Content: []byte("x")}), biddingerrors.ErrNotOwner)
	require.ErrorIs(t, s.DeleteAuction(buyer.ID, id), biddingerrors.ErrNotOwner)

	require.NoError(t, s.UpdateAuction(seller.ID, id, in))
	require.NoError(t, s.SetCover(seller.ID, id, Cover{Filename: "n.jpg", Content: []byte("jpg")}))

	cover, err := s.Cover(id)
	require.NoError(t, err)
	require.Equal(t, "n.jpg", cover.Filename)

	require.NoError(t, s.DeleteAuction(seller.ID, id))
	_, err = s.GetAuction(id)
	require.ErrorIs(t, err, biddingerrors.ErrAuctionNotFound)
	_, err = s.Cover(id)
	require.ErrorIs(t, err, biddingerrors.ErrAuctionNotFound)
}

func TestStore_GetAuctionReturnsCopy(t *testing.T) {
	s, _ := newTestStore(t)
	seller := mustRegister(t, s, "seller@example.com")
	buyer := mustRegister(t, s, "buyer@example.com")
	id := mustCreate(t, s, seller.ID, 1000, time.Hour)
	require.NoError(t, s.AddBid(buyer.ID, id, 1001))

	a, err := s.GetAuction(id)
	require.NoError(t, err)
	a.Bids[0].Amount = 1

	again, err := s.GetAuction(id)
	require.NoError(t, err)
	require.Equal(t, int64(1001), again.Bids[0].Amount)
}
