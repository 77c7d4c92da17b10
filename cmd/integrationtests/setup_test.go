package integrationtests

import (
	bidding "auction-client/internal/biddingService"
	"auction-client/internal/gateway"
	"auction-client/internal/models"
	"auction-client/internal/repository"
	"auction-client/internal/server"
	"auction-client/internal/session"
	"auction-client/services/gateway/store"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "secret1"

// pngCover is enough of a PNG for content sniffing
var pngCover = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

// clock runs with wall time plus an adjustable offset
type clock struct {
	mu     sync.Mutex
	offset time.Duration
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return time.Now().Add(c.offset)
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offset += d
}

// sandbox is a running gateway with a seller and a buyer account
type sandbox struct {
	t      *testing.T
	server *httptest.Server
	store  *store.Store
	clock  *clock

	seller store.User
	buyer  store.User
}

// client is one signed-out installation of the auction client
type client struct {
	db       *repository.MemoryRepo
	gateway  *gateway.Client
	sessions *session.Store
	bidding  *bidding.BiddingService
}

// SetupSandbox starts the gateway on a local listener and seeds two accounts.
func SetupSandbox(t *testing.T) *sandbox {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c := &clock{}
	s := store.New(store.WithClock(c.Now), store.WithBcryptCost(bcrypt.MinCost), store.WithTokenTTL(time.Hour))
	srv := httptest.NewServer(server.SetupRouter(s, time.UTC, "auctions"))
	t.Cleanup(srv.Close)

	sb := &sandbox{t: t, server: srv, store: s, clock: c}
	sb.seller = sb.register("Sari Seller", "seller@example.com")
	sb.buyer = sb.register("Budi Buyer", "buyer@example.com")
	return sb
}

func (sb *sandbox) register(name, email string) store.User {
	sb.t.Helper()
	u, err := sb.store.Register(name, email, testPassword)
	require.NoError(sb.t, err)
	return u
}

// seedAuction lists an auction for owner directly in the gateway store
func (sb *sandbox) seedAuction(owner store.User, startBid int64, closesIn time.Duration) int64 {
	sb.t.Helper()
	id, err := sb.store.CreateAuction(owner.ID, store.AuctionInput{
		Title:       "Vintage watch",
		Description: "Hand-wound, serviced last year",
		StartBid:    startBid,
		ClosedAt:    sb.store.Now().Add(closesIn).Truncate(time.Second),
	}, store.Cover{Filename: "watch.png", ContentType: "image/png", Content: pngCover})
	require.NoError(sb.t, err)
	return id
}

// NewClient wires a client against the sandbox with its own session storage.
func (sb *sandbox) NewClient(strategy session.RestoreStrategy) *client {
	return sb.NewClientWithDB(repository.NewMemoryRepo(), strategy)
}

// NewClientWithDB wires a client that shares db, as a restarted process would.
func (sb *sandbox) NewClientWithDB(db *repository.MemoryRepo, strategy session.RestoreStrategy) *client {
	sb.t.Helper()
	gw, err := gateway.NewClient(gateway.Config{
		BaseURL:  sb.server.URL + server.APIPrefix,
		Location: time.UTC,
		Timeout:  5 * time.Second,
	})
	require.NoError(sb.t, err)

	sessions := session.NewStore(gw, db, strategy).WithClock(sb.clock.Now)
	gw.SetCredentials(sessions)

	return &client{
		db:       db,
		gateway:  gw,
		sessions: sessions,
		bidding:  bidding.NewBiddingService(gw, sessions).WithClock(sb.clock.Now),
	}
}

// SignedIn returns a client already signed in as u.
func (sb *sandbox) SignedIn(u store.User) *client {
	sb.t.Helper()
	c := sb.NewClient(session.Revalidate)
	identity, err := c.sessions.SignIn(sb.t.Context(), u.Email, testPassword)
	require.NoError(sb.t, err)
	require.Equal(sb.t, u.ID, identity.ID)
	return c
}

func futureDraft(now time.Time) models.AuctionDraft {
	return models.AuctionDraft{
		Title:       "Film camera",
		Description: "35mm rangefinder with case",
		StartBid:    750000,
		ClosedAt:    now.Add(72 * time.Hour).Truncate(time.Second),
	}
}
