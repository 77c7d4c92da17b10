// Package store is the in-memory state behind the sandbox gateway: accounts,
// bearer tokens, auctions and their bids.
package store

import (
	"auction-client/internal/biddingerrors"
	"auction-client/utils"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 24 * time.Hour

type User struct {
	ID    int64
	Name  string
	Email string
	Photo string

	passwordHash []byte
}

type Bid struct {
	ID        int64
	UserID    int64
	Amount    int64
	CreatedAt time.Time
}

type Auction struct {
	ID          int64
	Title       string
	Description string
	StartBid    int64
	ClosedAt    time.Time
	UserID      int64
	HasCover    bool
	Bids        []Bid
}

// Closed reports whether the auction has ended at now
func (a Auction) Closed(now time.Time) bool {
	return !now.Before(a.ClosedAt)
}

// Highest returns the largest bid amount, 0 without bids
func (a Auction) Highest() int64 {
	var highest int64
	for _, b := range a.Bids {
		if b.Amount > highest {
			highest = b.Amount
		}
	}
	return highest
}

// BidBy returns userID's bid, or nil
func (a Auction) BidBy(userID int64) *Bid {
	for i := range a.Bids {
		if a.Bids[i].UserID == userID {
			bid := a.Bids[i]
			return &bid
		}
	}
	return nil
}

// AuctionInput holds the editable fields of an auction
type AuctionInput struct {
	Title       string
	Description string
	StartBid    int64
	ClosedAt    time.Time
}

type Cover struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ListQuery narrows ListAuctions. IsClosed follows the production gateway,
// where is_closed=1 selects auctions that are still running.
type ListQuery struct {
	Mine     bool
	IsClosed *int
}

// Store is a concurrency-safe in-memory gateway backend
type Store struct {
	mu         sync.RWMutex
	users      map[int64]*User
	emails     map[string]int64
	auctions   map[int64]*Auction
	covers     map[int64]Cover
	nextUser   int64
	nextAuct   int64
	nextBid    int64
	secret     []byte
	tokenTTL   time.Duration
	bcryptCost int
	now        func() time.Time
}

type Option func(*Store)

// WithClock sets the clock used for closing times and token expiry
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithTokenTTL sets how long issued tokens stay valid
func WithTokenTTL(ttl time.Duration) Option {
	return func(s *Store) { s.tokenTTL = ttl }
}

// WithBcryptCost lowers the hashing cost, for tests
func WithBcryptCost(cost int) Option {
	return func(s *Store) { s.bcryptCost = cost }
}

// New creates an empty store signing tokens with a random secret
func New(opts ...Option) *Store {
	s := &Store{
		users:      make(map[int64]*User),
		emails:     make(map[string]int64),
		auctions:   make(map[int64]*Auction),
		covers:     make(map[int64]Cover),
		secret:     []byte(utils.GenerateID()),
		tokenTTL:   defaultTokenTTL,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the store's current time
func (s *Store) Now() time.Time {
	return s.now()
}

// Register creates an account
func (s *Store) Register(name, email, password string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return User{}, fmt.Errorf("store: %w - name, email and password are required", biddingerrors.ErrRegistrationFailed)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return User{}, fmt.Errorf("store: failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.emails[email]; taken {
		return User{}, fmt.Errorf("store: %w - %s", biddingerrors.ErrEmailTaken, email)
	}
	s.nextUser++
	u := &User{ID: s.nextUser, Name: name, Email: email, passwordHash: hash}
	s.users[u.ID] = u
	s.emails[email] = u.ID
	return *u, nil
}

// Login checks credentials and issues a signed token
func (s *Store) Login(email, password string) (User, string, error) {
	s.mu.RLock()
	id, ok := s.emails[strings.ToLower(strings.TrimSpace(email))]
	var u User
	if ok {
		u = *s.users[id]
	}
	s.mu.RUnlock()

	if !ok || bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)) != nil {
		return User{}, "", fmt.Errorf("store: %w", biddingerrors.ErrInvalidCredentials)
	}

	now := s.now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(u.ID, 10),
		ID:        utils.GenerateID(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}).SignedString(s.secret)
	if err != nil {
		return User{}, "", fmt.Errorf("store: failed to sign token: %w", err)
	}
	return u, token, nil
}

// Authenticate resolves a bearer token to its user
func (s *Store) Authenticate(token string) (User, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return User{}, fmt.Errorf("store: %w - %v", biddingerrors.ErrUnknownToken, err)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return User{}, fmt.Errorf("store: %w - bad subject", biddingerrors.ErrUnknownToken)
	}
	return s.User(id)
}

// User returns an account by id
func (s *Store) User(id int64) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return User{}, fmt.Errorf("store: %w - user %d", biddingerrors.ErrUnknownToken, id)
	}
	return *u, nil
}

// ListAuctions returns copies of the auctions matching q, oldest first
func (s *Store) ListAuctions(viewerID int64, q ListQuery) []Auction {
	now := s.now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Auction, 0, len(s.auctions))
	for _, a := range s.auctions {
		if q.Mine && a.UserID != viewerID {
			continue
		}
		if q.IsClosed != nil {
			running := *q.IsClosed == 1
			if running == a.Closed(now) {
				continue
			}
		}
		list = append(list, clone(a))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

// GetAuction returns a copy of one auction
func (s *Store) GetAuction(id int64) (Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.auctions[id]
	if !ok {
		return Auction{}, fmt.Errorf("store: %w - id %d", biddingerrors.ErrAuctionNotFound, id)
	}
	return clone(a), nil
}

// CreateAuction stores a new auction owned by userID
func (s *Store) CreateAuction(userID int64, in AuctionInput, cover Cover) (int64, error) {
	if err := validateInput(in); err != nil {
		return 0, err
	}
	if len(cover.Content) == 0 {
		return 0, fmt.Errorf("store: %w - cover is required", biddingerrors.ErrInvalidDraft)
	}
	if !in.ClosedAt.After(s.now()) {
		return 0, fmt.Errorf("store: %w - closed_at must be in the future", biddingerrors.ErrInvalidDraft)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextAuct++
	a := &Auction{
		ID:          s.nextAuct,
		Title:       in.Title,
		Description: in.Description,
		StartBid:    in.StartBid,
		ClosedAt:    in.ClosedAt,
		UserID:      userID,
		HasCover:    true,
	}
	s.auctions[a.ID] = a
	s.covers[a.ID] = cover
	return a.ID, nil
}

// UpdateAuction replaces the editable fields of an auction userID owns
func (s *Store) UpdateAuction(userID, id int64, in AuctionInput) error {
	if err := validateInput(in); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.owned(userID, id)
	if err != nil {
		return err
	}
	a.Title = in.Title
	a.Description = in.Description
	a.StartBid = in.StartBid
	a.ClosedAt = in.ClosedAt
	return nil
}

// SetCover replaces the cover of an auction userID owns
func (s *Store) SetCover(userID, id int64, cover Cover) error {
	if len(cover.Content) == 0 {
		return fmt.Errorf("store: %w - cover is required", biddingerrors.ErrInvalidDraft)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.owned(userID, id)
	if err != nil {
		return err
	}
	a.HasCover = true
	s.covers[id] = cover
	return nil
}

// Cover returns the cover image of an auction
func (s *Store) Cover(id int64) (Cover, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.covers[id]
	if !ok {
		return Cover{}, fmt.Errorf("store: %w - no cover for %d", biddingerrors.ErrAuctionNotFound, id)
	}
	return c, nil
}

// DeleteAuction removes an auction userID owns
func (s *Store) DeleteAuction(userID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.owned(userID, id); err != nil {
		return err
	}
	delete(s.auctions, id)
	delete(s.covers, id)
	return nil
}

// AddBid records userID's bid. The gateway enforces the same rules as the client.
func (s *Store) AddBid(userID, id, amount int64) error {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.auctions[id]
	if !ok {
		return fmt.Errorf("store: %w - id %d", biddingerrors.ErrAuctionNotFound, id)
	}

	switch {
	case amount <= 0:
		return fmt.Errorf("store: %w", biddingerrors.ErrNotPositive)
	case a.Closed(now):
		return fmt.Errorf("store: %w", biddingerrors.ErrAuctionClosed)
	case a.UserID == userID:
		return fmt.Errorf("store: %w", biddingerrors.ErrOwnerCannotBid)
	case a.BidBy(userID) != nil:
		return fmt.Errorf("store: %w", biddingerrors.ErrAlreadyBid)
	}

	if floor := max(a.Highest(), a.StartBid); amount <= floor {
		return fmt.Errorf("store: %w - bid must be above %d", biddingerrors.ErrBidTooLow, floor)
	}

	s.nextBid++
	a.Bids = append(a.Bids, Bid{ID: s.nextBid, UserID: userID, Amount: amount, CreatedAt: now})
	return nil
}

// DeleteBid withdraws userID's bid
func (s *Store) DeleteBid(userID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.auctions[id]
	if !ok {
		return fmt.Errorf("store: %w - id %d", biddingerrors.ErrAuctionNotFound, id)
	}
	for i, b := range a.Bids {
		if b.UserID == userID {
			a.Bids = append(a.Bids[:i], a.Bids[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("store: %w", biddingerrors.ErrNoBidToWithdraw)
}

// owned must be called with the write lock held
func (s *Store) owned(userID, id int64) (*Auction, error) {
	a, ok := s.auctions[id]
	if !ok {
		return nil, fmt.Errorf("store: %w - id %d", biddingerrors.ErrAuctionNotFound, id)
	}
	if a.UserID != userID {
		return nil, fmt.Errorf("store: %w - auction %d", biddingerrors.ErrNotOwner, id)
	}
	return a, nil
}

func validateInput(in AuctionInput) error {
	switch {
	case strings.TrimSpace(in.Title) == "":
		return fmt.Errorf("store: %w - title is required", biddingerrors.ErrInvalidDraft)
	case strings.TrimSpace(in.Description) == "":
		return fmt.Errorf("store: %w - description is required", biddingerrors.ErrInvalidDraft)
	case in.StartBid <= 0:
		return fmt.Errorf("store: %w - start_bid must be positive", biddingerrors.ErrInvalidDraft)
	case in.ClosedAt.IsZero():
		return fmt.Errorf("store: %w - closed_at is required", biddingerrors.ErrInvalidDraft)
	}
	return nil
}

func clone(a *Auction) Auction {
	c := *a
	c.Bids = make([]Bid, len(a.Bids))
	copy(c.Bids, a.Bids)
	return c
}
