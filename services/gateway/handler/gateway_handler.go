package handler

//go:generate mockgen -destination=mock_handler.go -package=handler auction-client/services/gateway/handler GatewayStore

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"auction-client/internal/biddingerrors"
	"auction-client/services/gateway/helpers"
	"auction-client/services/gateway/store"
	"auction-client/utils"

	"github.com/gin-gonic/gin"
)

type GatewayStore interface {
	Register(name, email, password string) (store.User, error)
	Login(email, password string) (store.User, string, error)
	User(id int64) (store.User, error)
	ListAuctions(viewerID int64, q store.ListQuery) []store.Auction
	GetAuction(id int64) (store.Auction, error)
	CreateAuction(userID int64, in store.AuctionInput, cover store.Cover) (int64, error)
	UpdateAuction(userID, id int64, in store.AuctionInput) error
	SetCover(userID, id int64, cover store.Cover) error
	Cover(id int64) (store.Cover, error)
	DeleteAuction(userID, id int64) error
	AddBid(userID, id, amount int64) error
	DeleteBid(userID, id int64) error
}

type GatewayHandler struct {
	store GatewayStore
	loc   *time.Location
	// collection is the URL path of the auctions collection, e.g. /api/auctions
	collection string
}

func NewGatewayHandler(store GatewayStore, loc *time.Location, collection string) *GatewayHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &GatewayHandler{store: store, loc: loc, collection: "/" + strings.Trim(collection, "/")}
}

// RegisterHandler handles POST /auth/register
func (h *GatewayHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	user, err := h.store.Register(req.Name, req.Email, req.Password)
	if err != nil {
		helpers.HandleServiceError(c, "RegisterHandler", err, map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "registration successful")
	helpers.LogSuccess("RegisterHandler", "user registered", map[string]any{"user_id": user.ID})
}

// LoginHandler handles POST /auth/login
func (h *GatewayHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	user, token, err := h.store.Login(req.Email, req.Password)
	if err != nil {
		helpers.HandleServiceError(c, "LoginHandler", err, map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.LoginResponse{
		User:  helpers.ToUserResponse(user),
		Token: token,
	}, "login successful")
	helpers.LogSuccess("LoginHandler", "user logged in", map[string]any{"user_id": user.ID})
}

// MeHandler handles GET /auth/me
func (h *GatewayHandler) MeHandler(c *gin.Context) {
	user, ok := helpers.CurrentUser(c)
	if !ok {
		helpers.HandleServiceError(c, "MeHandler", biddingerrors.ErrUnknownToken, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.MeResponse{User: helpers.ToUserResponse(user)}, "profile retrieved successfully")
}

// ListAuctionsHandler handles GET /{collection}
func (h *GatewayHandler) ListAuctionsHandler(c *gin.Context) {
	viewer, _ := helpers.CurrentUser(c)

	var q helpers.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		helpers.HandleBindError(c, "ListAuctionsHandler", err)
		return
	}

	auctions := h.store.ListAuctions(viewer.ID, store.ListQuery{
		Mine:     q.IsMe != nil && *q.IsMe == 1,
		IsClosed: q.IsClosed,
	})

	resp := helpers.AuctionsResponse{Auctions: make([]helpers.AuctionResponse, 0, len(auctions))}
	for _, a := range auctions {
		item, err := h.auctionResponse(a, viewer.ID)
		if err != nil {
			helpers.HandleServiceError(c, "ListAuctionsHandler", err, map[string]any{"auction_id": a.ID})
			return
		}
		resp.Auctions = append(resp.Auctions, item)
	}

	utils.JSONResponse(c, http.StatusOK, resp, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"user_id": viewer.ID,
		"count":   len(resp.Auctions),
	})
}

// GetAuctionHandler handles GET /{collection}/:id
func (h *GatewayHandler) GetAuctionHandler(c *gin.Context) {
	viewer, _ := helpers.CurrentUser(c)
	id, err := helpers.ParseID(c, "id")
	if err != nil {
		helpers.HandleBindError(c, "GetAuctionHandler", err)
		return
	}

	auction, err := h.store.GetAuction(id)
	if err != nil {
		helpers.HandleServiceError(c, "GetAuctionHandler", err, map[string]any{"auction_id": id})
		return
	}
	resp, err := h.auctionResponse(auction, viewer.ID)
	if err != nil {
		helpers.HandleServiceError(c, "GetAuctionHandler", err, map[string]any{"auction_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.AuctionDetailResponse{Auction: resp}, "auction retrieved successfully")
}

// CreateAuctionHandler handles POST /{collection}
func (h *GatewayHandler) CreateAuctionHandler(c *gin.Context) {
	viewer, _ := helpers.CurrentUser(c)

	var req helpers.AuctionRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}
	in, err := h.auctionInput(req)
	if err != nil {
		helpers.HandleServiceError(c, "CreateAuctionHandler", err, nil)
		return
	}
	cover, err := helpers.ReadCover(c)
	if err != nil {
		helpers.HandleServiceError(c, "CreateAuctionHandler", err, nil)
		return
	}

	id, err := h.store.CreateAuction(viewer.ID, in, cover)
	if err != nil {
		helpers.HandleServiceError(c, "CreateAuctionHandler", err, map[string]any{"user_id": viewer.ID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.AuctionIDResponse{AuctionID: id}, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": id,
		"user_id":    viewer.ID,
	})
}

// UpdateAuctionHandler handles PUT /{collection}/:id
func (h *GatewayHandler) UpdateAuctionHandler(c *gin.Context) {
	viewer, _ := helpers.CurrentUser(c)
	id, err := helpers.ParseID(c, "id")
	if err != nil {
		helpers.HandleBindError(c, "UpdateAuctionHandler", err)
		return
	}

	var req helpers.AuctionRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.HandleBindError(c, "UpdateAuctionHandler", err)
		return
	}
	in, err := h.auctionInput(req)
	if err != nil {
		helpers.HandleServiceError(c, "UpdateAuctionHandler", err, nil)
		return
	}

	if err := h.store.UpdateAuction(viewer.ID, id, in); err != nil {
		helpers.HandleServiceError(c, "UpdateAuctionHandler", err, map[string]any{"auction_id": id, "user_id": viewer.ID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "auction updated successfully")
	helpers.LogSuccess("UpdateAuctionHandler", "auction updated successfully", map[string]any{"auction_id": id})
}

// ChangeCoverHandler handles POST /{collection}/:id/cover
func (h *GatewayHandler) ChangeCoverHandler(c *gin.Context) {
	viewer, _ := helpers.CurrentUser(c)
	id, err := helpers.ParseID(c, "id")
	if err != nil {
		helpers.HandleBindError(c, "ChangeCoverHandler", err)
		return
	}
	cover, err := helpers.ReadCover(c)
	if err != nil {
		helpers.HandleServiceError(c, "ChangeCoverHandler", err, nil)
		return
	}

	if err := h.store.SetCover(viewer.ID, id, cover); err != nil {
		helpers.HandleServiceError(c, "ChangeCoverHandler", err, map[string]any{"auction_id": id, "user_id": viewer.ID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "cover updated successfully")
	helpers.LogSuccess("ChangeCoverHandler", "cover updated successfully", map[string]any{"auction_id": id})
}

// CoverImageHandler handles GET /{collection}/:id/cover and serves the raw image
func (h *GatewayHandler) CoverImageHandler(c *gin.Context) {
	id, err := helpers.ParseID(c, "id")
	if err != nil {
		helpers.HandleBindError(c, "CoverImageHandler", err)
		return
	}
	cover, err := h.store.Cover(id)
	if err != nil {
		helpers.HandleServiceError(c, "CoverImageHandler", err, map[string]any{"auction_id": id})
		return
	}
	c.Data(http.StatusOK, cover.ContentType, cover.Content)
}

// DeleteAuctionHandler handles DELETE /{collection}/:id
func (h *GatewayHandler) DeleteAuctionHandler(c *gin.Context) {
	viewer, _ := helpers.CurrentUser(c)
	id, err := helpers.ParseID(c, "id")
	if err != nil {
		helpers.HandleBindError(c, "DeleteAuctionHandler", err)
		return
	}

	if err := h.store.DeleteAuction(viewer.ID, id); err != nil {
		helpers.HandleServiceError(c, "DeleteAuctionHandler", err, map[string]any{"auction_id": id, "user_id": viewer.ID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "auction deleted successfully")
	helpers.LogSuccess("DeleteAuctionHandler", "auction deleted successfully", map[string]any{"auction_id": id})
}

// AddBidHandler handles POST /{collection}/:id/bids
func (h *GatewayHandler) AddBidHandler(c *gin.Context) {
	viewer, _ := helpers.CurrentUser(c)
	id, err := helpers.ParseID(c, "id")
	if err != nil {
		helpers.HandleBindError(c, "AddBidHandler", err)
		return
	}

	var req helpers.BidRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.HandleBindError(c, "AddBidHandler", err)
		return
	}

	if err := h.store.AddBid(viewer.ID, id, req.Bid); err != nil {
		helpers.HandleServiceError(c, "AddBidHandler", err, map[string]any{
			"auction_id": id,
			"user_id":    viewer.ID,
			"amount":     req.Bid,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, nil, "bid recorded successfully")
	helpers.LogSuccess("AddBidHandler", "bid recorded successfully", map[string]any{
		"auction_id": id,
		"user_id":    viewer.ID,
		"amount":     req.Bid,
	})
}

// DeleteBidHandler handles DELETE /{collection}/:id/bids
func (h *GatewayHandler) DeleteBidHandler(c *gin.Context) {
	viewer, _ := helpers.CurrentUser(c)
	id, err := helpers.ParseID(c, "id")
	if err != nil {
		helpers.HandleBindError(c, "DeleteBidHandler", err)
		return
	}

	if err := h.store.DeleteBid(viewer.ID, id); err != nil {
		helpers.HandleServiceError(c, "DeleteBidHandler", err, map[string]any{"auction_id": id, "user_id": viewer.ID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "bid withdrawn successfully")
	helpers.LogSuccess("DeleteBidHandler", "bid withdrawn successfully", map[string]any{"auction_id": id})
}

func (h *GatewayHandler) auctionInput(req helpers.AuctionRequest) (store.AuctionInput, error) {
	closedAt, err := helpers.ParseWireTime(req.ClosedAt, h.loc)
	if err != nil {
		return store.AuctionInput{}, err
	}
	return store.AuctionInput{
		Title:       req.Title,
		Description: req.Description,
		StartBid:    req.StartBid,
		ClosedAt:    closedAt,
	}, nil
}

func (h *GatewayHandler) auctionResponse(a store.Auction, viewerID int64) (helpers.AuctionResponse, error) {
	author, err := h.store.User(a.UserID)
	if err != nil {
		// not wrapped: a missing author is a server fault, not a bad token
		return helpers.AuctionResponse{}, fmt.Errorf("author of auction %d: %v", a.ID, err)
	}
	return helpers.ToAuctionResponse(a, author, viewerID, h.collection+"/"+strconv.FormatInt(a.ID, 10)+"/cover", h.loc), nil
}
