package server

import (
	"strings"
	"time"

	handler "auction-client/services/gateway/handler"

	"github.com/gin-gonic/gin"
)

// APIPrefix is where the sandbox gateway mounts its endpoints
const APIPrefix = "/api"

// Gateway is the store behind the sandbox gateway
type Gateway interface {
	handler.GatewayStore
	Authenticator
}

// SetupRouter configures all Gin routes for the sandbox gateway.
// collection is the auctions collection name, e.g. "auctions".
func SetupRouter(gw Gateway, loc *time.Location, collection string) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	collectionPath := APIPrefix + "/" + strings.Trim(collection, "/")
	gatewayHandler := handler.NewGatewayHandler(gw, loc, collectionPath)
	requireUser := AuthMiddleware(gw)

	auth := router.Group(APIPrefix + "/auth")
	{
		auth.POST("/register", gatewayHandler.RegisterHandler)
		auth.POST("/login", gatewayHandler.LoginHandler)
		auth.GET("/me", requireUser, gatewayHandler.MeHandler)
	}

	// covers are plain images and load without a token
	router.GET(collectionPath+"/:id/cover", gatewayHandler.CoverImageHandler)

	auctions := router.Group(collectionPath, requireUser)
	{
		auctions.GET("", gatewayHandler.ListAuctionsHandler)
		auctions.POST("", gatewayHandler.CreateAuctionHandler)
		auctions.GET("/:id", gatewayHandler.GetAuctionHandler)
		auctions.PUT("/:id", gatewayHandler.UpdateAuctionHandler)
		auctions.DELETE("/:id", gatewayHandler.DeleteAuctionHandler)
		auctions.POST("/:id/cover", gatewayHandler.ChangeCoverHandler)
		auctions.POST("/:id/bids", gatewayHandler.AddBidHandler)
		auctions.DELETE("/:id/bids", gatewayHandler.DeleteBidHandler)
	}

	return router
}
