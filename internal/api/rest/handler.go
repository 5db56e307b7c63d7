package rest

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lokeshwaran100/ai-muse/internal/adapter"
	"github.com/lokeshwaran100/ai-muse/internal/api/rest/dto"
	"github.com/lokeshwaran100/ai-muse/internal/generator"
	"github.com/lokeshwaran100/ai-muse/internal/providers/ethereum"
	"github.com/lokeshwaran100/ai-muse/internal/store"
	"github.com/lokeshwaran100/ai-muse/internal/store/schema"
	"github.com/lokeshwaran100/ai-muse/internal/wallet"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GenerateMetadata generates and pins placeholder metadata for a prompt
	// POST /api/v1/metadata
	GenerateMetadata(c *gin.Context)

	// ListNFTs retrieves the mirror records held by an owner
	// GET /api/v1/nfts?owner=<address>
	ListNFTs(c *gin.Context)

	// CreateNFT inserts a mirror record for a confirmed mint
	// POST /api/v1/nfts
	CreateNFT(c *gin.Context)

	// GetNFT retrieves a single mirror record by token id
	// GET /api/v1/nfts/:token_id
	GetNFT(c *gin.Context)

	// UpdateNFT merges fields into an existing mirror record
	// PUT /api/v1/nfts/:token_id
	UpdateNFT(c *gin.Context)

	// GetNFTOnchain reads the token's owner and URI directly from the contract
	// GET /api/v1/nfts/:token_id/onchain
	GetNFTOnchain(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	store     store.Store
	generator generator.Generator
	content   generator.ContentStore
	chain     ethereum.ChainClient
	readConn  *wallet.Connection
	json      adapter.JSON
}

// NewHandler creates a new REST API handler. readConn is the server-side
// read-only RPC connection used for on-chain reads; it may be nil, in which
// case the onchain endpoint reports the service unavailable.
func NewHandler(
	st store.Store,
	gen generator.Generator,
	content generator.ContentStore,
	chain ethereum.ChainClient,
	readConn *wallet.Connection,
) Handler {
	return &handler{
		store:     st,
		generator: gen,
		content:   content,
		chain:     chain,
		readConn:  readConn,
		json:      adapter.NewJSON(),
	}
}

// GenerateMetadata generates placeholder metadata for a prompt and pins it
func (h *handler) GenerateMetadata(c *gin.Context) {
	var req dto.GenerateMetadataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if req.Prompt == "" {
		respondBadRequest(c, "Prompt is required")
		return
	}

	ctx := c.Request.Context()

	metadata, err := h.generator.Generate(ctx, req.Prompt)
	if err != nil {
		respondInternalError(c, err, "Failed to generate metadata")
		return
	}

	tokenURI, err := h.content.Upload(ctx, metadata)
	if err != nil {
		respondInternalError(c, err, "Failed to upload metadata")
		return
	}

	c.JSON(200, dto.GenerateMetadataResponse{
		TokenURI: tokenURI,
		Metadata: metadata,
	})
}

// ListNFTs retrieves the mirror records held by an owner, newest first
func (h *handler) ListNFTs(c *gin.Context) {
	owner := c.Query("owner")
	if owner == "" {
		respondBadRequest(c, "Owner address is required")
		return
	}

	nfts, err := h.store.GetNFTsByOwner(c.Request.Context(), owner)
	if err != nil {
		respondInternalError(c, err, "Failed to fetch NFTs", zap.String("owner", owner))
		return
	}

	c.JSON(200, gin.H{"nfts": dto.FromSchemaList(nfts)})
}

// CreateNFT inserts the mirror record for a confirmed mint
func (h *handler) CreateNFT(c *gin.Context) {
	var req dto.CreateNFTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if field := req.FirstMissingField(); field != "" {
		respondBadRequest(c, "Missing required field: "+field)
		return
	}

	attributes, err := h.json.Marshal(req.Attributes)
	if err != nil {
		respondBadRequest(c, "Invalid attributes", err.Error())
		return
	}

	nft := &schema.NFT{
		TokenID:         *req.TokenID,
		Owner:           req.Owner,
		Prompt:          req.Prompt,
		TokenURI:        req.TokenURI,
		Image:           req.Image,
		Name:            req.Name,
		Description:     req.Description,
		Attributes:      attributes,
		TransactionHash: req.TransactionHash,
	}

	if err := h.store.CreateNFT(c.Request.Context(), nft); err != nil {
		if isConflict(err) {
			respondConflict(c, "NFT already exists",
				"token id "+strconv.FormatInt(*req.TokenID, 10)+" is already stored")
			return
		}
		respondInternalError(c, err, "Failed to store NFT",
			zap.Int64("tokenID", *req.TokenID))
		return
	}

	c.JSON(201, gin.H{"success": true})
}

// GetNFT retrieves a single mirror record by token id
func (h *handler) GetNFT(c *gin.Context) {
	tokenID, ok := parseTokenID(c)
	if !ok {
		return
	}

	nft, err := h.store.GetNFTByTokenID(c.Request.Context(), tokenID)
	if err != nil {
		respondInternalError(c, err, "Failed to fetch NFT", zap.Int64("tokenID", tokenID))
		return
	}
	if nft == nil {
		respondNotFound(c, "NFT not found")
		return
	}

	c.JSON(200, gin.H{"nft": dto.FromSchema(nft)})
}

// UpdateNFT merges the supplied fields into an existing mirror record
func (h *handler) UpdateNFT(c *gin.Context) {
	tokenID, ok := parseTokenID(c)
	if !ok {
		return
	}

	var req dto.UpdateNFTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	updates := store.NFTUpdate{
		Owner:           req.Owner,
		Prompt:          req.Prompt,
		TokenURI:        req.TokenURI,
		Image:           req.Image,
		Name:            req.Name,
		Description:     req.Description,
		TransactionHash: req.TransactionHash,
	}

	if req.Attributes != nil {
		attributes, err := h.json.Marshal(req.Attributes)
		if err != nil {
			respondBadRequest(c, "Invalid attributes", err.Error())
			return
		}
		updates.Attributes = attributes
	}

	if err := h.store.UpdateNFT(c.Request.Context(), tokenID, updates); err != nil {
		if isNotFound(err) {
			respondNotFound(c, "NFT not found")
			return
		}
		respondInternalError(c, err, "Failed to update NFT", zap.Int64("tokenID", tokenID))
		return
	}

	c.JSON(200, gin.H{"success": true})
}

// GetNFTOnchain reads owner and token URI straight from the contract over
// the server's read-only RPC connection
func (h *handler) GetNFTOnchain(c *gin.Context) {
	tokenID, ok := parseTokenID(c)
	if !ok {
		return
	}

	if h.chain == nil || h.readConn == nil {
		respondServiceUnavailable(c, "On-chain reads are not configured")
		return
	}

	ctx := c.Request.Context()
	owner := h.chain.OwnerOf(ctx, tokenID, h.readConn)
	if owner == "" {
		respondNotFound(c, "Token not found on-chain")
		return
	}

	c.JSON(200, dto.OnchainNFTResponse{
		TokenID:  tokenID,
		Owner:    owner,
		TokenURI: h.chain.TokenURI(ctx, tokenID, h.readConn),
	})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}

// parseTokenID reads the token_id path parameter, responding 400 when it is
// not numeric
func parseTokenID(c *gin.Context) (int64, bool) {
	tokenID, err := strconv.ParseInt(c.Param("token_id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Token id must be numeric")
		return 0, false
	}
	return tokenID, true
}
