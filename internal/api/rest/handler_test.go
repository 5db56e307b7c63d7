package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokeshwaran100/ai-muse/internal/api/middleware"
	"github.com/lokeshwaran100/ai-muse/internal/domain"
	"github.com/lokeshwaran100/ai-muse/internal/mocks"
	"github.com/lokeshwaran100/ai-muse/internal/store/schema"
	"github.com/lokeshwaran100/ai-muse/internal/wallet"
)

const testAPIKey = "test-api-key"

type testEnv struct {
	store     *mocks.MockStore
	generator *mocks.MockGenerator
	content   *mocks.MockContentStore
	router    *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	env := &testEnv{
		store:     mocks.NewMockStore(ctrl),
		generator: mocks.NewMockGenerator(ctrl),
		content:   mocks.NewMockContentStore(ctrl),
		router:    gin.New(),
	}

	handler := NewHandler(env.store, env.generator, env.content, nil, nil)
	SetupRoutes(env.router, handler, middleware.AuthConfig{APIKeys: []string{testAPIKey}})
	return env
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}, authorized bool) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", "ApiKey "+testAPIKey)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func validCreateBody() map[string]interface{} {
	return map[string]interface{}{
		"tokenId":         7,
		"owner":           "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		"prompt":          "a cat",
		"tokenURI":        "ipfs://QmTest",
		"image":           "https://picsum.photos/seed/1/512/512",
		"name":            "AI-Muse #7",
		"description":     "a cat",
		"attributes":      []map[string]string{{"trait_type": "Prompt", "value": "a cat"}},
		"transactionHash": "0xabc",
	}
}

func TestHealthCheck(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/health", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
}

func TestGenerateMetadata(t *testing.T) {
	env := newTestEnv(t)

	metadata := &domain.TokenMetadata{
		Name:        "AI-Muse #7",
		Description: "a cat",
		Image:       "https://picsum.photos/seed/1/512/512",
	}
	env.generator.EXPECT().Generate(gomock.Any(), "a cat").Return(metadata, nil)
	env.content.EXPECT().Upload(gomock.Any(), metadata).Return("ipfs://QmTest", nil)

	w := env.request(t, http.MethodPost, "/api/v1/metadata",
		map[string]string{"prompt": "a cat"}, false)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "ipfs://QmTest", body["tokenURI"])
	assert.Equal(t, "a cat", body["metadata"].(map[string]interface{})["description"])
}

func TestGenerateMetadataMissingPrompt(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/v1/metadata",
		map[string]string{}, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateMetadataUploadFailure(t *testing.T) {
	env := newTestEnv(t)

	metadata := &domain.TokenMetadata{Name: "AI-Muse #7"}
	env.generator.EXPECT().Generate(gomock.Any(), "a cat").Return(metadata, nil)
	env.content.EXPECT().Upload(gomock.Any(), metadata).
		Return("", fmt.Errorf("pin failed"))

	w := env.request(t, http.MethodPost, "/api/v1/metadata",
		map[string]string{"prompt": "a cat"}, false)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListNFTs(t *testing.T) {
	env := newTestEnv(t)

	env.store.EXPECT().
		GetNFTsByOwner(gomock.Any(), "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266").
		Return([]*schema.NFT{
			{TokenID: 8, Owner: "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"},
			{TokenID: 7, Owner: "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"},
		}, nil)

	w := env.request(t, http.MethodGet,
		"/api/v1/nfts?owner=0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266", nil, false)

	require.Equal(t, http.StatusOK, w.Code)
	nfts := decodeBody(t, w)["nfts"].([]interface{})
	require.Len(t, nfts, 2)
	assert.Equal(t, float64(8), nfts[0].(map[string]interface{})["tokenId"])
}

func TestListNFTsMissingOwner(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/v1/nfts", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateNFT(t *testing.T) {
	env := newTestEnv(t)

	env.store.EXPECT().CreateNFT(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, nft *schema.NFT) error {
			assert.Equal(t, int64(7), nft.TokenID)
			assert.Equal(t, "a cat", nft.Prompt)
			assert.NotEmpty(t, nft.Attributes)
			return nil
		})

	w := env.request(t, http.MethodPost, "/api/v1/nfts", validCreateBody(), true)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["success"])
}

func TestCreateNFTValidationOrder(t *testing.T) {
	env := newTestEnv(t)

	// Removing fields one at a time must name the first missing field in
	// the documented order
	order := []string{"tokenId", "owner", "prompt", "tokenURI", "image", "name", "description", "transactionHash"}
	for i, field := range order {
		body := validCreateBody()
		for _, missing := range order[:i+1] {
			delete(body, missing)
		}

		w := env.request(t, http.MethodPost, "/api/v1/nfts", body, true)
		require.Equal(t, http.StatusBadRequest, w.Code)

		detail := decodeBody(t, w)["error"].(map[string]interface{})
		assert.Contains(t, detail["message"], field)
	}
}

func TestCreateNFTConflict(t *testing.T) {
	env := newTestEnv(t)

	env.store.EXPECT().CreateNFT(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("insert: %w", domain.ErrTokenAlreadyExists))

	w := env.request(t, http.MethodPost, "/api/v1/nfts", validCreateBody(), true)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateNFTUnauthorized(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/v1/nfts", validCreateBody(), false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetNFT(t *testing.T) {
	env := newTestEnv(t)

	env.store.EXPECT().GetNFTByTokenID(gomock.Any(), int64(7)).
		Return(&schema.NFT{TokenID: 7, Name: "AI-Muse #7"}, nil)

	w := env.request(t, http.MethodGet, "/api/v1/nfts/7", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	nft := decodeBody(t, w)["nft"].(map[string]interface{})
	assert.Equal(t, float64(7), nft["tokenId"])
	assert.Equal(t, "AI-Muse #7", nft["name"])
}

func TestGetNFTNotNumeric(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/v1/nfts/abc", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetNFTNotFound(t *testing.T) {
	env := newTestEnv(t)

	env.store.EXPECT().GetNFTByTokenID(gomock.Any(), int64(404)).Return(nil, nil)

	w := env.request(t, http.MethodGet, "/api/v1/nfts/404", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateNFT(t *testing.T) {
	env := newTestEnv(t)

	env.store.EXPECT().UpdateNFT(gomock.Any(), int64(7), gomock.Any()).Return(nil)

	w := env.request(t, http.MethodPut, "/api/v1/nfts/7",
		map[string]string{"prompt": "a dog"}, true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["success"])
}

func TestUpdateNFTNotFound(t *testing.T) {
	env := newTestEnv(t)

	env.store.EXPECT().UpdateNFT(gomock.Any(), int64(7), gomock.Any()).
		Return(fmt.Errorf("update: %w", domain.ErrTokenNotFound))

	w := env.request(t, http.MethodPut, "/api/v1/nfts/7",
		map[string]string{"prompt": "a dog"}, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateNFTUnauthorized(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPut, "/api/v1/nfts/7",
		map[string]string{"prompt": "a dog"}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetNFTOnchainUnconfigured(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/v1/nfts/7/onchain", nil, false)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetNFTOnchain(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	chain := mocks.NewMockChainClient(ctrl)
	readConn := &wallet.Connection{ChainID: domain.ChainBaseMainnet}

	chain.EXPECT().OwnerOf(gomock.Any(), int64(7), readConn).
		Return("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	chain.EXPECT().TokenURI(gomock.Any(), int64(7), readConn).
		Return("ipfs://QmTest")

	router := gin.New()
	handler := NewHandler(mocks.NewMockStore(ctrl), nil, nil, chain, readConn)
	SetupRoutes(router, handler, middleware.AuthConfig{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/nfts/7/onchain", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(7), body["tokenId"])
	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", body["owner"])
	assert.Equal(t, "ipfs://QmTest", body["tokenURI"])
}

func TestGetNFTOnchainTokenAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	chain := mocks.NewMockChainClient(ctrl)
	readConn := &wallet.Connection{ChainID: domain.ChainBaseMainnet}

	chain.EXPECT().OwnerOf(gomock.Any(), int64(404), readConn).Return("")

	router := gin.New()
	handler := NewHandler(mocks.NewMockStore(ctrl), nil, nil, chain, readConn)
	SetupRoutes(router, handler, middleware.AuthConfig{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/nfts/404/onchain", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
