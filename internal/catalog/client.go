package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sk-sazzad/tinystepsbd/internal/domain"
)

// PlaceholderImage is used when a product row carries no usable image
const PlaceholderImage = "assets/images/placeholder.jpg"

// Client calls the spreadsheet-backed product API
type Client struct {
	apiURL     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a product API HTTP client
func NewClient(apiURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiURL:     strings.TrimSuffix(apiURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// productsResponse is the API response shape for action=products
type productsResponse struct {
	Success bool                     `json:"success"`
	Data    []map[string]interface{} `json:"data"`
	Error   string                   `json:"error"`
}

// FetchProducts fetches the full product list. Any non-conforming
// response is an error; the loader decides what to fall back to.
func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	if c.apiURL == "" {
		return nil, fmt.Errorf("catalog client not configured: API URL required")
	}
	u, err := url.Parse(c.apiURL)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("action", "products")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Catalog request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("product API returned %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var out productsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("product API returned non-JSON: %w", err)
	}
	if !out.Success {
		if out.Error != "" {
			return nil, fmt.Errorf("product API error: %s", out.Error)
		}
		return nil, fmt.Errorf("product API reported failure")
	}

	products := make([]domain.Product, 0, len(out.Data))
	for _, row := range out.Data {
		p := normalizeProduct(row)
		if p.ID == "" {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// normalizeProduct maps one raw sheet row to a Product: price coerced
// to an integer, image defaulted to the placeholder
func normalizeProduct(row map[string]interface{}) domain.Product {
	p := domain.Product{
		ID:          getStr(row, "Product ID"),
		Name:        getStr(row, "Name"),
		Price:       getPrice(row, "Price (BDT)"),
		Category:    getStr(row, "Category"),
		Size:        getStr(row, "Size"),
		Color:       getStr(row, "Color"),
		Description: getStr(row, "Description"),
	}

	p.ImageURL = getStr(row, "Main Image")
	if p.ImageURL == "" {
		p.ImageURL = getStr(row, "Image1")
	}
	if p.ImageURL == "" {
		p.ImageURL = PlaceholderImage
	}

	// The sheet carries up to ten gallery images per product
	for i := 1; i <= 10; i++ {
		if img := getStr(row, fmt.Sprintf("Image%d", i)); img != "" {
			p.Images = append(p.Images, img)
		}
	}
	return p
}

func getStr(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// getPrice accepts the price as a JSON number or a numeric string;
// anything unparsable normalizes to 0
func getPrice(m map[string]interface{}, key string) int64 {
	switch v := m[key].(type) {
	case float64:
		if v < 0 {
			return 0
		}
		return int64(v)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil || n < 0 {
			return 0
		}
		return n
	default:
		return 0
	}
}
