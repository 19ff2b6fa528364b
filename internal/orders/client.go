// Package orders talks to the external order-creation endpoint. The
// endpoint is a spreadsheet-backed script treated as an opaque JSON
// API; this client classifies its outcomes into the error taxonomy.
package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sk-sazzad/tinystepsbd/internal/domain"
	"github.com/sk-sazzad/tinystepsbd/pkg/errors"
)

// Client submits orders to the remote API
type Client struct {
	apiURL     string
	httpClient *http.Client
	logger     *zap.Logger

	// allowUnconfirmed synthesizes a local order id when the endpoint
	// accepts the request but the response body cannot be read. The
	// resulting confirmation is marked unconfirmed, never equated with
	// a server-confirmed order.
	allowUnconfirmed bool
}

// NewClient creates an order endpoint client. Per-request deadlines
// come from the caller's context.
func NewClient(apiURL string, allowUnconfirmed bool, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		apiURL:           strings.TrimSuffix(apiURL, "/"),
		httpClient:       &http.Client{},
		logger:           logger,
		allowUnconfirmed: allowUnconfirmed,
	}
}

// createOrderRequest wraps the order snapshot with the script action
// selector
type createOrderRequest struct {
	Action string `json:"action"`
	domain.OrderRequest
}

// orderResponse is the order endpoint response shape
type orderResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Data    struct {
		OrderID     string `json:"order_id"`
		TotalAmount int64  `json:"total_amount"`
	} `json:"data"`
}

// CreateOrder submits the order snapshot. Outcomes: confirmation,
// ErrServerRejected, ErrTimeout or ErrNetwork. A late response after
// the caller's deadline fired is discarded with the timeout.
func (c *Client) CreateOrder(ctx context.Context, order domain.OrderRequest) (domain.OrderConfirmation, error) {
	start := time.Now()

	body, err := json.Marshal(createOrderRequest{Action: "create_order", OrderRequest: order})
	if err != nil {
		return domain.OrderConfirmation{}, &errors.ErrNetwork{Op: "order submission", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return domain.OrderConfirmation{}, &errors.ErrNetwork{Op: "order submission", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			c.logger.Warn("Order submission timed out", zap.Duration("elapsed", time.Since(start)))
			return domain.OrderConfirmation{}, &errors.ErrTimeout{Op: "order submission", Elapsed: time.Since(start)}
		}
		c.logger.Warn("Order submission failed", zap.Error(err))
		return domain.OrderConfirmation{}, &errors.ErrNetwork{Op: "order submission", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Warn("Order endpoint returned error status",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(respBody)))
		return domain.OrderConfirmation{}, &errors.ErrServerRejected{
			Message: strings.TrimSpace(string(respBody)),
		}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.degradedConfirmation(ctx, start, order, err)
	}

	var out orderResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return c.degradedConfirmation(ctx, start, order, err)
	}

	if !out.Success {
		return domain.OrderConfirmation{}, &errors.ErrServerRejected{Message: out.Error}
	}

	total := out.Data.TotalAmount
	if total == 0 {
		total = order.TotalAmount
	}
	return domain.OrderConfirmation{
		OrderID:     out.Data.OrderID,
		TotalAmount: total,
		Confirmed:   true,
	}, nil
}

// degradedConfirmation handles an accepted request whose response could
// not be read: with the flag on, a local order id stands in and the
// confirmation is marked unconfirmed; otherwise the outcome is a
// network failure. A deadline that fired during the read means the
// body stalled, not that it was opaque, so that stays a timeout.
func (c *Client) degradedConfirmation(ctx context.Context, start time.Time, order domain.OrderRequest, cause error) (domain.OrderConfirmation, error) {
	if ctx.Err() == context.DeadlineExceeded {
		c.logger.Warn("Order response timed out mid-read", zap.Duration("elapsed", time.Since(start)))
		return domain.OrderConfirmation{}, &errors.ErrTimeout{Op: "order submission", Elapsed: time.Since(start)}
	}
	if !c.allowUnconfirmed {
		return domain.OrderConfirmation{}, &errors.ErrNetwork{Op: "order response", Err: cause}
	}
	localID := "LOCAL-" + uuid.NewString()
	c.logger.Warn("Order response unreadable, issuing unconfirmed local order id",
		zap.String("order_id", localID),
		zap.Error(cause))
	return domain.OrderConfirmation{
		OrderID:     localID,
		TotalAmount: order.TotalAmount,
		Confirmed:   false,
	}, nil
}
