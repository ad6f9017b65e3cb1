package payment

import (
	"context"
	"crypto/ecdsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"ortomat-backend/internal/domain/payment"
	"ortomat-backend/internal/pkg/config"
	"ortomat-backend/internal/pkg/errs"
	"ortomat-backend/internal/usecase/shared"
)

// ISO 4217 code of the hryvnia.
const currencyUAH = 980

var errInvalidPublicKey = errs.New("invalid acquirer public key")

// Acquirer talks to the card acquiring API. Callbacks are signed with ECDSA
// P-256 over SHA-256 of the raw body; the signature arrives base64 encoded.
type Acquirer struct {
	api         *apiClient
	webhookURL  string
	redirectURL string
	logger      *slog.Logger

	mu         sync.Mutex
	key        *ecdsa.PublicKey
	configured bool
}

func NewAcquirer(cfg config.PaymentConfig, logger *slog.Logger) (*Acquirer, error) {
	a := &Acquirer{
		api: newAPIClient(cfg.AcquirerBaseURL, cfg.ProviderTimeout, map[string]string{
			"X-Token": cfg.AcquirerToken,
		}),
		webhookURL:  cfg.WebhookBaseURL + "/api/payments/webhook/" + payment.ProviderAcquirer.String(),
		redirectURL: cfg.RedirectURL,
		logger:      logger,
	}
	if cfg.AcquirerPublicKey != "" {
		key, err := parsePublicKey(cfg.AcquirerPublicKey)
		if err != nil {
			return nil, err
		}
		a.key = key
		a.configured = true
	}
	return a, nil
}

func (a *Acquirer) Name() payment.Provider {
	return payment.ProviderAcquirer
}

type acquirerStatus struct {
	InvoiceID    string    `json:"invoiceId"`
	Status       string    `json:"status"`
	Amount       int64     `json:"amount"`
	Ccy          int       `json:"ccy"`
	ModifiedDate time.Time `json:"modifiedDate"`
	Reference    string    `json:"reference,omitempty"`
}

func (s acquirerStatus) event() (payment.Event, error) {
	return payment.NewEvent(payment.ProviderAcquirer, s.InvoiceID, s.Status, s.Amount, s.ModifiedDate)
}

func (a *Acquirer) ParseEvent(ctx context.Context, body []byte, signature string) (payment.Event, error) {
	if err := a.verify(ctx, body, signature); err != nil {
		return payment.Event{}, err
	}
	var st acquirerStatus
	if err := json.Unmarshal(body, &st); err != nil {
		return payment.Event{}, errs.Mark(errs.Wrap(err, "decode acquirer callback"), payment.ErrInvalidEvent)
	}
	return st.event()
}

func (a *Acquirer) verify(ctx context.Context, body []byte, signature string) error {
	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil || len(sig) == 0 {
		return errs.Wrap(errs.ErrUnauthenticated, "malformed acquirer signature")
	}
	digest := sha256.Sum256(body)

	key, err := a.publicKey(ctx, false)
	if err != nil {
		return err
	}
	if ecdsa.VerifyASN1(key, digest[:], sig) {
		return nil
	}
	if a.configured {
		return errs.Wrap(errs.ErrUnauthenticated, "acquirer signature mismatch")
	}

	// the provider may have rotated its key since we cached it
	key, err = a.publicKey(ctx, true)
	if err != nil {
		return err
	}
	if !ecdsa.VerifyASN1(key, digest[:], sig) {
		return errs.Wrap(errs.ErrUnauthenticated, "acquirer signature mismatch")
	}
	return nil
}

func (a *Acquirer) publicKey(ctx context.Context, refresh bool) (*ecdsa.PublicKey, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.key != nil && (!refresh || a.configured) {
		return a.key, nil
	}

	var resp struct {
		Key string `json:"key"`
	}
	if err := a.api.do(ctx, http.MethodGet, "/api/merchant/pubkey", nil, &resp); err != nil {
		return nil, errs.Wrap(err, "fetch acquirer public key")
	}
	key, err := parsePublicKey(resp.Key)
	if err != nil {
		return nil, err
	}
	a.key = key
	a.logger.Info("acquirer public key refreshed")
	return key, nil
}

// parsePublicKey accepts the provider format: a base64 encoded PEM block.
func parsePublicKey(encoded string) (*ecdsa.PublicKey, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode key"), errInvalidPublicKey)
	}
	block, _ := pem.Decode(raw)
	if block == nil {
		return nil, errs.Wrap(errInvalidPublicKey, "no PEM block")
	}
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "parse key"), errInvalidPublicKey)
	}
	key, ok := pub.(*ecdsa.PublicKey)
	if !ok {
		return nil, errs.Wrap(errInvalidPublicKey, "not an ECDSA key")
	}
	return key, nil
}

type createInvoiceRequest struct {
	Amount           int64            `json:"amount"`
	Ccy              int              `json:"ccy"`
	MerchantPaymInfo merchantPaymInfo `json:"merchantPaymInfo"`
	RedirectURL      string           `json:"redirectUrl"`
	WebHookURL       string           `json:"webHookUrl"`
}

type merchantPaymInfo struct {
	Reference   string `json:"reference"`
	Destination string `json:"destination"`
}

type createInvoiceResponse struct {
	InvoiceID string `json:"invoiceId"`
	PageURL   string `json:"pageUrl"`
}

func (a *Acquirer) CreateInvoice(ctx context.Context, req shared.InvoiceRequest) (shared.Invoice, error) {
	var resp createInvoiceResponse
	err := a.api.do(ctx, http.MethodPost, "/api/merchant/invoice/create", createInvoiceRequest{
		Amount: req.Amount,
		Ccy:    currencyUAH,
		MerchantPaymInfo: merchantPaymInfo{
			Reference:   req.OrderNumber,
			Destination: req.Description,
		},
		RedirectURL: a.redirectURL,
		WebHookURL:  a.webhookURL,
	}, &resp)
	if err != nil {
		return shared.Invoice{}, errs.Wrapf(err, "create invoice for order %s", req.OrderNumber)
	}
	if resp.InvoiceID == "" {
		return shared.Invoice{}, errs.Mark(errs.New("acquirer returned an empty invoice id"), errs.ErrProviderUnavailable)
	}
	return shared.Invoice{ID: resp.InvoiceID, PageURL: resp.PageURL}, nil
}

func (a *Acquirer) FetchStatus(ctx context.Context, invoiceID string) (payment.Event, error) {
	var st acquirerStatus
	path := "/api/merchant/invoice/status?invoiceId=" + url.QueryEscape(invoiceID)
	if err := a.api.do(ctx, http.MethodGet, path, nil, &st); err != nil {
		return payment.Event{}, errs.Wrapf(err, "fetch status of invoice %s", invoiceID)
	}
	return st.event()
}
