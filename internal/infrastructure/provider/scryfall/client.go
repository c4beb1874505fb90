// Package scryfall consulta cartas y rulings en la API de Scryfall.
package scryfall

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"mtgBot/internal/domain"
)

const providerName = "scryfall"

type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

type Client struct {
	http *resty.Client
}

type cardResponse struct {
	Object     string `json:"object"`
	Name       string `json:"name"`
	RulingsURI string `json:"rulings_uri"`
}

type rulingsResponse struct {
	Object string         `json:"object"`
	Data   []rulingRecord `json:"data"`
}

type rulingRecord struct {
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"`
	Comment     string `json:"comment"`
}

// apiError es el objeto "error" que Scryfall devuelve en respuestas no 2xx.
type apiError struct {
	Object  string `json:"object"`
	Code    string `json:"code"`
	Status  int    `json:"status"`
	Details string `json:"details"`
}

func NewClient(cfg Config) *Client {
	client := resty.New()
	client.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/"))
	// Scryfall exige User-Agent y Accept en todas las peticiones.
	client.SetHeader("Accept", "application/json")
	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	client.SetRetryCount(0)

	return &Client{http: client}
}

func (c *Client) NamedCard(ctx context.Context, fuzzyName string) (domain.Card, error) {
	var card cardResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("fuzzy", fuzzyName).
		SetResult(&card).
		SetError(&apiError{}).
		Get("/cards/named")
	if err := classify(res, err, "GET /cards/named"); err != nil {
		return domain.Card{}, err
	}
	if card.Name == "" {
		return domain.Card{}, domain.NewMalformedError(providerName, errors.New("card without name"))
	}

	return domain.Card{
		Name:       card.Name,
		RulingsURI: card.RulingsURI,
	}, nil
}

// Rulings sigue el rulings_uri absoluto que trae la carta.
func (c *Client) Rulings(ctx context.Context, rulingsURI string) ([]domain.Ruling, error) {
	var body rulingsResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetResult(&body).
		SetError(&apiError{}).
		Get(rulingsURI)
	if err := classify(res, err, "GET rulings"); err != nil {
		return nil, err
	}

	rulings := make([]domain.Ruling, 0, len(body.Data))
	for _, r := range body.Data {
		rulings = append(rulings, domain.Ruling{
			PublishedAt: r.PublishedAt,
			Comment:     r.Comment,
		})
	}
	return rulings, nil
}

func classify(res *resty.Response, err error, op string) error {
	status := 0
	if res != nil {
		status = res.StatusCode()
	}

	if err != nil {
		// Con status ya hubo respuesta: el fallo fue al decodificar el cuerpo.
		if status != 0 && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
			return domain.NewMalformedError(providerName, fmt.Errorf("%s: %w", op, err))
		}
		return domain.NewTransportError(providerName, status, fmt.Errorf("%s: %w", op, err))
	}

	if status >= 200 && status < 300 {
		return nil
	}

	detail := http.StatusText(status)
	if apiErr, ok := res.Error().(*apiError); ok && apiErr != nil && apiErr.Details != "" {
		detail = apiErr.Details
	}
	cause := fmt.Errorf("%s: %s", op, detail)
	if status == http.StatusNotFound {
		return domain.NewNotFoundError(providerName, status, cause)
	}
	return domain.NewTransportError(providerName, status, cause)
}

var _ domain.RulesProvider = (*Client)(nil)
