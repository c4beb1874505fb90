// Package edhrec lee las páginas JSON de EDHREC.
package edhrec

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"mtgBot/internal/domain"
)

const providerName = "edhrec"

const (
	pageCommanders = "commanders"
	pageCombos     = "combos"
	pageCards      = "cards"
)

type Config struct {
	// JSONBaseURL sirve las páginas en JSON (https://json.edhrec.com).
	JSONBaseURL string
	// SiteURL es la web pública, usada para links de cartas (https://edhrec.com).
	SiteURL   string
	Timeout   time.Duration
	UserAgent string
}

type Client struct {
	http    *resty.Client
	siteURL string
}

func NewClient(cfg Config) *Client {
	client := resty.New()
	client.SetBaseURL(strings.TrimRight(cfg.JSONBaseURL, "/"))
	client.SetHeader("Accept", "application/json")
	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	// Un solo intento por llamada.
	client.SetRetryCount(0)

	return &Client{
		http:    client,
		siteURL: strings.TrimRight(cfg.SiteURL, "/"),
	}
}

func (c *Client) CommanderPage(ctx context.Context, name string) (domain.CommanderPage, error) {
	doc, err := c.getPage(ctx, pageCommanders, name)
	if err != nil {
		return domain.CommanderPage{}, err
	}

	dict := doc.Get("container.json_dict")
	deckList := dict.Get("card.moxfield_uri")
	if !deckList.Exists() || deckList.String() == "" {
		return domain.CommanderPage{}, missingField("container.json_dict.card.moxfield_uri")
	}

	cardLists := dict.Get("cardlists")
	if !cardLists.IsArray() {
		return domain.CommanderPage{}, missingField("container.json_dict.cardlists")
	}

	page := domain.CommanderPage{DeckListURI: deckList.String()}

	// Se guardan todos los similares; el que no trae link falla al elegirse.
	dict.Get("similar").ForEach(func(_, similar gjson.Result) bool {
		page.Similar = append(page.Similar, domain.SimilarCommander{
			Name:        similar.Get("name").String(),
			DeckListURI: similar.Get("moxfield_uri").String(),
		})
		return true
	})

	cardLists.ForEach(func(_, list gjson.Result) bool {
		cl := domain.CardList{Header: list.Get("header").String()}
		list.Get("cardviews").ForEach(func(_, card gjson.Result) bool {
			name := card.Get("name").String()
			if name == "" {
				return true
			}
			cl.Cards = append(cl.Cards, domain.CardView{
				Name:    name,
				Synergy: card.Get("synergy").Float(),
			})
			return true
		})
		page.CardLists = append(page.CardLists, cl)
		return true
	})

	return page, nil
}

func (c *Client) ComboPage(ctx context.Context, name string) (domain.ComboPage, error) {
	doc, err := c.getPage(ctx, pageCombos, name)
	if err != nil {
		return domain.ComboPage{}, err
	}

	groups := doc.Get("container.json_dict.cardlists")
	if !groups.IsArray() {
		return domain.ComboPage{}, missingField("container.json_dict.cardlists")
	}

	page := domain.ComboPage{
		Header:        doc.Get("header").String(),
		AllCombosPath: breadcrumbPath(doc.Get("container.breadcrumb")),
	}
	groups.ForEach(func(_, group gjson.Result) bool {
		page.Combos = append(page.Combos, domain.ComboGroup{
			Header: group.Get("header").String(),
			Href:   group.Get("href").String(),
		})
		return true
	})

	return page, nil
}

// breadcrumbPath devuelve la primera key del segundo elemento del breadcrumb,
// que en EDHREC es el path de la página de todos los combos. gjson respeta el
// orden de las keys del documento.
func breadcrumbPath(breadcrumb gjson.Result) string {
	entry := breadcrumb.Get("1")
	if !entry.IsObject() {
		return ""
	}
	var path string
	entry.ForEach(func(key, _ gjson.Result) bool {
		path = key.String()
		return false
	})
	return path
}

func (c *Client) CardDetails(ctx context.Context, name string) (domain.CardDetails, error) {
	doc, err := c.getPage(ctx, pageCards, name)
	if err != nil {
		return domain.CardDetails{}, err
	}

	card := doc.Get("container.json_dict.card")
	oracle := card.Get("oracle_text")
	if !oracle.Exists() {
		return domain.CardDetails{}, missingField("container.json_dict.card.oracle_text")
	}

	return domain.CardDetails{
		Name:       card.Get("name").String(),
		Link:       c.CardLink(name),
		OracleText: oracle.String(),
	}, nil
}

// CardLink arma el link público de la carta; no hace ninguna petición.
func (c *Client) CardLink(name string) string {
	return fmt.Sprintf("%s/cards/%s", c.siteURL, Slug(name))
}

func (c *Client) getPage(ctx context.Context, kind, name string) (gjson.Result, error) {
	slug := Slug(name)
	if slug == "" {
		return gjson.Result{}, domain.NewNotFoundError(providerName, 0, fmt.Errorf("no valid slug for %q", name))
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"kind": kind,
			"slug": slug,
		}).
		Get("/pages/{kind}/{slug}.json")
	if err != nil {
		return gjson.Result{}, domain.NewTransportError(providerName, 0, fmt.Errorf("GET %s/%s: %w", kind, slug, err))
	}

	switch status := res.StatusCode(); {
	case status == http.StatusNotFound:
		return gjson.Result{}, domain.NewNotFoundError(providerName, status, fmt.Errorf("no %s page for %q", strings.TrimSuffix(kind, "s"), name))
	case status < 200 || status >= 300:
		return gjson.Result{}, domain.NewTransportError(providerName, status, fmt.Errorf("GET %s/%s: %s", kind, slug, http.StatusText(status)))
	}

	body := res.Body()
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, domain.NewMalformedError(providerName, errors.New("invalid JSON body"))
	}
	return gjson.ParseBytes(body), nil
}

func missingField(path string) error {
	return domain.NewMalformedError(providerName, fmt.Errorf("missing field %s", path))
}

var _ domain.DeckDataProvider = (*Client)(nil)
