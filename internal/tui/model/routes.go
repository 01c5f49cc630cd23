package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Page is one of the catalog's top-level views.
type Page int

const (
	PageHome Page = iota
	PageSpectrum
	PageTypography
	PageGradients
	PageComponents
	PageSpacing
	PageTokens
)

type pageInfo struct {
	route string
	title string
}

var pageInfos = []pageInfo{
	PageHome:       {"/", "Overview"},
	PageSpectrum:   {"/spectrum", "Spectrum"},
	PageTypography: {"/typography", "Typography"},
	PageGradients:  {"/gradients", "Gradients"},
	PageComponents: {"/components", "Components"},
	PageSpacing:    {"/spacing", "Spacing"},
	PageTokens:     {"/tokens", "Tokens"},
}

// Pages lists every page in navigation order.
var Pages = []Page{PageHome, PageSpectrum, PageTypography, PageGradients, PageComponents, PageSpacing, PageTokens}

// Route returns the page's path, e.g. "/spectrum".
func (p Page) Route() string {
	if p < 0 || int(p) >= len(pageInfos) {
		return ""
	}
	return pageInfos[p].route
}

// Title returns the navigation label.
func (p Page) Title() string {
	if p < 0 || int(p) >= len(pageInfos) {
		return "Unknown"
	}
	return pageInfos[p].title
}

// Next returns the page after p, wrapping around.
func (p Page) Next() Page { return Page((int(p) + 1) % len(Pages)) }

// Prev returns the page before p, wrapping around.
func (p Page) Prev() Page { return Page((int(p) + len(Pages) - 1) % len(Pages)) }

// ParseRoute resolves a route ("/spectrum"), a bare name ("spectrum",
// "overview") or a 1-based page number.
func ParseRoute(s string) (Page, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(v); err == nil {
		if n >= 1 && n <= len(Pages) {
			return Pages[n-1], nil
		}
		return PageHome, fmt.Errorf("page number %d out of range 1..%d", n, len(Pages))
	}
	if v == "" || v == "home" {
		return PageHome, nil
	}
	for _, p := range Pages {
		if v == p.Route() || "/"+v == p.Route() || v == strings.ToLower(p.Title()) {
			return p, nil
		}
	}
	return PageHome, fmt.Errorf("unknown page %q", s)
}
