package state

import "periscope/internal/config"

// Params is the root of the runtime parameter tree.
type Params config.Params

func (p Params) Field(name string) (any, bool) {
	switch name {
	case "site_title":
		return p.SiteTitle, true
	case "org_name":
		return p.OrgName, true
	case "primary_asn":
		return p.PrimaryASN, true
	case "messages":
		return Messages(p.Messages), true
	case "web":
		return Web(p.Web), true
	case "cache":
		return CacheParams(p.Cache), true
	}
	return nil, false
}

func (p Params) FieldNames() []string {
	return []string{"site_title", "org_name", "primary_asn", "messages", "web", "cache"}
}

// Messages holds operator-visible response strings.
type Messages config.Messages

func (m Messages) Field(name string) (any, bool) {
	switch name {
	case "no_input":
		return m.NoInput, true
	case "invalid_target":
		return m.InvalidTarget, true
	case "not_found":
		return m.NotFound, true
	case "request_error":
		return m.RequestError, true
	}
	return nil, false
}

func (m Messages) FieldNames() []string {
	return []string{"no_input", "invalid_target", "not_found", "request_error"}
}

// Web holds front-end presentation parameters.
type Web config.Web

func (w Web) Field(name string) (any, bool) {
	switch name {
	case "theme":
		return w.Theme, true
	case "base_url":
		return w.BaseURL, true
	}
	return nil, false
}

func (w Web) FieldNames() []string {
	return []string{"theme", "base_url"}
}

// CacheParams holds response cache tuning parameters.
type CacheParams config.CacheParams

func (c CacheParams) Field(name string) (any, bool) {
	switch name {
	case "timeout":
		return c.TimeoutSeconds, true
	case "show_text":
		return c.ShowText, true
	}
	return nil, false
}

func (c CacheParams) FieldNames() []string {
	return []string{"timeout", "show_text"}
}
