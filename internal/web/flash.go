package web

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

// One-shot notification cookie backing the pages' toast messages. Written on
// redirect, read and cleared on the next page render.

const (
	flashCookie = "workling_flash"

	flashSuccess = "success"
	flashError   = "error"
)

type flash struct {
	Kind    string
	Message string
}

func setFlash(c echo.Context, kind, message string) {
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(kind + "|" + message),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func popFlash(c echo.Context) *flash {
	cookie, err := c.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	c.SetCookie(&http.Cookie{Name: flashCookie, Value: "", Path: "/", MaxAge: -1})

	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] == '|' {
			return &flash{Kind: raw[:i], Message: raw[i+1:]}
		}
	}
	return &flash{Kind: flashSuccess, Message: raw}
}
