// Package main implements a mock Product Advertising API server for local
// development. It answers /onca/xml requests with canned XML responses so
// the client can be exercised end to end without real Amazon credentials.
// Signatures are checked for presence, not validity.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
)

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	items := flag.Int("items", 3, "number of items in search responses")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(requestLogger(logger))

	e.GET("/onca/xml", oncaHandler(logger, *items))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock vendor server", "addr", addr, "items", *items)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			logger.Debug("request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"query", c.Request().URL.RawQuery,
			)
			return next(c)
		}
	}
}

func oncaHandler(logger *slog.Logger, itemCount int) echo.HandlerFunc {
	return func(c echo.Context) error {
		// A real vendor rejects unsigned requests; presence is enough here.
		if c.QueryParam("Signature") == "" || c.QueryParam("Timestamp") == "" {
			logger.Warn("rejecting unsigned request")
			return c.XMLBlob(http.StatusBadRequest,
				errorXML("SignatureDoesNotMatch", "request is missing Signature or Timestamp"))
		}

		switch op := c.QueryParam("Operation"); op {
		case "ItemLookup":
			return c.XMLBlob(http.StatusOK, lookupXML(c.QueryParam("ItemId")))
		case "ItemSearch":
			return c.XMLBlob(http.StatusOK,
				searchXML(c.QueryParam("Keywords"), itemCount))
		default:
			logger.Warn("unknown operation", "operation", op)
			return c.XMLBlob(http.StatusBadRequest,
				errorXML("InvalidOperation", "unsupported Operation: "+op))
		}
	}
}

func lookupXML(asin string) []byte {
	if asin == "" {
		asin = "B000000000"
	}
	return []byte(fmt.Sprintf(`<ItemLookupResponse>
  <Items>
    <Request><IsValid>True</IsValid></Request>
    <Item>
      <ASIN>%s</ASIN>
      <ItemAttributes><Title>Mock Product %s</Title></ItemAttributes>
    </Item>
  </Items>
</ItemLookupResponse>`, asin, asin))
}

func searchXML(keywords string, count int) []byte {
	var b strings.Builder
	b.WriteString("<ItemSearchResponse>\n  <Items>\n")
	fmt.Fprintf(&b, "    <TotalResults>%d</TotalResults>\n", count)
	for i := 1; i <= count; i++ {
		fmt.Fprintf(&b, `    <Item>
      <ASIN>B%09d</ASIN>
      <ItemAttributes><Title>Result %d for %s</Title></ItemAttributes>
    </Item>
`, i, i, keywords)
	}
	b.WriteString("  </Items>\n</ItemSearchResponse>")
	return []byte(b.String())
}

func errorXML(code, message string) []byte {
	return []byte(fmt.Sprintf(`<ItemSearchErrorResponse>
  <Error><Code>%s</Code><Message>%s</Message></Error>
</ItemSearchErrorResponse>`, code, message))
}
