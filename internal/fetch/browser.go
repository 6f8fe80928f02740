// Package fetch - browser.go provides headless browser rendering for SPA sites.
package fetch

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinContentLength is the minimum extracted text length to consider HTTP fetch successful.
// If content is shorter, we should fall back to browser rendering.
const MinContentLength = 500

// dismissSelectors are clicked after load to clear the overlays freelance
// platforms put over profiles: sign-in walls, cookie prompts and app banners.
var dismissSelectors = []string{
	"#onetrust-accept-btn-handler",
	"button.modal__dismiss",
	`[aria-label="Dismiss"]`,
	`button[id*="accept"]`,
	`button[class*="accept"]`,
}

// ShouldUseBrowser returns true if the extracted text is too short,
// indicating the page is likely a JavaScript-rendered SPA.
// Upwork and LinkedIn profiles render almost entirely client-side.
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinContentLength
}

// WithBrowser renders a profile page in a headless browser and returns the
// rendered HTML. Profile sections on Upwork and LinkedIn lazy-load on scroll,
// so the page is scrolled to the bottom before extraction.
// Requires Chrome/Chromium to be installed on the system.
func WithBrowser(ctx context.Context, url string, timeout time.Duration, verbose bool) (string, error) {
	if verbose {
		log.Printf("[BROWSER] Starting headless browser for: %s", url)
	}

	// Create browser context with timeout
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	// Set timeout
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string

	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Let the profile shell render before interacting
		chromedp.Sleep(3*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// Clear overlays. Click waits for its selector, so each attempt
			// gets a short deadline; absent selectors are not an error.
			for _, sel := range dismissSelectors {
				clickCtx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
				_ = chromedp.Click(sel, chromedp.NodeVisible).Do(clickCtx)
				cancel()
			}
			return nil
		}),
		// Trigger lazy-loaded profile sections
		chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
		chromedp.Sleep(1*time.Second),
		chromedp.OuterHTML("html", &html),
	)

	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	if verbose {
		log.Printf("[BROWSER] Rendered HTML: %d bytes", len(html))
	}

	return html, nil
}
