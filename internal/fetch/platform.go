// Package fetch - platform.go provides platform detection and platform-specific selectors.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known freelance or professional network platform.
type Platform string

const (
	// PlatformUpwork is the Upwork freelance marketplace
	PlatformUpwork Platform = "upwork"
	// PlatformLinkedIn is the LinkedIn professional network
	PlatformLinkedIn Platform = "linkedin"
	// PlatformFiverr is the Fiverr freelance marketplace
	PlatformFiverr Platform = "fiverr"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the freelance platform from a profile URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)

	// Upwork patterns
	if strings.Contains(host, "upwork.com") {
		return PlatformUpwork
	}

	// LinkedIn patterns
	if strings.Contains(host, "linkedin.com") {
		return PlatformLinkedIn
	}

	// Fiverr patterns
	if strings.Contains(host, "fiverr.com") {
		return PlatformFiverr
	}

	return PlatformUnknown
}

// PlatformContentSelectors returns content selectors optimized for a specific platform.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformUpwork:
		return []string{
			"[data-test='profile-overview']", // Primary Upwork selector
			".up-card-section",               // Fallback
			".air3-card-section",             // Newer Upwork layout
			"#main",                          // Generic fallback
			".profile-outer-wrapper",         // Container level
		}
	case PlatformLinkedIn:
		return []string{
			".core-section-container",
			".pv-top-card",
			".profile-section",
			"main",
		}
	case PlatformFiverr:
		return []string{
			".seller-card",
			".user-profile",
			".seller-profile",
			"main",
		}
	default:
		return ProfilePageSelectors()
	}
}

// PlatformNoiseSelectors returns noise exclusion selectors for a specific platform.
func PlatformNoiseSelectors(platform Platform) []string {
	// Common noise selectors for all platforms
	common := []string{
		// Signup and login walls
		"form",
		"#signup-form",
		".signup-form",
		".login-form",
		".auth-wall",
		"[data-testid='signup-modal']",

		// Hiring prompts and CTAs
		".hire-button-container",
		".invite-to-job",
		".contact-freelancer",
		".cta-banner",

		// Social and share buttons
		".social-share",
		".share-buttons",
		".social-links",

		// Cookie and GDPR
		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",

		// Generic navigation already handled in fetch.go
	}

	// Platform-specific noise selectors
	switch platform {
	case PlatformUpwork:
		return append(common,
			".up-modal",
			".proposal-banner",
			".connects-banner",
			"[data-test='freelancer-sidebar']",
			".similar-freelancers",
		)
	case PlatformLinkedIn:
		return append(common,
			".join-form",
			".contextual-sign-in-modal",
			".sign-in-modal",
			".people-also-viewed",
		)
	case PlatformFiverr:
		return append(common,
			".order-box",
			".gig-packages",
			".seller-contact-form",
		)
	default:
		return common
	}
}
