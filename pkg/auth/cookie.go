package auth

import "net/url"

// CookieSettings contains cookie security settings derived from base URL.
type CookieSettings struct {
	// Secure indicates whether the cookie should only be sent over HTTPS.
	Secure bool
	// Domain is the cookie domain scope. Empty isolates the cookie to the
	// exact hostname.
	Domain string
}

// DeriveCookieSettings determines cookie security settings from the base
// URL. Localhost over HTTP gets Secure: false so local development works;
// anything else defaults to Secure: true. The configCookieDomain parameter
// allows explicit override of the domain scope.
func DeriveCookieSettings(baseURL string, configCookieDomain string) CookieSettings {
	parsedURL, err := url.Parse(baseURL)
	if err != nil || baseURL == "" {
		// Safe defaults for invalid URLs
		return CookieSettings{Secure: true, Domain: configCookieDomain}
	}

	return CookieSettings{
		Secure: parsedURL.Scheme != "http",
		Domain: configCookieDomain,
	}
}
