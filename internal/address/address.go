// Package address derives the domain and path for a new blog from its
// slug and the layout of the target network, and validates slugs against
// the platform's addressing rules.
package address

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/loomcms/cli/internal/api"
)

// maxSlugLen matches the DNS label limit, since a slug becomes a
// subdomain label on subdomain installs.
const maxSlugLen = 63

// reservedSlugs are names the platform reserves for itself. A blog at one
// of these addresses would shadow platform routes or mail subdomains.
var reservedSlugs = map[string]struct{}{
	"www":     {},
	"web":     {},
	"root":    {},
	"admin":   {},
	"main":    {},
	"blog":    {},
	"files":   {},
	"feed":    {},
	"assets":  {},
	"static":  {},
	"api":     {},
	"mail":    {},
	"network": {},
}

// NormalizeSlug lowercases and trims a raw slug argument. Validation is
// separate so that the error can name the offending input exactly as the
// user typed it.
func NormalizeSlug(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ValidateSlug checks a normalized slug against the platform addressing
// rules: 1-63 characters, lowercase letters, digits and hyphens only, no
// leading or trailing hyphen, and not a reserved name.
func ValidateSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("slug is required")
	}

	if len(slug) > maxSlugLen {
		return fmt.Errorf("slug '%s' is too long (maximum %d characters)", slug, maxSlugLen)
	}

	if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
		return fmt.Errorf("slug '%s' must not start or end with a hyphen", slug)
	}

	for _, r := range slug {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return fmt.Errorf("slug '%s' contains invalid character '%c'; only lowercase letters, digits and hyphens are allowed", slug, r)
		}
	}

	if _, reserved := reservedSlugs[slug]; reserved {
		return fmt.Errorf("slug '%s' is reserved", slug)
	}

	return nil
}

// ValidateEmail reports whether the address parses as a bare RFC 5322
// address (no display name).
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return fmt.Errorf("invalid email address '%s'", email)
	}
	if addr.Address != email {
		return fmt.Errorf("invalid email address '%s'", email)
	}
	return nil
}

// Derive computes the domain and path for a new blog in the given
// network. Subdomain installs address blogs as a subdomain of the network
// domain; sub-directory installs append the slug to the network path.
func Derive(network *api.Network, slug string) (domain, path string) {
	base := normalizePath(network.Path)

	if network.Subdomains {
		return slug + "." + network.Domain, base
	}

	return network.Domain, base + slug + "/"
}

// URL builds the canonical URL for a blog address.
func URL(domain, path string) string {
	return "https://" + domain + normalizePath(path)
}

// normalizePath guarantees a leading and trailing slash. The network root
// path is "/".
func normalizePath(path string) string {
	path = strings.Trim(path, "/")
	if path == "" {
		return "/"
	}
	return "/" + path + "/"
}
