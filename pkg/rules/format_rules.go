package rules

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

var (
	// E.164 with optional leading plus
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	numericRegex      = regexp.MustCompile(`^[0-9]+$`)
	zipCodeRegex      = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	hexColorRegex     = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	floatRegex        = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?$`)
)

// Email validates an RFC 5322 address with a dotted domain.
func Email() Rule {
	return newRule(isEmail, "must be a valid email address", "validation.email", nil)
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// URL validates an absolute URL with scheme and host.
func URL() Rule {
	return newRule(
		func(s string) bool {
			if strings.TrimSpace(s) == "" {
				return false
			}
			u, err := url.ParseRequestURI(s)
			return err == nil && u.Scheme != "" && u.Host != ""
		},
		"must be a valid URL",
		"validation.url",
		nil,
	)
}

// Phone validates an international phone number. Spaces and dashes are ignored.
func Phone() Rule {
	return newRule(
		func(s string) bool {
			cleaned := strings.NewReplacer(" ", "", "-", "").Replace(s)
			if len(cleaned) < 7 {
				return false
			}
			return phoneRegex.MatchString(cleaned)
		},
		"must be a valid phone number in international format",
		"validation.phone",
		nil,
	)
}

// ZipCode validates a US ZIP or ZIP+4 code.
func ZipCode() Rule {
	return newRule(zipCodeRegex.MatchString, "must be a valid ZIP code", "validation.zip_code", nil)
}

func Alpha() Rule {
	return newRule(alphaRegex.MatchString, "must contain only letters", "validation.alpha", nil)
}

func AlphaNumeric() Rule {
	return newRule(alphanumericRegex.MatchString, "must contain only letters and numbers", "validation.alphanumeric", nil)
}

func Numeric() Rule {
	return newRule(numericRegex.MatchString, "must contain only digits", "validation.numeric_string", nil)
}

// Float validates a decimal number such as "3.14" or "-2".
func Float() Rule {
	return newRule(floatRegex.MatchString, "must be a number", "validation.float", nil)
}

func IPv4() Rule {
	return newRule(
		func(s string) bool {
			ip := net.ParseIP(s)
			return ip != nil && ip.To4() != nil && !strings.Contains(s, ":")
		},
		"must be a valid IPv4 address",
		"validation.ipv4",
		nil,
	)
}

// HexColor validates a 3 or 6 digit hex color with optional leading '#'.
func HexColor() Rule {
	return newRule(hexColorRegex.MatchString, "must be a valid hex color", "validation.hex_color", nil)
}
