package utils

import "strings"

// Vendor error-message prefixes stripped before messages are shown to users.
var vendorPrefixes = []string{
	"Cloudinary: ",
	"cloudinary: ",
}

// StripVendorPrefix removes a known vendor prefix from an error message.
func StripVendorPrefix(msg string) string {
	for _, prefix := range vendorPrefixes {
		if strings.HasPrefix(msg, prefix) {
			return strings.TrimPrefix(msg, prefix)
		}
	}
	return msg
}
