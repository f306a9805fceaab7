package hdwots

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ltcsuite/ltcd/ltcutil/hdkeychain"
)

// ParsePath parses a BIP-0032 style path such as m/44'/2'/0'.  A trailing
// ' or h marks a hardened index.  The leading m is optional.
func ParsePath(path string) ([]uint32, error) {
	parts := strings.Split(strings.TrimSpace(path), "/")
	if parts[0] == "m" || parts[0] == "M" {
		parts = parts[1:]
	}
	if len(parts) == 1 && parts[0] == "" {
		return nil, nil
	}

	indices := make([]uint32, 0, len(parts))
	for _, part := range parts {
		var offset uint32
		if strings.HasSuffix(part, "'") || strings.HasSuffix(part, "h") ||
			strings.HasSuffix(part, "H") {

			offset = hdkeychain.HardenedKeyStart
			part = part[:len(part)-1]
		}

		i, err := strconv.ParseUint(part, 10, 32)
		if err != nil || uint32(i) >= hdkeychain.HardenedKeyStart {
			return nil, fmt.Errorf("%w: bad element %q", ErrInvalidPath,
				part)
		}
		indices = append(indices, uint32(i)+offset)
	}

	return indices, nil
}
