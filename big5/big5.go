package big5

import (
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"
)

// EncodeHex converts s (UTF-8) to Big5 and renders each resulting
// character as an uppercase hex byte pair, space-separated, the format
// clipboard and legacy dictionary-export integrations expect.
func EncodeHex(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	parts := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		encoded, _, err := transform.String(traditionalchinese.Big5.NewEncoder(), string(r))
		if err != nil {
			return "", errors.Wrapf(err, "big5: encode %q", r)
		}
		parts = append(parts, strings.ToUpper(hex.EncodeToString([]byte(encoded))))
	}
	return strings.Join(parts, " "), nil
}

// DecodeHex reverses EncodeHex: hexPairs is a whitespace-separated list of
// hex byte pairs (one Big5 character each), and the result is UTF-8.
func DecodeHex(hexPairs string) (string, error) {
	fields := strings.Fields(hexPairs)
	var out strings.Builder
	for _, field := range fields {
		raw, err := hex.DecodeString(field)
		if err != nil {
			return "", errors.Wrapf(err, "big5: invalid hex %q", field)
		}
		decoded, _, err := transform.Bytes(traditionalchinese.Big5.NewDecoder(), raw)
		if err != nil {
			return "", errors.Wrapf(err, "big5: decode %q", field)
		}
		out.Write(decoded)
	}
	return out.String(), nil
}
