package domain

// Envelope text format constants.
//
// Current format:
//
//	base64:<rounds>:<keyLength>:<salt>:<nonce>:<ciphertext+tag>
//
// Legacy formats, accepted on decode only:
//
//	base64:<salt>-<nonce>-<ciphertext+tag>            (rounds 50000, key length 32)
//	base64:<rounds>-<salt>-<nonce>-<ciphertext+tag>   (key length 32)
//
// Neither ':' nor '-' belongs to the standard base64 alphabet, so the
// delimiter alone tells the versions apart once the tag has been stripped.
const (
	// FormatTag marks a string as an envelope and names its field encoding.
	FormatTag = "base64"

	// Delimiter separates fields in the current format and follows the tag.
	Delimiter = ":"

	// LegacyDelimiter separates fields in the legacy formats.
	LegacyDelimiter = "-"

	// LegacyRounds is the implied iteration count of envelopes without embedded rounds.
	LegacyRounds = 50000

	// LegacyKeyLength is the implied key length of every legacy envelope.
	LegacyKeyLength = 32
)

// Version identifies which envelope layout a string was parsed from.
type Version int

const (
	// VersionLegacyImplicit is the dash-delimited layout without KDF parameters.
	VersionLegacyImplicit Version = iota + 1

	// VersionLegacyRounds is the dash-delimited layout with embedded rounds.
	VersionLegacyRounds

	// VersionCurrent is the colon-delimited layout embedding rounds and key length.
	VersionCurrent
)

// fieldCount returns the number of delimited fields after the tag for v.
func (v Version) fieldCount() int {
	switch v {
	case VersionLegacyImplicit:
		return 3
	case VersionLegacyRounds:
		return 4
	case VersionCurrent:
		return 5
	default:
		return 0
	}
}

// String returns a short name for logs.
func (v Version) String() string {
	switch v {
	case VersionLegacyImplicit:
		return "legacy-implicit"
	case VersionLegacyRounds:
		return "legacy-rounds"
	case VersionCurrent:
		return "current"
	default:
		return "unknown"
	}
}
