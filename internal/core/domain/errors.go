package domain

// ErrorCategory classifies manifest service failures. This helps in proper
// error handling, monitoring, and retry decisions.
type ErrorCategory int

const (
	// ErrorIO indicates failures in the underlying file operations, such as
	// missing files, permissions, or short reads.
	ErrorIO ErrorCategory = iota + 1

	// ErrorManifest indicates a malformed or inconsistent manifest, such as
	// chunk offsets that do not tile the file.
	ErrorManifest

	// ErrorCompression indicates errors while compressing or decompressing
	// an on-disk manifest.
	ErrorCompression

	// ErrorVerification indicates a checksum mismatch: the data no longer
	// matches the manifest.
	ErrorVerification
)

// String returns the string representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorIO:
		return "io"
	case ErrorManifest:
		return "manifest"
	case ErrorCompression:
		return "compression"
	case ErrorVerification:
		return "verification"
	default:
		return "unknown"
	}
}
