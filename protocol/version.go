package protocol

// Specification versions whose payload shapes this package covers. Proposed
// 3.17/3.18 types additionally require the "proposed" build tag.
const (
	Version313 = "3.13.0"
	Version316 = "3.16.0"
	Version317 = "3.17.0"
)

// Version is the newest stable specification version covered.
const Version = Version316
