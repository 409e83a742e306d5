package riv

// Config controls one Compile call (spec §4.A External interfaces).
// The zero value gives a random file_id with Strict and ElideDefaults
// both false; only FileID affects what Compile produces.
type Config struct {
	// FileID pins the header's file_id field. Nil means generate one
	// randomly per NewFileID.
	FileID *uint64

	// Strict is not read anywhere in the package: Parse takes no Config
	// and always rejects unknown property keys and baseline keys in the
	// ToC.
	Strict bool

	// ElideDefaults is not read by Build or Encode: the builder omits a
	// property whose value equals its class's registered default
	// whatever this flag says.
	ElideDefaults bool
}

// DefaultConfig returns the Config Compile uses when none is supplied.
func DefaultConfig() Config {
	return Config{ElideDefaults: true}
}
