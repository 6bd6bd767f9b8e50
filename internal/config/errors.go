package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrInvalidModuleSize is returned when a module or bar unit size is not positive.
	ErrInvalidModuleSize = errors.New("invalid module size: must be positive")

	// ErrInvalidBarHeight is returned when the Code 128 bar height is not positive.
	ErrInvalidBarHeight = errors.New("invalid bar height: must be positive")

	// ErrInvalidSupersample is returned when the raster supersampling factor
	// is not positive.
	ErrInvalidSupersample = errors.New("invalid supersample: must be positive")

	// ErrInvalidQuietZone is returned when the minimum quiet zone is negative.
	ErrInvalidQuietZone = errors.New("invalid minimum quiet zone: must be non-negative")

	// ErrInvalidErrorCorrection is returned for QR levels other than L, M, Q and H.
	ErrInvalidErrorCorrection = errors.New("invalid qr error correction: must be L, M, Q or H")

	// ErrInvalidShape is returned for DataMatrix shapes other than square,
	// rectangle and any.
	ErrInvalidShape = errors.New("invalid datamatrix shape: must be square, rectangle or any")

	// ErrInvalidConcurrency is returned when the batch concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid batch concurrency: must be positive")

	// ErrInvalidAddr is returned when the server listen address is empty.
	ErrInvalidAddr = errors.New("invalid server address: must not be empty")

	// ErrConfigNotFound is returned when an explicitly named configuration
	// file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
