package segnet

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrInvalidConfig indicates a malformed construction configuration,
	// such as an empty argument-token list or an unrecognized token.
	ErrInvalidConfig = errors.New("segnet: invalid configuration")

	// ErrUnknownNetwork indicates the requested built-in network name is
	// not in the registry.
	ErrUnknownNetwork = errors.New("segnet: unknown built-in network")

	// ErrEngineInit indicates the native engine failed to initialize.
	ErrEngineInit = errors.New("segnet: engine initialization failed")

	// ErrInvalidInstance indicates an operation was called on a handle
	// without a live engine (zero value or already closed).
	ErrInvalidInstance = errors.New("segnet: invalid engine instance")

	// ErrInvalidDimensions indicates non-positive image width or height.
	ErrInvalidDimensions = errors.New("segnet: image dimensions are invalid")

	// ErrBufferUnresolved indicates an image buffer reference that does not
	// resolve to usable pixel memory.
	ErrBufferUnresolved = errors.New("segnet: image buffer cannot be resolved")

	// ErrProcess indicates the native engine reported a processing failure.
	ErrProcess = errors.New("segnet: processing failed")

	// ErrRender indicates the native engine reported an overlay or mask
	// rendering failure.
	ErrRender = errors.New("segnet: rendering failed")
)
