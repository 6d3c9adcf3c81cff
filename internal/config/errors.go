package config

import "errors"

var (
	ErrInvalidAPIConfigs             = errors.New("invalid api configuration")
	ErrInvalidAuthConfigs            = errors.New("invalid auth configuration")
	ErrInvalidBoxesConfigs           = errors.New("invalid boxes configuration")
	ErrInvalidSignerConfigs          = errors.New("invalid signer configuration")
	ErrInvalidPowerOfAttorneyConfigs = errors.New("invalid power of attorney configuration")
	ErrInvalidStorageConfigs         = errors.New("invalid storage configuration")
)
