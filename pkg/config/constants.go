package config

const (
	// EnvPrefix is passed to envconfig; individual fields carry explicit names.
	EnvPrefix = "ECART"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv = "ECART_APP_ENV"
)
