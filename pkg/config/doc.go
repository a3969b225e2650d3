// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tag parsing). Load caches each
// configuration type after the first successful parse; Parse always reads
// the current environment. Reset clears the cache between tests.
//
//	type Settings struct {
//	    Language string `env:"FORM_LANGUAGE" envDefault:"ar"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//	    return err
//	}
//
// Errors wrap the sentinels ErrParsingConfig, ErrLoadingEnvFile and
// ErrNilPointer and can be matched with errors.Is.
package config
