package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	return Config{
		Backend:   Backend{BaseURL: "http://localhost:3001/api"},
		Database:  Database{Driver: "sqlite", DSN: "file::memory:"},
		Meta:      Meta{CallbackPath: "/oauth/meta/callback"},
		SecretKey: "segredo-local",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "Configuração válida",
			mutate: func(c *Config) {},
		},
		{
			name:    "SECRET_KEY ausente",
			mutate:  func(c *Config) { c.SecretKey = "" },
			wantErr: "SECRET_KEY é obrigatório",
		},
		{
			name:    "SECRET_KEY só com espaços",
			mutate:  func(c *Config) { c.SecretKey = "   " },
			wantErr: "SECRET_KEY é obrigatório",
		},
		{
			name:    "SECRET_KEY com valor de exemplo",
			mutate:  func(c *Config) { c.SecretKey = "change-me" },
			wantErr: `SECRET_KEY não pode ser o valor de exemplo "change-me"`,
		},
		{
			name:    "Driver desconhecido",
			mutate:  func(c *Config) { c.Database.Driver = "mysql" },
			wantErr: `database driver não suportado: "mysql"`,
		},
		{
			name:    "Callback sem barra inicial",
			mutate:  func(c *Config) { c.Meta.CallbackPath = "oauth" },
			wantErr: "META_CALLBACK_PATH deve começar com '/'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestNewConfig_SemSecretKeyFalha(t *testing.T) {
	t.Setenv("SECRET_KEY", "")

	_, err := NewConfig()
	assert.EqualError(t, err, "SECRET_KEY é obrigatório")
}

func TestNewConfig_LeSecretKeyDoAmbiente(t *testing.T) {
	t.Setenv("SECRET_KEY", "segredo-do-ambiente")

	cfg, err := NewConfig()
	if assert.NoError(t, err) {
		assert.Equal(t, "segredo-do-ambiente", cfg.SecretKey)
	}
}
