package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("falls back to defaults", func(t *testing.T) {
		t.Setenv("DB_NAME", "")
		t.Setenv("GLOSSARY_MAX_ANCESTOR_DEPTH", "")

		cfg := Load()

		assert.Equal(t, "glossary_db", cfg.Database.DBName)
		assert.Equal(t, 64, cfg.Glossary.MaxAncestorDepth)
		assert.Equal(t, 15*time.Minute, cfg.MinIO.PresignExpiry)
	})

	t.Run("reads typed values from the environment", func(t *testing.T) {
		t.Setenv("GLOSSARY_MAX_ANCESTOR_DEPTH", "3")
		t.Setenv("DB_QUERY_TIMEOUT", "2s")
		t.Setenv("MINIO_USE_SSL", "true")

		cfg := Load()

		assert.Equal(t, 3, cfg.Glossary.MaxAncestorDepth)
		assert.Equal(t, 2*time.Second, cfg.Database.QueryTimeout)
		assert.True(t, cfg.MinIO.UseSSL)
	})

	t.Run("ignores malformed values", func(t *testing.T) {
		t.Setenv("GLOSSARY_MAX_ANCESTOR_DEPTH", "deep")

		assert.Equal(t, 64, Load().Glossary.MaxAncestorDepth)
	})
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Host: "localhost"},
		Glossary: GlossaryConfig{MaxAncestorDepth: 8},
		MinIO:    MinIOConfig{AccessKeyID: "key", SecretAccessKey: "secret"},
	}
	assert.NoError(t, cfg.Validate())

	cfg.Glossary.MaxAncestorDepth = 0
	assert.Error(t, cfg.Validate())

	cfg.Glossary.MaxAncestorDepth = 8
	cfg.MinIO.SecretAccessKey = ""
	assert.Error(t, cfg.Validate())
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: "5433", User: "u", Password: "p", DBName: "g", SSLMode: "disable"}
	assert.Equal(t, "host=db user=u password=p dbname=g port=5433 sslmode=disable TimeZone=UTC connect_timeout=10", d.DSN())
}
